package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/localserve/internal/models"
	"github.com/joshua-takyi/localserve/internal/services"
)

func ListProviders(p *services.ProviderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.ProviderFilter{
			Service: c.Query("service"),
			Budget:  models.BudgetLevel(c.Query("budget")),
		}

		if raw := c.Query("maxDistanceKm"); raw != "" {
			maxDistance, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxDistanceKm parameter"})
				return
			}
			filter.MaxDistanceKm = &maxDistance
		}

		providers, err := p.ListProviders(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, providers)
	}
}
