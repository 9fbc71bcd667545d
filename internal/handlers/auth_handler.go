package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/localserve/internal/models"
	"github.com/joshua-takyi/localserve/internal/services"
)

func Signup(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name      string      `json:"name"`
			Email     string      `json:"email"`
			Password  string      `json:"password"`
			Role      models.Role `json:"role"`
			Service   string      `json:"service"`
			PriceFrom float64     `json:"priceFrom"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := u.SignUp(c.Request.Context(), services.SignupInput{
			Name:      req.Name,
			Email:     req.Email,
			Password:  req.Password,
			Role:      req.Role,
			Service:   req.Service,
			PriceFrom: req.PriceFrom,
		})
		if err != nil {
			if errors.Is(err, models.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := u.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUserNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			case errors.Is(err, models.ErrInvalidCredentials):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}
