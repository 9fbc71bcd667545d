package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/localserve/internal/models"
)

type ProviderService struct {
	userRepo models.UserRepo
}

func NewProviderService(userRepo models.UserRepo) *ProviderService {
	return &ProviderService{
		userRepo: userRepo,
	}
}

// ListProviders returns the provider records matching the filter, sorted by
// distance, with the password field stripped by the store projection.
func (ps *ProviderService) ListProviders(ctx context.Context, filter models.ProviderFilter) ([]*models.User, error) {
	if filter.Budget != "" && !filter.Budget.Valid() {
		return nil, fmt.Errorf("budget must be one of %q, %q, %q", models.BudgetLow, models.BudgetMedium, models.BudgetHigh)
	}
	if filter.MaxDistanceKm != nil && *filter.MaxDistanceKm < 0 {
		return nil, fmt.Errorf("maxDistanceKm cannot be negative")
	}

	return ps.userRepo.FindProviders(ctx, filter)
}
