// Package seed bootstraps the provider catalog on a cold start. It is
// fired from main in a goroutine so the API never waits on it, and its
// failures are logged rather than fatal.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/joshua-takyi/localserve/internal/helpers"
	"github.com/joshua-takyi/localserve/internal/models"
	"github.com/joshua-takyi/localserve/internal/services"
)

// Every seeded provider shares this login password.
const defaultPassword = "password123"

// Fewer providers than this means stale or empty test data, which gets
// cleared and reseeded from the catalog.
const minProviderCount = 10

type Seeder struct {
	userRepo models.UserRepo
	logger   *slog.Logger
}

func NewSeeder(userRepo models.UserRepo, logger *slog.Logger) *Seeder {
	return &Seeder{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Run checks the provider count and reseeds the catalog when it is below
// the threshold. Already-populated databases are left untouched, so
// running it again is a no-op. It is not safe to run concurrently with
// itself; main runs it once at startup.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.userRepo.CountProviders(ctx)
	if err != nil {
		return fmt.Errorf("failed to count providers: %v", err)
	}

	if count >= minProviderCount {
		s.logger.Info("Database already seeded, skipping", "providers", count)
		return nil
	}

	s.logger.Info("Detected old or empty data, reseeding provider catalog", "providers", count)

	if err := s.userRepo.DeleteProviders(ctx); err != nil {
		return fmt.Errorf("failed to clear providers: %v", err)
	}

	providers, err := CompleteCatalog(Catalog)
	if err != nil {
		return err
	}

	if err := s.userRepo.InsertProviders(ctx, providers); err != nil {
		return fmt.Errorf("failed to insert providers: %v", err)
	}

	s.logger.Info("Provider catalog seeded", "providers", len(providers))
	return nil
}

// CompleteCatalog turns catalog entries into full provider records: a
// deterministic unique email derived from the entry's position, one shared
// hash of the default password, a precomputed distance from the map center
// and a random ETA.
func CompleteCatalog(entries []CatalogEntry) ([]*models.User, error) {
	hashed, err := helpers.HashPassword(defaultPassword)
	if err != nil {
		return nil, err
	}

	providers := make([]*models.User, 0, len(entries))
	for i, entry := range entries {
		distance := DistanceFromCenter(entry.Lat, entry.Lng)
		provider := models.NewProvider(
			entry.Name,
			CatalogEmail(entry.Name, i+1),
			hashed,
			entry.Service,
			entry.PriceFrom,
			entry.Budget,
			entry.Lat,
			entry.Lng,
			distance,
		)
		provider.Rating = entry.Rating
		provider.Reviews = entry.Reviews
		provider.EtaMinutes = rand.Intn(50) + 15
		providers = append(providers, provider)
	}

	return providers, nil
}

// CatalogEmail derives a unique address from the provider's name and its
// 1-based catalog position. The position keeps similarly named providers
// from colliding and is stable across restarts.
func CatalogEmail(name string, position int) string {
	return fmt.Sprintf("%s%02d@test.com", helpers.EmailSlug(name), position)
}

// DistanceFromCenter approximates the straight-line distance in km from
// the map center, treating one degree as 111 km. Display-grade accuracy
// only; no great-circle math. Rounded to one decimal.
func DistanceFromCenter(lat, lng float64) float64 {
	dLat := lat - services.CenterLat
	dLng := lng - services.CenterLng
	km := math.Sqrt(dLat*dLat+dLng*dLng) * 111
	return math.Round(km*10) / 10
}
