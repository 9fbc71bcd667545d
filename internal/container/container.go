package container

import (
	"log/slog"

	"github.com/joshua-takyi/localserve/internal/models"
	"github.com/joshua-takyi/localserve/internal/seed"
	"github.com/joshua-takyi/localserve/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger          *slog.Logger
	MongoDBClient   *mongo.Client
	UserRepo        models.UserRepo
	UserService     *services.UserService
	ProviderService *services.ProviderService
	Seeder          *seed.Seeder
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)
	userService := services.NewUserService(repo)
	providerService := services.NewProviderService(repo)
	seeder := seed.NewSeeder(repo, logger)

	return &Container{
		Logger:          logger,
		MongoDBClient:   mongoDBClient,
		UserRepo:        repo,
		UserService:     userService,
		ProviderService: providerService,
		Seeder:          seeder,
	}
}
