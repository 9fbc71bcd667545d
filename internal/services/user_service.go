package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/joshua-takyi/localserve/internal/helpers"
	"github.com/joshua-takyi/localserve/internal/models"
)

// Reference point the front-end map centers on; new signups get a small
// random position offset around it.
const (
	CenterLat = 12.97
	CenterLng = 77.59
)

type SignupInput struct {
	Name      string
	Email     string
	Password  string
	Role      models.Role
	Service   string
	PriceFrom float64
}

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// SignUp hashes the password and inserts a new account. Provider-only
// fields are applied only when the role is provider; new providers start
// on the medium budget tier. A duplicate email surfaces as
// models.ErrEmailTaken from the store's unique index.
func (us *UserService) SignUp(ctx context.Context, input SignupInput) error {
	if input.Role == "" {
		input.Role = models.RoleCustomer
	}
	if !input.Role.Valid() {
		return fmt.Errorf("role must be %q or %q", models.RoleCustomer, models.RoleProvider)
	}

	hashed, err := helpers.HashPassword(input.Password)
	if err != nil {
		return err
	}

	lat := CenterLat + (rand.Float64()-0.5)*0.1
	lng := CenterLng + (rand.Float64()-0.5)*0.1
	distanceKm := float64(rand.Intn(10) + 1)

	var user *models.User
	if input.Role == models.RoleProvider {
		user = models.NewProvider(input.Name, input.Email, hashed, input.Service, input.PriceFrom, models.BudgetMedium, lat, lng, distanceKm)
	} else {
		user = models.NewCustomer(input.Name, input.Email, hashed, lat, lng, distanceKm)
	}

	if err := models.Validate.Struct(user); err != nil {
		return err
	}

	return us.userRepo.InsertUser(ctx, user)
}

// Authenticate looks up the account by email and verifies the password.
// A missing account and a wrong password are reported as distinct errors.
func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.AuthUser, error) {
	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !helpers.CheckPassword(password, user.Password) {
		return nil, models.ErrInvalidCredentials
	}

	view := user.AuthView()
	return &view, nil
}
