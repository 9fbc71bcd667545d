package services

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/joshua-takyi/localserve/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepo is an in-memory models.UserRepo backing the service tests,
// matching the store contract: unique email on insert, password stripped
// from provider listings, distance-ascending order.
type memRepo struct {
	users []*models.User
}

func (m *memRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memRepo) InsertUser(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, user)
	return nil
}

func (m *memRepo) InsertProviders(ctx context.Context, providers []*models.User) error {
	for _, p := range providers {
		if err := m.InsertUser(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (m *memRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (m *memRepo) FindProviders(ctx context.Context, filter models.ProviderFilter) ([]*models.User, error) {
	matched := []*models.User{}
	for _, u := range m.users {
		if u.Role != models.RoleProvider {
			continue
		}
		if filter.Service != "" && !strings.Contains(strings.ToLower(u.Service), strings.ToLower(filter.Service)) {
			continue
		}
		if filter.Budget != "" && u.BudgetLevel != filter.Budget {
			continue
		}
		if filter.MaxDistanceKm != nil && u.DistanceKm > *filter.MaxDistanceKm {
			continue
		}
		redacted := *u
		redacted.Password = ""
		matched = append(matched, &redacted)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].DistanceKm < matched[j].DistanceKm })
	return matched, nil
}

func (m *memRepo) CountProviders(ctx context.Context) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == models.RoleProvider {
			count++
		}
	}
	return count, nil
}

func (m *memRepo) DeleteProviders(ctx context.Context) error {
	kept := m.users[:0]
	for _, u := range m.users {
		if u.Role != models.RoleProvider {
			kept = append(kept, u)
		}
	}
	m.users = kept
	return nil
}

func newCustomerInput(email string) SignupInput {
	return SignupInput{
		Name:     "Asha",
		Email:    email,
		Password: "hunter2hunter2",
		Role:     models.RoleCustomer,
	}
}

func TestSignupThenLoginReturnsSameID(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, us.SignUp(ctx, newCustomerInput("asha@example.com")))

	view, err := us.Authenticate(ctx, "asha@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, repo.users[0].ID.Hex(), view.ID)
	assert.Equal(t, "Asha", view.Name)
	assert.Equal(t, models.RoleCustomer, view.Role)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, us.SignUp(ctx, newCustomerInput("asha@example.com")))

	err := us.SignUp(ctx, newCustomerInput("asha@example.com"))
	require.ErrorIs(t, err, models.ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, us.SignUp(ctx, newCustomerInput("a@example.com")))
	require.NoError(t, us.SignUp(ctx, newCustomerInput("b@example.com")))

	assert.NotEqual(t, "hunter2hunter2", repo.users[0].Password)
	// Same plaintext, different salts.
	assert.NotEqual(t, repo.users[0].Password, repo.users[1].Password)
}

func TestSignupDefaultsToCustomerRole(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)

	input := newCustomerInput("asha@example.com")
	input.Role = ""
	require.NoError(t, us.SignUp(context.Background(), input))
	assert.Equal(t, models.RoleCustomer, repo.users[0].Role)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)

	input := newCustomerInput("asha@example.com")
	input.Role = "admin"
	require.Error(t, us.SignUp(context.Background(), input))
	assert.Empty(t, repo.users)
}

func TestSignupGatesProviderFieldsByRole(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)
	ctx := context.Background()

	// A customer sending provider fields does not keep them.
	customer := newCustomerInput("customer@example.com")
	customer.Service = "Electrician"
	customer.PriceFrom = 500
	require.NoError(t, us.SignUp(ctx, customer))
	assert.Empty(t, repo.users[0].Service)
	assert.Zero(t, repo.users[0].PriceFrom)
	assert.Empty(t, repo.users[0].BudgetLevel)

	provider := SignupInput{
		Name:      "Fix It",
		Email:     "fixit@example.com",
		Password:  "hunter2hunter2",
		Role:      models.RoleProvider,
		Service:   "Electrician",
		PriceFrom: 500,
	}
	require.NoError(t, us.SignUp(ctx, provider))
	assert.Equal(t, "Electrician", repo.users[1].Service)
	assert.Equal(t, 500.0, repo.users[1].PriceFrom)
	assert.Equal(t, models.BudgetMedium, repo.users[1].BudgetLevel)
}

func TestSignupAssignsNearbyPosition(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)

	require.NoError(t, us.SignUp(context.Background(), newCustomerInput("asha@example.com")))

	u := repo.users[0]
	assert.InDelta(t, CenterLat, u.Lat, 0.05)
	assert.InDelta(t, CenterLng, u.Lng, 0.05)
	assert.GreaterOrEqual(t, u.DistanceKm, 1.0)
	assert.LessOrEqual(t, u.DistanceKm, 10.0)
}

func TestAuthenticateWrongPasswordIsCredentialErrorNotNotFound(t *testing.T) {
	repo := &memRepo{}
	us := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, us.SignUp(ctx, newCustomerInput("asha@example.com")))

	_, err := us.Authenticate(ctx, "asha@example.com", "wrong-password")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, models.ErrUserNotFound)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	us := NewUserService(&memRepo{})

	_, err := us.Authenticate(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestListProvidersFiltersAndSorts(t *testing.T) {
	repo := &memRepo{}
	ps := NewProviderService(repo)
	ctx := context.Background()

	seedProviders := []*models.User{
		models.NewProvider("Volt Masters", "volt@test.com", "$2a$10$hash", "Electrician", 800, models.BudgetHigh, 12.97, 77.64, 6.1),
		models.NewProvider("Ravi Kumar", "ravi@test.com", "$2a$10$hash", "Electrician", 350, models.BudgetLow, 12.97, 77.59, 0.2),
		models.NewProvider("Drain Doctor", "drain@test.com", "$2a$10$hash", "Plumber", 1500, models.BudgetHigh, 13.0, 77.58, 4.2),
	}
	require.NoError(t, repo.InsertProviders(ctx, seedProviders))

	// Case-insensitive service substring.
	got, err := ps.ListProviders(ctx, models.ProviderFilter{Service: "electrician"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ravi Kumar", got[0].Name)
	assert.Equal(t, "Volt Masters", got[1].Name)

	// Budget narrows further.
	got, err = ps.ListProviders(ctx, models.ProviderFilter{Service: "ELECTRICIAN", Budget: models.BudgetHigh})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Volt Masters", got[0].Name)

	// Distance upper bound of zero matches nothing here.
	zero := 0.0
	got, err = ps.ListProviders(ctx, models.ProviderFilter{MaxDistanceKm: &zero})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListProvidersRejectsBadInputs(t *testing.T) {
	ps := NewProviderService(&memRepo{})
	ctx := context.Background()

	_, err := ps.ListProviders(ctx, models.ProviderFilter{Budget: "premium"})
	require.Error(t, err)

	negative := -1.0
	_, err = ps.ListProviders(ctx, models.ProviderFilter{MaxDistanceKm: &negative})
	require.Error(t, err)
}
