package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleProvider
}

type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "low"
	BudgetMedium BudgetLevel = "medium"
	BudgetHigh   BudgetLevel = "high"
)

func (b BudgetLevel) Valid() bool {
	return b == BudgetLow || b == BudgetMedium || b == BudgetHigh
}

const DefaultPriceUnit = "visit"

// User is the single document shape for both customers and providers.
// The password field holds a bcrypt hash, never plaintext, and is kept
// out of JSON entirely so no handler can leak it.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Password    string             `bson:"password" json:"-" validate:"required"`
	Role        Role               `bson:"role" json:"role"`
	Service     string             `bson:"service,omitempty" json:"service,omitempty"`
	Rating      float64            `bson:"rating" json:"rating"`
	Reviews     int                `bson:"reviews" json:"reviews"`
	DistanceKm  float64            `bson:"distanceKm" json:"distanceKm"`
	EtaMinutes  int                `bson:"etaMinutes,omitempty" json:"etaMinutes,omitempty"`
	PriceFrom   float64            `bson:"priceFrom,omitempty" json:"priceFrom,omitempty"`
	PriceUnit   string             `bson:"priceUnit" json:"priceUnit"`
	BudgetLevel BudgetLevel        `bson:"budgetLevel,omitempty" json:"budgetLevel,omitempty"`
	Lat         float64            `bson:"lat" json:"lat"`
	Lng         float64            `bson:"lng" json:"lng"`
}

// AuthUser is the reduced projection returned on successful login.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
}

func (u *User) AuthView() AuthUser {
	return AuthUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Role:  u.Role,
		Email: u.Email,
	}
}

// NewCustomer builds a customer record. Provider-only fields (service,
// priceFrom, budgetLevel, etaMinutes) stay zero and are omitted from bson,
// so a customer cannot carry them by construction.
func NewCustomer(name, email, hashedPassword string, lat, lng, distanceKm float64) *User {
	return &User{
		Name:       name,
		Email:      email,
		Password:   hashedPassword,
		Role:       RoleCustomer,
		PriceUnit:  DefaultPriceUnit,
		Lat:        lat,
		Lng:        lng,
		DistanceKm: distanceKm,
	}
}

// NewProvider builds a provider record with the provider-only fields set.
func NewProvider(name, email, hashedPassword, service string, priceFrom float64, budget BudgetLevel, lat, lng, distanceKm float64) *User {
	return &User{
		Name:        name,
		Email:       email,
		Password:    hashedPassword,
		Role:        RoleProvider,
		Service:     service,
		PriceFrom:   priceFrom,
		BudgetLevel: budget,
		PriceUnit:   DefaultPriceUnit,
		Lat:         lat,
		Lng:         lng,
		DistanceKm:  distanceKm,
	}
}
