package models

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ProviderFilter narrows the provider listing. Zero values mean "no constraint".
type ProviderFilter struct {
	Service       string
	Budget        BudgetLevel
	MaxDistanceKm *float64
}

// Query translates the filter into a Mongo query document. The listing is
// always constrained to role=provider; service matches as a case-insensitive
// substring, budget exactly, distanceKm as an upper bound.
func (f ProviderFilter) Query() bson.M {
	query := bson.M{"role": RoleProvider}
	if f.Service != "" {
		query["service"] = bson.M{"$regex": regexp.QuoteMeta(f.Service), "$options": "i"}
	}
	if f.Budget != "" {
		query["budgetLevel"] = f.Budget
	}
	if f.MaxDistanceKm != nil {
		query["distanceKm"] = bson.M{"$lte": *f.MaxDistanceKm}
	}
	return query
}

type UserRepo interface {
	EnsureIndexes(ctx context.Context) error
	InsertUser(ctx context.Context, user *User) error
	InsertProviders(ctx context.Context, providers []*User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindProviders(ctx context.Context, filter ProviderFilter) ([]*User, error)
	CountProviders(ctx context.Context) (int64, error)
	DeleteProviders(ctx context.Context) error
}

// EnsureIndexes creates the unique email index the signup path relies on.
// With the index in place a duplicate signup fails atomically at insert
// time instead of racing a separate existence check.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DBName, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating email index: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) InsertUser(ctx context.Context, user *User) error {
	col, err := mdb.GetCollection(ctx, DBName, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("error inserting user: %v", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (mdb *MongodbRepo) InsertProviders(ctx context.Context, providers []*User) error {
	col, err := mdb.GetCollection(ctx, DBName, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	docs := make([]interface{}, 0, len(providers))
	for _, p := range providers {
		docs = append(docs, p)
	}

	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting providers: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ctx, DBName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %v", err)
	}

	return &user, nil
}

func (mdb *MongodbRepo) FindProviders(ctx context.Context, filter ProviderFilter) ([]*User, error) {
	col, err := mdb.GetCollection(ctx, DBName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "distanceKm", Value: 1}})

	cursor, err := col.Find(ctx, filter.Query(), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding providers: %v", err)
	}
	defer cursor.Close(ctx)

	providers := []*User{}
	for cursor.Next(ctx) {
		var provider User
		if err := cursor.Decode(&provider); err != nil {
			return nil, fmt.Errorf("error decoding provider: %v", err)
		}
		providers = append(providers, &provider)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return providers, nil
}

func (mdb *MongodbRepo) CountProviders(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, DBName, UsersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"role": RoleProvider})
	if err != nil {
		return 0, fmt.Errorf("error counting providers: %v", err)
	}
	return count, nil
}

func (mdb *MongodbRepo) DeleteProviders(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DBName, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.DeleteMany(ctx, bson.M{"role": RoleProvider}); err != nil {
		return fmt.Errorf("error deleting providers: %v", err)
	}
	return nil
}
