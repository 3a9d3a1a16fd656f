package userRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/database"
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.Database().Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID. Returns nil when absent.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	err := database.WithRetry(func() error {
		return r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if database.IsTransient(err) {
			return nil, utils.Wrap(utils.KindUnavailable, "user store unavailable", err)
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by its email address. Returns nil when absent.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	err := database.WithRetry(func() error {
		return r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if database.IsTransient(err) {
			return nil, utils.Wrap(utils.KindUnavailable, "user store unavailable", err)
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetEmployees retrieves all dataentry and sales accounts.
func (r *MongoUserRepo) GetEmployees() ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"role": bson.M{"$in": bson.A{models.RoleDataEntry, models.RoleSales}}}

	var users []models.User
	err := database.WithRetry(func() error {
		cursor, err := r.coll.Find(ctx, filter)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		users = nil
		for cursor.Next(ctx) {
			var u models.User
			if err := cursor.Decode(&u); err != nil {
				return fmt.Errorf("failed to decode user: %w", err)
			}
			users = append(users, u)
		}
		return cursor.Err()
	})
	if err != nil {
		if database.IsTransient(err) {
			return nil, utils.Wrap(utils.KindUnavailable, "user store unavailable", err)
		}
		return nil, fmt.Errorf("failed to retrieve employees: %w", err)
	}
	return users, nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := database.WithRetry(func() error {
		_, err := r.coll.InsertOne(ctx, user)
		return err
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.Ef(utils.KindAlreadyExists, "user with email %s already exists", user.Email)
		}
		if database.IsTransient(err) {
			return utils.Wrap(utils.KindUnavailable, "user store unavailable", err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ApplyPatch applies a partial update to one user document atomically.
func (r *MongoUserRepo) ApplyPatch(id string, patch models.UserPatch) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": patch.UpdatedAt}
	if patch.Salary != nil {
		set["salary"] = *patch.Salary
	}
	if patch.Disabled != nil {
		set["disabled"] = *patch.Disabled
	}

	var result *mongo.UpdateResult
	err := database.WithRetry(func() error {
		var err error
		result, err = r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
		return err
	})
	if err != nil {
		if database.IsTransient(err) {
			return utils.Wrap(utils.KindUnavailable, "user store unavailable", err)
		}
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.Ef(utils.KindNotFound, "user with id %s not found", id)
	}
	return nil
}
