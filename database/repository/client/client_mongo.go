package clientRepo

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

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo() ClientRepository {
	coll := database.Database().Collection("clients")
	repo := &MongoClientRepo{coll: coll}

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
func (r *MongoClientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "assignedTo", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new client document.
func (r *MongoClientRepo) Create(client *models.Client) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	err := database.WithRetry(func() error {
		_, err := r.coll.InsertOne(ctx, client)
		return err
	})
	if err != nil {
		if database.IsTransient(err) {
			return utils.Wrap(utils.KindUnavailable, "client store unavailable", err)
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by its unique ID. Returns nil when absent.
func (r *MongoClientRepo) GetByID(id string) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var client models.Client
	err := database.WithRetry(func() error {
		return r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if database.IsTransient(err) {
			return nil, utils.Wrap(utils.KindUnavailable, "client store unavailable", err)
		}
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	return &client, nil
}

// find runs a filter query and decodes all matches.
func (r *MongoClientRepo) find(filter bson.M) ([]models.Client, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var clients []models.Client
	err := database.WithRetry(func() error {
		cursor, err := r.coll.Find(ctx, filter)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		clients = nil
		for cursor.Next(ctx) {
			var c models.Client
			if err := cursor.Decode(&c); err != nil {
				return fmt.Errorf("failed to decode client: %w", err)
			}
			clients = append(clients, c)
		}
		return cursor.Err()
	})
	if err != nil {
		if database.IsTransient(err) {
			return nil, utils.Wrap(utils.KindUnavailable, "client store unavailable", err)
		}
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	return clients, nil
}

// GetAll retrieves all clients.
func (r *MongoClientRepo) GetAll() ([]models.Client, error) {
	return r.find(bson.M{})
}

// GetByStatus retrieves clients in one pipeline state.
func (r *MongoClientRepo) GetByStatus(status models.ClientStatus) ([]models.Client, error) {
	return r.find(bson.M{"status": status})
}

// GetByAssignee retrieves clients assigned to one employee.
func (r *MongoClientRepo) GetByAssignee(employeeID string) ([]models.Client, error) {
	return r.find(bson.M{"assignedTo": employeeID})
}

// GetUnassigned retrieves clients with no assignee. Missing and null
// assignedTo are both unassigned, matching how intake writes records.
func (r *MongoClientRepo) GetUnassigned() ([]models.Client, error) {
	return r.find(bson.M{"$or": bson.A{
		bson.M{"assignedTo": bson.M{"$exists": false}},
		bson.M{"assignedTo": nil},
		bson.M{"assignedTo": ""},
	}})
}

// buildUpdate translates a patch into a single Mongo update document. Note
// appends use $push so a concurrent note from another actor is never lost.
func buildUpdate(patch models.ClientPatch) bson.M {
	set := bson.M{"updatedAt": patch.UpdatedAt}
	unset := bson.M{}

	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.AssignedTo != nil {
		if *patch.AssignedTo == "" {
			unset["assignedTo"] = ""
			unset["assignedAt"] = ""
		} else {
			set["assignedTo"] = *patch.AssignedTo
			if patch.AssignedAt != nil {
				set["assignedAt"] = *patch.AssignedAt
			}
		}
	}
	if patch.CostPrice != nil {
		set["costPrice"] = *patch.CostPrice
	}
	if patch.CostCurrency != nil {
		set["costCurrency"] = *patch.CostCurrency
	}
	if patch.SellPrice != nil {
		set["sellPrice"] = *patch.SellPrice
	}
	if patch.SellCurrency != nil {
		set["sellCurrency"] = *patch.SellCurrency
	}
	if patch.Profit != nil {
		set["profit"] = *patch.Profit
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	if patch.AppendNote != nil {
		update["$push"] = bson.M{"noteLog": *patch.AppendNote}
	}
	return update
}

// ApplyPatch applies a patch to one client document atomically.
func (r *MongoClientRepo) ApplyPatch(id string, patch models.ClientPatch) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := buildUpdate(patch)

	var result *mongo.UpdateResult
	err := database.WithRetry(func() error {
		var err error
		result, err = r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
		return err
	})
	if err != nil {
		if database.IsTransient(err) {
			return utils.Wrap(utils.KindUnavailable, "client store unavailable", err)
		}
		return fmt.Errorf("failed to update client with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.Ef(utils.KindNotFound, "client with id %s not found", id)
	}
	return nil
}

// BulkAssign assigns every listed client to one employee inside a single
// transaction. Any unknown client id aborts the transaction, so either all
// documents carry the new assignee or none do.
func (r *MongoClientRepo) BulkAssign(ctx context.Context, clientIDs []string, employeeID string, assignedAt time.Time) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		update := bson.M{"$set": bson.M{
			"assignedTo": employeeID,
			"assignedAt": assignedAt,
			"updatedAt":  assignedAt,
		}}
		for _, id := range clientIDs {
			res, err := r.coll.UpdateOne(sc, bson.M{"id": id}, update)
			if err != nil {
				return fmt.Errorf("assign client %s failed: %w", id, err)
			}
			if res.MatchedCount == 0 {
				return utils.Ef(utils.KindNotFound, "client with id %s not found", id)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if utils.KindOf(err) == utils.KindNotFound {
			return err
		}
		if database.IsTransient(err) {
			return utils.Wrap(utils.KindUnavailable, "bulk assignment aborted", err)
		}
		return fmt.Errorf("bulk assignment transaction failed: %w", err)
	}

	return nil
}
