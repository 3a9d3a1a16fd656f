package settingsRepo

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

// exchangeRatesID is the fixed document id of the singleton record.
const exchangeRatesID = "exchangeRates"

// SettingsRepository defines access to the exchange-rate singleton. Profit
// computations fetch it explicitly at call time; a computation in flight
// keeps the rates it started with.
type SettingsRepository interface {
	// GetExchangeRates retrieves the singleton, zero-valued when never set.
	GetExchangeRates() (*models.ExchangeRateSettings, error)
	// UpdateExchangeRates replaces the singleton atomically, creating it on
	// first write.
	UpdateExchangeRates(rates *models.ExchangeRateSettings) error
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.Database().Collection("settings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetExchangeRates retrieves the singleton. Zero-rate defaults are returned
// when the record was never initialized.
func (r *MongoSettingsRepo) GetExchangeRates() (*models.ExchangeRateSettings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rates models.ExchangeRateSettings
	err := database.WithRetry(func() error {
		return r.coll.FindOne(ctx, bson.M{"_id": exchangeRatesID}).Decode(&rates)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.ExchangeRateSettings{}, nil
		}
		if database.IsTransient(err) {
			return nil, utils.Wrap(utils.KindUnavailable, "settings store unavailable", err)
		}
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	return &rates, nil
}

// UpdateExchangeRates replaces the singleton atomically.
func (r *MongoSettingsRepo) UpdateExchangeRates(rates *models.ExchangeRateSettings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"buyRate":   rates.BuyRate,
		"sellRate":  rates.SellRate,
		"updatedBy": rates.UpdatedBy,
		"updatedAt": rates.UpdatedAt,
	}}

	err := database.WithRetry(func() error {
		_, err := r.coll.UpdateOne(ctx, bson.M{"_id": exchangeRatesID}, update,
			options.Update().SetUpsert(true))
		return err
	})
	if err != nil {
		if database.IsTransient(err) {
			return utils.Wrap(utils.KindUnavailable, "settings store unavailable", err)
		}
		return fmt.Errorf("failed to update exchange rates: %w", err)
	}
	return nil
}
