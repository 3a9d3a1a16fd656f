package database

import (
	"context"
	"log"
	"time"

	"github.com/mohamedfathy32/elnaseem-crm/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// Database returns the configured application database.
func Database() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// IsTransient reports whether an error looks like a transient store failure
// (network hiccup or timeout) that is worth one more attempt.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}

// WithRetry runs fn and retries it exactly once if the failure was transient.
// Anything else surfaces immediately.
func WithRetry(fn func() error) error {
	err := fn()
	if err != nil && IsTransient(err) {
		err = fn()
	}
	return err
}
