package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"api/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	RegistrationsCollection = "registrations"
	PaymentsCollection      = "payments"

	connectTimeout = 10 * time.Second
)

var (
	client *mongo.Client
	mu     sync.Mutex
)

// InitDB establishes the MongoDB connection and creates the indexes the
// registration flow relies on. Called once at startup; handlers that find the
// connection gone re-acquire it through getClient.
func InitDB() error {
	_, err := getClient()
	return err
}

// getClient returns the process-wide client, connecting lazily. A failed
// attempt leaves the handle nil so the next request retries from scratch.
func getClient() (*mongo.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		if disconnectErr := c.Disconnect(context.Background()); disconnectErr != nil {
			log.Printf("Warning: failed to disconnect MongoDB client after ping failure: %v", disconnectErr)
		}
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if err := ensureIndexes(ctx, c); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}

	log.Println("Connected to MongoDB")
	client = c
	return client, nil
}

// ensureIndexes creates the unique teamCode index and the member email lookup
// index. Email uniqueness across teams is enforced by a pre-insert check in
// the registration handler, not here; the index only keeps that check fast.
func ensureIndexes(ctx context.Context, c *mongo.Client) error {
	registrations := c.Database(config.MongoDatabase).Collection(RegistrationsCollection)

	_, err := registrations.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "teamCode", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "members.email", Value: 1}},
		},
	})
	return err
}

// Registrations returns the registrations collection, reconnecting if needed.
func Registrations() (*mongo.Collection, error) {
	return collection(RegistrationsCollection)
}

// Payments returns the payments collection, reconnecting if needed.
func Payments() (*mongo.Collection, error) {
	return collection(PaymentsCollection)
}

func collection(name string) (*mongo.Collection, error) {
	c, err := getClient()
	if err != nil {
		return nil, err
	}
	return c.Database(config.MongoDatabase).Collection(name), nil
}

// CloseDB disconnects the client. Used on shutdown.
func CloseDB(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	return err
}
