package database

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
)

// ConnectMongo connects the audit database. It is optional: with an empty
// URI the service runs without a delivery audit trail.
func ConnectMongo(uri, dbName string) {
	if uri == "" {
		log.Warn("MONGO_URI not set, delivery audit disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to reach mongo: %v", err)
	}

	MongoClient = client
	MongoDB = client.Database(dbName)
	log.Infof("connected to mongo database %s", dbName)
}

func DisconnectMongo(ctx context.Context) {
	if MongoClient == nil {
		return
	}
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Errorf("failed to disconnect mongo: %v", err)
	}
}
