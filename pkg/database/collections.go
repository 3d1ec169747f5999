package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createItinerariesIndexes()
}

func createItinerariesIndexes() {
	itinerariesCollection := GetCollection("itineraries")
	itinerariesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "segments.origin", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "segments.destination", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "segments.departuretime", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "datasource.datasetid", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := itinerariesCollection.Indexes().CreateMany(context.Background(), itinerariesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
