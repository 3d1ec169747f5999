package velaris

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/catalogue"
	"github.com/farescout/farescout/pkg/database"
	"github.com/farescout/farescout/pkg/dataimporter/datasets"
	"github.com/farescout/farescout/pkg/elastic_client"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AwardSearch struct {
	response *Response
}

func (a *AwardSearch) ParseFile(reader io.Reader) error {
	byteValue, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	var response Response
	if err := json.Unmarshal(byteValue, &response); err != nil {
		return fmt.Errorf("%w: %s", ErrStructuralParse, err)
	}

	a.response = &response

	return nil
}

func (a *AwardSearch) Import(dataset datasets.DataSet, datasource *cadf.DataSourceReference) error {
	if !dataset.SupportedObjects.Itineraries {
		return errors.New("This format requires itineraries to be enabled")
	}

	startTime := time.Now()

	itineraries, err := AssembleItineraries(a.response, datasource, AssemblerOptions{
		FareCatalogue:    catalogue.GetFareCatalogue(),
		AircraftRegistry: catalogue.GetAircraftRegistry(),
		PartnerCarriers:  dataset.PartnerCarriers,
		DefaultQuantity:  dataset.DefaultQuantity,
	})
	if err != nil {
		return err
	}

	itinerariesCollection := database.GetCollection("itineraries")

	var updateOperations []mongo.WriteModel
	now := time.Now()

	for _, itinerary := range itineraries {
		itinerary.CreationDateTime = now
		itinerary.ModificationDateTime = now

		bsonRep, _ := bson.Marshal(bson.M{"$set": itinerary})
		updateModel := mongo.NewUpdateOneModel()
		updateModel.SetFilter(bson.M{"primaryidentifier": itinerary.PrimaryIdentifier})
		updateModel.SetUpdate(bsonRep)
		updateModel.SetUpsert(true)

		updateOperations = append(updateOperations, updateModel)

		log.Info().
			Str("itinerary", itinerary.PrimaryIdentifier).
			Str("fare", itinerary.Awards[0].Fare.Code).
			Msg("Added Itinerary")
	}

	if len(updateOperations) > 0 {
		_, err := itinerariesCollection.BulkWrite(context.Background(), updateOperations, &options.BulkWriteOptions{})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to bulk write Itineraries")
		}
	}

	elasticEvent, _ := json.Marshal(map[string]interface{}{
		"DatasetID":   dataset.Identifier,
		"Flights":     len(a.response.Data.Flights),
		"Itineraries": len(itineraries),
		"Duration":    time.Since(startTime).String(),
		"Timestamp":   startTime,
	})
	elastic_client.IndexRequest("farescout-import-events", bytes.NewReader(elasticEvent))

	return nil
}
