package stats

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/elastic_client"
	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz"
	"google.golang.org/api/iterator"
)

// Indexer walks the archive bucket and loads every bundle of archived
// itineraries into the award history index that is not already in it
type Indexer struct {
	CloudBucketName string

	awardHistoryIndexName string
}

func (i *Indexer) Perform() {
	currentTime := time.Now()
	yearNumber, weekNumber := currentTime.ISOWeek()
	i.awardHistoryIndexName = fmt.Sprintf("award-history-%d-%d", yearNumber, weekNumber)

	client, err := storage.NewClient(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create GCP storage client")
	}

	bucket := client.Bucket(i.CloudBucketName)

	objects := bucket.Objects(context.TODO(), nil)

	for {
		objectAttr, err := objects.Next()

		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("Failed to iterate over bucket")
		}

		log.Info().Msgf("Found bundle file %s", objectAttr.Name)

		if i.bundleIndexed(objectAttr.Name) {
			log.Info().Msgf("Bundle file %s already indexed", objectAttr.Name)
		} else {
			object := bucket.Object(objectAttr.Name)
			storageReader, err := object.NewReader(context.Background())
			if err != nil {
				log.Error().Err(err).Msgf("Failed to get object %s", objectAttr.Name)
			}

			i.indexItinerariesBundle(objectAttr.Name, storageReader)
		}
	}

	elastic_client.WaitUntilQueueEmpty()
}

func (i *Indexer) bundleIndexed(bundleName string) bool {
	var queryBytes bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"BundleSourceFile.keyword": bundleName,
			},
		},
	}
	json.NewEncoder(&queryBytes).Encode(query)
	res, err := elastic_client.Client.Count(
		elastic_client.Client.Count.WithContext(context.Background()),
		elastic_client.Client.Count.WithIndex("award-history-*"),
		elastic_client.Client.Count.WithBody(&queryBytes),
	)

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to query index")
	}

	responseBytes, _ := io.ReadAll(res.Body)
	var responseMap map[string]interface{}
	json.Unmarshal(responseBytes, &responseMap)

	if responseMap["status"] != nil {
		log.Fatal().Str("response", string(responseBytes)).Msg("Failed to query index")
	}

	count, found := responseMap["count"].(float64)

	return found && int(count) > 0
}

func (i *Indexer) indexItinerariesBundle(bundleName string, file io.Reader) {
	log.Info().Msgf("Indexing bundle file %s", bundleName)

	xzReader, err := xz.NewReader(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decompress xz file")
		return
	}

	tarReader := tar.NewReader(xzReader)

	for {
		_, err := tarReader.Next()
		if err == io.EOF {
			break
		}

		fileBytes, _ := io.ReadAll(tarReader)

		i.parseArchivedItineraryFile(bundleName, fileBytes)
	}

	log.Info().Msgf("Bundle file %s indexing complete", bundleName)
}

func (i *Indexer) parseArchivedItineraryFile(bundleName string, contents []byte) {
	var itinerary *cadf.Itinerary
	err := json.Unmarshal(contents, &itinerary)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decode JSON file")
		return
	}

	archivedItinerary := ArchivedItinerary{
		Itinerary:        *itinerary,
		BundleSourceFile: bundleName,
	}

	if itinerary.DataSource != nil {
		archivedItinerary.DatasetID = itinerary.DataSource.DatasetID
	}

	if len(itinerary.Segments) > 0 {
		archivedItinerary.Origin = itinerary.Segments[0].Origin
		archivedItinerary.Destination = itinerary.Segments[len(itinerary.Segments)-1].Destination
	}

	if len(itinerary.Awards) > 0 {
		award := itinerary.Awards[0]

		archivedItinerary.FareCode = award.Fare.Code
		archivedItinerary.Cabin = award.Fare.Cabin
		archivedItinerary.PartnerCarrier = award.PartnerCarrier
		archivedItinerary.Waitlisted = award.Waitlisted
		archivedItinerary.MileageCost = award.MileageCost
	}

	archivedItineraryBytes, _ := json.Marshal(archivedItinerary)

	elastic_client.IndexRequest(i.awardHistoryIndexName, bytes.NewReader(archivedItineraryBytes))
}
