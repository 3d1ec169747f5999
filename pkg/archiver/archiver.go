package archiver

import (
	"archive/tar"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/database"
	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz"
	"go.mongodb.org/mongo-driver/bson"
)

// Archiver moves stale itineraries out of the database and into bundle files.
// Award availability is a point in time snapshot so anything past MaxAge only
// has historical value
type Archiver struct {
	OutputDirectory     string
	WriteIndividualFile bool
	WriteBundle         bool
	CloudUpload         bool
	CloudBucketName     string

	MaxAge time.Duration
}

func (a *Archiver) Perform() {
	log.Info().Interface("archiver", a).Msg("Running Archive process")

	currentTime := time.Now()
	cutOffTime := currentTime.Add(-a.MaxAge)
	log.Info().Msgf("Archiving itineraries older than %s", cutOffTime)

	itinerariesCollection := database.GetCollection("itineraries")
	searchFilter := bson.M{"modificationdatetime": bson.M{"$lt": cutOffTime}}
	cursor, _ := itinerariesCollection.Find(context.Background(), searchFilter)

	recordCount := 0

	bundleFilename := fmt.Sprintf("%s.tar.xz", currentTime.Format(time.RFC3339))

	var tarWriter *tar.Writer
	var xzWriter *xz.Writer

	if a.WriteBundle {
		bundleFile, err := os.Create(path.Join(a.OutputDirectory, bundleFilename))
		if err != nil {
			log.Error().Err(err).Msg("Failed to open file")
		}

		xzWriter, _ = xz.NewWriter(bundleFile)
		defer xzWriter.Close()
		tarWriter = tar.NewWriter(xzWriter)
		defer tarWriter.Close()
	}

	for cursor.Next(context.TODO()) {
		var itinerary cadf.Itinerary
		err := cursor.Decode(&itinerary)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode Itinerary")
		}

		itineraryJSON, err := json.Marshal(itinerary)
		if err != nil {
			log.Error().Err(err).Msg("Error converting itinerary to json")
		}

		filename := strings.ReplaceAll(fmt.Sprintf("%s.json", itinerary.PrimaryIdentifier), ":", "_")

		if a.WriteIndividualFile {
			file, err := os.Create(path.Join(a.OutputDirectory, filename))
			if err != nil {
				log.Error().Err(err).Msg("Failed to open file")
			}

			_, err = file.Write(itineraryJSON)
			if err != nil {
				log.Error().Err(err).Msg("Failed to write to file")
			}

			file.Close()
		}

		if a.WriteBundle {
			memoryFileInfo := MemoryFileInfo{
				MfiName:    filename,
				MfiSize:    int64(len(itineraryJSON)),
				MfiMode:    777,
				MfiModTime: currentTime,
				MfiIsDir:   false,
			}

			header, err := tar.FileInfoHeader(memoryFileInfo, filename)
			if err != nil {
				log.Error().Err(err).Msg("Failed to generate tar header")
			}

			err = tarWriter.WriteHeader(header)
			if err != nil {
				log.Error().Err(err).Msg("Failed to write tar header")
			}

			_, err = tarWriter.Write(itineraryJSON)
			if err != nil {
				log.Error().Err(err).Msg("Failed to write to file")
			}
		}

		recordCount += 1
	}

	if a.WriteBundle {
		tarWriter.Close()
		xzWriter.Close()
	}

	log.Info().Int("recordCount", recordCount).Msg("Archive document generation complete")

	if a.CloudUpload {
		a.uploadToStorage(bundleFilename)
	}

	itinerariesCollection.DeleteMany(context.Background(), searchFilter)
}

func (a *Archiver) uploadToStorage(filename string) {
	fullBundlePath := path.Join(a.OutputDirectory, filename)

	client, err := storage.NewClient(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create GCP storage client")
	}

	bucket := client.Bucket(a.CloudBucketName)
	object := bucket.Object(filename)

	reader, err := os.Open(fullBundlePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open file")
	}
	defer reader.Close()

	writer := object.NewWriter(context.Background())

	io.Copy(writer, reader)

	err = writer.Close()

	if err == nil {
		log.Info().Msgf("Written file %s to bucket %s", object.ObjectName(), object.BucketName())
	} else {
		log.Fatal().Err(err).Msg("Failed to write file to GCP")
	}
}
