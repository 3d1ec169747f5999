package manager

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/dataimporter/datasets"
	"github.com/farescout/farescout/pkg/dataimporter/formats"
	"github.com/farescout/farescout/pkg/dataimporter/formats/velaris"
	"github.com/farescout/farescout/pkg/events"
	"github.com/rs/zerolog/log"
)

func GetDataset(identifier string) (datasets.DataSet, error) {
	registered := GetRegisteredDataSets()

	for _, dataset := range registered {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return datasets.DataSet{}, errors.New("Dataset could not be found")
}

// ImportDataset fetches the dataset's source document (local path or URL,
// optionally overridden), parses it and imports the resulting itineraries
func ImportDataset(dataset *datasets.DataSet, sourceOverride string) error {
	log.Info().Str("id", dataset.Identifier).Msg("Found dataset")

	format, err := getFormat(dataset.Format)
	if err != nil {
		return err
	}

	source := dataset.Source
	if sourceOverride != "" {
		source = sourceOverride
	}

	if isValidUrl(source) {
		tempFile, err := tempDownloadFile(source)
		if err != nil {
			return err
		}

		source = tempFile.Name()
		defer os.Remove(tempFile.Name())
	}

	file, err := os.Open(source)
	if err != nil {
		return err
	}
	defer file.Close()

	err = format.ParseFile(file)
	if err != nil {
		return err
	}

	startTime := time.Now()

	err = format.Import(*dataset, &cadf.DataSourceReference{
		OriginalFormat: string(dataset.Format),
		Provider:       dataset.Provider.Name,
		DatasetID:      dataset.Identifier,
		Timestamp:      fmt.Sprintf("%d", startTime.Unix()),
	})
	if err != nil {
		return err
	}

	events.Publish(events.Event{
		Type: events.EventTypeDatasetImported,
		Body: map[string]interface{}{
			"DatasetID": dataset.Identifier,
			"Duration":  time.Since(startTime).String(),
		},
		Timestamp: startTime,
	})

	return nil
}

func getFormat(datasetFormat datasets.DataSetFormat) (formats.Format, error) {
	switch datasetFormat {
	case datasets.DataSetFormatVelarisAward:
		return &velaris.AwardSearch{}, nil
	default:
		return nil, fmt.Errorf("Unrecognised format %s", datasetFormat)
	}
}

func isValidUrl(toTest string) bool {
	u, err := url.Parse(toTest)

	return err == nil && u.Scheme != "" && u.Host != ""
}

func tempDownloadFile(source string) (*os.File, error) {
	req, _ := http.NewRequest("GET", source, nil)
	req.Header["user-agent"] = []string{"curl/7.54.1"}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(os.TempDir(), "farescout-data-importer-")
	if err != nil {
		return nil, err
	}

	io.Copy(tmpFile, resp.Body)

	return tmpFile, nil
}
