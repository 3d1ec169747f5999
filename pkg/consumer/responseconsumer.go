package consumer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/dataimporter/formats/velaris"
	"github.com/farescout/farescout/pkg/dataimporter/manager"
	"github.com/rs/zerolog/log"
)

// ResponseEnvelope is what the scraping engine pushes onto the queue: the
// dataset the query was issued against plus the raw vendor document
type ResponseEnvelope struct {
	DatasetID   string
	Response    json.RawMessage
	RetrievedAt time.Time
}

type ResponseBatchConsumer struct {
	id int
}

func NewResponseBatchConsumer(id int) *ResponseBatchConsumer {
	return &ResponseBatchConsumer{id: id}
}

func (consumer *ResponseBatchConsumer) Consume(batch rmq.Deliveries) {
	for _, delivery := range batch {
		consumer.processPayload([]byte(delivery.Payload()))
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to ack response")
		}
	}
}

func (consumer *ResponseBatchConsumer) processPayload(payload []byte) {
	var envelope ResponseEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		log.Error().Err(err).Msg("Failed to decode response envelope")
		return
	}

	dataset, err := manager.GetDataset(envelope.DatasetID)
	if err != nil {
		log.Error().Err(err).Str("dataset", envelope.DatasetID).Msg("Response references unknown dataset")
		return
	}

	awardSearch := &velaris.AwardSearch{}
	if err := awardSearch.ParseFile(bytes.NewReader(envelope.Response)); err != nil {
		log.Error().Err(err).Str("dataset", envelope.DatasetID).Msg("Failed to parse response document")
		return
	}

	err = awardSearch.Import(dataset, &cadf.DataSourceReference{
		OriginalFormat: string(dataset.Format),
		Provider:       dataset.Provider.Name,
		DatasetID:      dataset.Identifier,
		Timestamp:      fmt.Sprintf("%d", envelope.RetrievedAt.Unix()),
	})
	if err != nil {
		log.Error().Err(err).Str("dataset", envelope.DatasetID).Msg("Failed to import response document")
	}
}
