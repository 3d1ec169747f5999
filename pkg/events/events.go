package events

import (
	"encoding/json"
	"time"

	"github.com/farescout/farescout/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

type EventType string

const (
	EventTypeDatasetImported EventType = "dataset-imported"
)

type Event struct {
	Type      EventType
	Body      map[string]interface{}
	Timestamp time.Time
}

// Publish pushes the event onto the events queue. A no-op when no queue
// connection has been opened
func Publish(event Event) {
	if redis_client.QueueConnection == nil {
		return
	}

	queue, err := redis_client.QueueConnection.OpenQueue("events")
	if err != nil {
		log.Error().Err(err).Msg("Failed to open events queue")
		return
	}

	eventJson, _ := json.Marshal(event)

	if err := queue.PublishBytes(eventJson); err != nil {
		log.Error().Err(err).Str("type", string(event.Type)).Msg("Failed to publish event")
	}
}
