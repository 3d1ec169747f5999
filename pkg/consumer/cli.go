package consumer

import (
	"time"

	"github.com/farescout/farescout/pkg/database"
	"github.com/farescout/farescout/pkg/elastic_client"
	"github.com/farescout/farescout/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const responsesQueueName = "award-search-responses"

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "response-consumer",
		Usage: "Consume raw award search responses off the queue",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run response consumer",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						log.Fatal().Err(err).Msg("Failed to connect to Redis")
					}
					if err := elastic_client.Connect(false); err != nil {
						log.Fatal().Err(err).Msg("Failed to connect to Elasticsearch")
					}

					redisConsumer := RedisConsumer{
						QueueName:       responsesQueueName,
						NumberConsumers: 5,
						BatchSize:       20,
						Timeout:         2 * time.Second,
						Consumer:        NewResponseBatchConsumer(0),
					}
					redisConsumer.Setup()

					return nil
				},
			},
		},
	}
}
