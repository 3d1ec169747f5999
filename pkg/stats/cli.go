package stats

import (
	"github.com/farescout/farescout/pkg/elastic_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Index archived award history bundles into Elasticsearch",
		Subcommands: []*cli.Command{
			{
				Name:  "index",
				Usage: "Index any unindexed bundles from the object store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "cloud-bucket",
						Value: "farescout-award-history",
						Usage: "Object store bucket holding the archive bundles",
					},
				},
				Action: func(c *cli.Context) error {
					if err := elastic_client.Connect(true); err != nil {
						return err
					}

					indexer := Indexer{
						CloudBucketName: c.String("cloud-bucket"),
					}
					indexer.Perform()

					return nil
				},
			},
		},
	}
}
