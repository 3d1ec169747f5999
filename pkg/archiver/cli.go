package archiver

import (
	"time"

	"github.com/farescout/farescout/pkg/database"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "archiver",
		Usage: "Move stale itineraries out of the database and into an object store",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run a single archive pass",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output-directory",
						Usage:    "Directory to write output files to",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "max-age",
						Usage: "Archive itineraries not modified within this duration",
						Value: 48 * time.Hour,
					},
					&cli.StringFlag{
						Name:  "cloud-bucket",
						Usage: "Object store bucket to upload the bundle to",
						Value: "farescout-award-history",
					},
					&cli.BoolFlag{
						Name:  "cloud-upload",
						Usage: "Upload the bundle to the object store",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						log.Fatal().Err(err).Msg("Failed to connect to database")
					}

					archiver := Archiver{
						OutputDirectory:     c.String("output-directory"),
						WriteIndividualFile: false,
						WriteBundle:         true,
						CloudUpload:         c.Bool("cloud-upload"),
						CloudBucketName:     c.String("cloud-bucket"),

						MaxAge: c.Duration("max-age"),
					}
					archiver.Perform()

					return nil
				},
			},
		},
	}
}
