package api

import (
	"github.com/farescout/farescout/pkg/api/routes"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/awards")

	group.Get("version", routes.APIVersion)

	routes.ItinerariesRouter(group.Group("/itineraries"))

	return webApp.Listen(listen)
}
