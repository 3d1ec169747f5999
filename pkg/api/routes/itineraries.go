package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/farescout/farescout/pkg/cachedresults"
	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/database"
	"github.com/farescout/farescout/pkg/transforms"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"go.mongodb.org/mongo-driver/bson"
)

var resultsCache cachedresults.Cache

func SetupCache() {
	resultsCache.Setup()
}

func ItinerariesRouter(router fiber.Router) {
	router.Get("/", listItineraries)
	router.Get("/:identifier", getItinerary)
}

func listItineraries(c *fiber.Ctx) error {
	origin := c.Query("origin")
	destination := c.Query("destination")
	date := c.Query("date")

	if origin == "" && destination == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A filter must be applied to the request",
		})
	}

	cacheKey := fmt.Sprintf("itineraries/%s/%s/%s", origin, destination, date)
	if cached, err := resultsCache.Cache.Get(context.Background(), cacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	query := bson.M{}
	if origin != "" {
		query["segments.0.origin"] = origin
	}
	if destination != "" {
		query["segments.destination"] = destination
	}
	if date != "" {
		dayStart, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter date should be formatted YYYY-MM-DD",
			})
		}

		query["segments.0.departuretime"] = bson.M{
			"$gte": dayStart,
			"$lt":  dayStart.AddDate(0, 0, 1),
		}
	}

	itinerariesCollection := database.GetCollection("itineraries")
	cursor, _ := itinerariesCollection.Find(context.Background(), query)

	itineraries := []cadf.Itinerary{}
	if err := cursor.All(context.Background(), &itineraries); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Itineraries",
		})
	}

	transforms.Transform(&itineraries)

	itinerariesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, itineraries)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Itineraries",
		})
	}

	responseBytes, _ := json.Marshal(fiber.Map{
		"itineraries": itinerariesReduced,
	})

	resultsCache.Cache.Set(context.Background(), cacheKey, string(responseBytes))

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(responseBytes)
}

func getItinerary(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	itinerariesCollection := database.GetCollection("itineraries")
	var itinerary *cadf.Itinerary
	itinerariesCollection.FindOne(context.Background(), bson.M{"primaryidentifier": identifier}).Decode(&itinerary)

	if itinerary == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Itinerary matching Itinerary Identifier",
		})
	}

	transforms.Transform(itinerary)

	itineraryReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, itinerary)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Itinerary",
		})
	}

	return c.JSON(itineraryReduced)
}
