package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-stats/docs"
	"weather-stats/internal/models"
	"weather-stats/internal/services/weather"
	"weather-stats/pkg/logger"
)

type routes struct {
	service *weather.WeatherService
	info    models.AppInfo
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	info models.AppInfo,
	l *logger.Logger,
) {
	r := &routes{
		service: weatherService,
		info:    info,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/", r.handleRoot)

	// API routes; the misspelled paths are kept for existing clients
	api := app.Group("/info")
	api.Get("/", r.handleInfo)
	api.Get("/allresponses", r.handleAllResponses)
	api.Get("/responce/:id", r.handleResponse)
	api.Get("/weather", r.handleWeather)
	api.Delete("/responcedel/:id", r.handleDelete)
}
