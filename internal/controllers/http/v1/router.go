package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"

	"weather-forecast/internal/services/weather"
	"weather-forecast/pkg/logger"
	"weather-forecast/web"
)

type routes struct {
	service *weather.ForecastService
	l       *logger.Logger
}

// NewRouter registers the page, the JSON API, the icons and the API docs.
// The app must have been created with web.NewViews as its view engine.
func NewRouter(
	app *fiber.App,
	forecastService *weather.ForecastService,
	l *logger.Logger,
) {
	r := &routes{
		service: forecastService,
		l:       l,
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use("/images", filesystem.New(filesystem.Config{
		Root:       web.Assets(),
		PathPrefix: "images",
		MaxAge:     3600,
	}))

	app.Get("/", r.handlePage)

	api := app.Group("/api/v1")
	api.Get("/forecast", r.handleForecastCall)
}
