package app

import (
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	_ "github.com/DIMO-Network/slack-challenge-api/docs" // Import Swagger docs
	"github.com/DIMO-Network/slack-challenge-api/internal/config"
	"github.com/DIMO-Network/slack-challenge-api/internal/controllers/challenge"
	"github.com/DIMO-Network/slack-challenge-api/internal/jsoncodec"
	"github.com/DIMO-Network/slack-challenge-api/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// MaxBodyBytes is the largest request body accepted by the API.
const MaxBodyBytes = 4096

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Slack Challenge API...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(fibercommon.ErrorHandler),
		DisableStartupMessage: true,
		BodyLimit:             MaxBodyBytes,
		JSONEncoder:           jsoncodec.Marshal,
		JSONDecoder:           jsoncodec.Unmarshal,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)
	app.Use(middleware.AccessLog)
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	challengeController := challenge.NewController(settings.LogPayloads)
	logger.Info().Msg("Registering routes...")

	app.Post("/", challengeController.HandleEvent)

	return app
}
