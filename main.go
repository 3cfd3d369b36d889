package main

import (
	"fiber-tracker/config"
	"fiber-tracker/controllers/idgen"
	"fiber-tracker/database"
	"fiber-tracker/logger"
	"fiber-tracker/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()
	logger.Init(config.APP_ENV, config.LOG_LEVEL)

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to auto migrate")
	}

	if err := idgen.Init(int64(config.SnowflakeNode)); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to init id generator")
	}
	database.RunSeeders(db)

	app := fiber.New()
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupClientRoutes(app, db)
	routes.SetupProductRoutes(app, db)
	routes.SetupInboundRoutes(app, db)
	routes.SetupOutboundRoutes(app, db)

	logger.Log.Info().Str("port", config.APP_PORT).Msg("server listening")
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}
