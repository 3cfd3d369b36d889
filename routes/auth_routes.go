package routes

import (
	"fiber-tracker/config"
	"fiber-tracker/controllers"
	"fiber-tracker/middleware"
	"fiber-tracker/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	auth := middleware.AuthMiddleware(repositories.NewSessionRepository(db))

	api := app.Group(config.MAIN_ROUTES)
	api.Post("/login", authController.Login)
	api.Get("/logout", auth, authController.Logout)
	api.Get("/isLoggedIn", auth, authController.IsLoggedIn)
}
