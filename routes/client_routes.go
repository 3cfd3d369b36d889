package routes

import (
	"fiber-tracker/config"
	"fiber-tracker/controllers"
	"fiber-tracker/middleware"
	"fiber-tracker/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupClientRoutes(app *fiber.App, db *gorm.DB) {
	clientController := controllers.NewClientController(db)
	auth := middleware.AuthMiddleware(repositories.NewSessionRepository(db))

	api := app.Group(config.MAIN_ROUTES+"/clients", auth)
	api.Post("/", clientController.CreateClient)
	api.Get("/", clientController.GetAllClients)
	api.Get("/:id", clientController.GetClientByID)
	api.Put("/:id", clientController.UpdateClient)
	api.Delete("/:id", clientController.DeleteClient)
}
