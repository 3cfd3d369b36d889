package routes

import (
	"fiber-tracker/config"
	"fiber-tracker/controllers"
	"fiber-tracker/middleware"
	"fiber-tracker/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)
	auth := middleware.AuthMiddleware(repositories.NewSessionRepository(db))

	api := app.Group(config.MAIN_ROUTES+"/products", auth)
	api.Post("/", productController.CreateProduct)
	api.Get("/", productController.GetAllProducts)
	api.Get("/:id", productController.GetProductByID)
	api.Put("/:id", productController.UpdateProduct)
	api.Delete("/:id", productController.DeleteProduct)
}
