package routes

import (
	"fiber-tracker/config"
	"fiber-tracker/controllers"
	"fiber-tracker/middleware"
	"fiber-tracker/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInboundRoutes(app *fiber.App, db *gorm.DB) {
	inboundController := controllers.NewInboundController(db)
	auth := middleware.AuthMiddleware(repositories.NewSessionRepository(db))

	api := app.Group(config.MAIN_ROUTES+"/inbounds", auth)
	api.Post("/", inboundController.CreateInbound)
	api.Get("/", inboundController.GetAllInbounds)
	api.Get("/:id", inboundController.GetInboundByID)
	api.Put("/:id", inboundController.UpdateInbound)
	api.Delete("/:id", inboundController.DeleteInbound)

	api.Post("/product", inboundController.AddProduct)
	api.Post("/batch", inboundController.AddBatch)
	api.Post("/:id/upload", inboundController.UploadProductsFromExcel)
	api.Get("/product/:id", inboundController.GetProductItem)
	api.Put("/product/:id", inboundController.UpdateProductItem)
	api.Delete("/product/:id", inboundController.DeleteProductItem)
}
