package routes

import (
	"fiber-tracker/config"
	"fiber-tracker/controllers"
	"fiber-tracker/middleware"
	"fiber-tracker/repositories"
	"fiber-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOutboundRoutes(app *fiber.App, db *gorm.DB) {
	var mailer services.DispatchMailer
	if config.SMTPHost != "" {
		mailer = services.NewSMTPMailer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass, config.MailSender)
	}

	transfer := services.NewTransferService(
		repositories.NewTxRunner(db),
		repositories.NewTrackerRepository(db),
		mailer,
	)
	outboundController := controllers.NewOutboundController(db, transfer)
	auth := middleware.AuthMiddleware(repositories.NewSessionRepository(db))

	api := app.Group(config.MAIN_ROUTES+"/outbounds", auth)
	api.Post("/", outboundController.CreateOutbound)
	api.Get("/", outboundController.GetAllOutbounds)
	api.Get("/:id", outboundController.GetOutboundByID)
	api.Put("/:id", outboundController.UpdateOutbound)
	api.Delete("/:id", outboundController.DeleteOutbound)

	api.Post("/move", outboundController.MoveProduct)
	api.Post("/move/batch", outboundController.MoveBatch)
	api.Put("/product/:id", outboundController.UpdateOutboundProduct)
	api.Delete("/product/:id", outboundController.DeleteOutboundProduct)
}
