package controllers

import (
	"errors"

	"fiber-tracker/logger"
	"fiber-tracker/services"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError maps service errors onto HTTP responses. Domain
// errors carry their own message; transaction failures get a generic one
// and the cause is logged.
func respondServiceError(ctx *fiber.Ctx, err error) error {
	var (
		notFound        *services.NotFoundError
		alreadyAssigned *services.AlreadyAssignedError
		duplicateSerial *services.DuplicateSerialError
		invalidInput    *services.InvalidInputError
		txFailure       *services.TransactionError
	)

	switch {
	case errors.As(err, &notFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": notFound.Error(),
		})
	case errors.As(err, &alreadyAssigned), errors.As(err, &duplicateSerial),
		errors.As(err, &invalidInput), errors.Is(err, services.ErrAllDuplicates):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.As(err, &txFailure):
		logger.Log.Error().Err(txFailure.Cause).Msg("transaction failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Something went wrong, please try again",
		})
	default:
		logger.Log.Error().Err(err).Msg("unexpected error")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Something went wrong, please try again",
		})
	}
}
