package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Response envelope
   {success, msg, payload?}
=================================*/

func JsonOK(c *fiber.Ctx, msg string, payload any) error {
	return jsonSuccess(c, fiber.StatusOK, msg, payload)
}

func JsonCreated(c *fiber.Ctx, msg string, payload any) error {
	return jsonSuccess(c, fiber.StatusCreated, msg, payload)
}

// JsonMsg is for mutations that only report an outcome (update/delete).
func JsonMsg(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"msg":     msg,
	})
}

func jsonSuccess(c *fiber.Ctx, code int, msg string, payload any) error {
	body := fiber.Map{
		"success": true,
		"msg":     msg,
	}
	if payload != nil {
		body["payload"] = payload
	}
	return c.Status(code).JSON(body)
}

// JsonFieldErrors serializes the aggregated validator output. The msg key
// carries the whole field-error list, not a string.
func JsonFieldErrors(c *fiber.Ctx, errs []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"msg":     errs,
	})
}

// ErrorHandler is the app-level translator: every fiber.NewError thrown from a
// controller ends up here and becomes the {success:false, msg} envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"msg":     err.Error(),
	})
}
