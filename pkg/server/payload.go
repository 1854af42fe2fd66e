package server

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/pkg/cerror"
)

var validate = validator.New()

// ParseBody decodes the request body into payload and validates its struct
// tags. A body that is not valid JSON is a 400; a payload failing validation
// is a 422.
func ParseBody(ctx *fiber.Ctx, payload interface{}) error {
	err := ctx.BodyParser(payload)
	if err != nil {
		return cerror.BadRequest("malformed request body").Wrap(err)
	}

	return ValidatePayload(payload)
}

func ValidatePayload(payload interface{}) error {
	err := validate.Struct(payload)
	if err != nil {
		return cerror.UnprocessableEntity(
			err.Error(),
			zap.String("validationError", err.Error()),
		)
	}

	return nil
}
