package handlerUtil

import (
	"errors"

	"GarmentGolang/internal/api/measurement"
	"GarmentGolang/pkg/gemini"
	"GarmentGolang/pkg/log"
	"GarmentGolang/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle maps domain errors onto HTTP responses. Credential problems carry
// a distinct code so the client can open its reconfiguration flow instead
// of blindly retrying.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	if errors.Is(err, gemini.ErrMissingAPIKey) {
		h.logger.WithFields(fields).Error("Gemini credential is not configured")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Vision model credential is not configured",
			"code":  "MISSING_CREDENTIAL",
		})
	}

	var upstreamErr *gemini.UpstreamError
	if errors.As(err, &upstreamErr) {
		fields["reason"] = string(upstreamErr.Reason)
		h.logger.WithFields(fields).Error("Vision model call failed")

		code := "UPSTREAM_FAILURE"
		if upstreamErr.CredentialRelated() {
			code = "CREDENTIAL_REJECTED"
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  "Vision model call failed",
			"code":   code,
			"reason": string(upstreamErr.Reason),
		})
	}

	if errors.Is(err, measurement.ErrMalformedResponse) {
		h.logger.WithFields(fields).Warn("Model response could not be parsed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Model response did not contain a valid measurement result",
			"code":  "MODEL_RESPONSE_INVALID",
		})
	}

	if errors.Is(err, measurement.ErrInvalidImagePayload) {
		h.logger.WithFields(fields).Warn("Invalid image payload")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image payload could not be decoded",
			"code":  "INVALID_IMAGE",
		})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
