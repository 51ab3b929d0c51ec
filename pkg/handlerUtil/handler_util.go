package handlerUtil

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/api/patient"
	"github.com/Abhijit-without-h/ayush/internal/api/recognition"
	"github.com/Abhijit-without-h/ayush/internal/api/report"
	"github.com/Abhijit-without-h/ayush/internal/api/terminology"
	"github.com/Abhijit-without-h/ayush/pkg/log"
	"github.com/Abhijit-without-h/ayush/pkg/response"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Patient domain errors
	if errors.Is(err, patient.ErrPatientNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Patient not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Patient not found",
			"code":  "PATIENT_NOT_FOUND",
		})
	}

	// Report domain errors
	if errors.Is(err, report.ErrDraftLocked) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Draft locked for confirmation")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Draft is awaiting confirmation. Confirm or cancel before editing.",
			"code":  "DRAFT_LOCKED",
		})
	}

	if errors.Is(err, report.ErrNotAwaitingConfirmation) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No report awaiting confirmation")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "No report is awaiting confirmation",
			"code":  "NOT_AWAITING_CONFIRMATION",
		})
	}

	if errors.Is(err, report.ErrInvalidReportType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid report type")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Unknown report type",
			"code":  "INVALID_REPORT_TYPE",
		})
	}

	// Recognition domain errors
	if errors.Is(err, recognition.ErrCandidateSetNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Candidate set not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate set not found",
			"code":  "CANDIDATE_SET_NOT_FOUND",
		})
	}

	// Terminology domain errors
	if errors.Is(err, terminology.ErrMappingNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Code mapping not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No mapping found for the given code",
			"code":  "MAPPING_NOT_FOUND",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

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

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
