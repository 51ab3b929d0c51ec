package patientHandler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Abhijit-without-h/ayush/internal/api/patient"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
	"github.com/Abhijit-without-h/ayush/pkg/handlerUtil"
	"github.com/Abhijit-without-h/ayush/pkg/log"
)

func (h *PatientHandler) GetDirectory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get patient directory request")

	patients, err := h.patientService.GetDirectory(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_patient_directory")
	}

	responses := make([]patient.PatientResponse, 0, len(patients))
	for _, p := range patients {
		responses = append(responses, patient.MakePatientResponse(p))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"patients": responses,
			"total":    len(responses),
		})
	}
}

func (h *PatientHandler) GetPatientByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("patient id is required"), ctx.Path())
	}

	p, err := h.patientService.GetPatientByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_patient_by_id")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, patient.MakePatientResponse(p))
	}
}
