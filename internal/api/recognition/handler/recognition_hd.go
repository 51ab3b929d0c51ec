package recognitionHandler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Abhijit-without-h/ayush/internal/api/recognition"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
	"github.com/Abhijit-without-h/ayush/pkg/handlerUtil"
	"github.com/Abhijit-without-h/ayush/pkg/log"
)

func (h *RecognitionHandler) Activate(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	var req recognition.ActivateRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	}

	h.log.WithFields(log.Fields{
		"request_id":   requestID,
		"clinician_id": clinicianID,
		"context":      req.Context,
	}).Debug("Processing recognition activate request")

	session, notice, err := h.sessionService.Activate(c, clinicianID, req.Context)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "activate_recognition")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recognition.MakeStatusResponse(session, notice))
	}
}

func (h *RecognitionHandler) Status(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	session, notice, err := h.sessionService.Status(c, clinicianID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "recognition_status")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recognition.MakeStatusResponse(session, notice))
	}
}

func (h *RecognitionHandler) GetCandidateSets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	sets, err := h.sessionService.GetCandidateSets(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_candidate_sets")
	}

	responses := make([]recognition.CandidateSetResponse, 0, len(sets))
	for _, set := range sets {
		responses = append(responses, recognition.MakeCandidateSetResponse(set))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"candidate_sets": responses,
			"total":          len(responses),
		})
	}
}

func (h *RecognitionHandler) CreateCandidateSet(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req recognition.CandidateSetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	set, err := h.sessionService.CreateCandidateSet(c, req.Context, req.Phrases)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_candidate_set")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, recognition.MakeCandidateSetResponse(set))
	}
}

func (h *RecognitionHandler) UpdateCandidateSet(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req recognition.CandidateSetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	set, err := h.sessionService.UpdateCandidateSet(c, req.Context, req.Phrases)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_candidate_set")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recognition.MakeCandidateSetResponse(set))
	}
}
