package reportHandler

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Abhijit-without-h/ayush/internal/api/report"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
	"github.com/Abhijit-without-h/ayush/pkg/handlerUtil"
	"github.com/Abhijit-without-h/ayush/pkg/log"
)

func (h *ReportHandler) GetDraft(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	draft, err := h.reportService.GetDraft(c, clinicianID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_report_draft")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, report.MakeDraftResponse(draft))
	}
}

func (h *ReportHandler) UpdateDraft(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	var req report.UpdateDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	draft, err := h.reportService.UpdateDraft(c, clinicianID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_report_draft")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, report.MakeDraftResponse(draft))
	}
}

func (h *ReportHandler) DiscardDraft(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	if err := h.reportService.DiscardDraft(c, clinicianID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "discard_report_draft")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Draft discarded",
		})
	}
}

func (h *ReportHandler) ApplyCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	var req report.CommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id":   requestID,
		"clinician_id": clinicianID,
	}).Debug("Processing draft command request")

	draft, cmd, err := h.reportService.ApplyCommand(c, clinicianID, req.Text)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "apply_draft_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, report.CommandResponse{
			Draft:   report.MakeDraftResponse(draft),
			Command: cmd,
		})
	}
}

func (h *ReportHandler) Submit(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	draft, err := h.reportService.Submit(c, clinicianID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, report.MakeDraftResponse(draft))
	}
}

func (h *ReportHandler) Confirm(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	h.log.WithFields(log.Fields{
		"request_id":   requestID,
		"clinician_id": clinicianID,
	}).Debug("Processing report confirmation request")

	result, err := h.reportService.Confirm(c, clinicianID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "confirm_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ReportHandler) Cancel(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	draft, err := h.reportService.Cancel(c, clinicianID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "cancel_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, report.MakeDraftResponse(draft))
	}
}

func (h *ReportHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	clinicianID, err := h.middleware.GetClinicianID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Clinician identity required")
	}

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	archives, total, err := h.reportService.GetHistory(c, clinicianID, page, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_report_history")
	}

	responses := make([]report.ArchiveResponse, 0, len(archives))
	for _, archive := range archives {
		responses = append(responses, report.MakeArchiveResponse(archive))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"reports": responses,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}
