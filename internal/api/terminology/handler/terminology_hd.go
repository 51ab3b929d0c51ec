package terminologyHandler

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Abhijit-without-h/ayush/internal/api/terminology"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
	"github.com/Abhijit-without-h/ayush/pkg/handlerUtil"
	"github.com/Abhijit-without-h/ayush/pkg/log"
)

func (h *TerminologyHandler) Translate(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req terminology.TranslateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"code":       req.Code,
		"system":     req.System,
	}).Debug("Processing terminology translate request")

	result, err := h.terminologyService.Translate(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "translate_code")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *TerminologyHandler) Search(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	query := ctx.Query("q")
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	mappings, err := h.terminologyService.Search(c, query, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_mappings")
	}

	responses := make([]terminology.MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		responses = append(responses, terminology.MakeMappingResponse(m))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"mappings": responses,
			"total":    len(responses),
		})
	}
}

func (h *TerminologyHandler) Statistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	stats, err := h.terminologyService.Statistics(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "terminology_statistics")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, stats)
	}
}
