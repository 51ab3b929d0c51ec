package reportHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	reportService "github.com/Abhijit-without-h/ayush/internal/api/report/service"
	"github.com/Abhijit-without-h/ayush/internal/middleware"
)

type ReportHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		reportService: rs,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	rep := srv.Group("/report")

	rep.Get("/draft", h.GetDraft)
	rep.Put("/draft", h.UpdateDraft)
	rep.Delete("/draft", h.DiscardDraft)
	rep.Post("/draft/command", h.ApplyCommand)

	rep.Post("/submit", h.Submit)
	rep.Post("/confirm", h.Confirm)
	rep.Post("/cancel", h.Cancel)

	rep.Get("/history", h.GetHistory)
}
