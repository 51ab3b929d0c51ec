package recognitionHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	recognitionService "github.com/Abhijit-without-h/ayush/internal/api/recognition/service"
	"github.com/Abhijit-without-h/ayush/internal/middleware"
)

type RecognitionHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	sessionService recognitionService.ISessionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss recognitionService.ISessionService,
) *RecognitionHandler {
	return &RecognitionHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		sessionService: ss,
	}
}

func (h *RecognitionHandler) Start(srv fiber.Router) {
	rec := srv.Group("/recognition")

	rec.Post("/activate", h.Activate)
	rec.Get("/status", h.Status)

	rec.Get("/candidates", h.GetCandidateSets)
	rec.Post("/candidates", h.CreateCandidateSet)
	rec.Put("/candidates", h.UpdateCandidateSet)
}
