package terminologyHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	terminologyService "github.com/Abhijit-without-h/ayush/internal/api/terminology/service"
	"github.com/Abhijit-without-h/ayush/internal/middleware"
)

type TerminologyHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	terminologyService terminologyService.ITerminologyService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ts terminologyService.ITerminologyService,
) *TerminologyHandler {
	return &TerminologyHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		terminologyService: ts,
	}
}

func (h *TerminologyHandler) Start(srv fiber.Router) {
	term := srv.Group("/terminology")

	term.Post("/translate", h.Translate)
	term.Get("/search", h.Search)
	term.Get("/statistics", h.Statistics)
}
