package patientHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	patientService "github.com/Abhijit-without-h/ayush/internal/api/patient/service"
	"github.com/Abhijit-without-h/ayush/internal/middleware"
)

type PatientHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	patientService patientService.IPatientService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps patientService.IPatientService,
) *PatientHandler {
	return &PatientHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		patientService: ps,
	}
}

func (h *PatientHandler) Start(srv fiber.Router) {
	patients := srv.Group("/patients")

	patients.Get("/", h.GetDirectory)
	patients.Get("/:id", h.GetPatientByID)
}
