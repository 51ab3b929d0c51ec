package patientService

import (
	"context"

	"github.com/sirupsen/logrus"

	patientRepository "github.com/Abhijit-without-h/ayush/internal/api/patient/repository"
	"github.com/Abhijit-without-h/ayush/internal/entity"
)

// IPatientService exposes the read-only patient directory. The report
// core consumes it as plain data.
type IPatientService interface {
	GetDirectory(ctx context.Context) ([]entity.Patient, error)
	GetPatientByID(ctx context.Context, id string) (entity.Patient, error)
	FindByFullName(ctx context.Context, fullName string) (entity.Patient, error)
}

type patientService struct {
	log         *logrus.Logger
	patientRepo patientRepository.Repository
}

func New(log *logrus.Logger, patientRepo patientRepository.Repository) IPatientService {
	return &patientService{
		log:         log,
		patientRepo: patientRepo,
	}
}
