package patientService

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/api/patient"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	contextPkg "github.com/Abhijit-without-h/ayush/pkg/context"
)

func (s *patientService) GetDirectory(ctx context.Context) ([]entity.Patient, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.patientRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	patients, err := repo.Patients.GetAllPatients(ctx)
	if err != nil {
		return nil, err
	}

	return patients, nil
}

func (s *patientService) GetPatientByID(ctx context.Context, id string) (entity.Patient, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.patientRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Patient{}, err
	}

	return repo.Patients.GetPatientByID(ctx, id)
}

// FindByFullName performs the directory lookup the interpreter relies
// on: case-insensitive exact match against full names, directory order.
func (s *patientService) FindByFullName(ctx context.Context, fullName string) (entity.Patient, error) {
	patients, err := s.GetDirectory(ctx)
	if err != nil {
		return entity.Patient{}, err
	}

	for _, p := range patients {
		if strings.EqualFold(p.FullName, fullName) {
			return p, nil
		}
	}

	return entity.Patient{}, patient.ErrPatientNotFound
}
