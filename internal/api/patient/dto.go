package patient

import (
	"time"

	"github.com/Abhijit-without-h/ayush/internal/entity"
)

type PatientResponse struct {
	ID                   string               `json:"id"`
	FullName             string               `json:"full_name"`
	Diagnosis            string               `json:"diagnosis"`
	TraditionalDiagnosis string               `json:"traditional_diagnosis"`
	TreatmentType        entity.TreatmentType `json:"treatment_type"`
	NamasteCode          string               `json:"namaste_code"`
	Status               entity.PatientStatus `json:"status"`
	Progress             int                  `json:"progress"`
	LastVisit            time.Time            `json:"last_visit"`
	AvatarURL            string               `json:"avatar_url"`
}

func MakePatientResponse(p entity.Patient) PatientResponse {
	return PatientResponse{
		ID:                   p.ID,
		FullName:             p.FullName,
		Diagnosis:            p.Diagnosis,
		TraditionalDiagnosis: p.TraditionalDiagnosis,
		TreatmentType:        p.TreatmentType,
		NamasteCode:          p.NamasteCode,
		Status:               p.Status,
		Progress:             p.Progress,
		LastVisit:            p.LastVisit,
		AvatarURL:            p.AvatarURL,
	}
}
