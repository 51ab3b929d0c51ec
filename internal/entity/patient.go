package entity

import "time"

type TreatmentType string

const (
	TreatmentPanchakarma  TreatmentType = "Panchakarma"
	TreatmentShamana      TreatmentType = "Shamana"
	TreatmentRasayana     TreatmentType = "Rasayana"
	TreatmentYogaTherapy  TreatmentType = "Yoga Therapy"
	TreatmentConsultation TreatmentType = "Consultation"
)

type PatientStatus string

const (
	PatientStatusActive    PatientStatus = "Active"
	PatientStatusFollowUp  PatientStatus = "Follow-up"
	PatientStatusRecovered PatientStatus = "Recovered"
	PatientStatusInactive  PatientStatus = "Inactive"
)

// Patient is a directory record. The reporting core only reads it.
type Patient struct {
	ID                   string        `json:"id"`
	FullName             string        `json:"full_name"`
	Diagnosis            string        `json:"diagnosis"`
	TraditionalDiagnosis string        `json:"traditional_diagnosis"`
	TreatmentType        TreatmentType `json:"treatment_type"`
	NamasteCode          string        `json:"namaste_code"`
	Status               PatientStatus `json:"status"`
	Progress             int           `json:"progress"`
	LastVisit            time.Time     `json:"last_visit"`
	AvatarURL            string        `json:"avatar_url"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
