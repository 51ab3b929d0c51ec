package entity

import (
	"strings"
	"time"
)

type ReportType string

const (
	ReportMonthlySummary    ReportType = "Monthly Summary"
	ReportLabResultAnalysis ReportType = "Lab Result Analysis"
	ReportTreatmentProgress ReportType = "Treatment Progress"
)

// ParseReportType resolves s against the closed report type set,
// case-insensitively, returning the canonical value.
func ParseReportType(s string) (ReportType, bool) {
	for _, rt := range []ReportType{ReportMonthlySummary, ReportLabResultAnalysis, ReportTreatmentProgress} {
		if strings.EqualFold(s, string(rt)) {
			return rt, true
		}
	}
	return "", false
}

type GateState string

const (
	GateEditing              GateState = "editing"
	GateAwaitingConfirmation GateState = "awaiting_confirmation"
)

// ReportDraft is the in-progress structured report. It is always
// replaced as a whole value, never mutated field by field in place.
type ReportDraft struct {
	ClinicianID    string     `json:"clinician_id"`
	PatientRef     string     `json:"patient_ref"`
	ReportType     ReportType `json:"report_type"`
	PeriodStart    time.Time  `json:"period_start"`
	PeriodEnd      time.Time  `json:"period_end"`
	ChiefComplaint string     `json:"chief_complaint"`
	Findings       string     `json:"findings"`
	Diagnosis      string     `json:"diagnosis"`
	TreatmentPlan  string     `json:"treatment_plan"`
	Gate           GateState  `json:"gate"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewReportDraft returns an empty draft with defaults: report type
// Monthly Summary, period start and end both set to the current date.
func NewReportDraft(clinicianID string, now time.Time) ReportDraft {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return ReportDraft{
		ClinicianID: clinicianID,
		ReportType:  ReportMonthlySummary,
		PeriodStart: today,
		PeriodEnd:   today,
		Gate:        GateEditing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AppendFinding adds one bullet line. Findings are additive and are
// never deduplicated.
func (d ReportDraft) AppendFinding(text string) ReportDraft {
	if d.Findings == "" {
		d.Findings = "- " + text
	} else {
		d.Findings += "\n- " + text
	}
	return d
}

// ReportArchive records one confirmed assembly.
type ReportArchive struct {
	ID          string     `json:"id"`
	ClinicianID string     `json:"clinician_id"`
	PatientRef  string     `json:"patient_ref"`
	PatientName string     `json:"patient_name"`
	ReportType  ReportType `json:"report_type"`
	Filename    string     `json:"filename"`
	PageCount   int        `json:"page_count"`
	DocumentURL string     `json:"document_url"`
	GeneratedAt time.Time  `json:"generated_at"`
}
