package report

import (
	"time"

	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/interpreter"
)

const dateLayout = "2006-01-02"

// UpdateDraftRequest carries manual edits. Nil fields are left as they
// are; dates use the 2006-01-02 layout.
type UpdateDraftRequest struct {
	PatientRef     *string `json:"patient_ref"`
	ReportType     *string `json:"report_type"`
	PeriodStart    *string `json:"period_start"`
	PeriodEnd      *string `json:"period_end"`
	ChiefComplaint *string `json:"chief_complaint"`
	Findings       *string `json:"findings"`
	Diagnosis      *string `json:"diagnosis"`
	TreatmentPlan  *string `json:"treatment_plan"`
}

type CommandRequest struct {
	Text string `json:"text" validate:"required"`
}

type DraftResponse struct {
	PatientRef     string `json:"patient_ref"`
	ReportType     string `json:"report_type"`
	PeriodStart    string `json:"period_start"`
	PeriodEnd      string `json:"period_end"`
	ChiefComplaint string `json:"chief_complaint"`
	Findings       string `json:"findings"`
	Diagnosis      string `json:"diagnosis"`
	TreatmentPlan  string `json:"treatment_plan"`
	Gate           string `json:"gate"`
	UpdatedAt      string `json:"updated_at"`
}

type CommandResponse struct {
	Draft   DraftResponse       `json:"draft"`
	Command interpreter.Command `json:"command"`
}

// AssembleResponse describes one confirmed, rendered and stored report.
type AssembleResponse struct {
	ArchiveID   string `json:"archive_id"`
	Filename    string `json:"filename"`
	PageCount   int    `json:"page_count"`
	DocumentURL string `json:"document_url"`
	GeneratedAt string `json:"generated_at"`
}

type ArchiveResponse struct {
	ID          string `json:"id"`
	PatientRef  string `json:"patient_ref"`
	PatientName string `json:"patient_name"`
	ReportType  string `json:"report_type"`
	Filename    string `json:"filename"`
	PageCount   int    `json:"page_count"`
	DocumentURL string `json:"document_url"`
	GeneratedAt string `json:"generated_at"`
}

func MakeDraftResponse(d entity.ReportDraft) DraftResponse {
	return DraftResponse{
		PatientRef:     d.PatientRef,
		ReportType:     string(d.ReportType),
		PeriodStart:    d.PeriodStart.Format(dateLayout),
		PeriodEnd:      d.PeriodEnd.Format(dateLayout),
		ChiefComplaint: d.ChiefComplaint,
		Findings:       d.Findings,
		Diagnosis:      d.Diagnosis,
		TreatmentPlan:  d.TreatmentPlan,
		Gate:           string(d.Gate),
		UpdatedAt:      d.UpdatedAt.Format(time.RFC3339),
	}
}

func MakeArchiveResponse(a entity.ReportArchive) ArchiveResponse {
	return ArchiveResponse{
		ID:          a.ID,
		PatientRef:  a.PatientRef,
		PatientName: a.PatientName,
		ReportType:  string(a.ReportType),
		Filename:    a.Filename,
		PageCount:   a.PageCount,
		DocumentURL: a.DocumentURL,
		GeneratedAt: a.GeneratedAt.Format(time.RFC3339),
	}
}
