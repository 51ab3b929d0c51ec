package interpreter

import (
	"github.com/Abhijit-without-h/ayush/internal/entity"
)

type Intent string

const (
	IntentSetPatient        Intent = "set_patient"
	IntentSetReportType     Intent = "set_report_type"
	IntentSetChiefComplaint Intent = "set_chief_complaint"
	IntentAppendFinding     Intent = "append_finding"
	IntentUnrecognized      Intent = "unrecognized"
)

// Command is the transient classification of one utterance. It is
// derived per call and never persisted.
type Command struct {
	RawText  string `json:"raw_text"`
	Intent   Intent `json:"intent"`
	Argument string `json:"argument,omitempty"`
	Applied  bool   `json:"applied"`
}

type IInterpreter interface {
	// Apply classifies text and returns the resulting draft. The input
	// draft is passed by value; on no match or invalid argument the
	// returned draft equals the input unchanged.
	Apply(text string, draft entity.ReportDraft, directory []entity.Patient) (entity.ReportDraft, Command)
}
