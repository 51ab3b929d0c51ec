package interpreter_test

import (
	"testing"
	"time"

	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/interpreter"
)

var directory = []entity.Patient{
	{ID: "PAT2024001", FullName: "Rajesh Kumar"},
	{ID: "PAT2024002", FullName: "Priya Sharma"},
	{ID: "PAT2024003", FullName: "Amit Patel"},
}

func newDraft() entity.ReportDraft {
	return entity.NewReportDraft("clin-1", time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
}

func TestSetPatient(t *testing.T) {
	itp := interpreter.New()

	tests := []struct {
		name        string
		text        string
		wantRef     string
		wantApplied bool
	}{
		{
			name:        "exact name",
			text:        "Set patient to Priya Sharma",
			wantRef:     "PAT2024002",
			wantApplied: true,
		},
		{
			name:        "case-insensitive prefix and name",
			text:        "SET PATIENT TO rajesh kumar",
			wantRef:     "PAT2024001",
			wantApplied: true,
		},
		{
			name:        "unknown name leaves draft unchanged",
			text:        "Set patient to Nobody Known",
			wantRef:     "",
			wantApplied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, cmd := itp.Apply(tt.text, newDraft(), directory)
			if cmd.Intent != interpreter.IntentSetPatient {
				t.Errorf("intent = %q, want %q", cmd.Intent, interpreter.IntentSetPatient)
			}
			if cmd.Applied != tt.wantApplied {
				t.Errorf("applied = %v, want %v", cmd.Applied, tt.wantApplied)
			}
			if draft.PatientRef != tt.wantRef {
				t.Errorf("patient ref = %q, want %q", draft.PatientRef, tt.wantRef)
			}
		})
	}
}

func TestSetReportType(t *testing.T) {
	itp := interpreter.New()

	tests := []struct {
		name        string
		text        string
		wantType    entity.ReportType
		wantApplied bool
	}{
		{
			name:        "lowercase argument is canonicalized",
			text:        "set report type to lab result analysis",
			wantType:    entity.ReportLabResultAnalysis,
			wantApplied: true,
		},
		{
			name:        "canonical argument",
			text:        "Set report type to Treatment Progress",
			wantType:    entity.ReportTreatmentProgress,
			wantApplied: true,
		},
		{
			name:        "unknown type keeps the default",
			text:        "Set report type to Quarterly Digest",
			wantType:    entity.ReportMonthlySummary,
			wantApplied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, cmd := itp.Apply(tt.text, newDraft(), directory)
			if cmd.Intent != interpreter.IntentSetReportType {
				t.Errorf("intent = %q, want %q", cmd.Intent, interpreter.IntentSetReportType)
			}
			if cmd.Applied != tt.wantApplied {
				t.Errorf("applied = %v, want %v", cmd.Applied, tt.wantApplied)
			}
			if draft.ReportType != tt.wantType {
				t.Errorf("report type = %q, want %q", draft.ReportType, tt.wantType)
			}
		})
	}
}

func TestChiefComplaint(t *testing.T) {
	itp := interpreter.New()

	draft, cmd := itp.Apply("Chief complaint is persistent headaches and fatigue", newDraft(), directory)
	if !cmd.Applied || cmd.Intent != interpreter.IntentSetChiefComplaint {
		t.Fatalf("command = %+v", cmd)
	}
	if draft.ChiefComplaint != "persistent headaches and fatigue" {
		t.Errorf("chief complaint = %q", draft.ChiefComplaint)
	}

	// A later command replaces, never appends.
	draft, _ = itp.Apply("chief complaint is recurring joint pain", draft, directory)
	if draft.ChiefComplaint != "recurring joint pain" {
		t.Errorf("chief complaint after replace = %q", draft.ChiefComplaint)
	}
}

func TestAppendFindings(t *testing.T) {
	itp := interpreter.New()

	draft := newDraft()
	draft, _ = itp.Apply("Add to findings Patient shows positive response to Panchakarma therapy.", draft, directory)
	draft, cmd := itp.Apply("add to findings Sleep quality improved.", draft, directory)

	if !cmd.Applied || cmd.Intent != interpreter.IntentAppendFinding {
		t.Fatalf("command = %+v", cmd)
	}

	want := "- Patient shows positive response to Panchakarma therapy.\n- Sleep quality improved."
	if draft.Findings != want {
		t.Errorf("findings = %q, want %q", draft.Findings, want)
	}
}

func TestAppendFindingsKeepsDuplicates(t *testing.T) {
	itp := interpreter.New()

	draft := newDraft()
	draft, _ = itp.Apply("Add to findings BP stable.", draft, directory)
	draft, _ = itp.Apply("Add to findings BP stable.", draft, directory)

	want := "- BP stable.\n- BP stable."
	if draft.Findings != want {
		t.Errorf("findings = %q, want %q", draft.Findings, want)
	}
}

func TestUnrecognizedTextLeavesDraftUntouched(t *testing.T) {
	itp := interpreter.New()

	original := newDraft()
	original.ChiefComplaint = "headaches"

	tests := []string{
		"open the patient directory",
		"set patient Rajesh Kumar",
		"",
		"   ",
	}

	for _, text := range tests {
		draft, cmd := itp.Apply(text, original, directory)
		if cmd.Intent != interpreter.IntentUnrecognized {
			t.Errorf("Apply(%q) intent = %q, want unrecognized", text, cmd.Intent)
		}
		if cmd.Applied {
			t.Errorf("Apply(%q) applied = true", text)
		}
		if draft != original {
			t.Errorf("Apply(%q) modified the draft", text)
		}
	}
}

func TestEmptyArgumentDoesNotApply(t *testing.T) {
	itp := interpreter.New()

	draft, cmd := itp.Apply("Chief complaint is   ", newDraft(), directory)
	if cmd.Applied {
		t.Error("empty chief complaint argument was applied")
	}
	if draft.ChiefComplaint != "" {
		t.Errorf("chief complaint = %q, want empty", draft.ChiefComplaint)
	}

	_, cmd = itp.Apply("Add to findings ", newDraft(), directory)
	if cmd.Applied {
		t.Error("empty finding argument was applied")
	}
}
