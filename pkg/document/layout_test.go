package document_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/document"
)

var testPatient = entity.Patient{
	ID:                   "PAT2024002",
	FullName:             "Priya Sharma",
	Diagnosis:            "Iron Deficiency Anemia",
	TraditionalDiagnosis: "Pandu Roga",
	NamasteCode:          "NAM-AYU-1103",
}

func baseDraft() entity.ReportDraft {
	draft := entity.NewReportDraft("clin-1", time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	draft.PeriodStart = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	draft.PeriodEnd = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	return draft
}

func sectionTitles(doc *document.Document) []string {
	var titles []string
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			if line.Kind == document.KindSectionTitle {
				titles = append(titles, line.Text)
			}
		}
	}
	return titles
}

func allText(doc *document.Document) string {
	var b strings.Builder
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			b.WriteString(line.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func TestAssembleOmitsEmptySections(t *testing.T) {
	draft := baseDraft()
	draft.ChiefComplaint = "Fatigue and pallor"

	doc, err := document.NewAssembler().Assemble(draft, &testPatient)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	got := sectionTitles(doc)
	want := []string{"Report Period", "Chief Complaint"}
	if len(got) != len(want) {
		t.Fatalf("section titles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAssembleRendersPeriodEvenWhenDraftIsEmpty(t *testing.T) {
	doc, err := document.NewAssembler().Assemble(baseDraft(), nil)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	got := sectionTitles(doc)
	if len(got) != 1 || got[0] != "Report Period" {
		t.Fatalf("section titles = %v, want only Report Period", got)
	}

	if !strings.Contains(allText(doc), "01 Aug 2026 to 28 Aug 2026") {
		t.Error("period body missing or not in the 02 Jan 2006 layout")
	}
}

func TestAssemblePatientBlock(t *testing.T) {
	doc, err := document.NewAssembler().Assemble(baseDraft(), &testPatient)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	var row []string
	for _, line := range doc.Pages[0].Lines {
		if line.Kind == document.KindTableRow {
			row = line.Cells
		}
	}
	if row == nil {
		t.Fatal("no patient table row laid out")
	}
	if row[0] != "PAT2024002" || row[1] != "Priya Sharma" {
		t.Errorf("table row = %v", row)
	}
	if row[2] != "Iron Deficiency Anemia (Pandu Roga)" {
		t.Errorf("diagnosis cell = %q", row[2])
	}

	if strings.Contains(allText(doc), "No patient selected") {
		t.Error("placeholder rendered despite a resolved patient")
	}
}

func TestAssembleMonthlySummaryWithFindings(t *testing.T) {
	draft := baseDraft()
	draft.PatientRef = testPatient.ID
	draft.ChiefComplaint = "persistent headaches"
	draft.Findings = "- Patient shows positive response to Panchakarma therapy."

	doc, err := document.NewAssembler().Assemble(draft, &testPatient)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	got := sectionTitles(doc)
	want := []string{"Report Period", "Chief Complaint", "Clinical Findings/Observations"}
	if len(got) != len(want) {
		t.Fatalf("section titles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, got[i], want[i])
		}
	}

	var row []string
	for _, line := range doc.Pages[0].Lines {
		if line.Kind == document.KindTableRow {
			row = line.Cells
		}
	}
	if row == nil || row[0] != "PAT2024002" {
		t.Errorf("patient table row = %v, want identifier PAT2024002", row)
	}
	if !strings.Contains(allText(doc), "- Patient shows positive response to Panchakarma therapy.") {
		t.Error("findings bullet missing from the body")
	}
	if doc.Filename != "Medical_Report_Priya_Sharma.pdf" {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestAssemblePlaceholderWithoutPatient(t *testing.T) {
	doc, err := document.NewAssembler().Assemble(baseDraft(), nil)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	if !strings.Contains(allText(doc), "No patient selected for this report.") {
		t.Error("missing placeholder line for unresolved patient")
	}
	if doc.Filename != "Medical_Report_Unknown_Patient.pdf" {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestAssemblePaginationAndFooters(t *testing.T) {
	draft := baseDraft()
	for i := 0; i < 120; i++ {
		draft = draft.AppendFinding(fmt.Sprintf("Observation %d recorded during follow-up.", i+1))
	}

	doc, err := document.NewAssembler().Assemble(draft, &testPatient)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	if len(doc.Pages) < 3 {
		t.Fatalf("pages = %d, want at least 3", len(doc.Pages))
	}

	total := len(doc.Pages)
	for i, page := range doc.Pages {
		var footerText []string
		for _, line := range page.Footer {
			if line.Text != "" {
				footerText = append(footerText, line.Text)
			}
		}
		wantNumber := fmt.Sprintf("Page %d of %d", i+1, total)
		if len(footerText) != 2 || footerText[0] != wantNumber {
			t.Errorf("page %d footer = %v, want number %q plus notice", i+1, footerText, wantNumber)
		}
		if len(footerText) == 2 && !strings.Contains(footerText[1], "confidential") {
			t.Errorf("page %d footer notice = %q", i+1, footerText[1])
		}
	}

	// Findings are additive, so every bullet must survive pagination.
	text := allText(doc)
	for i := 0; i < 120; i++ {
		needle := fmt.Sprintf("Observation %d recorded", i+1)
		if !strings.Contains(text, needle) {
			t.Fatalf("finding %d missing from laid-out document", i+1)
		}
	}
}

func TestAssembleRejectsUnrenderableDrafts(t *testing.T) {
	assembler := document.NewAssembler()

	bad := baseDraft()
	bad.ReportType = "Quarterly Digest"
	if _, err := assembler.Assemble(bad, nil); err != document.ErrUnrenderable {
		t.Errorf("bad report type error = %v, want ErrUnrenderable", err)
	}

	noPeriod := baseDraft()
	noPeriod.PeriodStart = time.Time{}
	if _, err := assembler.Assemble(noPeriod, nil); err != document.ErrUnrenderable {
		t.Errorf("zero period error = %v, want ErrUnrenderable", err)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		patient *entity.Patient
		want    string
	}{
		{
			name:    "spaces become underscores",
			patient: &entity.Patient{FullName: "Rajesh Kumar"},
			want:    "Medical_Report_Rajesh_Kumar.pdf",
		},
		{
			name:    "three part name",
			patient: &entity.Patient{FullName: "Anita Devi Sharma"},
			want:    "Medical_Report_Anita_Devi_Sharma.pdf",
		},
		{
			name:    "nil patient",
			patient: nil,
			want:    "Medical_Report_Unknown_Patient.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := document.Filename(tt.patient); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleHeader(t *testing.T) {
	doc, err := document.NewAssembler().Assemble(baseDraft(), &testPatient)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	lines := doc.Pages[0].Lines
	if lines[0].Kind != document.KindTitle || lines[0].Text != "AyushCare Clinical Report" {
		t.Errorf("first line = %+v", lines[0])
	}
	if !strings.HasPrefix(lines[1].Text, "Generated: ") {
		t.Errorf("second line = %q, want Generated prefix", lines[1].Text)
	}
	if lines[2].Text != "Report Type: Monthly Summary" {
		t.Errorf("third line = %q", lines[2].Text)
	}
}
