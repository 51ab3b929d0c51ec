package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/response"
)

var ErrUnrenderable = response.NewError(500, "draft contains unrenderable content")

type LineKind int

const (
	KindTitle LineKind = iota
	KindMeta
	KindRule
	KindTableHead
	KindTableRow
	KindPlaceholder
	KindSectionTitle
	KindBody
	KindSpacer
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Line struct {
	Kind  LineKind
	Text  string
	Cells []string
	Align Align
}

// Page holds laid-out content lines. Footer stays empty until the
// second pass, once the total page count is known.
type Page struct {
	Lines  []Line
	Footer []Line
}

type Document struct {
	Pages       []Page
	Filename    string
	GeneratedAt time.Time
}

const (
	documentTitle         = "AyushCare Clinical Report"
	noPatientPlaceholder  = "No patient selected for this report."
	confidentialityNotice = "This document is confidential and intended solely for the treating clinician."
	filenamePlaceholder   = "Unknown_Patient"

	dateLayout = "02 Jan 2006"

	// Wrap budget for body text at the renderer's body font size.
	bodyWidthChars = 92

	// Content budget per page, in line-cost units. Footers live below
	// this budget at a fixed offset from the bottom margin.
	pageLineBudget = 46
)

var sectionTitles = []string{
	"Report Period",
	"Chief Complaint",
	"Clinical Findings/Observations",
	"Diagnosis",
	"Treatment Plan",
}

type Assembler struct {
	now func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{now: time.Now}
}

// Assemble runs the deterministic two-pass layout: pass one fills page
// buffers top to bottom with automatic page breaks, pass two stamps
// "Page i of N" footers once N is final. patient may be nil when the
// draft's patient reference never resolved.
func (a *Assembler) Assemble(draft entity.ReportDraft, patient *entity.Patient) (*Document, error) {
	if _, ok := entity.ParseReportType(string(draft.ReportType)); !ok {
		return nil, ErrUnrenderable
	}
	if draft.PeriodStart.IsZero() || draft.PeriodEnd.IsZero() {
		return nil, ErrUnrenderable
	}

	generatedAt := a.now()

	doc := &Document{
		Filename:    Filename(patient),
		GeneratedAt: generatedAt,
	}

	p := newPaginator(doc)

	// Fixed header.
	p.add(Line{Kind: KindTitle, Text: documentTitle, Align: AlignCenter})
	p.add(Line{Kind: KindMeta, Text: "Generated: " + generatedAt.Format(dateLayout), Align: AlignRight})
	p.add(Line{Kind: KindMeta, Text: "Report Type: " + string(draft.ReportType), Align: AlignLeft})
	p.add(Line{Kind: KindRule})

	// Patient block.
	if patient != nil {
		p.add(Line{Kind: KindTableHead, Cells: []string{"Patient ID", "Name", "Diagnosis", "NAMASTE Code"}})
		p.add(Line{Kind: KindTableRow, Cells: []string{
			patient.ID,
			patient.FullName,
			fmt.Sprintf("%s (%s)", patient.Diagnosis, patient.TraditionalDiagnosis),
			patient.NamasteCode,
		}})
	} else {
		p.add(Line{Kind: KindPlaceholder, Text: noPatientPlaceholder})
	}
	p.add(Line{Kind: KindSpacer})

	// Variable sections, fixed order, empty ones omitted entirely.
	for _, s := range a.sections(draft) {
		if s.body == "" {
			continue
		}
		p.add(Line{Kind: KindSectionTitle, Text: s.title})
		for _, paragraph := range strings.Split(s.body, "\n") {
			for _, wrapped := range wrapText(paragraph, bodyWidthChars) {
				p.add(Line{Kind: KindBody, Text: wrapped})
			}
		}
		p.add(Line{Kind: KindSpacer})
	}

	p.flush()

	a.stampFooters(doc)

	return doc, nil
}

type section struct {
	title string
	body  string
}

func (a *Assembler) sections(draft entity.ReportDraft) []section {
	period := fmt.Sprintf("%s to %s",
		draft.PeriodStart.Format(dateLayout),
		draft.PeriodEnd.Format(dateLayout))

	return []section{
		{title: sectionTitles[0], body: period},
		{title: sectionTitles[1], body: draft.ChiefComplaint},
		{title: sectionTitles[2], body: draft.Findings},
		{title: sectionTitles[3], body: draft.Diagnosis},
		{title: sectionTitles[4], body: draft.TreatmentPlan},
	}
}

func (a *Assembler) stampFooters(doc *Document) {
	total := len(doc.Pages)
	for i := range doc.Pages {
		doc.Pages[i].Footer = []Line{
			{Kind: KindRule},
			{Kind: KindMeta, Text: fmt.Sprintf("Page %d of %d", i+1, total), Align: AlignCenter},
			{Kind: KindMeta, Text: confidentialityNotice, Align: AlignCenter},
		}
	}
}

// Filename substitutes underscores for spaces in the patient's name, or
// falls back to a placeholder token when no patient resolved.
func Filename(patient *entity.Patient) string {
	name := filenamePlaceholder
	if patient != nil {
		name = strings.ReplaceAll(patient.FullName, " ", "_")
	}
	return "Medical_Report_" + name + ".pdf"
}

// paginator accumulates lines into the current page and breaks to a new
// page when the line budget would overflow.
type paginator struct {
	doc     *Document
	current Page
	used    int
}

func newPaginator(doc *Document) *paginator {
	return &paginator{doc: doc}
}

func lineCost(kind LineKind) int {
	switch kind {
	case KindTitle, KindSectionTitle:
		return 2
	default:
		return 1
	}
}

func (p *paginator) add(line Line) {
	cost := lineCost(line.Kind)
	if p.used+cost > pageLineBudget {
		p.breakPage()
	}

	// A trailing spacer at the top of a fresh page is dead space.
	if line.Kind == KindSpacer && p.used == 0 {
		return
	}

	p.current.Lines = append(p.current.Lines, line)
	p.used += cost
}

func (p *paginator) breakPage() {
	p.doc.Pages = append(p.doc.Pages, p.current)
	p.current = Page{}
	p.used = 0
}

func (p *paginator) flush() {
	if len(p.current.Lines) > 0 || len(p.doc.Pages) == 0 {
		p.doc.Pages = append(p.doc.Pages, p.current)
	}
}

// wrapText word-wraps a single paragraph to the given rune budget,
// hard-splitting words that exceed a full line on their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current string

	for _, word := range words {
		for len([]rune(word)) > width {
			runes := []rune(word)
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}

		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
