package interpreter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Abhijit-without-h/ayush/internal/entity"
)

// rule is one (prefix, applier) pair. Rules are evaluated in order and
// the first matching prefix wins, whether or not its argument applies.
type rule struct {
	prefix string
	intent Intent
	apply  func(arg string, draft entity.ReportDraft, directory []entity.Patient) (entity.ReportDraft, bool)
}

type commandInterpreter struct {
	rules []rule
	title cases.Caser
}

func New() IInterpreter {
	ci := &commandInterpreter{
		title: cases.Title(language.English),
	}

	ci.rules = []rule{
		{prefix: "set patient to ", intent: IntentSetPatient, apply: ci.applySetPatient},
		{prefix: "set report type to ", intent: IntentSetReportType, apply: ci.applySetReportType},
		{prefix: "chief complaint is ", intent: IntentSetChiefComplaint, apply: ci.applyChiefComplaint},
		{prefix: "add to findings ", intent: IntentAppendFinding, apply: ci.applyAppendFinding},
	}

	return ci
}

func (ci *commandInterpreter) Apply(text string, draft entity.ReportDraft, directory []entity.Patient) (entity.ReportDraft, Command) {
	trimmed := strings.TrimSpace(text)
	lowered := strings.ToLower(trimmed)

	for _, r := range ci.rules {
		if !strings.HasPrefix(lowered, r.prefix) {
			continue
		}

		arg := strings.TrimSpace(trimmed[len(r.prefix):])
		next, applied := r.apply(arg, draft, directory)
		return next, Command{
			RawText:  text,
			Intent:   r.intent,
			Argument: arg,
			Applied:  applied,
		}
	}

	return draft, Command{RawText: text, Intent: IntentUnrecognized}
}

func (ci *commandInterpreter) applySetPatient(arg string, draft entity.ReportDraft, directory []entity.Patient) (entity.ReportDraft, bool) {
	for _, p := range directory {
		if strings.EqualFold(p.FullName, arg) {
			draft.PatientRef = p.ID
			return draft, true
		}
	}
	return draft, false
}

func (ci *commandInterpreter) applySetReportType(arg string, draft entity.ReportDraft, _ []entity.Patient) (entity.ReportDraft, bool) {
	titled := ci.title.String(strings.ToLower(arg))
	rt, ok := entity.ParseReportType(titled)
	if !ok {
		return draft, false
	}
	draft.ReportType = rt
	return draft, true
}

func (ci *commandInterpreter) applyChiefComplaint(arg string, draft entity.ReportDraft, _ []entity.Patient) (entity.ReportDraft, bool) {
	if arg == "" {
		return draft, false
	}
	draft.ChiefComplaint = arg
	return draft, true
}

func (ci *commandInterpreter) applyAppendFinding(arg string, draft entity.ReportDraft, _ []entity.Patient) (entity.ReportDraft, bool) {
	if arg == "" {
		return draft, false
	}
	return draft.AppendFinding(arg), true
}
