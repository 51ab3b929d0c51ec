package reportService

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Abhijit-without-h/ayush/internal/api/report"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/interpreter"
	"github.com/Abhijit-without-h/ayush/pkg/log"
	redisPkg "github.com/Abhijit-without-h/ayush/pkg/redis"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const draftDateLayout = "2006-01-02"

// loadDraft returns the stored draft or a fresh one with defaults when
// the clinician has none yet.
func (s *reportService) loadDraft(ctx context.Context, clinicianID string) (entity.ReportDraft, error) {
	payload, err := s.redis.GetDraft(ctx, clinicianID)
	if errors.Is(err, redisPkg.ErrNotFound) {
		return entity.NewReportDraft(clinicianID, s.nowFn()), nil
	}
	if err != nil {
		return entity.ReportDraft{}, err
	}

	var draft entity.ReportDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return entity.ReportDraft{}, err
	}

	return draft, nil
}

func (s *reportService) storeDraft(ctx context.Context, draft entity.ReportDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	return s.redis.SetDraft(ctx, draft.ClinicianID, payload)
}

func (s *reportService) GetDraft(ctx context.Context, clinicianID string) (entity.ReportDraft, error) {
	return s.loadDraft(ctx, clinicianID)
}

func (s *reportService) UpdateDraft(ctx context.Context, clinicianID string, req report.UpdateDraftRequest) (entity.ReportDraft, error) {
	draft, err := s.loadDraft(ctx, clinicianID)
	if err != nil {
		return entity.ReportDraft{}, err
	}

	if draft.Gate != entity.GateEditing {
		return entity.ReportDraft{}, report.ErrDraftLocked
	}

	if req.PatientRef != nil {
		draft.PatientRef = *req.PatientRef
	}
	if req.ReportType != nil {
		rt, ok := entity.ParseReportType(*req.ReportType)
		if !ok {
			return entity.ReportDraft{}, report.ErrInvalidReportType
		}
		draft.ReportType = rt
	}
	if req.PeriodStart != nil {
		start, err := time.Parse(draftDateLayout, *req.PeriodStart)
		if err != nil {
			return entity.ReportDraft{}, report.ErrInvalidPeriodDate
		}
		draft.PeriodStart = start
	}
	if req.PeriodEnd != nil {
		end, err := time.Parse(draftDateLayout, *req.PeriodEnd)
		if err != nil {
			return entity.ReportDraft{}, report.ErrInvalidPeriodDate
		}
		draft.PeriodEnd = end
	}
	if req.ChiefComplaint != nil {
		draft.ChiefComplaint = *req.ChiefComplaint
	}
	if req.Findings != nil {
		draft.Findings = *req.Findings
	}
	if req.Diagnosis != nil {
		draft.Diagnosis = *req.Diagnosis
	}
	if req.TreatmentPlan != nil {
		draft.TreatmentPlan = *req.TreatmentPlan
	}

	draft.UpdatedAt = s.nowFn()

	if err := s.storeDraft(ctx, draft); err != nil {
		return entity.ReportDraft{}, err
	}

	return draft, nil
}

func (s *reportService) DiscardDraft(ctx context.Context, clinicianID string) error {
	return s.redis.DeleteDraft(ctx, clinicianID)
}

// ApplyCommand routes one utterance through the interpreter and stores
// the resulting draft. Unrecognized text leaves the draft untouched but
// still reports the classification back.
func (s *reportService) ApplyCommand(ctx context.Context, clinicianID string, text string) (entity.ReportDraft, interpreter.Command, error) {
	draft, err := s.loadDraft(ctx, clinicianID)
	if err != nil {
		return entity.ReportDraft{}, interpreter.Command{}, err
	}

	if draft.Gate != entity.GateEditing {
		return entity.ReportDraft{}, interpreter.Command{}, report.ErrDraftLocked
	}

	directory, err := s.patientService.GetDirectory(ctx)
	if err != nil {
		return entity.ReportDraft{}, interpreter.Command{}, err
	}

	updated, cmd := s.interpreter.Apply(text, draft, directory)
	if cmd.Applied {
		updated.UpdatedAt = s.nowFn()
		if err := s.storeDraft(ctx, updated); err != nil {
			return entity.ReportDraft{}, interpreter.Command{}, err
		}
	}

	s.log.WithFields(log.Fields{
		"clinician_id": clinicianID,
		"intent":       cmd.Intent,
		"applied":      cmd.Applied,
	}).Debug("Voice command interpreted")

	return updated, cmd, nil
}
