package reportService

import (
	"context"
	"errors"
	"time"

	"github.com/Abhijit-without-h/ayush/internal/api/patient"
	"github.com/Abhijit-without-h/ayush/internal/api/report"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/log"
)

// Submit locks the draft for review. Nothing is rendered yet; the draft
// only becomes a document once the clinician confirms.
func (s *reportService) Submit(ctx context.Context, clinicianID string) (entity.ReportDraft, error) {
	draft, err := s.loadDraft(ctx, clinicianID)
	if err != nil {
		return entity.ReportDraft{}, err
	}

	if draft.Gate != entity.GateEditing {
		return entity.ReportDraft{}, report.ErrDraftLocked
	}

	draft.Gate = entity.GateAwaitingConfirmation
	draft.UpdatedAt = s.nowFn()

	if err := s.storeDraft(ctx, draft); err != nil {
		return entity.ReportDraft{}, err
	}

	return draft, nil
}

// Cancel returns a locked draft to editing with all content intact.
func (s *reportService) Cancel(ctx context.Context, clinicianID string) (entity.ReportDraft, error) {
	draft, err := s.loadDraft(ctx, clinicianID)
	if err != nil {
		return entity.ReportDraft{}, err
	}

	if draft.Gate != entity.GateAwaitingConfirmation {
		return entity.ReportDraft{}, report.ErrNotAwaitingConfirmation
	}

	draft.Gate = entity.GateEditing
	draft.UpdatedAt = s.nowFn()

	if err := s.storeDraft(ctx, draft); err != nil {
		return entity.ReportDraft{}, err
	}

	return draft, nil
}

// Confirm assembles the locked draft, renders it, uploads the document
// and archives the result. The draft is kept and returned to editing so
// the clinician can iterate on a follow-up.
func (s *reportService) Confirm(ctx context.Context, clinicianID string) (report.AssembleResponse, error) {
	draft, err := s.loadDraft(ctx, clinicianID)
	if err != nil {
		return report.AssembleResponse{}, err
	}

	if draft.Gate != entity.GateAwaitingConfirmation {
		return report.AssembleResponse{}, report.ErrNotAwaitingConfirmation
	}

	patientData, err := s.resolvePatient(ctx, draft.PatientRef)
	if err != nil {
		return report.AssembleResponse{}, err
	}

	doc, err := s.assembler.Assemble(draft, patientData)
	if err != nil {
		return report.AssembleResponse{}, err
	}

	rendered, err := s.renderer.Render(doc)
	if err != nil {
		return report.AssembleResponse{}, err
	}

	archiveID, err := s.utils.NewULIDFromTimestamp(doc.GeneratedAt)
	if err != nil {
		return report.AssembleResponse{}, err
	}

	key := "reports/" + clinicianID + "/" + archiveID + "_" + doc.Filename
	documentURL, err := s.s3Client.UploadDocument(ctx, key, rendered, "application/pdf")
	if err != nil {
		return report.AssembleResponse{}, err
	}

	archive := entity.ReportArchive{
		ID:          archiveID,
		ClinicianID: clinicianID,
		PatientRef:  draft.PatientRef,
		ReportType:  draft.ReportType,
		Filename:    doc.Filename,
		PageCount:   len(doc.Pages),
		DocumentURL: documentURL,
		GeneratedAt: doc.GeneratedAt,
	}
	if patientData != nil {
		archive.PatientName = patientData.FullName
	}

	repoClient, err := s.reportRepo.NewClient(false)
	if err != nil {
		return report.AssembleResponse{}, err
	}
	if err := repoClient.Archives.InsertArchive(ctx, archive); err != nil {
		return report.AssembleResponse{}, err
	}

	draft.Gate = entity.GateEditing
	draft.UpdatedAt = s.nowFn()
	if err := s.storeDraft(ctx, draft); err != nil {
		return report.AssembleResponse{}, err
	}

	s.log.WithFields(log.Fields{
		"clinician_id": clinicianID,
		"archive_id":   archiveID,
		"filename":     doc.Filename,
		"pages":        len(doc.Pages),
	}).Info("Report confirmed and archived")

	return report.AssembleResponse{
		ArchiveID:   archiveID,
		Filename:    doc.Filename,
		PageCount:   len(doc.Pages),
		DocumentURL: documentURL,
		GeneratedAt: doc.GeneratedAt.Format(time.RFC3339),
	}, nil
}

// resolvePatient maps an empty or dangling patient reference to nil so
// the assembler falls back to its placeholder block.
func (s *reportService) resolvePatient(ctx context.Context, patientRef string) (*entity.Patient, error) {
	if patientRef == "" {
		return nil, nil
	}

	p, err := s.patientService.GetPatientByID(ctx, patientRef)
	if errors.Is(err, patient.ErrPatientNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *reportService) GetHistory(ctx context.Context, clinicianID string, page, limit int) ([]entity.ReportArchive, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repoClient, err := s.reportRepo.NewClient(false)
	if err != nil {
		return nil, 0, err
	}

	archives, err := repoClient.Archives.GetArchivesByClinician(ctx, clinicianID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := repoClient.Archives.CountArchivesByClinician(ctx, clinicianID)
	if err != nil {
		return nil, 0, err
	}

	return archives, total, nil
}
