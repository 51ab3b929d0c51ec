package reportService_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/api/patient"
	"github.com/Abhijit-without-h/ayush/internal/api/report"
	reportRepository "github.com/Abhijit-without-h/ayush/internal/api/report/repository"
	reportService "github.com/Abhijit-without-h/ayush/internal/api/report/service"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/document"
	"github.com/Abhijit-without-h/ayush/pkg/interpreter"
	redisPkg "github.com/Abhijit-without-h/ayush/pkg/redis"
	utilsPkg "github.com/Abhijit-without-h/ayush/pkg/utils"
)

type fakeDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string][]byte)}
}

func (f *fakeDraftStore) SetDraft(_ context.Context, clinicianID string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts[clinicianID] = payload
	return nil
}

func (f *fakeDraftStore) GetDraft(_ context.Context, clinicianID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.drafts[clinicianID]
	if !ok {
		return nil, redisPkg.ErrNotFound
	}
	return payload, nil
}

func (f *fakeDraftStore) DeleteDraft(_ context.Context, clinicianID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.drafts, clinicianID)
	return nil
}

func (f *fakeDraftStore) SetNotice(context.Context, string, string, time.Duration) error {
	return nil
}

func (f *fakeDraftStore) GetNotice(context.Context, string) (string, error) {
	return "", redisPkg.ErrNotFound
}

type fakeArchives struct {
	mu       sync.Mutex
	archives []entity.ReportArchive
}

func (f *fakeArchives) InsertArchive(_ context.Context, archive entity.ReportArchive) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.archives = append(f.archives, archive)
	return nil
}

func (f *fakeArchives) GetArchivesByClinician(_ context.Context, clinicianID string, limit, offset int) ([]entity.ReportArchive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.ReportArchive
	for _, a := range f.archives {
		if a.ClinicianID == clinicianID {
			out = append(out, a)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeArchives) CountArchivesByClinician(_ context.Context, clinicianID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, a := range f.archives {
		if a.ClinicianID == clinicianID {
			count++
		}
	}
	return count, nil
}

type fakeReportRepo struct {
	archives *fakeArchives
}

func (f *fakeReportRepo) NewClient(bool) (reportRepository.Client, error) {
	return reportRepository.Client{
		Archives: f.archives,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakePatients struct {
	patients []entity.Patient
}

func (f *fakePatients) GetDirectory(context.Context) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakePatients) GetPatientByID(_ context.Context, id string) (entity.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Patient{}, patient.ErrPatientNotFound
}

func (f *fakePatients) FindByFullName(_ context.Context, fullName string) (entity.Patient, error) {
	for _, p := range f.patients {
		if p.FullName == fullName {
			return p, nil
		}
	}
	return entity.Patient{}, patient.ErrPatientNotFound
}

type fakeRenderer struct {
	lastDoc *document.Document
}

func (f *fakeRenderer) Render(doc *document.Document) ([]byte, error) {
	f.lastDoc = doc
	return []byte("%PDF-fake"), nil
}

type fakeUploader struct {
	lastKey string
}

func (f *fakeUploader) UploadDocument(_ context.Context, key string, _ []byte, _ string) (string, error) {
	f.lastKey = key
	return "https://ayush-reports.s3.ap-south-1.amazonaws.com/" + key, nil
}

type testEnv struct {
	svc      reportService.IReportService
	archives *fakeArchives
	renderer *fakeRenderer
	uploader *fakeUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)

	archives := &fakeArchives{}
	renderer := &fakeRenderer{}
	uploader := &fakeUploader{}

	patients := &fakePatients{patients: []entity.Patient{
		{
			ID:                   "PAT2024001",
			FullName:             "Rajesh Kumar",
			Diagnosis:            "Chronic Migraine",
			TraditionalDiagnosis: "Ardhavabhedaka",
			NamasteCode:          "NAM-AYU-0412",
		},
	}}

	svc := reportService.New(
		log,
		&fakeReportRepo{archives: archives},
		patients,
		newFakeDraftStore(),
		interpreter.New(),
		document.NewAssembler(),
		renderer,
		uploader,
		utilsPkg.New(),
	)

	return &testEnv{svc: svc, archives: archives, renderer: renderer, uploader: uploader}
}

func strPtr(s string) *string { return &s }

func TestSubmitLocksDraftForEditing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.UpdateDraft(ctx, "clin-1", report.UpdateDraftRequest{
		PatientRef: strPtr("PAT2024001"),
		Diagnosis:  strPtr("Chronic Migraine, improving"),
	}); err != nil {
		t.Fatalf("UpdateDraft() error: %v", err)
	}

	draft, err := env.svc.Submit(ctx, "clin-1")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if draft.Gate != entity.GateAwaitingConfirmation {
		t.Fatalf("gate after submit = %q, want %q", draft.Gate, entity.GateAwaitingConfirmation)
	}

	if _, err := env.svc.UpdateDraft(ctx, "clin-1", report.UpdateDraftRequest{
		Diagnosis: strPtr("should be rejected"),
	}); err != report.ErrDraftLocked {
		t.Errorf("UpdateDraft() while locked error = %v, want ErrDraftLocked", err)
	}

	if _, _, err := env.svc.ApplyCommand(ctx, "clin-1", "set report type to Treatment Progress"); err != report.ErrDraftLocked {
		t.Errorf("ApplyCommand() while locked error = %v, want ErrDraftLocked", err)
	}

	if _, err := env.svc.Submit(ctx, "clin-1"); err != report.ErrDraftLocked {
		t.Errorf("double Submit() error = %v, want ErrDraftLocked", err)
	}
}

func TestCancelUnlocksWithContentIntact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.UpdateDraft(ctx, "clin-1", report.UpdateDraftRequest{
		ChiefComplaint: strPtr("Persistent headaches and fatigue"),
	}); err != nil {
		t.Fatalf("UpdateDraft() error: %v", err)
	}
	if _, err := env.svc.Submit(ctx, "clin-1"); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	draft, err := env.svc.Cancel(ctx, "clin-1")
	if err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if draft.Gate != entity.GateEditing {
		t.Errorf("gate after cancel = %q, want %q", draft.Gate, entity.GateEditing)
	}
	if draft.ChiefComplaint != "Persistent headaches and fatigue" {
		t.Errorf("chief complaint after cancel = %q, content was not kept", draft.ChiefComplaint)
	}

	if _, err := env.svc.Cancel(ctx, "clin-1"); err != report.ErrNotAwaitingConfirmation {
		t.Errorf("Cancel() while editing error = %v, want ErrNotAwaitingConfirmation", err)
	}
}

func TestConfirmRequiresSubmission(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.svc.Confirm(context.Background(), "clin-1"); err != report.ErrNotAwaitingConfirmation {
		t.Errorf("Confirm() without submit error = %v, want ErrNotAwaitingConfirmation", err)
	}
}

func TestConfirmRendersUploadsAndArchives(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.UpdateDraft(ctx, "clin-1", report.UpdateDraftRequest{
		PatientRef:     strPtr("PAT2024001"),
		ReportType:     strPtr("Treatment Progress"),
		ChiefComplaint: strPtr("Persistent headaches"),
		Diagnosis:      strPtr("Chronic Migraine"),
	}); err != nil {
		t.Fatalf("UpdateDraft() error: %v", err)
	}
	if _, err := env.svc.Submit(ctx, "clin-1"); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	result, err := env.svc.Confirm(ctx, "clin-1")
	if err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}

	if result.Filename != "Medical_Report_Rajesh_Kumar.pdf" {
		t.Errorf("filename = %q, want Medical_Report_Rajesh_Kumar.pdf", result.Filename)
	}
	if result.PageCount < 1 {
		t.Errorf("page count = %d, want at least 1", result.PageCount)
	}
	if result.DocumentURL == "" {
		t.Error("document URL is empty")
	}
	if env.renderer.lastDoc == nil {
		t.Fatal("renderer was never invoked")
	}

	archives, total, err := env.svc.GetHistory(ctx, "clin-1", 1, 20)
	if err != nil {
		t.Fatalf("GetHistory() error: %v", err)
	}
	if total != 1 || len(archives) != 1 {
		t.Fatalf("history total = %d, len = %d, want 1 and 1", total, len(archives))
	}
	if archives[0].PatientName != "Rajesh Kumar" {
		t.Errorf("archived patient name = %q", archives[0].PatientName)
	}
	if archives[0].ReportType != entity.ReportTreatmentProgress {
		t.Errorf("archived report type = %q", archives[0].ReportType)
	}

	draft, err := env.svc.GetDraft(ctx, "clin-1")
	if err != nil {
		t.Fatalf("GetDraft() error: %v", err)
	}
	if draft.Gate != entity.GateEditing {
		t.Errorf("gate after confirm = %q, want %q", draft.Gate, entity.GateEditing)
	}
}

func TestConfirmWithDanglingPatientRefUsesPlaceholder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.UpdateDraft(ctx, "clin-1", report.UpdateDraftRequest{
		PatientRef: strPtr("PAT2099999"),
		Diagnosis:  strPtr("Anemia"),
	}); err != nil {
		t.Fatalf("UpdateDraft() error: %v", err)
	}
	if _, err := env.svc.Submit(ctx, "clin-1"); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	result, err := env.svc.Confirm(ctx, "clin-1")
	if err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	if result.Filename != "Medical_Report_Unknown_Patient.pdf" {
		t.Errorf("filename = %q, want placeholder form", result.Filename)
	}
}

func TestApplyCommandUpdatesDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, cmd, err := env.svc.ApplyCommand(ctx, "clin-1", "Set patient to Rajesh Kumar")
	if err != nil {
		t.Fatalf("ApplyCommand() error: %v", err)
	}
	if !cmd.Applied {
		t.Fatalf("command not applied, intent = %q", cmd.Intent)
	}
	if draft.PatientRef != "PAT2024001" {
		t.Errorf("patient ref = %q, want PAT2024001", draft.PatientRef)
	}

	// Unrecognized text must leave the stored draft untouched.
	_, cmd, err = env.svc.ApplyCommand(ctx, "clin-1", "open the pod bay doors")
	if err != nil {
		t.Fatalf("ApplyCommand() error: %v", err)
	}
	if cmd.Applied || cmd.Intent != interpreter.IntentUnrecognized {
		t.Errorf("command = %+v, want unapplied unrecognized", cmd)
	}

	stored, err := env.svc.GetDraft(ctx, "clin-1")
	if err != nil {
		t.Fatalf("GetDraft() error: %v", err)
	}
	if stored.PatientRef != "PAT2024001" {
		t.Errorf("stored patient ref = %q after unrecognized command", stored.PatientRef)
	}
}

func TestUpdateDraftValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.UpdateDraft(ctx, "clin-1", report.UpdateDraftRequest{
		ReportType: strPtr("Quarterly Digest"),
	}); err != report.ErrInvalidReportType {
		t.Errorf("UpdateDraft() bad type error = %v, want ErrInvalidReportType", err)
	}

	if _, err := env.svc.UpdateDraft(ctx, "clin-1", report.UpdateDraftRequest{
		PeriodStart: strPtr("01/02/2026"),
	}); err != report.ErrInvalidPeriodDate {
		t.Errorf("UpdateDraft() bad date error = %v, want ErrInvalidPeriodDate", err)
	}
}
