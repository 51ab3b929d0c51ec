package reportService

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	patientService "github.com/Abhijit-without-h/ayush/internal/api/patient/service"
	"github.com/Abhijit-without-h/ayush/internal/api/report"
	reportRepository "github.com/Abhijit-without-h/ayush/internal/api/report/repository"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/document"
	"github.com/Abhijit-without-h/ayush/pkg/interpreter"
	redisPkg "github.com/Abhijit-without-h/ayush/pkg/redis"
	"github.com/Abhijit-without-h/ayush/pkg/s3"
	utilsPkg "github.com/Abhijit-without-h/ayush/pkg/utils"
)

type IReportService interface {
	GetDraft(ctx context.Context, clinicianID string) (entity.ReportDraft, error)
	UpdateDraft(ctx context.Context, clinicianID string, req report.UpdateDraftRequest) (entity.ReportDraft, error)
	DiscardDraft(ctx context.Context, clinicianID string) error
	ApplyCommand(ctx context.Context, clinicianID string, text string) (entity.ReportDraft, interpreter.Command, error)

	Submit(ctx context.Context, clinicianID string) (entity.ReportDraft, error)
	Cancel(ctx context.Context, clinicianID string) (entity.ReportDraft, error)
	Confirm(ctx context.Context, clinicianID string) (report.AssembleResponse, error)

	GetHistory(ctx context.Context, clinicianID string, page, limit int) ([]entity.ReportArchive, int, error)
}

type reportService struct {
	log            *logrus.Logger
	reportRepo     reportRepository.Repository
	patientService patientService.IPatientService
	redis          redisPkg.IRedis
	interpreter    interpreter.IInterpreter
	assembler      *document.Assembler
	renderer       document.IRenderer
	s3Client       s3.ItfS3
	utils          utilsPkg.IUtils
	nowFn          func() time.Time
}

func New(
	log *logrus.Logger,
	reportRepo reportRepository.Repository,
	ps patientService.IPatientService,
	redis redisPkg.IRedis,
	itp interpreter.IInterpreter,
	assembler *document.Assembler,
	renderer document.IRenderer,
	s3Client s3.ItfS3,
	utils utilsPkg.IUtils,
) IReportService {
	return &reportService{
		log:            log,
		reportRepo:     reportRepo,
		patientService: ps,
		redis:          redis,
		interpreter:    itp,
		assembler:      assembler,
		renderer:       renderer,
		s3Client:       s3Client,
		utils:          utils,
		nowFn:          time.Now,
	}
}
