package terminologyService

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/api/terminology"
	terminologyRepository "github.com/Abhijit-without-h/ayush/internal/api/terminology/repository"
	"github.com/Abhijit-without-h/ayush/internal/entity"
)

type ITerminologyService interface {
	Translate(ctx context.Context, req terminology.TranslateRequest) (terminology.TranslateResponse, error)
	Search(ctx context.Context, query string, limit int) ([]entity.CodeMapping, error)
	Statistics(ctx context.Context) (terminology.StatisticsResponse, error)
}

type terminologyService struct {
	log             *logrus.Logger
	terminologyRepo terminologyRepository.Repository
}

func New(log *logrus.Logger, terminologyRepo terminologyRepository.Repository) ITerminologyService {
	return &terminologyService{
		log:             log,
		terminologyRepo: terminologyRepo,
	}
}
