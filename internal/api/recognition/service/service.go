package recognitionService

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	recognitionRepository "github.com/Abhijit-without-h/ayush/internal/api/recognition/repository"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	redisPkg "github.com/Abhijit-without-h/ayush/pkg/redis"
	utilsPkg "github.com/Abhijit-without-h/ayush/pkg/utils"
)

// Timings controls the simulated recognition schedule. Production uses
// DefaultTimings; tests shrink the intervals.
type Timings struct {
	Recognize time.Duration
	AutoIdle  time.Duration
	NoticeTTL time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		Recognize: 2500 * time.Millisecond,
		AutoIdle:  5000 * time.Millisecond,
		NoticeTTL: 3000 * time.Millisecond,
	}
}

type ISessionService interface {
	Activate(ctx context.Context, clinicianID string, sessionContext string) (entity.RecognitionSession, string, error)
	Status(ctx context.Context, clinicianID string) (entity.RecognitionSession, string, error)
	GetCandidateSets(ctx context.Context) ([]entity.CandidateSet, error)
	CreateCandidateSet(ctx context.Context, setContext string, phrases []string) (entity.CandidateSet, error)
	UpdateCandidateSet(ctx context.Context, setContext string, phrases []string) (entity.CandidateSet, error)
}

// activeSession pairs the published session snapshot with the pending
// timers so a cancellation can stop them.
type activeSession struct {
	session entity.RecognitionSession
	timers  []*time.Timer
}

type sessionService struct {
	log             *logrus.Logger
	recognitionRepo recognitionRepository.Repository
	redis           redisPkg.IRedis
	utils           utilsPkg.IUtils

	timings Timings
	randFn  func(n int) int
	nowFn   func() time.Time

	mu         sync.Mutex
	sessions   map[string]*activeSession
	generation uint64
}

func New(
	log *logrus.Logger,
	recognitionRepo recognitionRepository.Repository,
	redis redisPkg.IRedis,
	utils utilsPkg.IUtils,
	timings Timings,
) ISessionService {
	return &sessionService{
		log:             log,
		recognitionRepo: recognitionRepo,
		redis:           redis,
		utils:           utils,
		timings:         timings,
		randFn:          rand.Intn,
		nowFn:           time.Now,
		sessions:        make(map[string]*activeSession),
	}
}
