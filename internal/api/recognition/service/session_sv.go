package recognitionService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abhijit-without-h/ayush/internal/api/recognition"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/log"
	redisPkg "github.com/Abhijit-without-h/ayush/pkg/redis"
)

const (
	statusListening        = "Listening..."
	noticeListeningStopped = "Listening cancelled"
)

// Seeded phrase sets used when no candidate set has been stored for a
// context yet.
var defaultCandidatePhrases = map[string][]string{
	entity.ContextReportAuthoring: {
		"Set patient to Rajesh Kumar",
		"Chief complaint is persistent headaches and fatigue",
		"Add to findings Patient shows positive response to Panchakarma therapy.",
		"Set report type to Treatment Progress",
	},
	entity.ContextDefault: {
		"Show patient Rajesh Kumar",
		"Open the patient directory",
		"Show treatment progress",
	},
}

// Activate toggles the microphone. Activating while a session is still
// listening cancels it before any phrase is recognized; otherwise a new
// session starts and runs its fixed schedule.
func (s *sessionService) Activate(ctx context.Context, clinicianID string, sessionContext string) (entity.RecognitionSession, string, error) {
	if sessionContext == "" {
		sessionContext = entity.ContextDefault
	}

	s.mu.Lock()
	if active, ok := s.sessions[clinicianID]; ok && active.session.State == entity.SessionListening {
		for _, t := range active.timers {
			t.Stop()
		}
		delete(s.sessions, clinicianID)
		s.mu.Unlock()

		if err := s.redis.SetNotice(ctx, clinicianID, noticeListeningStopped, s.timings.NoticeTTL); err != nil {
			s.log.WithFields(log.Fields{
				"clinician_id": clinicianID,
			}).Warn("Failed to store cancellation notice")
		}

		return entity.RecognitionSession{State: entity.SessionIdle}, noticeListeningStopped, nil
	}
	s.mu.Unlock()

	phrases, err := s.candidatePhrases(ctx, sessionContext)
	if err != nil {
		return entity.RecognitionSession{}, "", err
	}

	id, err := s.utils.NewULIDFromTimestamp(s.nowFn())
	if err != nil {
		return entity.RecognitionSession{}, "", err
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation

	session := entity.RecognitionSession{
		ID:         id,
		Generation: gen,
		Context:    sessionContext,
		State:      entity.SessionListening,
		StatusText: statusListening,
		StartedAt:  s.nowFn(),
	}

	recognizeTimer := time.AfterFunc(s.timings.Recognize, func() {
		s.recognize(clinicianID, gen, phrases)
	})
	idleTimer := time.AfterFunc(s.timings.AutoIdle, func() {
		s.autoIdle(clinicianID, gen)
	})

	s.sessions[clinicianID] = &activeSession{
		session: session,
		timers:  []*time.Timer{recognizeTimer, idleTimer},
	}
	s.mu.Unlock()

	s.log.WithFields(log.Fields{
		"clinician_id": clinicianID,
		"session_id":   id,
		"context":      sessionContext,
	}).Debug("Recognition session started")

	return session, "", nil
}

// recognize runs on the session schedule. A generation mismatch means
// the session was cancelled or replaced after the timer was armed.
func (s *sessionService) recognize(clinicianID string, gen uint64, phrases []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.sessions[clinicianID]
	if !ok || active.session.Generation != gen {
		return
	}

	phrase := phrases[s.randFn(len(phrases))]
	active.session.State = entity.SessionRecognized
	active.session.RecognizedText = phrase
	active.session.StatusText = fmt.Sprintf("Recognized: %q", phrase)
}

func (s *sessionService) autoIdle(clinicianID string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.sessions[clinicianID]
	if !ok || active.session.Generation != gen {
		return
	}

	// Recognized text stays readable after the session winds down.
	active.session.State = entity.SessionIdle
	active.session.StatusText = ""
}

func (s *sessionService) Status(ctx context.Context, clinicianID string) (entity.RecognitionSession, string, error) {
	notice, err := s.redis.GetNotice(ctx, clinicianID)
	if err != nil && !errors.Is(err, redisPkg.ErrNotFound) {
		return entity.RecognitionSession{}, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.sessions[clinicianID]
	if !ok {
		return entity.RecognitionSession{State: entity.SessionIdle}, notice, nil
	}

	return active.session, notice, nil
}

func (s *sessionService) candidatePhrases(ctx context.Context, sessionContext string) ([]string, error) {
	repoClient, err := s.recognitionRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	set, err := repoClient.CandidateSets.GetCandidateSetByContext(ctx, sessionContext)
	if err == nil && set.IsActive && len(set.Phrases) > 0 {
		return set.Phrases, nil
	}
	if err != nil && !errors.Is(err, recognition.ErrCandidateSetNotFound) {
		return nil, err
	}

	if phrases, ok := defaultCandidatePhrases[sessionContext]; ok {
		return phrases, nil
	}
	return defaultCandidatePhrases[entity.ContextDefault], nil
}
