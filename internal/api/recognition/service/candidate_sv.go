package recognitionService

import (
	"context"
	"strings"

	"github.com/Abhijit-without-h/ayush/internal/api/recognition"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/log"
)

func (s *sessionService) GetCandidateSets(ctx context.Context) ([]entity.CandidateSet, error) {
	repoClient, err := s.recognitionRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repoClient.CandidateSets.GetAllCandidateSets(ctx)
}

func (s *sessionService) CreateCandidateSet(ctx context.Context, setContext string, phrases []string) (entity.CandidateSet, error) {
	phrases = cleanPhrases(phrases)
	if len(phrases) == 0 {
		return entity.CandidateSet{}, recognition.ErrEmptyCandidateSet
	}

	now := s.nowFn()
	set := entity.CandidateSet{
		Context:   setContext,
		Phrases:   phrases,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repoClient, err := s.recognitionRepo.NewClient(false)
	if err != nil {
		return entity.CandidateSet{}, err
	}

	if err := repoClient.CandidateSets.InsertCandidateSet(ctx, set); err != nil {
		return entity.CandidateSet{}, err
	}

	s.log.WithFields(log.Fields{
		"context": setContext,
		"phrases": len(phrases),
	}).Info("Candidate set created")

	return set, nil
}

func (s *sessionService) UpdateCandidateSet(ctx context.Context, setContext string, phrases []string) (entity.CandidateSet, error) {
	phrases = cleanPhrases(phrases)
	if len(phrases) == 0 {
		return entity.CandidateSet{}, recognition.ErrEmptyCandidateSet
	}

	repoClient, err := s.recognitionRepo.NewClient(false)
	if err != nil {
		return entity.CandidateSet{}, err
	}

	existing, err := repoClient.CandidateSets.GetCandidateSetByContext(ctx, setContext)
	if err != nil {
		return entity.CandidateSet{}, err
	}

	existing.Phrases = phrases
	existing.UpdatedAt = s.nowFn()

	if err := repoClient.CandidateSets.UpdateCandidateSet(ctx, existing); err != nil {
		return entity.CandidateSet{}, err
	}

	return existing, nil
}

func cleanPhrases(phrases []string) []string {
	cleaned := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}
