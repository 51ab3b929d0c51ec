package terminologyService

import (
	"context"
	"strings"

	"github.com/Abhijit-without-h/ayush/internal/api/terminology"
	"github.com/Abhijit-without-h/ayush/internal/entity"
	"github.com/Abhijit-without-h/ayush/pkg/log"
)

// Translate maps a code across the NAMASTE and ICD-11 systems. Forward
// translation is an exact lookup; reverse translation may return
// several NAMASTE source concepts for one ICD-11 code.
func (s *terminologyService) Translate(ctx context.Context, req terminology.TranslateRequest) (terminology.TranslateResponse, error) {
	repoClient, err := s.terminologyRepo.NewClient(false)
	if err != nil {
		return terminology.TranslateResponse{}, err
	}

	var (
		mappings     []entity.CodeMapping
		targetSystem string
	)

	switch req.System {
	case entity.SystemNamaste:
		targetSystem = entity.SystemICD11
		mappings, err = repoClient.Mappings.GetMappingsByNamasteCode(ctx, req.Code)
	case entity.SystemICD11:
		targetSystem = entity.SystemNamaste
		mappings, err = repoClient.Mappings.GetMappingsByICD11Code(ctx, req.Code)
	default:
		return terminology.TranslateResponse{}, terminology.ErrUnknownSystem
	}
	if err != nil {
		return terminology.TranslateResponse{}, err
	}

	if len(mappings) == 0 {
		return terminology.TranslateResponse{}, terminology.ErrMappingNotFound
	}

	matches := make([]terminology.MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		matches = append(matches, terminology.MakeMappingResponse(m))
	}

	s.log.WithFields(log.Fields{
		"code":    req.Code,
		"system":  req.System,
		"matches": len(matches),
	}).Debug("Code translated")

	return terminology.TranslateResponse{
		SourceCode:   req.Code,
		SourceSystem: req.System,
		TargetSystem: targetSystem,
		Matches:      matches,
	}, nil
}

func (s *terminologyService) Search(ctx context.Context, query string, limit int) ([]entity.CodeMapping, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, terminology.ErrEmptyQuery
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repoClient, err := s.terminologyRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repoClient.Mappings.SearchMappings(ctx, query, limit)
}

func (s *terminologyService) Statistics(ctx context.Context) (terminology.StatisticsResponse, error) {
	repoClient, err := s.terminologyRepo.NewClient(false)
	if err != nil {
		return terminology.StatisticsResponse{}, err
	}

	total, err := repoClient.Mappings.CountMappings(ctx)
	if err != nil {
		return terminology.StatisticsResponse{}, err
	}

	counts, err := repoClient.Mappings.CountMappingsByEquivalence(ctx)
	if err != nil {
		return terminology.StatisticsResponse{}, err
	}

	byEquivalence := make(map[string]int, len(counts))
	for _, c := range counts {
		byEquivalence[c.Equivalence] = c.Count
	}

	return terminology.StatisticsResponse{
		TotalMappings: total,
		ByEquivalence: byEquivalence,
	}, nil
}
