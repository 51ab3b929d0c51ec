package terminologyService_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Abhijit-without-h/ayush/internal/api/terminology"
	terminologyRepository "github.com/Abhijit-without-h/ayush/internal/api/terminology/repository"
	terminologyService "github.com/Abhijit-without-h/ayush/internal/api/terminology/service"
	"github.com/Abhijit-without-h/ayush/internal/entity"
)

type fakeMappings struct {
	mappings []entity.CodeMapping
}

func (f *fakeMappings) GetMappingsByNamasteCode(_ context.Context, code string) ([]entity.CodeMapping, error) {
	var out []entity.CodeMapping
	for _, m := range f.mappings {
		if m.NamasteCode == code {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMappings) GetMappingsByICD11Code(_ context.Context, code string) ([]entity.CodeMapping, error) {
	var out []entity.CodeMapping
	for _, m := range f.mappings {
		if m.ICD11Code == code {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMappings) SearchMappings(_ context.Context, query string, limit int) ([]entity.CodeMapping, error) {
	var out []entity.CodeMapping
	for _, m := range f.mappings {
		if strings.Contains(strings.ToLower(m.NamasteDisplay), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(m.ICD11Display), strings.ToLower(query)) {
			out = append(out, m)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMappings) CountMappings(context.Context) (int, error) {
	return len(f.mappings), nil
}

func (f *fakeMappings) CountMappingsByEquivalence(context.Context) ([]terminologyRepository.EquivalenceCount, error) {
	byEq := map[string]int{}
	for _, m := range f.mappings {
		byEq[string(m.Equivalence)]++
	}
	var out []terminologyRepository.EquivalenceCount
	for eq, count := range byEq {
		out = append(out, terminologyRepository.EquivalenceCount{Equivalence: eq, Count: count})
	}
	return out, nil
}

type fakeTermRepo struct {
	mappings *fakeMappings
}

func (f *fakeTermRepo) NewClient(bool) (terminologyRepository.Client, error) {
	return terminologyRepository.Client{
		Mappings: f.mappings,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTermService() terminologyService.ITerminologyService {
	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)

	mappings := &fakeMappings{mappings: []entity.CodeMapping{
		{
			NamasteCode:    "NAM-AYU-0412",
			NamasteDisplay: "Ardhavabhedaka",
			ICD11Code:      "8A80.1",
			ICD11Display:   "Migraine without aura",
			Equivalence:    entity.EquivalenceEquivalent,
		},
		{
			NamasteCode:    "NAM-AYU-0587",
			NamasteDisplay: "Suryavarta",
			ICD11Code:      "8A80.1",
			ICD11Display:   "Migraine without aura",
			Equivalence:    entity.EquivalenceRelatedTo,
		},
		{
			NamasteCode:    "NAM-AYU-1103",
			NamasteDisplay: "Pandu Roga",
			ICD11Code:      "3A00",
			ICD11Display:   "Iron deficiency anaemia",
			Equivalence:    entity.EquivalenceWider,
		},
	}}

	return terminologyService.New(log, &fakeTermRepo{mappings: mappings})
}

func TestTranslateForward(t *testing.T) {
	svc := newTermService()

	result, err := svc.Translate(context.Background(), terminology.TranslateRequest{
		Code:   "NAM-AYU-0412",
		System: entity.SystemNamaste,
	})
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if result.TargetSystem != entity.SystemICD11 {
		t.Errorf("target system = %q, want %q", result.TargetSystem, entity.SystemICD11)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(result.Matches))
	}
	if result.Matches[0].ICD11Code != "8A80.1" {
		t.Errorf("icd11 code = %q, want 8A80.1", result.Matches[0].ICD11Code)
	}
}

func TestTranslateReverseReturnsAllSources(t *testing.T) {
	svc := newTermService()

	result, err := svc.Translate(context.Background(), terminology.TranslateRequest{
		Code:   "8A80.1",
		System: entity.SystemICD11,
	})
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	if len(result.Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(result.Matches))
	}
	if result.TargetSystem != entity.SystemNamaste {
		t.Errorf("target system = %q, want %q", result.TargetSystem, entity.SystemNamaste)
	}
}

func TestTranslateErrors(t *testing.T) {
	svc := newTermService()

	tests := []struct {
		name    string
		req     terminology.TranslateRequest
		wantErr error
	}{
		{
			name:    "unknown system",
			req:     terminology.TranslateRequest{Code: "X", System: "http://snomed.info/sct"},
			wantErr: terminology.ErrUnknownSystem,
		},
		{
			name:    "unmapped code",
			req:     terminology.TranslateRequest{Code: "NAM-AYU-9999", System: entity.SystemNamaste},
			wantErr: terminology.ErrMappingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Translate(context.Background(), tt.req); err != tt.wantErr {
				t.Errorf("Translate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	svc := newTermService()

	mappings, err := svc.Search(context.Background(), "migraine", 20)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(mappings) != 2 {
		t.Errorf("search results = %d, want 2", len(mappings))
	}

	if _, err := svc.Search(context.Background(), "   ", 20); err != terminology.ErrEmptyQuery {
		t.Errorf("empty query error = %v, want ErrEmptyQuery", err)
	}
}

func TestStatistics(t *testing.T) {
	svc := newTermService()

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics() error: %v", err)
	}
	if stats.TotalMappings != 3 {
		t.Errorf("total = %d, want 3", stats.TotalMappings)
	}
	if stats.ByEquivalence["equivalent"] != 1 || stats.ByEquivalence["relatedto"] != 1 || stats.ByEquivalence["wider"] != 1 {
		t.Errorf("by equivalence = %v", stats.ByEquivalence)
	}
}
