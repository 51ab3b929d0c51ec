package terminology

import (
	"github.com/Abhijit-without-h/ayush/internal/entity"
)

type TranslateRequest struct {
	Code   string `json:"code" validate:"required"`
	System string `json:"system" validate:"required"`
}

type MappingResponse struct {
	NamasteCode    string `json:"namaste_code"`
	NamasteDisplay string `json:"namaste_display"`
	ICD11Code      string `json:"icd11_code"`
	ICD11Display   string `json:"icd11_display"`
	Equivalence    string `json:"equivalence"`
	Notes          string `json:"notes,omitempty"`
}

type TranslateResponse struct {
	SourceCode   string            `json:"source_code"`
	SourceSystem string            `json:"source_system"`
	TargetSystem string            `json:"target_system"`
	Matches      []MappingResponse `json:"matches"`
}

type StatisticsResponse struct {
	TotalMappings int            `json:"total_mappings"`
	ByEquivalence map[string]int `json:"by_equivalence"`
}

func MakeMappingResponse(m entity.CodeMapping) MappingResponse {
	return MappingResponse{
		NamasteCode:    m.NamasteCode,
		NamasteDisplay: m.NamasteDisplay,
		ICD11Code:      m.ICD11Code,
		ICD11Display:   m.ICD11Display,
		Equivalence:    string(m.Equivalence),
		Notes:          m.Notes,
	}
}
