package recognition

import (
	"time"

	"github.com/Abhijit-without-h/ayush/internal/entity"
)

type ActivateRequest struct {
	Context string `json:"context"`
}

type CandidateSetRequest struct {
	Context string   `json:"context" validate:"required"`
	Phrases []string `json:"phrases" validate:"required,min=1,dive,required"`
}

type StatusResponse struct {
	SessionID      string `json:"session_id,omitempty"`
	Context        string `json:"context,omitempty"`
	State          string `json:"state"`
	StatusText     string `json:"status_text"`
	RecognizedText string `json:"recognized_text"`
	Notice         string `json:"notice,omitempty"`
	StartedAt      string `json:"started_at,omitempty"`
}

type CandidateSetResponse struct {
	Context   string   `json:"context"`
	Phrases   []string `json:"phrases"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

func MakeStatusResponse(s entity.RecognitionSession, notice string) StatusResponse {
	resp := StatusResponse{
		State:          string(s.State),
		StatusText:     s.StatusText,
		RecognizedText: s.RecognizedText,
		Notice:         notice,
	}
	if s.ID != "" {
		resp.SessionID = s.ID
		resp.Context = s.Context
		resp.StartedAt = s.StartedAt.Format(time.RFC3339)
	}
	return resp
}

func MakeCandidateSetResponse(cs entity.CandidateSet) CandidateSetResponse {
	return CandidateSetResponse{
		Context:   cs.Context,
		Phrases:   cs.Phrases,
		IsActive:  cs.IsActive,
		CreatedAt: cs.CreatedAt.Format(time.RFC3339),
		UpdatedAt: cs.UpdatedAt.Format(time.RFC3339),
	}
}
