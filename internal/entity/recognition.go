package entity

import "time"

type SessionState string

const (
	SessionIdle       SessionState = "idle"
	SessionListening  SessionState = "listening"
	SessionRecognized SessionState = "recognized"
)

// Recognition context labels. Any label other than ContextReportAuthoring
// selects the default lookup candidate set.
const (
	ContextReportAuthoring = "report-authoring"
	ContextDefault         = "default"
)

// RecognitionSession is one listening attempt. Generation is a
// monotonically increasing counter; scheduled callbacks capture it and
// compare it against the currently active session before touching state.
type RecognitionSession struct {
	ID             string       `json:"id"`
	Generation     uint64       `json:"-"`
	Context        string       `json:"context"`
	State          SessionState `json:"state"`
	StatusText     string       `json:"status_text"`
	RecognizedText string       `json:"recognized_text"`
	StartedAt      time.Time    `json:"started_at"`
}

// CandidateSet is the finite list of phrases a session may recognize,
// keyed by the view context that selects it.
type CandidateSet struct {
	Context   string    `json:"context"`
	Phrases   []string  `json:"phrases"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
