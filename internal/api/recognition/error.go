package recognition

import "github.com/Abhijit-without-h/ayush/pkg/response"

var (
	ErrCandidateSetNotFound = response.NewError(404, "candidate set not found")
	ErrEmptyCandidateSet    = response.NewError(422, "candidate set has no phrases")
)
