package terminology

import "github.com/Abhijit-without-h/ayush/pkg/response"

var (
	ErrMappingNotFound = response.NewError(404, "no mapping found for the given code")
	ErrUnknownSystem   = response.NewError(422, "unknown code system")
	ErrEmptyQuery      = response.NewError(400, "search query must not be empty")
)
