package patient

import "github.com/Abhijit-without-h/ayush/pkg/response"

var (
	ErrPatientNotFound = response.NewError(404, "patient not found")
	ErrInvalidProgress = response.NewError(400, "progress must be between 0 and 100")
)
