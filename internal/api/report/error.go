package report

import "github.com/Abhijit-without-h/ayush/pkg/response"

var (
	ErrDraftLocked             = response.NewError(409, "draft is awaiting confirmation and cannot be edited")
	ErrNotAwaitingConfirmation = response.NewError(409, "no report is awaiting confirmation")
	ErrInvalidReportType       = response.NewError(422, "unknown report type")
	ErrInvalidPeriodDate       = response.NewError(422, "period dates must use the 2006-01-02 layout")
)
