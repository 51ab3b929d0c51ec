package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Abhijit-without-h/ayush/pkg/response"
)

const ClinicianIDHeader = "X-Clinician-ID"

var ErrMissingClinicianID = response.NewError(fiber.StatusUnauthorized, "missing clinician identity header")

// GetClinicianID reads the caller identity from the X-Clinician-ID
// header. Identity federation happens upstream of this service, so the
// header is trusted as-is.
func (m *middleware) GetClinicianID(ctx *fiber.Ctx) (string, error) {
	clinicianID := strings.TrimSpace(ctx.Get(ClinicianIDHeader))
	if clinicianID == "" {
		return "", ErrMissingClinicianID
	}
	return clinicianID, nil
}
