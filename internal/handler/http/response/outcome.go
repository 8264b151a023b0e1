package response

import (
	"net/http"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/outcome"
)

// RenderOutcome writes a confirmable operation result. Success uses the
// given status and message. Confirmation-required answers 409 with the
// decision payload in data, so the client can resubmit with the override
// flag set. Validation failures answer 422.
func RenderOutcome[T any](w http.ResponseWriter, out outcome.Outcome[T], successStatus int, successMessage string) {
	switch out.Kind {
	case outcome.KindConfirmationRequired:
		writeJSON(w, http.StatusConflict, Response{
			Success: false,
			Message: out.Message,
			Data:    out.Details,
			Error: &ErrorDetail{
				Code:    "CONFIRMATION_REQUIRED",
				Message: out.Message,
			},
		})
	case outcome.KindValidationFailed:
		writeJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: out.Message,
			},
		})
	default:
		writeJSON(w, successStatus, Response{
			Success: true,
			Message: successMessage,
			Data:    out.Value,
		})
	}
}
