package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/app/catalog/domain"
)

// errorResponse is the JSON error envelope. Reasons and Variants are
// populated only for blocked hard deletes.
type errorResponse struct {
	Error    string                  `json:"error"`
	Reasons  []string                `json:"reasons,omitempty"`
	Variants []domain.VariantVerdict `json:"variants,omitempty"`
}

// writeDomainError maps domain errors to HTTP statuses: missing
// aggregates are 404, blocked hard deletes are 409 with the full reasons
// payload, failed restore and stock preconditions are 422, everything
// else is a 500 that hides the internal message.
func writeDomainError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var precondition *domain.PreconditionFailedError
	var cannotRestore *domain.CannotRestoreError

	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrVariantNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.As(err, &precondition):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:    "hard delete blocked",
			Reasons:  precondition.Reasons(),
			Variants: precondition.Verdicts,
		})

	case errors.As(err, &cannotRestore):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: cannotRestore.Error()})

	case errors.Is(err, domain.ErrProductNotDeleted),
		errors.Is(err, domain.ErrStockBelowZero):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})

	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
