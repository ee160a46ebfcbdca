package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/pquint/onice/internal/usecase"
)

type errorBody struct {
	Error string `json:"error"`
}

type mappedError struct {
	HTTPStatus int
	Message    string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeError maps pipeline errors onto the wire contract. Upstream detail is
// logged server-side only; clients get the fixed message for the class.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorBody{Error: mapped.Message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Message:    "invalid upload",
		}
	case errors.Is(err, usecase.ErrNoTextInImage):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Message:    "No text in image",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Message:    "upstream dependency unavailable",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Message:    "internal server error",
		}
	}
}
