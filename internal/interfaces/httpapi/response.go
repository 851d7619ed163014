package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/usecase"
)

// Error responses keep the flat {"error": ..., "code": ...} shape the
// mobile clients already parse.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type mappedError struct {
	HTTPStatus int
	Code       string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorBody{
		Error: err.Error(),
		Code:  mapped.Code,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{
		Error: "internal server error",
		Code:  "internal_error",
	})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Code:       "invalid_request",
		}
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Code:       "upstream_unavailable",
		}
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Code:       "store_unavailable",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Code:       "internal_error",
		}
	}
}
