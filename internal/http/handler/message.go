package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"taskboard/internal/core"
	"taskboard/internal/http/handler/middleware"

	"go.uber.org/zap"
)

const (
	unexpectedErr         = "unexpected error occurred"
	invalidCredentialsErr = "invalid credentials"
)

// clientErrors are the core errors whose text is safe to return to callers.
var clientErrors = []error{
	core.ErrUserNotFound,
	core.ErrUsernameTaken,
	core.ErrProjectNotFound,
	core.ErrTaskNotFound,
	core.ErrMissingIdentity,
}

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

// base holds what every handler needs to decode requests and write responses.
type base struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
}

func (b base) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		b.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// reject answers 400 for a malformed request. The detail is returned to the
// caller since it only describes their own input.
func (b base) reject(w http.ResponseWriter, message string, err error, route, requestId string) {
	b.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest, requestId)
	b.logs.Errorw(message,
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// fail answers a service error. Only known core errors reach the body; the
// full chain goes to the log.
func (b base) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	b.respond(w, Response{
		Message: message,
		Error:   publicError(err),
	}, statusFor(err), requestId)
	b.logs.Errorw(message,
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// statusFor maps core errors onto HTTP status codes. Anything that is not a
// missing resource or a missing identity is a bad request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrProjectNotFound),
		errors.Is(err, core.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrMissingIdentity):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

func publicError(err error) string {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return unexpectedErr
}

func requestID(r *http.Request) string {
	return middleware.RequestIDFromContext(r.Context())
}
