package handler

import (
	"errors"
	"fmt"
	"net/http"
	"taskboard/internal/core"
	"taskboard/internal/http/payload"

	"go.uber.org/zap"
)

type AuthHandler struct {
	base
	auth AuthService
}

func NewAuthHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, authService AuthService) *AuthHandler {
	return &AuthHandler{
		base: base{
			logs:             logger,
			requestValidator: requestValidator,
		},
		auth: authService,
	}
}

// HandleLogin exchanges a username and password for an access token. Every
// failure is reported as a bad request so callers cannot probe for usernames.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var body payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.reject(w, "Could not authenticate", fmt.Errorf("invalid request payload: %w", err), Login, requestId)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), body.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
			Error:   unexpectedErr,
		}
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			resp.Error = invalidCredentialsErr
		}

		h.respond(w, resp, http.StatusBadRequest, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"access_token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// HandleHealth reports that the process is serving requests.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
