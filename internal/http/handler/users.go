package handler

import (
	"fmt"
	"net/http"
	"taskboard/internal/http/payload"

	"go.uber.org/zap"
)

type UserHandler struct {
	base
	users UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *UserHandler {
	return &UserHandler{
		base: base{
			logs:             logger,
			requestValidator: requestValidator,
		},
		users: userService,
	}
}

func (h *UserHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var body payload.CreateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.reject(w, "Could not create user", fmt.Errorf("invalid request payload: %w", err), CreateUser, requestId)
		return
	}

	user, err := h.users.CreateUser(r.Context(), body.ToMessage())
	if err != nil {
		h.fail(w, "Could not create user", err, CreateUser, requestId)
		return
	}

	h.logs.Infow("user created",
		"user_id", user.ID,
		"handler", CreateUser,
		"request_id", requestId)
	h.respond(w, user, http.StatusCreated, requestId)
}

func (h *UserHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	page, err := payload.ParsePageRequest(r.URL.Query())
	if err == nil {
		err = page.Validate()
	}
	if err != nil {
		h.reject(w, "Could not retrieve users", fmt.Errorf("invalid pagination: %w", err), GetUsers, requestId)
		return
	}

	users, err := h.users.GetUsers(r.Context(), page.ToPage())
	if err != nil {
		h.fail(w, "Could not retrieve users", err, GetUsers, requestId)
		return
	}

	h.respond(w, users, http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if err := payload.ValidateID(id); err != nil {
		h.reject(w, "Could not retrieve user", fmt.Errorf("invalid user id: %w", err), GetUser, requestId)
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, "Could not retrieve user", err, GetUser, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *UserHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if err := payload.ValidateID(id); err != nil {
		h.reject(w, "Could not update user", fmt.Errorf("invalid user id: %w", err), UpdateUser, requestId)
		return
	}

	var body payload.UpdateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.reject(w, "Could not update user", fmt.Errorf("invalid request payload: %w", err), UpdateUser, requestId)
		return
	}

	if err := h.users.UpdateUser(r.Context(), id, body.ToMessage()); err != nil {
		h.fail(w, "Could not update user", err, UpdateUser, requestId)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id := r.PathValue("id")
	if err := payload.ValidateID(id); err != nil {
		h.reject(w, "Could not delete user", fmt.Errorf("invalid user id: %w", err), DeleteUser, requestId)
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, "Could not delete user", err, DeleteUser, requestId)
		return
	}

	h.logs.Infow("user deleted",
		"user_id", id,
		"handler", DeleteUser,
		"request_id", requestId)
	w.WriteHeader(http.StatusNoContent)
}
