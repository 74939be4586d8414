package handler

import (
	"context"
	"net/http"
	"taskboard/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	CreateUser(ctx context.Context, msg core.UserMessage) (core.UserRecord, error)
	GetUsers(ctx context.Context, page core.Page) ([]core.UserRecord, error)
	GetUser(ctx context.Context, id string) (core.UserRecord, error)
	UpdateUser(ctx context.Context, id string, msg core.UserUpdateMessage) error
	DeleteUser(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name ProjectService . ProjectService
type ProjectService interface {
	CreateProject(ctx context.Context, creator core.Identity, msg core.ProjectMessage) (core.ProjectRecord, error)
	GetProjects(ctx context.Context, page core.Page) ([]core.ProjectRecord, error)
	GetProject(ctx context.Context, id string) (core.ProjectRecord, error)
	UpdateProject(ctx context.Context, id string, msg core.ProjectUpdateMessage) error
	DeleteProject(ctx context.Context, id string) error
	AddTask(ctx context.Context, projectID string, msg core.TaskMessage) (core.ProjectRecord, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status core.TaskStatus) error
	DeleteTask(ctx context.Context, taskID string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
