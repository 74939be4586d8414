package core

import (
	"context"
	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUsers(ctx context.Context, offset, limit int) ([]repository.User, error)
	UpdateUser(ctx context.Context, id string, update repository.UserUpdate) error
	DeleteUser(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name ProjectRepository . ProjectRepository
type ProjectRepository interface {
	CreateProject(ctx context.Context, project repository.Project) error
	GetProjects(ctx context.Context, offset, limit int) ([]repository.Project, error)
	GetProjectByID(ctx context.Context, id string) (repository.Project, error)
	UpdateProject(ctx context.Context, id string, update repository.ProjectUpdate) error
	DeleteProject(ctx context.Context, id string) error
	AddTask(ctx context.Context, task repository.Task) error
	UpdateTaskStatus(ctx context.Context, taskID string, status string) error
	DeleteTask(ctx context.Context, taskID string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
