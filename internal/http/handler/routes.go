package handler

import (
	"net/http"
	"taskboard/internal/core"
)

var (
	Login = "POST /auth/login"

	CreateUser = "POST /users"
	GetUsers   = "GET /users"
	GetUser    = "GET /users/{id}"
	UpdateUser = "PATCH /users/{id}"
	DeleteUser = "DELETE /users/{id}"

	CreateProject    = "POST /projects"
	GetProjects      = "GET /projects"
	GetProject       = "GET /projects/{id}"
	UpdateProject    = "PATCH /projects/{id}"
	DeleteProject    = "DELETE /projects/{id}"
	AddTask          = "POST /projects/{id}/tasks"
	UpdateTaskStatus = "PATCH /projects/{id}/tasks/{taskId}"
	DeleteTask       = "DELETE /projects/{id}/tasks/{taskId}"

	Health = "GET /health"
)

// Route binds a mux pattern to its handler and the role a caller must hold.
// An empty Role marks a public route.
type Route struct {
	Pattern string
	Role    core.Role
	Handle  http.HandlerFunc
}

func Routes(auth *AuthHandler, users *UserHandler, projects *ProjectHandler) []Route {
	return []Route{
		{Pattern: Login, Handle: auth.HandleLogin},
		{Pattern: Health, Handle: HandleHealth},

		{Pattern: CreateUser, Role: core.RoleAdmin, Handle: users.HandleCreateUser},
		{Pattern: GetUsers, Role: core.RoleAdmin, Handle: users.HandleGetUsers},
		{Pattern: GetUser, Role: core.RoleAdmin, Handle: users.HandleGetUser},
		{Pattern: UpdateUser, Role: core.RoleAdmin, Handle: users.HandleUpdateUser},
		{Pattern: DeleteUser, Role: core.RoleAdmin, Handle: users.HandleDeleteUser},

		{Pattern: CreateProject, Role: core.RoleUser, Handle: projects.HandleCreateProject},
		{Pattern: GetProjects, Role: core.RoleUser, Handle: projects.HandleGetProjects},
		{Pattern: GetProject, Role: core.RoleUser, Handle: projects.HandleGetProject},
		{Pattern: UpdateProject, Role: core.RoleUser, Handle: projects.HandleUpdateProject},
		{Pattern: DeleteProject, Role: core.RoleUser, Handle: projects.HandleDeleteProject},
		{Pattern: AddTask, Role: core.RoleUser, Handle: projects.HandleAddTask},
		{Pattern: UpdateTaskStatus, Role: core.RoleUser, Handle: projects.HandleUpdateTaskStatus},
		{Pattern: DeleteTask, Role: core.RoleUser, Handle: projects.HandleDeleteTask},
	}
}
