package core

import "slices"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists every accepted task status. Any status may follow any other.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// DefaultPageSize is used when a listing does not ask for a size.
const DefaultPageSize = 25

type Page struct {
	Offset int
	Limit  int
}

// Identity is the caller decoded from a verified access token.
type Identity struct {
	UserID   string
	Username string
	Roles    []Role
}

func (i Identity) HasRole(role Role) bool {
	return slices.Contains(i.Roles, role)
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserMessage struct {
	Username string
	Password string
}

type UserUpdateMessage struct {
	Username *string
	Password *string
}

type ProjectMessage struct {
	Name        string
	Description string
}

type ProjectUpdateMessage struct {
	Name        *string
	Description *string
}

type TaskMessage struct {
	Name        string
	Description string
	Status      TaskStatus
}

// UserRecord is the wire form of a user. Password always carries the bcrypt
// hash, never the plaintext.
type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Roles    []Role `json:"roles"`
}

type ProjectRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatorID   string       `json:"creatorId"`
	Tasks       []TaskRecord `json:"tasks"`
}

type TaskRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}
