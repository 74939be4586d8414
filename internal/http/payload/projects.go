package payload

import (
	"taskboard/internal/core"

	"github.com/jellydator/validation"
)

const minNameLength = 2

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(minNameLength, 0)),
		validation.Field(&c.Description, validation.Required),
	)
}

func (c CreateProjectRequest) ToMessage() core.ProjectMessage {
	return core.ProjectMessage{
		Name:        c.Name,
		Description: c.Description,
	}
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (u UpdateProjectRequest) partial() {}

func (u UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.NilOrNotEmpty, validation.Length(minNameLength, 0)),
		validation.Field(&u.Description, validation.NilOrNotEmpty),
	)
}

func (u UpdateProjectRequest) ToMessage() core.ProjectUpdateMessage {
	return core.ProjectUpdateMessage{
		Name:        u.Name,
		Description: u.Description,
	}
}

type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (c CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(minNameLength, 0)),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.Status, validation.Required, validation.In(taskStatuses()...)),
	)
}

func (c CreateTaskRequest) ToMessage() core.TaskMessage {
	return core.TaskMessage{
		Name:        c.Name,
		Description: c.Description,
		Status:      core.TaskStatus(c.Status),
	}
}

type UpdateTaskRequest struct {
	Status string `json:"status"`
}

func (u UpdateTaskRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Status, validation.Required, validation.In(taskStatuses()...)),
	)
}

func (u UpdateTaskRequest) ToStatus() core.TaskStatus {
	return core.TaskStatus(u.Status)
}

func taskStatuses() []any {
	statuses := make([]any, 0, len(core.TaskStatuses))
	for _, s := range core.TaskStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}
