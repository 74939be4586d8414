package payload

import (
	"taskboard/internal/core"

	"github.com/jellydator/validation"
)

const (
	minUsernameLength = 2
	minPasswordLength = 6
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.Length(minUsernameLength, 0)),
		validation.Field(&c.Password, validation.Required, validation.Length(minPasswordLength, 0)),
	)
}

func (c CreateUserRequest) ToMessage() core.UserMessage {
	return core.UserMessage{
		Username: c.Username,
		Password: c.Password,
	}
}

// UpdateUserRequest carries a partial update. Absent fields stay unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (u UpdateUserRequest) partial() {}

func (u UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.NilOrNotEmpty, validation.Length(minUsernameLength, 0)),
		validation.Field(&u.Password, validation.NilOrNotEmpty, validation.Length(minPasswordLength, 0)),
	)
}

func (u UpdateUserRequest) ToMessage() core.UserUpdateMessage {
	return core.UserUpdateMessage{
		Username: u.Username,
		Password: u.Password,
	}
}
