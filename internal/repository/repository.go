package repository

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    error = errors.New("user not found")
	ErrUserExists      error = errors.New("user already exists")
	ErrProjectNotFound error = errors.New("project not found")
	ErrTaskNotFound    error = errors.New("task not found")
)

// Migrate creates or updates the tables backing every repository model.
func Migrate(db Storage) error {
	err := db.MigrateModels(&User{}, &Project{}, &Task{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}
