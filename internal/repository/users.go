package repository

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/db"
)

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *UserRepository) GetUsers(ctx context.Context, offset, limit int) ([]User, error) {
	users := []User{}
	err := r.db.GetPage(ctx, offset, limit, &users)
	if err != nil {
		return nil, fmt.Errorf("get users page: %w", err)
	}

	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, update UserUpdate) error {
	fields := map[string]any{}
	if update.Username != nil {
		fields["username"] = *update.Username
	}
	if update.PasswordHash != nil {
		fields["password_hash"] = *update.PasswordHash
	}

	if len(fields) == 0 {
		_, err := r.GetUserByID(ctx, id)
		return err
	}

	affected, err := r.db.UpdateBy(ctx, "id", id, &User{}, fields)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	affected, err := r.db.DeleteBy(ctx, "id", id, &User{})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) getUserBy(ctx context.Context, column string, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}
