package core

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUsernameTaken error = errors.New("username already taken")

type UserService struct {
	logs *zap.SugaredLogger
	repo UserRepository
}

func NewUserService(logger *zap.SugaredLogger, repo UserRepository) *UserService {
	return &UserService{
		logs: logger,
		repo: repo,
	}
}

// CreateUser registers a new user with the USER role.
func (s *UserService) CreateUser(ctx context.Context, msg UserMessage) (UserRecord, error) {
	return s.createUser(ctx, msg, RoleUser)
}

// CreateAdmin registers a new user with the ADMIN role.
func (s *UserService) CreateAdmin(ctx context.Context, msg UserMessage) (UserRecord, error) {
	return s.createUser(ctx, msg, RoleAdmin)
}

// EnsureAdmin creates the bootstrap admin account unless a user with that
// username already exists. Safe to call on every start.
func (s *UserService) EnsureAdmin(ctx context.Context, msg UserMessage) error {
	_, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		s.logs.Infow("admin account already present", "username", msg.Username)
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get admin from db: %w", err)
	}

	admin, err := s.CreateAdmin(ctx, msg)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.logs.Infow("admin account created", "userId", admin.ID, "username", admin.Username)
	return nil
}

func (s *UserService) GetUsers(ctx context.Context, page Page) ([]UserRecord, error) {
	users, err := s.repo.GetUsers(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	records := make([]UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, toUserRecord(u))
	}
	return records, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (UserRecord, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return UserRecord{}, userError(err)
	}
	return toUserRecord(user), nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (UserRecord, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return UserRecord{}, userError(err)
	}
	return toUserRecord(user), nil
}

// UpdateUser applies a partial update. A new password is hashed before it is stored.
func (s *UserService) UpdateUser(ctx context.Context, id string, msg UserUpdateMessage) error {
	update := repository.UserUpdate{
		Username: msg.Username,
	}

	if msg.Password != nil {
		hash, err := hashPassword(*msg.Password)
		if err != nil {
			return err
		}
		update.PasswordHash = &hash
	}

	if err := s.repo.UpdateUser(ctx, id, update); err != nil {
		return userError(err)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return userError(err)
	}
	return nil
}

func (s *UserService) createUser(ctx context.Context, msg UserMessage, role Role) (UserRecord, error) {
	_, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return UserRecord{}, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return UserRecord{}, fmt.Errorf("get user by username: %w", err)
	}

	hash, err := hashPassword(msg.Password)
	if err != nil {
		return UserRecord{}, err
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: hash,
		Roles:        rolesToStrings([]Role{role}),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return UserRecord{}, userError(err)
	}

	s.logs.Infow("user created", "userId", user.ID, "roles", user.Roles)
	return toUserRecord(user), nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func userError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrUserExists):
		return ErrUsernameTaken
	default:
		return fmt.Errorf("user repository: %w", err)
	}
}
