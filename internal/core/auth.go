package core

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"
	"taskboard/pkg/metrics"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenExpiration is the lifetime of every issued access token. There is no refresh.
const tokenExpiration = time.Hour

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrInvalidClaims error = errors.New("invalid token claims")

// AuthService signs users in and decodes the identity carried by their tokens.
type AuthService struct {
	logs      *zap.SugaredLogger
	users     UserRepository
	jwtIssuer JWTIssuer
}

func NewAuthService(logger *zap.SugaredLogger, users UserRepository, jwt JWTIssuer) *AuthService {
	return &AuthService{
		logs:      logger,
		users:     users,
		jwtIssuer: jwt,
	}
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it returns a signed access token for the user.
func (a *AuthService) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.users.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			metrics.IncrementLoginAttempt(metrics.LoginInvalidCredentials)
			return "", ErrUserNotFound
		}
		metrics.IncrementLoginAttempt(metrics.LoginFailed)
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		metrics.IncrementLoginAttempt(metrics.LoginInvalidCredentials)
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Roles:      user.Roles,
		Expiration: tokenExpiration,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		metrics.IncrementLoginAttempt(metrics.LoginFailed)
		return "", fmt.Errorf("signing token: %w", err)
	}

	metrics.IncrementLoginAttempt(metrics.LoginSucceeded)
	a.logs.Infow("user signed in", "userId", user.ID)
	return signed, nil
}

// Identify verifies the token and returns the identity stored in its claims.
func (a *AuthService) Identify(token string) (Identity, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("validate jwt token: %w", err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return Identity{}, fmt.Errorf("missing subject: %w", ErrInvalidClaims)
	}

	username, _ := claims["username"].(string)

	rawRoles, ok := claims["roles"].([]interface{})
	if !ok {
		return Identity{}, fmt.Errorf("missing roles: %w", ErrInvalidClaims)
	}

	roles := make([]Role, 0, len(rawRoles))
	for _, r := range rawRoles {
		role, ok := r.(string)
		if !ok {
			return Identity{}, fmt.Errorf("malformed role %v: %w", r, ErrInvalidClaims)
		}
		roles = append(roles, Role(role))
	}

	return Identity{
		UserID:   userID,
		Username: username,
		Roles:    roles,
	}, nil
}
