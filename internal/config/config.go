package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	logLevelEnvKey      = "LOG_LEVEL"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	appSecretEnvKey     = "APPLICATION_SECRET"
	adminUsernameEnvKey = "ADMIN_USERNAME"
	adminPasswordEnvKey = "ADMIN_PASSWORD"

	defaultPort     = "8080"
	defaultLogLevel = "info"
)

type App struct {
	Port               string
	LogLevel           string
	DBConnectionString string
	AppSecret          string
	AdminUsername      string
	AdminPassword      string
}

// NewAppConfig reads the application settings from the environment. A .env
// file in the working directory is loaded first when one exists; variables
// already set in the environment take precedence over it.
func NewAppConfig() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	dbConn, err := required(dbConnEnvKey)
	if err != nil {
		return App{}, err
	}

	appSecret, err := required(appSecretEnvKey)
	if err != nil {
		return App{}, err
	}

	adminUsername, err := required(adminUsernameEnvKey)
	if err != nil {
		return App{}, err
	}

	adminPassword, err := required(adminPasswordEnvKey)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:               optional(apiPortEnvKey, defaultPort),
		LogLevel:           optional(logLevelEnvKey, defaultLogLevel),
		DBConnectionString: dbConn,
		AppSecret:          appSecret,
		AdminUsername:      adminUsername,
		AdminPassword:      adminPassword,
	}, nil
}

func required(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return value, nil
}

func optional(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
