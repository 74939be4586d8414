package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"taskboard/internal/config"
	"taskboard/internal/core"
	"taskboard/internal/db"
	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"
	"taskboard/internal/http/server"
	"taskboard/internal/repository"
	"taskboard/pkg/jwt"
	"taskboard/pkg/log"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

const serviceName = "taskboard"

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewGormDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	if err = repository.Migrate(dbConn); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.AppSecret))

	// repositories
	userRepo := repository.NewUserRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn)

	// services
	authService := core.NewAuthService(logger, userRepo, jwtService)
	userService := core.NewUserService(logger, userRepo)
	projectService := core.NewProjectService(logger, projectRepo)

	err = userService.EnsureAdmin(context.Background(), core.UserMessage{
		Username: config.AdminUsername,
		Password: config.AdminPassword,
	})
	if err != nil {
		logger.Errorw("failed to ensure admin account", "error", err)
		return err
	}

	// handlers
	decoder := payload.Decoder{}
	routes := handler.Routes(
		handler.NewAuthHandler(logger, decoder, authService),
		handler.NewUserHandler(logger, decoder, userService),
		handler.NewProjectHandler(logger, decoder, projectService),
	)

	// register routes
	mux := http.NewServeMux()
	guard := middleware.NewRoleGuard(logger)
	measure := middleware.NewMetricsMiddleware()
	for _, route := range routes {
		mux.Handle(route.Pattern, measure.Measure(route.Pattern, guard.Require(route.Role, route.Handle)))
	}
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	hdlr := middleware.NewTokenMiddleware(logger, authService).DecodeToken(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
