package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kencar17/simple-blog-api/internal/config"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/platform/postgres"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// application holds the fully wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	accountStore  store.AccountStore
	userStore     store.UserStore
	blogPostStore store.BlogPostStore
	categoryStore store.CategoryStore
	tagStore      store.TagStore
	commentStore  store.CommentStore

	jwtService   auth.JWTService
	tokenService *auth.TokenService
}

// newApplication loads configuration, sets up logging, connects to the
// database, applies pending migrations and builds the store and service
// layers.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	blacklistStore := postgres.NewPostgresTokenBlacklistStore(db, appLogger)

	tokenService := auth.NewTokenService(
		userStore,
		blacklistStore,
		jwtService,
		auth.NewBcryptVerifier(),
		cfg.Auth,
		appLogger,
	)

	// Entries for refresh tokens that expired since the last run are no
	// longer needed; they fail validation before the blacklist is checked.
	if _, err := tokenService.PurgeBlacklist(context.Background()); err != nil {
		return nil, err
	}

	return &application{
		config:        cfg,
		logger:        appLogger,
		db:            db,
		accountStore:  postgres.NewPostgresAccountStore(db, appLogger),
		userStore:     userStore,
		blogPostStore: postgres.NewPostgresBlogPostStore(db, appLogger),
		categoryStore: postgres.NewPostgresCategoryStore(db, appLogger),
		tagStore:      postgres.NewPostgresTagStore(db, appLogger),
		commentStore:  postgres.NewPostgresCommentStore(db, appLogger),
		jwtService:    jwtService,
		tokenService:  tokenService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection",
				slog.String("error", err.Error()))
		}
	}
}
