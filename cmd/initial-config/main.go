// Package main implements the bootstrap tool that seeds a fresh database
// with a default account and a superuser. The API only accepts
// authenticated requests, so the first user has to come from outside it.
//
// The generated password is printed once to stdout and stored only as a
// hash.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kencar17/simple-blog-api/internal/config"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/platform/postgres"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
	"github.com/kencar17/simple-blog-api/internal/store"
)

func main() {
	accountName := flag.String("account-name", "default", "name of the bootstrap account")
	contactEmail := flag.String("contact-email", "", "contact email of the bootstrap account (required)")
	username := flag.String("username", "", "email-shaped username of the superuser (required)")
	flag.Parse()

	if *contactEmail == "" || *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*accountName, *contactEmail, *username); err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}
}

func run(accountName, contactEmail, username string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database connection", "error", err)
		}
	}()

	if err := runMigrations(db, appLogger); err != nil {
		return err
	}

	ctx := context.Background()
	accountStore := postgres.NewPostgresAccountStore(db, appLogger)
	userStore := postgres.NewPostgresUserStore(db, appLogger)

	account, err := domain.NewAccount(accountName, contactEmail, "")
	if err != nil {
		return fmt.Errorf("invalid bootstrap account: %w", err)
	}
	if err := accountStore.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrAccountNameExists) {
			return fmt.Errorf("account %q already exists, nothing to do", accountName)
		}
		return fmt.Errorf("failed to create bootstrap account: %w", err)
	}

	user, err := domain.NewSuperuser(account.ID, username)
	if err != nil {
		return fmt.Errorf("invalid bootstrap superuser: %w", err)
	}

	plaintext, err := domain.RandomPassword(domain.GeneratedPasswordLength)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	hashed, err := auth.NewBcryptHasher(0).Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed

	if err := userStore.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create bootstrap superuser: %w", err)
	}

	appLogger.Info("bootstrap complete",
		"account_id", account.ID,
		"user_id", user.ID)

	fmt.Printf("Account:  %s (%s)\n", account.AccountName, account.ID)
	fmt.Printf("User:     %s (%s)\n", user.Username, user.ID)
	fmt.Printf("Password: %s\n", plaintext)
	fmt.Println("Store this password now; it is not recoverable.")
	return nil
}
