package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/config"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// TokenPair carries an issued access/refresh token pair along with the
// refresh token's issue and expiry times as unix seconds.
type TokenPair struct {
	Access    string
	Refresh   string
	IssuedAt  int64
	ExpiresAt int64
}

// TokenService issues and refreshes token pairs against the user store.
// Refresh token rotation and blacklisting follow the auth configuration.
type TokenService struct {
	userStore  store.UserStore
	blacklist  store.TokenBlacklistStore
	jwtService JWTService
	verifier   PasswordVerifier

	rotateRefreshTokens    bool
	blacklistAfterRotation bool

	logger *slog.Logger
}

// NewTokenService creates a new TokenService.
// If logger is nil, a default logger will be used.
func NewTokenService(
	userStore store.UserStore,
	blacklist store.TokenBlacklistStore,
	jwtService JWTService,
	verifier PasswordVerifier,
	cfg config.AuthConfig,
	log *slog.Logger,
) *TokenService {
	if log == nil {
		log = slog.Default()
	}

	return &TokenService{
		userStore:              userStore,
		blacklist:              blacklist,
		jwtService:             jwtService,
		verifier:               verifier,
		rotateRefreshTokens:    cfg.RotateRefreshTokens,
		blacklistAfterRotation: cfg.BlacklistAfterRotation,
		logger:                 log.With(slog.String("component", "token_service")),
	}
}

// ObtainPair authenticates the username/password pair and issues a new
// access/refresh token pair. Unknown users, wrong passwords and inactive
// users all return ErrInvalidCredentials so callers cannot distinguish
// them.
func (s *TokenService) ObtainPair(ctx context.Context, username, password string) (*TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("token obtain failed: unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for token obtain",
			slog.String("error", err.Error()))
		return nil, err
	}

	if !user.IsActive {
		log.Debug("token obtain failed: inactive user",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("token obtain failed: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	log.Info("token pair issued",
		slog.String("user_id", user.ID.String()))
	return pair, nil
}

// Refresh validates the given refresh token and issues a new access token.
// With rotation enabled the returned pair also carries a fresh refresh
// token, and with blacklisting enabled the old token's ID is recorded so
// it cannot be replayed. Without rotation the Refresh field is empty.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	blacklisted, err := s.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		log.Error("failed to check token blacklist",
			slog.String("error", err.Error()))
		return nil, err
	}
	if blacklisted {
		log.Warn("refresh attempted with blacklisted token",
			slog.String("user_id", claims.UserID.String()),
			slog.String("jti", claims.ID))
		return nil, ErrInvalidRefreshToken
	}

	if !s.rotateRefreshTokens {
		access, err := s.jwtService.GenerateToken(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		return &TokenPair{Access: access}, nil
	}

	pair, err := s.issuePair(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if s.blacklistAfterRotation {
		if err := s.blacklist.Add(ctx, claims.ID, claims.ExpiresAt); err != nil {
			log.Error("failed to blacklist rotated refresh token",
				slog.String("error", err.Error()),
				slog.String("jti", claims.ID))
			return nil, err
		}
	}

	log.Info("refresh token rotated",
		slog.String("user_id", claims.UserID.String()))
	return pair, nil
}

// PurgeBlacklist drops blacklist entries whose tokens have expired on
// their own. An expired refresh token fails validation before the
// blacklist is consulted, so those entries are dead weight. Run at
// server startup.
func (s *TokenService) PurgeBlacklist(ctx context.Context) (int, error) {
	removed, err := s.blacklist.PurgeExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge token blacklist: %w", err)
	}

	if removed > 0 {
		s.logger.Info("purged expired blacklist entries",
			slog.Int("removed", removed))
	}
	return removed, nil
}

// issuePair generates an access/refresh pair for the user and reads the
// issue and expiry times back off the refresh token's claims.
func (s *TokenService) issuePair(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	access, err := s.jwtService.GenerateToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	refresh, err := s.jwtService.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	claims, err := s.jwtService.ValidateRefreshToken(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to read back refresh token claims: %w", err)
	}

	return &TokenPair{
		Access:    access,
		Refresh:   refresh,
		IssuedAt:  claims.IssuedAt.Unix(),
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

// IsCredentialError reports whether the error is an authentication failure
// rather than an infrastructure one.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsTokenError reports whether the error is any of the token validation
// failures.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrTokenNotYetValid) ||
		errors.Is(err, ErrInvalidRefreshToken) ||
		errors.Is(err, ErrExpiredRefreshToken) ||
		errors.Is(err, ErrWrongTokenType)
}
