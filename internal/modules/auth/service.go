package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/token"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type tokenCodec interface {
	IssueAccessToken(userID int64) (string, error)
	IssueRefreshToken() (*token.RefreshToken, error)
	RefreshTTL() time.Duration
}

// Service is the only component that mints or invalidates credentials.
// It talks to storage through the narrow repository interfaces and knows
// nothing about HTTP, cookies or sessions.
type Service struct {
	users  UserRepositoryInterface
	tokens RefreshTokenRepositoryInterface
	codec  tokenCodec
	now    func() time.Time
}

// TokenPair is what login and refresh hand back: a short-lived access
// token, the raw (never stored) refresh token, and the user's public fields.
type TokenPair struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(users UserRepositoryInterface, tokens RefreshTokenRepositoryInterface, codec tokenCodec) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		codec:  codec,
		now:    time.Now,
	}
}

// Register creates a user and returns its id. Both uniqueness checks run
// before any write so a failed registration leaves nothing behind; the DB
// unique constraints remain as a backstop for the check-then-insert race.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return 0, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, mapDuplicateErr(err)
	}

	return user.ID, nil
}

// Login verifies credentials and issues a token pair. Unknown username and
// wrong password fail identically so error text can't enumerate users.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(ctx, user)
}

// Refresh rotates a refresh token. The ordering matters: the new token is
// persisted before the old one is revoked, so a failure mid-way can leave a
// redundant valid token but never strand the caller with none.
func (s *Service) Refresh(ctx context.Context, rawToken string) (*TokenPair, error) {
	hash := token.HashRefreshToken(rawToken)

	record, err := s.tokens.FindActiveByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// One error for never-issued and already-revoked alike.
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if record.IsExpired(s.now()) {
		if err := s.tokens.RevokeByHash(ctx, hash); err != nil {
			log.Printf("auth: revoke of expired refresh token failed: user_id=%d err=%v", record.UserID, err)
		}
		return nil, ErrRefreshTokenExpired
	}

	user, err := s.users.FindByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	// Best effort: the new token is already valid, a failed revoke only
	// leaves a redundant old token until its own expiry.
	if err := s.tokens.RevokeByHash(ctx, hash); err != nil {
		log.Printf("auth: revoke of rotated refresh token failed: user_id=%d err=%v", user.ID, err)
	}

	return pair, nil
}

// Revoke invalidates a refresh token by raw value. Logout must always
// succeed from the caller's perspective, so store failures are logged and
// swallowed and an unknown token is a no-op.
func (s *Service) Revoke(ctx context.Context, rawToken string) {
	if rawToken == "" {
		return
	}
	if err := s.tokens.RevokeByHash(ctx, token.HashRefreshToken(rawToken)); err != nil {
		log.Printf("auth: revoke refresh token failed: err=%v", err)
	}
}

// CurrentUser resolves the authenticated user's public record.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// RoleByID resolves a user's role for authorization middleware.
func (s *Service) RoleByID(ctx context.Context, userID int64) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return string(user.Role), nil
}

// RefreshTTL is exposed for cookie-expiry calculation by callers.
func (s *Service) RefreshTTL() time.Duration {
	return s.codec.RefreshTTL()
}

func (s *Service) issuePair(ctx context.Context, user *domain.User) (*TokenPair, error) {
	accessToken, err := s.codec.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	refresh, err := s.codec.IssueRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Create(ctx, &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: refresh.Hash,
		ExpiresAt: refresh.ExpiresAt,
	}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &TokenPair{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refresh.Raw,
	}, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	}
	return err
}
