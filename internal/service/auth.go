// Package service contains the business logic of the story service.
package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/septumca/story-service/internal/models"
	"github.com/septumca/story-service/internal/repository"
)

// ErrInvalidCredentials is returned for any failed verification. An
// unknown username, a store error and a password mismatch are not
// distinguishable by the caller; the cause is only logged server-side.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies submitted credentials against stored salted digests.
type AuthService interface {
	Verify(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *authService) Verify(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("credential lookup failed", "username", username, "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	stored := saltedDigest(user.Password, user.Salt)
	candidate := saltedDigest(password, user.Salt)

	if subtle.ConstantTimeCompare(stored, candidate) != 1 {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// saltedDigest computes sha256(secret || salt).
func saltedDigest(secret, salt string) []byte {
	sum := sha256.Sum256([]byte(secret + salt))
	return sum[:]
}
