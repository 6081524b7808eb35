package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/septumca/story-service/internal/models"
	"github.com/septumca/story-service/internal/repository"
)

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	findByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	findByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	listFunc           func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// Verify Tests
// =============================================================================

func TestVerify_Success(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice", Password: "pw", Salt: "xyz"}
	mockRepo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			if username != "alice" {
				return nil, repository.ErrNotFound
			}
			return alice, nil
		},
	}

	svc := NewAuthService(mockRepo, testLogger())

	user, err := svc.Verify(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("Verify() error = %v, want nil", err)
	}
	if user.ID != 1 || user.Username != "alice" {
		t.Errorf("Verify() user = %+v, want alice (id 1)", user)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	mockRepo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "alice", Password: "pw", Salt: "xyz"}, nil
		},
	}

	svc := NewAuthService(mockRepo, testLogger())

	if _, err := svc.Verify(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerify_UnknownUser(t *testing.T) {
	mockRepo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, repository.ErrNotFound
		},
	}

	svc := NewAuthService(mockRepo, testLogger())

	if _, err := svc.Verify(context.Background(), "nobody", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}

// A store error must be indistinguishable from a credential mismatch.
func TestVerify_StoreErrorLooksLikeCredentialFailure(t *testing.T) {
	mockRepo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewAuthService(mockRepo, testLogger())

	if _, err := svc.Verify(context.Background(), "alice", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}

// The salt participates in the digest; a candidate that only matches
// when the salt boundary is ignored must still be rejected.
func TestVerify_SaltChangesDigest(t *testing.T) {
	mockRepo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 2, Username: "bob", Password: "secret", Salt: "other"}, nil
		},
	}

	svc := NewAuthService(mockRepo, testLogger())

	if _, err := svc.Verify(context.Background(), "bob", "secret"); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
	if _, err := svc.Verify(context.Background(), "bob", "secretother"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}
