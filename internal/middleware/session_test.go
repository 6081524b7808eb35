package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/septumca/story-service/internal/service"
)

const testCookie = "session_id"

type mockSessionService struct {
	getFunc func(ctx context.Context, token string) (*service.Session, error)
}

func (m *mockSessionService) Create(ctx context.Context, userID int64, username string) (string, time.Duration, error) {
	return "", 0, errors.New("not implemented")
}

func (m *mockSessionService) Get(ctx context.Context, token string) (*service.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSessionService) Destroy(ctx context.Context, token string) error {
	return errors.New("not implemented")
}

func setupRouter(sessions service.SessionService, protected bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session(sessions, testCookie))

	handler := func(c *gin.Context) {
		if session, ok := CurrentSession(c); ok {
			c.String(http.StatusOK, session.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	}

	if protected {
		router.GET("/", RequireSession(), handler)
	} else {
		router.GET("/", handler)
	}
	return router
}

func TestSession_AttachesCurrentUser(t *testing.T) {
	sessions := &mockSessionService{
		getFunc: func(ctx context.Context, token string) (*service.Session, error) {
			if token != "token123" {
				return nil, service.ErrSessionNotFound
			}
			return &service.Session{UserID: 1, Username: "alice"}, nil
		},
	}
	router := setupRouter(sessions, false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "token123"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.String() != "alice" {
		t.Errorf("body = %q, want alice", w.Body.String())
	}
}

func TestSession_NoCookiePassesThrough(t *testing.T) {
	router := setupRouter(&mockSessionService{}, false)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.String() != "anonymous" {
		t.Errorf("body = %q, want anonymous", w.Body.String())
	}
}

func TestSession_InvalidTokenPassesThroughUnauthenticated(t *testing.T) {
	sessions := &mockSessionService{
		getFunc: func(ctx context.Context, token string) (*service.Session, error) {
			return nil, service.ErrSessionNotFound
		},
	}
	router := setupRouter(sessions, false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Body.String() != "anonymous" {
		t.Errorf("body = %q, want anonymous", w.Body.String())
	}
}

func TestRequireSession_RejectsAnonymous(t *testing.T) {
	router := setupRouter(&mockSessionService{}, true)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireSession_AllowsAuthenticated(t *testing.T) {
	sessions := &mockSessionService{
		getFunc: func(ctx context.Context, token string) (*service.Session, error) {
			return &service.Session{UserID: 1, Username: "alice"}, nil
		},
	}
	router := setupRouter(sessions, true)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "token123"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
