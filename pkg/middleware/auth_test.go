package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelance-market/internal/data/entity"
	"freelance-market/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	session *entity.Session
	err     error
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return s.session, s.err
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error { return nil }

func authHarness(repo *stubSessionRepo) (http.Handler, *uuid.UUID) {
	var seenUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			seenUserID = userID
		}
		w.WriteHeader(http.StatusOK)
	})
	return AuthSession(repo, zap.NewNop())(next), &seenUserID
}

func TestAuthSession_MissingHeader(t *testing.T) {
	handler, _ := authHarness(&stubSessionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSession_MalformedHeader(t *testing.T) {
	handler, _ := authHarness(&stubSessionRepo{})

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthSession_ExpiredOrUnknownToken(t *testing.T) {
	handler, _ := authHarness(&stubSessionRepo{session: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.New().String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSession_ValidTokenSetsUserContext(t *testing.T) {
	userID := uuid.New()
	token := uuid.New()
	repo := &stubSessionRepo{session: &entity.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	handler, seenUserID := authHarness(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *seenUserID)
}
