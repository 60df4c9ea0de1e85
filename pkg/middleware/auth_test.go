package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessions struct {
	sessions map[string]*entity.Session
	err      error
}

func (s *stubSessions) Create(context.Context, *entity.Session) error { return nil }

func (s *stubSessions) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sessions[token], nil
}

func (s *stubSessions) Revoke(context.Context, string) error { return nil }

type stubUsers struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }

func (s *stubUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUsers) FindByEmail(context.Context, string) (*entity.User, error)    { return nil, nil }
func (s *stubUsers) FindByUsername(context.Context, string) (*entity.User, error) { return nil, nil }

type authFixture struct {
	sessions *stubSessions
	users    *stubUsers
	guest    string
	admin    string
	adminID  uuid.UUID
}

func newAuthFixture() *authFixture {
	guestID, adminID := uuid.New(), uuid.New()
	guestToken, adminToken := uuid.NewString(), uuid.NewString()
	return &authFixture{
		sessions: &stubSessions{sessions: map[string]*entity.Session{
			guestToken: {UserID: guestID},
			adminToken: {UserID: adminID},
		}},
		users: &stubUsers{users: map[uuid.UUID]*entity.User{
			guestID: {BaseNoDelete: entity.BaseNoDelete{ID: guestID}},
			adminID: {BaseNoDelete: entity.BaseNoDelete{ID: adminID}, IsSuperuser: true},
		}},
		guest:   guestToken,
		admin:   adminToken,
		adminID: adminID,
	}
}

func serve(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthSession(t *testing.T) {
	f := newAuthFixture()

	var gotID uuid.UUID
	var gotPrivileged bool
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotPrivileged = utils.IsPrivilegedFromContext(r.Context())
		gotToken, _ = utils.GetTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := AuthSession(f.sessions, f.users, zap.NewNop())(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + f.guest, http.StatusUnauthorized},
		{"no token", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "Bearer " + uuid.NewString(), http.StatusUnauthorized},
		{"valid token", "Bearer " + f.guest, http.StatusNoContent},
		{"lowercase scheme", "bearer " + f.guest, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(h, tt.header).Code)
		})
	}

	rec := serve(h, "Bearer "+f.admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, f.adminID, gotID)
	assert.True(t, gotPrivileged)
	assert.Equal(t, f.admin, gotToken)
}

func TestAuthSessionStoreError(t *testing.T) {
	f := newAuthFixture()
	f.sessions.err = errors.New("redis down")
	h := AuthSession(f.sessions, f.users, zap.NewNop())(http.NotFoundHandler())

	assert.Equal(t, http.StatusInternalServerError, serve(h, "Bearer "+f.guest).Code)
}

func TestSuperuser(t *testing.T) {
	f := newAuthFixture()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := AuthSession(f.sessions, f.users, zap.NewNop())(Superuser(zap.NewNop())(ok))

	assert.Equal(t, http.StatusForbidden, serve(h, "Bearer "+f.guest).Code)
	assert.Equal(t, http.StatusNoContent, serve(h, "Bearer "+f.admin).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(Superuser(zap.NewNop())(ok), "").Code)
}

func TestRejectAuthenticated(t *testing.T) {
	f := newAuthFixture()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := RejectAuthenticated(f.sessions, zap.NewNop())(ok)

	assert.Equal(t, http.StatusNoContent, serve(h, "").Code)
	assert.Equal(t, http.StatusNoContent, serve(h, "Bearer "+uuid.NewString()).Code)
	assert.Equal(t, http.StatusForbidden, serve(h, "Bearer "+f.guest).Code)
}
