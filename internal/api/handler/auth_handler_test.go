package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanops/clan-gateway/internal/core/domain"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

// recordingAuthService remembers the last call and answers with the
// configured operator, session or error.
type recordingAuthService struct {
	calls              int
	username, password string
	role               string

	op   *domain.Operator
	sess *ports.Session
	err  error
}

func (s *recordingAuthService) Register(_ context.Context, username, password, role string) (*domain.Operator, error) {
	s.calls++
	s.username, s.password, s.role = username, password, role
	return s.op, s.err
}

func (s *recordingAuthService) Login(_ context.Context, username, password string) (*ports.Session, error) {
	s.calls++
	s.username, s.password = username, password
	return s.sess, s.err
}

func newAuthContext(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &recordingAuthService{op: &domain.Operator{
		ID: "op-alice", Username: "alice", PasswordHash: "$2a$10$hash", Role: domain.RoleAdmin, CreatedAt: created,
	}}
	c, rec := newAuthContext("/auth/register", `{"username":"Alice","password":"correct-horse","role":"admin"}`)

	require.NoError(t, NewAuthHandler(svc).Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Alice", svc.username)
	assert.Equal(t, domain.RoleAdmin, svc.role)

	var got operatorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, operatorResponse{ID: "op-alice", Username: "alice", Role: domain.RoleAdmin, CreatedAt: created}, got)
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAuthHandler_Register_RejectsBeforeService(t *testing.T) {
	cases := map[string]struct {
		body string
		code int
		want string
	}{
		"malformed json":   {`{"username":`, http.StatusBadRequest, "invalid payload"},
		"missing username": {`{"password":"correct-horse","role":"reader"}`, http.StatusUnprocessableEntity, "username is required"},
		"short password":   {`{"username":"alice","password":"short","role":"reader"}`, http.StatusUnprocessableEntity, "password must be at least 8"},
		"long password": {
			fmt.Sprintf(`{"username":"alice","password":%q,"role":"reader"}`, strings.Repeat("x", 73)),
			http.StatusUnprocessableEntity, "password must be at most 72",
		},
		"unknown role": {`{"username":"alice","password":"correct-horse","role":"owner"}`, http.StatusUnprocessableEntity, "role must be one of: admin reader"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &recordingAuthService{}
			c, _ := newAuthContext("/auth/register", tc.body)

			var he *echo.HTTPError
			require.ErrorAs(t, NewAuthHandler(svc).Register(c), &he)
			assert.Equal(t, tc.code, he.Code)
			assert.Contains(t, he.Message, tc.want)
			assert.Zero(t, svc.calls)
		})
	}
}

func TestAuthHandler_PassesServiceErrorsThrough(t *testing.T) {
	exists := fmt.Errorf("register alice: %w", domain.ErrOperatorExists)
	svc := &recordingAuthService{err: exists}
	c, _ := newAuthContext("/auth/register", `{"username":"alice","password":"correct-horse","role":"reader"}`)
	assert.Same(t, exists, NewAuthHandler(svc).Register(c))

	svc = &recordingAuthService{err: domain.ErrInvalidCredentials}
	c, _ = newAuthContext("/auth/login", `{"username":"alice","password":"wrong"}`)
	assert.Same(t, domain.ErrInvalidCredentials, NewAuthHandler(svc).Login(c))
}

func TestAuthHandler_Login_ReturnsSession(t *testing.T) {
	expires := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	svc := &recordingAuthService{sess: &ports.Session{
		Token:     "signed.jwt.value",
		ExpiresAt: expires,
		Operator:  &domain.Operator{ID: "op-alice", Username: "alice", Role: domain.RoleReader},
	}}
	c, rec := newAuthContext("/auth/login", `{"username":"alice","password":"correct-horse"}`)

	require.NoError(t, NewAuthHandler(svc).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "correct-horse", svc.password)

	var got loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "signed.jwt.value", got.Token)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, expires, got.ExpiresAt)
	assert.Equal(t, domain.RoleReader, got.Operator.Role)
}

func TestAuthHandler_Login_RequiresBothFields(t *testing.T) {
	svc := &recordingAuthService{}
	c, _ := newAuthContext("/auth/login", `{"username":"alice"}`)

	var he *echo.HTTPError
	require.ErrorAs(t, NewAuthHandler(svc).Login(c), &he)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	assert.Contains(t, he.Message, "password is required")
	assert.Zero(t, svc.calls)
}
