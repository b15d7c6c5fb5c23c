package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

func rbacContext(role string) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if role != "" {
		c.Set("role", role)
	}
	return c
}

func TestRBAC_Allows(t *testing.T) {
	called := false
	h := RBAC(domain.RoleAdmin, domain.RoleReader)(func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, h(rbacContext(domain.RoleReader)))
	assert.True(t, called)
}

func TestRBAC_Forbids(t *testing.T) {
	tests := []struct {
		name  string
		role  string
		roles []string
	}{
		{"reader on admin route", domain.RoleReader, []string{domain.RoleAdmin}},
		{"no role", "", []string{domain.RoleAdmin, domain.RoleReader}},
		{"unknown role", "owner", []string{domain.RoleAdmin, domain.RoleReader}},
		{"no roles allowed", domain.RoleAdmin, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RBAC(tt.roles...)(func(c echo.Context) error {
				t.Fatal("next handler reached")
				return nil
			})
			assert.ErrorIs(t, h(rbacContext(tt.role)), domain.ErrForbidden)
		})
	}
}
