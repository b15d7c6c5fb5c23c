package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthHandler_Authorize(t *testing.T) {
	h := NewOAuthHandler("12345")
	h.newState = func() string { return "fixed-state" }

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/oauth/authorize", nil), rec)

	require.NoError(t, h.Authorize(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp authorizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fixed-state", resp.State)

	u, err := url.Parse(resp.URL)
	require.NoError(t, err)
	assert.Equal(t, "www.bungie.net", u.Host)
	assert.Equal(t, "/en/OAuth/Authorize", u.Path)
	assert.Equal(t, "12345", u.Query().Get("client_id"))
	assert.Equal(t, "code", u.Query().Get("response_type"))
	assert.Equal(t, "fixed-state", u.Query().Get("state"))
}

func TestOAuthHandler_Authorize_FreshStatePerCall(t *testing.T) {
	h := NewOAuthHandler("12345")
	e := echo.New()

	states := make(map[string]bool)
	for n := 0; n < 3; n++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/oauth/authorize", nil), rec)
		require.NoError(t, h.Authorize(c))

		var resp authorizeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		states[resp.State] = true
	}
	assert.Len(t, states, 3)
}

func TestOAuthHandler_Authorize_NotConfigured(t *testing.T) {
	h := NewOAuthHandler("")
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/oauth/authorize", nil), httptest.NewRecorder())

	var he *echo.HTTPError
	require.ErrorAs(t, h.Authorize(c), &he)
	assert.Equal(t, http.StatusServiceUnavailable, he.Code)
}
