package main

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"turfdesk/internal/ratelimiter"
)

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestBasicAuthMiddleware(t *testing.T) {
	app := newTestApp("http://backend.invalid")
	h := app.mount()

	t.Run("missing credentials get a challenge", func(t *testing.T) {
		rr := do(h, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("wrong credentials are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.Header.Set("Authorization", basicAuth("admin", "wrong"))
		assert.Equal(t, http.StatusUnauthorized, do(h, req).Code)
	})

	t.Run("correct credentials reach the health check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.Header.Set("Authorization", basicAuth("admin", "secret"))
		rr := do(h, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	})

	t.Run("a bcrypt hash in config verifies the given password", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)

		hashed := newTestApp("http://backend.invalid")
		hashed.config.auth.basic.pass = string(hash)
		hh := hashed.mount()

		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.Header.Set("Authorization", basicAuth("admin", "s3cret"))
		assert.Equal(t, http.StatusOK, do(hh, req).Code)

		req = httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.Header.Set("Authorization", basicAuth("admin", "not-it"))
		assert.Equal(t, http.StatusUnauthorized, do(hh, req).Code)
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	app := newTestApp("http://backend.invalid")
	app.config.rateLimiter = ratelimiter.Config{
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}
	app.rateLimiter = ratelimiter.NewFixedWindowLimiter(2, time.Minute)
	h := app.mount()

	newForm := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/turfs/new", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		req.Header.Set("Accept", "application/json")
		return do(h, req)
	}

	assert.Equal(t, http.StatusCreated, newForm().Code)
	assert.Equal(t, http.StatusCreated, newForm().Code)

	rr := newForm()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}
