// Package testutils builds isolated applications for boundary tests. Every
// call to New gets its own freshly seeded ledger, so tests never share state.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rwalabs/bridgemaker/pkg/app"
	"github.com/rwalabs/bridgemaker/pkg/config"
	"github.com/rwalabs/bridgemaker/webapi"
)

// New returns a Fiber app over an isolated, freshly seeded ledger. The rate
// limiter is configured loose enough to stay out of the way.
func New(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.App{
		Env: "test",
		RateLimit: config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return webapi.SetupApp(app.New(cfg, logger))
}

// MakeRequest performs a JSON request against the test app and returns the
// response.
func MakeRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// RandomUsername returns a unique username for user creation tests.
func RandomUsername() string {
	return "user_" + uuid.New().String()[:8]
}
