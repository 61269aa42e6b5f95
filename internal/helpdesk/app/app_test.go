package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		Issuer:               "masterticket-test",
		SessionTTL:           time.Hour,
		DatabaseFile:         filepath.Join(dir, "mt.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		Env:                  "dev",
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
		SessionRetention:     time.Hour,
		RateLimits:           httpx.DefaultRateLimits(),
	}
}

func TestNew_ServesHealth(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	rec := httptest.NewRecorder()
	application.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_RejectsShortSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = "too-short"

	_, err := New(cfg)
	require.Error(t, err)
}

func TestHousekeep(t *testing.T) {
	cfg := testConfig(t)

	n, err := Housekeep(slogx.WithContext(context.Background(), slogx.Discard()), cfg)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Port = 0

	application, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.Error(t, application.db.Ping(context.Background()), "database is closed")
}
