package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/ledgeredge/pkg/app"
	"github.com/amirasaad/ledgeredge/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func testApp(t *testing.T, owner string) *app.App {
	t.Helper()
	t.Setenv("SERVER_OWNER", owner)
	cfg, err := config.Load()
	require.NoError(t, err)
	return app.New(&app.Deps{}, cfg)
}

func TestSetup_OpensAccountForOwner(t *testing.T) {
	a := testApp(t, "Alice")
	fiberApp, err := setup(context.Background(), a)
	require.NoError(t, err)

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/account", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	view, err := a.AccountService.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", view.OwnerName)
	assert.True(t, view.Active)
}

func TestSetup_EmptyOwnerIsUnknown(t *testing.T) {
	a := testApp(t, "")
	_, err := setup(context.Background(), a)
	require.NoError(t, err)

	view, err := a.AccountService.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Unknown", view.OwnerName)
}

func TestSetup_AccountAlreadyOpen(t *testing.T) {
	a := testApp(t, "Alice")
	_, err := a.AccountService.Open(context.Background(), "Bob")
	require.NoError(t, err)

	_, err = setup(context.Background(), a)
	assert.ErrorContains(t, err, "failed to open account")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	a := testApp(t, "Alice")
	fiberApp, err := setup(context.Background(), a)
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, fiberApp, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
		if err != nil {
			return false
		}
		resp.Body.Close() //nolint: errcheck
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}
