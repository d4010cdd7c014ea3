package session_test

import (
	"context"
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFakeAPI serves a fiber app on a loopback listener and returns its base
// URL. The app plays the storefront API for transport and integration tests.
func startFakeAPI(t *testing.T, app *fiber.App) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

func newFakeApp() *fiber.App {
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

func TestClientSendsAuthAndRequestIDHeaders(t *testing.T) {
	app := newFakeApp()

	var gotAuth, gotRequestID string
	app.Get("/api/users/admin/getAllUsers", func(c *fiber.Ctx) error {
		gotAuth = c.Get("Authorization")
		gotRequestID = c.Get("X-Request-ID")
		return c.JSON(fiber.Map{"users": []fiber.Map{}})
	})

	creds := session.NewCredentials()
	creds.Set("tok-123")
	client := session.NewClient(startFakeAPI(t, app), creds)

	var out struct {
		Users []session.User `json:"users"`
	}
	require.NoError(t, client.Get(context.Background(), "/api/users/admin/getAllUsers", &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientAnonymousWithoutCredentials(t *testing.T) {
	app := newFakeApp()

	var gotAuth string
	app.Get("/ping", func(c *fiber.Ctx) error {
		gotAuth = c.Get("Authorization")
		return c.JSON(fiber.Map{})
	})

	client := session.NewClient(startFakeAPI(t, app), session.NewCredentials())
	require.NoError(t, client.Get(context.Background(), "/ping", nil))
	assert.Empty(t, gotAuth)
}

func TestClientSurfacesServerReportedMessage(t *testing.T) {
	app := newFakeApp()
	app.Post("/api/auth/register", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"msg": "email already registered"})
	})

	client := session.NewClient(startFakeAPI(t, app), nil)

	err := client.Post(context.Background(), "/api/auth/register", fiber.Map{}, nil)
	require.Error(t, err)
	assert.True(t, session.IsServerReported(err))
	assert.Contains(t, err.Error(), "email already registered")
}

func TestClientStatusWithoutMessageIsNotServerReported(t *testing.T) {
	app := newFakeApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusBadGateway)
	})

	client := session.NewClient(startFakeAPI(t, app), nil)

	err := client.Get(context.Background(), "/boom", nil)
	require.Error(t, err)
	assert.False(t, session.IsServerReported(err))
}

func TestClientConnectionFailureIsNotServerReported(t *testing.T) {
	// nothing listens here
	client := session.NewClient("http://127.0.0.1:1", nil)

	err := client.Get(context.Background(), "/api/users/admin/getAllUsers", nil)
	require.Error(t, err)
	assert.False(t, session.IsServerReported(err))
}

func TestClientDecodesSuccessBody(t *testing.T) {
	app := newFakeApp()
	app.Get("/api/users/u1", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": fiber.Map{"_id": "u1", "firstName": "Ada", "role": "USER"}})
	})

	client := session.NewClient(startFakeAPI(t, app), nil)

	var out struct {
		User session.User `json:"user"`
	}
	require.NoError(t, client.Get(context.Background(), "/api/users/u1", &out))
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "Ada", out.User.FirstName)
}

func TestClientDeleteWithoutBody(t *testing.T) {
	app := newFakeApp()

	var called bool
	app.Delete("/api/users/admin/deleteUser/u2", func(c *fiber.Ctx) error {
		called = true
		return c.SendStatus(fiber.StatusOK)
	})

	client := session.NewClient(startFakeAPI(t, app), nil)
	require.NoError(t, client.Delete(context.Background(), "/api/users/admin/deleteUser/u2"))
	assert.True(t, called)
}
