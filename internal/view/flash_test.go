package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/warblerhq/warbler/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	// Wrap a capturing handler in the session middleware so the session is
	// properly initialized in the context.
	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")

		flashes := view.GetFlashes(c)
		assert.NotEmpty(t, flashes["success"])
		assert.Equal(t, "It worked!", flashes["success"][0])
		assert.Empty(t, flashes["error"])

		// Flashes are cleared after being read.
		flashesAfterRead := view.GetFlashes(c)
		assert.Empty(t, flashesAfterRead["success"])
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "It failed!")

		flashes := view.GetFlashes(c)
		assert.NotEmpty(t, flashes["error"])
		assert.Equal(t, "It failed!", flashes["error"][0])
		assert.Empty(t, flashes["success"])
	})

	t.Run("GetFlashes with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		flashes := view.GetFlashes(c)
		assert.Empty(t, flashes["success"])
		assert.Empty(t, flashes["error"])
	})
}
