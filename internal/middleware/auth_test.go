package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/middleware"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// stubUserRepo only implements the lookup the Auth middleware uses.
type stubUserRepo struct {
	domain.UserRepository
	user *domain.User
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if s.user != nil && s.user.Key() == id {
		return s.user, nil
	}
	return nil, domain.ErrNotFound
}

func setupAuthMiddleware(users domain.UserRepository) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	e.GET("/login-as/:id", func(c echo.Context) error {
		if err := middleware.SignIn(c, c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/protected", func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		return c.String(http.StatusOK, "hello "+user.Username)
	}, middleware.Auth(users))

	return e
}

func loginAs(t *testing.T, e *echo.Echo, id string) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/login-as/"+id, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Result().Cookies()
}

func TestAuth_RedirectsAnonymousVisitors(t *testing.T) {
	e := setupAuthMiddleware(&stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAuth_LoadsUserIntoContext(t *testing.T) {
	recordID := surrealmodels.NewRecordID("user", "u1")
	user := &domain.User{ID: &recordID, Username: "testuser"}
	e := setupAuthMiddleware(&stubUserRepo{user: user})
	cookies := loginAs(t, e, "u1")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello testuser", rec.Body.String())
}

func TestAuth_RedirectsStaleSession(t *testing.T) {
	e := setupAuthMiddleware(&stubUserRepo{})
	cookies := loginAs(t, e, "deleted-user")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
