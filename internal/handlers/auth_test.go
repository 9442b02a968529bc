package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/handlers"
	"github.com/warblerhq/warbler/internal/rendering"
)

func setupAuthTest(users *mockUserRepo) *echo.Echo {
	e := newTestEcho()
	h := handlers.NewAuthHandler(users, rendering.NewUniversalRenderer())

	e.GET("/signup", h.SignupGet)
	e.POST("/signup", h.SignupPost)
	e.GET("/login", h.LoginGet)
	e.POST("/login", h.LoginPost)
	e.GET("/logout", h.Logout)
	return e
}

func postForm(e *echo.Echo, path string, form url.Values) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, req
}

func TestSignupPost_CreatesUserAndSignsIn(t *testing.T) {
	users := newMockUserRepo()
	e := setupAuthTest(users)

	form := url.Values{}
	form.Set("username", "newuser")
	form.Set("email", "newuser@test.com")
	form.Set("password", "password123")
	rec, req := postForm(e, "/signup", form)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.NotNil(t, users.created)
	assert.Equal(t, "newuser", users.created.Username)
	assert.Equal(t, domain.DefaultImageURL, users.created.ImageURL)
	assertFlashMessage(t, req, "success", "Welcome to Warbler, newuser!")
}

func TestSignupPost_ValidationFailureReRendersForm(t *testing.T) {
	e := setupAuthTest(newMockUserRepo())

	form := url.Values{}
	form.Set("username", "newuser")
	form.Set("email", "not-an-email")
	form.Set("password", "short")
	rec, _ := postForm(e, "/signup", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "E-mail must be a valid e-mail address.")
	assert.Contains(t, body, "Password must be at least 6 characters long.")
	// Submitted values survive the re-render.
	assert.Contains(t, body, `value="newuser"`)
}

func TestSignupPost_UsernameTaken(t *testing.T) {
	users := newMockUserRepo()
	users.createErr = domain.ErrUsernameTaken
	e := setupAuthTest(users)

	form := url.Values{}
	form.Set("username", "taken")
	form.Set("email", "taken@test.com")
	form.Set("password", "password123")
	rec, _ := postForm(e, "/signup", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already taken.")
}

func TestLoginPost_Success(t *testing.T) {
	user := newTestUser("u1", "testuser")
	e := setupAuthTest(newMockUserRepo(user))

	form := url.Values{}
	form.Set("username", "testuser")
	form.Set("password", "password123")
	rec, req := postForm(e, "/login", form)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assertFlashMessage(t, req, "success", "Hello, testuser!")
}

func TestLoginPost_InvalidCredentials(t *testing.T) {
	users := newMockUserRepo(newTestUser("u1", "testuser"))
	users.authErr = domain.ErrInvalidCredentials
	e := setupAuthTest(users)

	form := url.Values{}
	form.Set("username", "testuser")
	form.Set("password", "wrongpass")
	rec, _ := postForm(e, "/login", form)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Invalid username or password.")
	assert.NotContains(t, body, "wrongpass")
}

func TestLogout_ClearsSessionAndRedirects(t *testing.T) {
	e := setupAuthTest(newMockUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assertFlashMessage(t, req, "success", "You have been logged out.")
}
