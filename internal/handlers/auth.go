package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/forms"
	"github.com/warblerhq/warbler/internal/middleware"
	"github.com/warblerhq/warbler/internal/rendering"
	"github.com/warblerhq/warbler/internal/view"
	"github.com/warblerhq/warbler/web/src/templates/pages"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	users    domain.UserRepository
	renderer rendering.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users domain.UserRepository, renderer rendering.Renderer) *AuthHandler {
	return &AuthHandler{users: users, renderer: renderer}
}

// SignupGet renders the registration page (GET /signup).
func (h *AuthHandler) SignupGet(c echo.Context) error {
	return renderPage(c, h.renderer, http.StatusOK, "Sign up", pages.Signup(signupForm()))
}

// SignupPost handles the form submission for creating a new user.
// Validation failures re-render the form with field errors; uniqueness
// violations surface on the offending field.
func (h *AuthHandler) SignupPost(c echo.Context) error {
	var input SignupInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form := signupForm()
	form.Bind(c.Request().PostForm)

	if !forms.Check(input, form) {
		return renderPage(c, h.renderer, http.StatusOK, "Sign up", pages.Signup(form))
	}

	user := &domain.User{
		Username: input.Username,
		Email:    input.Email,
		ImageURL: input.ImageURL,
	}

	created, err := h.users.Create(c.Request().Context(), user, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			form.AddError("username", "Username already taken.")
		case errors.Is(err, domain.ErrEmailTaken):
			form.AddError("email", "E-mail already taken.")
		case errors.Is(err, domain.ErrEmptyPassword):
			form.AddError("password", "Password is required.")
		default:
			slog.Error("Error creating user", "error", err)
			view.SetFlashError(c, "Could not create your account.")
			return c.Redirect(http.StatusSeeOther, "/signup")
		}
		return renderPage(c, h.renderer, http.StatusOK, "Sign up", pages.Signup(form))
	}

	if err := middleware.SignIn(c, created.Key()); err != nil {
		slog.Error("Failed to save session", "error", err)
	}

	view.SetFlashSuccess(c, "Welcome to Warbler, "+created.Username+"!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return renderPage(c, h.renderer, http.StatusOK, "Log in", pages.Login(loginForm()))
}

// LoginPost handles the form submission for logging in a user.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var input LoginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form := loginForm()
	form.Bind(c.Request().PostForm)
	// Never echo a submitted password back into the page.
	if fld := form.Field("password"); fld != nil {
		fld.Value = ""
	}

	if !forms.Check(input, form) {
		return renderPage(c, h.renderer, http.StatusOK, "Log in", pages.Login(form))
	}

	user, err := h.users.Authenticate(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		slog.Warn("Failed login attempt", "username", input.Username, "error", err)
		form.AddError("password", "Invalid username or password.")
		return renderPage(c, h.renderer, http.StatusOK, "Log in", pages.Login(form))
	}

	if err := middleware.SignIn(c, user.Key()); err != nil {
		slog.Error("Failed to save session", "error", err)
	}

	view.SetFlashSuccess(c, "Hello, "+user.Username+"!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session and sends the user to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := middleware.SignOut(c); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}

	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
