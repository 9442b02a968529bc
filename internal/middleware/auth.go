package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/view"
)

// UserContextKey is where the authenticated *domain.User is stored on the
// echo context.
const UserContextKey = "user"

const (
	authSessionName = "warbler-session"
	sessionUserKey  = "user_id"
)

// SignIn records the user's id in the cookie session.
func SignIn(c echo.Context, userID string) error {
	sess, _ := session.Get(authSessionName, c)
	sess.Values[sessionUserKey] = userID
	return sess.Save(c.Request(), c.Response())
}

// SignOut removes the user's id from the cookie session.
func SignOut(c echo.Context) error {
	sess, _ := session.Get(authSessionName, c)
	delete(sess.Values, sessionUserKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// CurrentUserID returns the signed-in user's id, or "" for anonymous visitors.
func CurrentUserID(c echo.Context) string {
	sess, err := session.Get(authSessionName, c)
	if err != nil {
		return ""
	}
	if id, ok := sess.Values[sessionUserKey].(string); ok {
		return id
	}
	return ""
}

// CurrentUser returns the user loaded by the Auth middleware, or nil.
func CurrentUser(c echo.Context) *domain.User {
	if u, ok := c.Get(UserContextKey).(*domain.User); ok {
		return u
	}
	return nil
}

// Auth creates a middleware that protects routes requiring authentication.
// Anonymous requests get an "Access unauthorized." flash and a redirect home,
// matching the behavior of the public pages' messaging.
func Auth(users domain.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := CurrentUserID(c)
			if id == "" {
				view.SetFlashError(c, "Access unauthorized.")
				return c.Redirect(http.StatusSeeOther, "/")
			}

			user, err := users.GetByID(c.Request().Context(), id)
			if err != nil {
				// Stale session pointing at a deleted user.
				_ = SignOut(c)
				view.SetFlashError(c, "Access unauthorized.")
				return c.Redirect(http.StatusSeeOther, "/")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
