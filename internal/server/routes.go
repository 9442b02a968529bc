package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warblerhq/warbler/internal/handlers"
	"github.com/warblerhq/warbler/internal/middleware"
	"github.com/warblerhq/warbler/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	auth := middleware.Auth(s.userStore)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", s.homeHandler.Get)
	s.E.GET("/about", handlers.AboutGet)

	s.E.GET("/signup", s.authHandler.SignupGet)
	s.E.POST("/signup", s.authHandler.SignupPost, rateLimiter)
	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)
	s.E.GET("/logout", s.authHandler.Logout)

	s.E.GET("/users", s.userHandler.Index)
	// The static /users/profile routes must not be shadowed by /users/:id;
	// echo prefers static segments, so both can coexist.
	s.E.GET("/users/profile", s.userHandler.EditGet, auth)
	s.E.POST("/users/profile", s.userHandler.EditPost, auth, rateLimiter)
	s.E.GET("/users/:id", s.userHandler.Show)
	s.E.GET("/users/:id/following", s.userHandler.Following, auth)
	s.E.GET("/users/:id/followers", s.userHandler.Followers, auth)
	s.E.POST("/users/follow/:id", s.userHandler.Follow, auth)
	s.E.POST("/users/stop-following/:id", s.userHandler.StopFollowing, auth)
	s.E.POST("/users/delete", s.userHandler.Delete, auth)

	s.E.GET("/messages/new", s.messageHandler.NewGet, auth)
	s.E.POST("/messages/new", s.messageHandler.NewPost, auth)
	s.E.GET("/messages/:id", s.messageHandler.Show)
	s.E.POST("/messages/:id/delete", s.messageHandler.Delete, auth)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
