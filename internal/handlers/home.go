package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/rendering"
	"github.com/warblerhq/warbler/web/src/templates/pages"
)

// HomeHandler renders the landing page and the signed-in timeline.
type HomeHandler struct {
	users    domain.UserRepository
	messages domain.MessageRepository
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(users domain.UserRepository, messages domain.MessageRepository, renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{users: users, messages: messages, renderer: renderer}
}

// Get renders the home page (GET /). Signed-in users see their timeline:
// their own messages plus those of everyone they follow, newest first.
func (h *HomeHandler) Get(c echo.Context) error {
	user := loadSessionUser(c, h.users)
	if user == nil {
		return renderPage(c, h.renderer, http.StatusOK, "", pages.AnonymousHome())
	}

	msgs, err := h.messages.Timeline(c.Request().Context(), user.Key())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load timeline")
	}

	items := messageItems(c, h.users, msgs)
	return renderPage(c, h.renderer, http.StatusOK, "Home", pages.Home(items))
}
