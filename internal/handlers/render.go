package handlers

import (
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/middleware"
	"github.com/warblerhq/warbler/internal/rendering"
	"github.com/warblerhq/warbler/internal/view"
	"github.com/warblerhq/warbler/web/src/templates/layouts"
	"github.com/warblerhq/warbler/web/src/templates/pages"
)

// renderPage wraps content in the base layout with the current user's nav
// state and any queued flash messages, then streams it.
func renderPage(c echo.Context, r rendering.Renderer, status int, title string, content cmp.Node) error {
	user := middleware.CurrentUser(c)
	flashes := view.GetFlashes(c)
	return r.RenderPage(c, status, layouts.Base(title, user, flashes, content))
}

// loadSessionUser resolves the signed-in user on routes that are public but
// still auth-aware (home, profiles). It stores the user on the context so
// the layout can render the signed-in nav. Returns nil for anonymous
// visitors or stale sessions.
func loadSessionUser(c echo.Context, users domain.UserRepository) *domain.User {
	if u := middleware.CurrentUser(c); u != nil {
		return u
	}
	id := middleware.CurrentUserID(c)
	if id == "" {
		return nil
	}
	user, err := users.GetByID(c.Request().Context(), id)
	if err != nil {
		return nil
	}
	c.Set(middleware.UserContextKey, user)
	return user
}

// messageItems maps domain messages onto their list view models, resolving
// each author once.
func messageItems(c echo.Context, users domain.UserRepository, msgs []domain.Message) []pages.MessageItem {
	ctx := c.Request().Context()
	authors := make(map[string]*domain.User)

	items := make([]pages.MessageItem, 0, len(msgs))
	for _, m := range msgs {
		key := m.AuthorKey()
		author, ok := authors[key]
		if !ok {
			var err error
			author, err = users.GetByID(ctx, key)
			if err != nil {
				// The author may have been deleted between queries; skip
				// their messages rather than failing the page.
				continue
			}
			authors[key] = author
		}

		items = append(items, pages.MessageItem{
			Key:            m.Key(),
			Text:           m.Text,
			Timestamp:      m.CreatedAt.Format("02 January 2006"),
			AuthorKey:      author.Key(),
			AuthorUsername: author.Username,
			AuthorImageURL: author.ImageURL,
		})
	}
	return items
}
