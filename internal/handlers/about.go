package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warblerhq/warbler/internal/middleware"
	"github.com/warblerhq/warbler/internal/view"
	"github.com/warblerhq/warbler/web/src/templates/layouts"
	"github.com/warblerhq/warbler/web/src/templates/pages"
)

// AboutGet renders the about page (GET /about). The templ page body is
// adapted into the gomponents layout, and the finished page goes back through
// the echo renderer as a templ component.
func AboutGet(c echo.Context) error {
	content := view.AdaptTemplToGomponent(pages.AboutContent())
	page := layouts.Base("About", middleware.CurrentUser(c), view.GetFlashes(c), content)
	return c.Render(http.StatusOK, "", view.AdaptGomponentToTempl(page))
}
