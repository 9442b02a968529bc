package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/warblerhq/warbler/internal/domain"
)

// Base wraps page content in the full HTML document: head, nav bar and flash
// messages. user is nil for anonymous visitors.
func Base(title string, user *domain.User, flashes map[string][]interface{}, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			),
			g.Body(
				navBar(user),
				flashMessages(flashes),
				g.Main(g.Class("content"), content),
			),
		),
	)
}

func navBar(user *domain.User) cmp.Node {
	var links cmp.Node
	if user != nil {
		links = cmp.Group([]cmp.Node{
			g.A(g.Href("/users"), cmp.Text("Users")),
			g.A(g.Href("/messages/new"), cmp.Text("New Message")),
			g.A(g.Href("/users/"+user.Key()), cmp.Text(user.Username)),
			g.A(g.Href("/about"), cmp.Text("About")),
			g.A(g.Href("/logout"), cmp.Text("Log out")),
		})
	} else {
		links = cmp.Group([]cmp.Node{
			g.A(g.Href("/about"), cmp.Text("About")),
			g.A(g.Href("/signup"), cmp.Text("Sign up")),
			g.A(g.Href("/login"), cmp.Text("Log in")),
		})
	}

	return g.Nav(
		g.Class("navbar"),
		g.A(g.Href("/"), g.Class("navbar-brand"), cmp.Text("Warbler")),
		g.Div(g.Class("navbar-links"), links),
	)
}

// flashMessages renders queued flash messages in a stable order so success
// notices always appear before errors.
func flashMessages(flashes map[string][]interface{}) cmp.Node {
	if len(flashes) == 0 {
		return nil
	}

	var nodes []cmp.Node
	for _, key := range []string{"success", "error"} {
		for _, f := range flashes[key] {
			msg, ok := f.(string)
			if !ok {
				continue
			}
			nodes = append(nodes, g.Div(g.Class("flash flash-"+key), cmp.Text(msg)))
		}
	}
	return cmp.Group(nodes)
}
