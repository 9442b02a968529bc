package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/warblerhq/warbler/internal/forms"
)

// MessageNew renders the new-message form.
func MessageNew(form *forms.Form) cmp.Node {
	return g.Div(
		g.Class("form-page"),
		g.H2(cmp.Text("Add my message!")),
		g.Form(
			g.Method("POST"),
			g.Action("/messages/new"),
			formFields(form),
			g.Button(g.Type("submit"), g.Class("btn btn-primary"), cmp.Text("Add my message!")),
		),
	)
}

// MessageShow renders a single message with its author and, for the author
// themselves, a delete button.
func MessageShow(m MessageItem, viewerKey string) cmp.Node {
	return g.Div(
		g.Class("message-show"),
		g.A(
			g.Href("/users/"+m.AuthorKey),
			g.Img(g.Src(m.AuthorImageURL), g.Alt(m.AuthorUsername), g.Class("avatar")),
			g.Span(g.Class("message-author"), cmp.Text("@"+m.AuthorUsername)),
		),
		g.P(g.Class("message-text"), cmp.Text(m.Text)),
		g.Span(g.Class("message-timestamp"), cmp.Text(m.Timestamp)),
		cmp.If(viewerKey != "" && viewerKey == m.AuthorKey,
			g.Form(
				g.Method("POST"),
				g.Action("/messages/"+m.Key+"/delete"),
				g.Button(g.Type("submit"), g.Class("btn btn-danger"), cmp.Text("Delete")),
			),
		),
	)
}
