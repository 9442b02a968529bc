package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// MessageItem is the view model for one message in a list.
type MessageItem struct {
	Key            string
	Text           string
	Timestamp      string
	AuthorKey      string
	AuthorUsername string
	AuthorImageURL string
}

// Home renders the signed-in timeline.
func Home(messages []MessageItem) cmp.Node {
	if len(messages) == 0 {
		return g.Div(
			g.Class("timeline"),
			g.P(g.Class("timeline-empty"), cmp.Text("There are no messages yet. Follow some users to fill your timeline!")),
		)
	}

	return g.Div(
		g.Class("timeline"),
		messageList(messages),
	)
}

// AnonymousHome renders the landing page for visitors without an account.
func AnonymousHome() cmp.Node {
	return g.Div(
		g.Class("home-hero"),
		g.H1(cmp.Text("What's Happening?")),
		g.P(cmp.Text("Sign up now to share your thoughts in 140 characters or less.")),
		g.A(g.Href("/signup"), g.Class("btn btn-primary"), cmp.Text("Sign up now")),
	)
}

func messageList(messages []MessageItem) cmp.Node {
	return g.Ul(
		g.Class("message-list"),
		cmp.Map(messages, func(m MessageItem) cmp.Node {
			return g.Li(
				g.Class("message-item"),
				g.A(
					g.Href("/users/"+m.AuthorKey),
					g.Img(g.Src(m.AuthorImageURL), g.Alt(m.AuthorUsername), g.Class("avatar")),
					g.Span(g.Class("message-author"), cmp.Text("@"+m.AuthorUsername)),
				),
				g.Span(g.Class("message-timestamp"), cmp.Text(m.Timestamp)),
				g.P(g.Class("message-text"),
					g.A(g.Href("/messages/"+m.Key), cmp.Text(m.Text)),
				),
			)
		}),
	)
}
