package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/warblerhq/warbler/internal/forms"
)

// Signup renders the registration form.
func Signup(form *forms.Form) cmp.Node {
	return g.Div(
		g.Class("form-page"),
		g.H2(cmp.Text("Join Warbler today.")),
		g.Form(
			g.Method("POST"),
			g.Action("/signup"),
			formFields(form),
			g.Button(g.Type("submit"), g.Class("btn btn-primary"), cmp.Text("Sign me up!")),
		),
	)
}

// Login renders the login form.
func Login(form *forms.Form) cmp.Node {
	return g.Div(
		g.Class("form-page"),
		g.H2(cmp.Text("Welcome back.")),
		g.Form(
			g.Method("POST"),
			g.Action("/login"),
			formFields(form),
			g.Button(g.Type("submit"), g.Class("btn btn-primary"), cmp.Text("Log in")),
		),
	)
}
