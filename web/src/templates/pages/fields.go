package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/warblerhq/warbler/internal/forms"
)

// fieldErrors renders a field's validation messages, one span per message,
// in the order the validator produced them.
func fieldErrors(fld *forms.Field) cmp.Node {
	if fld == nil || len(fld.Errors) == 0 {
		return nil
	}
	return cmp.Group(cmp.Map(fld.Errors, func(msg string) cmp.Node {
		return g.Span(g.Class("form-error"), cmp.Text(msg))
	}))
}

// fieldInput renders the input widget for a field with an explicit value and
// placeholder, so callers can override either (default suppression, fixed
// placeholders).
func fieldInput(fld *forms.Field, value, placeholder string) cmp.Node {
	if fld.Type == forms.TypeTextarea {
		return g.Textarea(
			g.Name(fld.Name),
			g.Placeholder(placeholder),
			g.Class("form-control"),
			cmp.Text(value),
		)
	}
	return g.Input(
		g.Type(fld.Type),
		g.Name(fld.Name),
		g.Value(value),
		g.Placeholder(placeholder),
		g.Class("form-control"),
	)
}

// formFields renders every visible field of a form through the generic loop.
func formFields(form *forms.Form) cmp.Node {
	var rows []cmp.Node
	for _, fld := range form.Fields() {
		if fld.Type == forms.TypeHidden {
			continue
		}
		rows = append(rows, fieldErrors(fld), fieldInput(fld, fld.Value, fld.Label))
	}
	return cmp.Group(rows)
}
