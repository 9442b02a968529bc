package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/forms"
)

// passwordConfirmPlaceholder is shown instead of the password field's own
// label: on this form the password is a confirmation, not a credential edit.
const passwordConfirmPlaceholder = "Enter your password to confirm"

// customProfileFields are rendered outside the generic field loop.
var customProfileFields = map[string]bool{
	"password":         true,
	"image_url":        true,
	"header_image_url": true,
}

// EditProfile renders the profile edit form. The generic loop covers every
// visible field except the image URLs (which suppress their default values)
// and the password confirmation. userID builds the cancel link.
func EditProfile(form *forms.Form, userID string) cmp.Node {
	var rows []cmp.Node
	for _, fld := range form.Fields() {
		if fld.Type == forms.TypeHidden || customProfileFields[fld.Name] {
			continue
		}
		rows = append(rows, fieldErrors(fld), fieldInput(fld, fld.Value, fld.Label))
	}

	rows = append(rows,
		imageURLField(form.Field("image_url"), domain.DefaultImageURL),
		imageURLField(form.Field("header_image_url"), domain.DefaultHeaderImageURL),
		passwordConfirmField(form.Field("password")),
	)

	return g.Div(
		g.Class("form-page"),
		g.H2(cmp.Text("Edit Your Profile.")),
		g.Form(
			g.Method("POST"),
			g.ID("user_form"),
			cmp.Group(rows),
			g.Button(g.Type("submit"), g.Class("btn btn-primary"), cmp.Text("Edit this user!")),
			g.A(g.Href("/users/"+userID), g.Class("btn btn-link"), cmp.Text("Cancel")),
		),
	)
}

// imageURLField renders an image URL input. When the bound value is the
// default placeholder path the value is cleared, so the user sees an empty
// field with the label as placeholder instead of the default path.
func imageURLField(fld *forms.Field, defaultValue string) cmp.Node {
	if fld == nil {
		return nil
	}
	value := fld.Value
	if value == defaultValue {
		value = ""
	}
	return cmp.Group([]cmp.Node{
		fieldErrors(fld),
		fieldInput(fld, value, fld.Label),
	})
}

// passwordConfirmField renders the password input with a fixed placeholder,
// ignoring the field's own label.
func passwordConfirmField(fld *forms.Field) cmp.Node {
	if fld == nil {
		return nil
	}
	return cmp.Group([]cmp.Node{
		fieldErrors(fld),
		g.Input(
			g.Type(forms.TypePassword),
			g.Name(fld.Name),
			g.Value(""),
			g.Placeholder(passwordConfirmPlaceholder),
			g.Class("form-control"),
		),
	})
}
