package handlers

import (
	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/forms"
)

// signupForm builds the empty registration form.
func signupForm() *forms.Form {
	return forms.New(
		forms.Field{Name: "username", Label: "Username", Type: forms.TypeText},
		forms.Field{Name: "email", Label: "E-mail", Type: forms.TypeEmail},
		forms.Field{Name: "password", Label: "Password", Type: forms.TypePassword},
		forms.Field{Name: "image_url", Label: "(Optional) Image URL", Type: forms.TypeText},
	)
}

// loginForm builds the empty login form.
func loginForm() *forms.Form {
	return forms.New(
		forms.Field{Name: "username", Label: "Username", Type: forms.TypeText},
		forms.Field{Name: "password", Label: "Password", Type: forms.TypePassword},
	)
}

// profileForm builds the profile edit form bound to a user's current data.
// Field order matches the rendered page; image and password fields get
// custom treatment in the template.
func profileForm(u *domain.User) *forms.Form {
	return forms.New(
		forms.Field{Name: "username", Label: "Username", Type: forms.TypeText, Value: u.Username},
		forms.Field{Name: "email", Label: "E-mail", Type: forms.TypeEmail, Value: u.Email},
		forms.Field{Name: "image_url", Label: "Image URL", Type: forms.TypeText, Value: u.ImageURL},
		forms.Field{Name: "header_image_url", Label: "Header Image URL", Type: forms.TypeText, Value: u.HeaderImageURL},
		forms.Field{Name: "bio", Label: "Bio", Type: forms.TypeTextarea, Value: u.Bio},
		forms.Field{Name: "location", Label: "Location", Type: forms.TypeText, Value: u.Location},
		forms.Field{Name: "password", Label: "Password", Type: forms.TypePassword},
	)
}

// messageForm builds the empty new-message form.
func messageForm() *forms.Form {
	return forms.New(
		forms.Field{Name: "text", Label: "What's happening?", Type: forms.TypeTextarea},
	)
}
