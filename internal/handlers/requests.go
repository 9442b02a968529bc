package handlers

// Input structs bound from POST bodies. The `form` tags double as the field
// names used by the forms package when mapping validation errors.

// SignupInput carries the registration form submission.
type SignupInput struct {
	Username string `form:"username" validate:"required,max=30"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	ImageURL string `form:"image_url" validate:"max=255"`
}

// LoginInput carries the login form submission.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ProfileInput carries the profile edit submission. Password is the user's
// current password, required to authorize the change.
type ProfileInput struct {
	Username       string `form:"username" validate:"required,max=30"`
	Email          string `form:"email" validate:"required,email"`
	ImageURL       string `form:"image_url" validate:"max=255"`
	HeaderImageURL string `form:"header_image_url" validate:"max=255"`
	Bio            string `form:"bio" validate:"max=280"`
	Location       string `form:"location" validate:"max=60"`
	Password       string `form:"password" validate:"required"`
}

// MessageInput carries the new-message submission.
type MessageInput struct {
	Text string `form:"text" validate:"required,max=140"`
}
