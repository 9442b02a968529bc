package domain

import (
	"context"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Default image paths substituted when a user has not set their own images.
// The profile edit form treats these as "unset": an input bound to one of
// them renders empty so the user is not asked to edit the placeholder path.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents the core user model in the application domain.
type User struct {
	ID             *surrealmodels.RecordID `json:"id,omitempty"`
	Username       string                  `json:"username"`
	Email          string                  `json:"email"`
	Password       string                  `json:"password,omitempty"`
	Bio            string                  `json:"bio,omitempty"`
	Location       string                  `json:"location,omitempty"`
	ImageURL       string                  `json:"image_url"`
	HeaderImageURL string                  `json:"header_image_url"`
}

// Key returns the record key portion of the user's ID, suitable for building
// URLs like /users/{key}. It returns an empty string for an unsaved user.
func (u *User) Key() string {
	if u.ID == nil {
		return ""
	}
	if s, ok := u.ID.ID.(string); ok {
		return s
	}
	return ""
}

// ApplyImageDefaults fills in the default image paths for any image field
// that was left empty.
func (u *User) ApplyImageDefaults() {
	if u.ImageURL == "" {
		u.ImageURL = DefaultImageURL
	}
	if u.HeaderImageURL == "" {
		u.HeaderImageURL = DefaultHeaderImageURL
	}
}

// UserRepository defines the contract for user data storage operations.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type UserRepository interface {
	// Create stores a new user with a hashed password. The plaintext password
	// must be non-empty, and username/email must be unique.
	Create(ctx context.Context, user *User, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Search returns users whose username contains q. An empty q lists all.
	Search(ctx context.Context, q string) ([]User, error)
	Update(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id string) error
	// Authenticate verifies username and password, returning the user on
	// success and ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	Following(ctx context.Context, id string) ([]User, error)
	Followers(ctx context.Context, id string) ([]User, error)
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
}
