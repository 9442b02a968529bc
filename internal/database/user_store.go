package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
	"golang.org/x/crypto/bcrypt"

	"github.com/warblerhq/warbler/internal/domain"
)

// UserStore implements domain.UserRepository on top of the type-safe client.
// Follow relationships are stored as RELATE edges in the "follows" table.
type UserStore struct {
	client Client[domain.User]
}

// NewUserStore creates a new user repository.
func NewUserStore(client Client[domain.User]) *UserStore {
	return &UserStore{client: client}
}

// Create hashes the password and inserts a new user record. Username and
// email must be unique; image fields fall back to the defaults.
func (s *UserStore) Create(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}

	if existing, err := s.GetByUsername(ctx, user.Username); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, err := s.getByEmail(ctx, user.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ApplyImageDefaults()

	key := uuid.NewString()
	query := "CREATE type::thing('user', $key) CONTENT $data"
	params := map[string]any{
		"key": key,
		"data": map[string]any{
			"username":         user.Username,
			"email":            user.Email,
			"password":         string(hash),
			"bio":              user.Bio,
			"location":         user.Location,
			"image_url":        user.ImageURL,
			"header_image_url": user.HeaderImageURL,
		},
	}

	created, err := s.client.QueryOne(ctx, query, params)
	if err != nil {
		return nil, NewDBError(err, "create user failed")
	}
	if created == nil {
		return nil, NewDBError(ErrQueryFailed, "create user returned no record")
	}
	return created, nil
}

// GetByID retrieves a user by record key.
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.client.QueryOne(ctx, "SELECT * FROM type::thing('user', $id)", map[string]any{"id": id})
	if err != nil {
		return nil, NewDBError(err, "select user failed")
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// GetByUsername retrieves a user by their unique username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := "SELECT * FROM user WHERE username = $username"
	user, err := s.client.QueryOne(ctx, query, map[string]any{"username": username})
	if err != nil {
		return nil, NewDBError(err, "select user by username failed")
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *UserStore) getByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "SELECT * FROM user WHERE email = $email"
	user, err := s.client.QueryOne(ctx, query, map[string]any{"email": email})
	if err != nil {
		return nil, NewDBError(err, "select user by email failed")
	}
	return user, nil
}

// Search returns users whose username contains q, sorted by username.
// An empty q lists everyone.
func (s *UserStore) Search(ctx context.Context, q string) ([]domain.User, error) {
	query := "SELECT * FROM user ORDER BY username"
	params := map[string]any{}
	if q != "" {
		query = "SELECT * FROM user WHERE string::contains(string::lowercase(username), string::lowercase($q)) ORDER BY username"
		params["q"] = q
	}

	users, err := s.client.Query(ctx, query, params)
	if err != nil {
		return nil, NewDBError(err, "search users failed")
	}
	return users, nil
}

// Update merges the user's editable fields into their record. The password
// hash is never touched here.
func (s *UserStore) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Key() == "" {
		return nil, NewDBError(ErrInvalidInput, "user ID is required for update")
	}

	query := "UPDATE type::thing('user', $id) MERGE $data"
	params := map[string]any{
		"id": user.Key(),
		"data": map[string]any{
			"username":         user.Username,
			"email":            user.Email,
			"bio":              user.Bio,
			"location":         user.Location,
			"image_url":        user.ImageURL,
			"header_image_url": user.HeaderImageURL,
		},
	}

	updated, err := s.client.QueryOne(ctx, query, params)
	if err != nil {
		return nil, NewDBError(err, "update user failed")
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes the user record and any follow edges touching it.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	params := map[string]any{"id": id}
	if err := s.client.Execute(ctx, "DELETE follows WHERE in = type::thing('user', $id) OR out = type::thing('user', $id)", params); err != nil {
		return NewDBError(err, "delete follow edges failed")
	}
	if err := s.client.Execute(ctx, "DELETE type::thing('user', $id)", params); err != nil {
		return NewDBError(err, "delete user failed")
	}
	return nil
}

// Authenticate verifies a username/password pair. Both an unknown username
// and a wrong password yield ErrInvalidCredentials.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Follow records that follower follows followed. The target must exist.
func (s *UserStore) Follow(ctx context.Context, followerID, followedID string) error {
	if _, err := s.GetByID(ctx, followedID); err != nil {
		return err
	}

	query := "RELATE (type::thing('user', $follower))->follows->(type::thing('user', $followed))"
	params := map[string]any{"follower": followerID, "followed": followedID}
	if err := s.client.Execute(ctx, query, params); err != nil {
		return NewDBError(err, "follow failed")
	}
	return nil
}

// Unfollow removes the follow edge between the two users, if present.
func (s *UserStore) Unfollow(ctx context.Context, followerID, followedID string) error {
	query := "DELETE follows WHERE in = type::thing('user', $follower) AND out = type::thing('user', $followed)"
	params := map[string]any{"follower": followerID, "followed": followedID}
	if err := s.client.Execute(ctx, query, params); err != nil {
		return NewDBError(err, "unfollow failed")
	}
	return nil
}

// Following returns the users the given user follows.
func (s *UserStore) Following(ctx context.Context, id string) ([]domain.User, error) {
	query := "SELECT * FROM user WHERE id IN (SELECT VALUE out FROM follows WHERE in = type::thing('user', $id)) ORDER BY username"
	users, err := s.client.Query(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, NewDBError(err, "list following failed")
	}
	return users, nil
}

// Followers returns the users following the given user.
func (s *UserStore) Followers(ctx context.Context, id string) ([]domain.User, error) {
	query := "SELECT * FROM user WHERE id IN (SELECT VALUE in FROM follows WHERE out = type::thing('user', $id)) ORDER BY username"
	users, err := s.client.Query(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, NewDBError(err, "list followers failed")
	}
	return users, nil
}

// IsFollowing reports whether follower currently follows followed.
func (s *UserStore) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	query := "SELECT * FROM user WHERE id = type::thing('user', $followed) AND id IN (SELECT VALUE out FROM follows WHERE in = type::thing('user', $follower))"
	params := map[string]any{"follower": followerID, "followed": followedID}
	user, err := s.client.QueryOne(ctx, query, params)
	if err != nil {
		return false, NewDBError(err, "is-following check failed")
	}
	return user != nil, nil
}

// RecordID builds a user record ID from a key. Exposed for tests and for
// stores that reference users from other tables.
func RecordID(table, key string) *surrealmodels.RecordID {
	rid := surrealmodels.NewRecordID(table, key)
	return &rid
}
