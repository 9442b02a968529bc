package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/middleware"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newTestUser(key, username string) *domain.User {
	recordID := surrealmodels.NewRecordID("user", key)
	u := &domain.User{
		ID:       &recordID,
		Username: username,
		Email:    username + "@test.com",
	}
	u.ApplyImageDefaults()
	return u
}

func newTestMessage(key, authorKey, text string) *domain.Message {
	recordID := surrealmodels.NewRecordID("message", key)
	authorID := surrealmodels.NewRecordID("user", authorKey)
	return &domain.Message{ID: &recordID, Text: text, AuthorID: &authorID}
}

// mockUserRepo is an in-memory UserRepository for handler tests.
type mockUserRepo struct {
	users map[string]*domain.User // keyed by record key

	createErr error
	authErr   error

	created *domain.User
	updated *domain.User
	deleted []string
}

func newMockUserRepo(users ...*domain.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		m.users[u.Key()] = u
	}
	return m
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}
	recordID := surrealmodels.NewRecordID("user", "new-"+user.Username)
	user.ID = &recordID
	user.ApplyImageDefaults()
	m.users[user.Key()] = user
	m.created = user
	return user, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Search(ctx context.Context, q string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.users[user.Key()] = user
	m.updated = user
	return user, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	delete(m.users, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockUserRepo) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.GetByUsername(ctx, username)
}

func (m *mockUserRepo) Follow(ctx context.Context, followerID, followedID string) error {
	if _, ok := m.users[followedID]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (m *mockUserRepo) Unfollow(ctx context.Context, followerID, followedID string) error {
	return nil
}

func (m *mockUserRepo) Following(ctx context.Context, id string) ([]domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) Followers(ctx context.Context, id string) ([]domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return false, nil
}

// mockMessageRepo is an in-memory MessageRepository for handler tests.
type mockMessageRepo struct {
	byID map[string]*domain.Message

	created *domain.Message
	deleted []string
}

func newMockMessageRepo(msgs ...*domain.Message) *mockMessageRepo {
	m := &mockMessageRepo{byID: make(map[string]*domain.Message)}
	for _, msg := range msgs {
		m.byID[msg.Key()] = msg
	}
	return m
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	recordID := surrealmodels.NewRecordID("message", "new-message")
	msg.ID = &recordID
	m.byID[msg.Key()] = msg
	m.created = msg
	return msg, nil
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	if msg, ok := m.byID[id]; ok {
		return msg, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockMessageRepo) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockMessageRepo) ListByAuthor(ctx context.Context, authorID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, msg := range m.byID {
		if msg.AuthorKey() == authorID {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func (m *mockMessageRepo) Timeline(ctx context.Context, userID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, msg := range m.byID {
		out = append(out, *msg)
	}
	return out, nil
}

func (m *mockMessageRepo) DeleteByAuthor(ctx context.Context, authorID string) error {
	for id, msg := range m.byID {
		if msg.AuthorKey() == authorID {
			delete(m.byID, id)
		}
	}
	return nil
}

// newTestEcho builds an echo instance with the session middleware and a
// helper login route so tests can obtain a signed-in session cookie.
func newTestEcho() *echo.Echo {
	e := echo.New()
	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))
	e.Use(session.Middleware(cookieStore))
	e.GET("/test-login/:id", func(c echo.Context) error {
		if err := middleware.SignIn(c, c.Param("id")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	return e
}

// signInCookies performs a login round-trip and returns the session cookies
// to attach to subsequent requests.
func signInCookies(t *testing.T, e *echo.Echo, userID string) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test-login/"+userID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// assertFlashMessage checks for a specific flash message in the session.
func assertFlashMessage(t *testing.T, req *http.Request, key, expectedMessage string) {
	t.Helper()

	// The session registry caches sessions per request, so decoding the
	// flash session from the handled request surfaces what was set.
	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))
	sess, _ := cookieStore.Get(req, "flash-session")

	flashes := sess.Flashes(key)
	assert.NotEmpty(t, flashes, "expected flash message but found none for key: %s", key)
	if len(flashes) > 0 {
		assert.Equal(t, expectedMessage, flashes[0])
	}
}
