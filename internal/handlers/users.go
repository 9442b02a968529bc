package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warblerhq/warbler/internal/domain"
	"github.com/warblerhq/warbler/internal/forms"
	"github.com/warblerhq/warbler/internal/middleware"
	"github.com/warblerhq/warbler/internal/pubsub"
	"github.com/warblerhq/warbler/internal/rendering"
	"github.com/warblerhq/warbler/internal/view"
	"github.com/warblerhq/warbler/web/src/templates/pages"
)

// UserHandler handles the user directory, profiles, follows and the
// password-gated profile edit.
type UserHandler struct {
	users     domain.UserRepository
	messages  domain.MessageRepository
	publisher pubsub.Publisher
	renderer  rendering.Renderer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users domain.UserRepository, messages domain.MessageRepository, publisher pubsub.Publisher, renderer rendering.Renderer) *UserHandler {
	return &UserHandler{
		users:     users,
		messages:  messages,
		publisher: publisher,
		renderer:  renderer,
	}
}

// Index lists all users, filtered by the optional q parameter (GET /users).
func (h *UserHandler) Index(c echo.Context) error {
	loadSessionUser(c, h.users)

	q := c.QueryParam("q")
	users, err := h.users.Search(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list users")
	}

	cards := make([]pages.UserCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, pages.NewUserCard(u))
	}
	return renderPage(c, h.renderer, http.StatusOK, "Users", pages.UserIndex(cards, q))
}

// Show renders a user's profile page with their messages (GET /users/:id).
func (h *UserHandler) Show(c echo.Context) error {
	viewer := loadSessionUser(c, h.users)

	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load user")
	}

	msgs, err := h.messages.ListByAuthor(c.Request().Context(), user.Key())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load messages")
	}

	var viewerKey string
	var isFollowing bool
	if viewer != nil {
		viewerKey = viewer.Key()
		if viewerKey != user.Key() {
			isFollowing, _ = h.users.IsFollowing(c.Request().Context(), viewerKey, user.Key())
		}
	}

	items := messageItems(c, h.users, msgs)
	return renderPage(c, h.renderer, http.StatusOK, "@"+user.Username, pages.UserProfile(user, items, viewerKey, isFollowing))
}

// Following lists the users the given user follows (GET /users/:id/following).
func (h *UserHandler) Following(c echo.Context) error {
	return h.followPage(c, "Following", h.users.Following)
}

// Followers lists the given user's followers (GET /users/:id/followers).
func (h *UserHandler) Followers(c echo.Context) error {
	return h.followPage(c, "Followers", h.users.Followers)
}

func (h *UserHandler) followPage(c echo.Context, title string, list func(ctx context.Context, id string) ([]domain.User, error)) error {
	if _, err := h.users.GetByID(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	users, err := list(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load users")
	}

	cards := make([]pages.UserCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, pages.NewUserCard(u))
	}
	return renderPage(c, h.renderer, http.StatusOK, title, pages.FollowList(title, cards))
}

// Follow starts following the target user (POST /users/follow/:id).
func (h *UserHandler) Follow(c echo.Context) error {
	current := middleware.CurrentUser(c)
	targetID := c.Param("id")

	err := h.users.Follow(c.Request().Context(), current.Key(), targetID)
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not follow user")
	}

	h.publishUserEvent(c, pubsub.TopicUserFollowed, current.Key(), targetID)
	return c.Redirect(http.StatusFound, "/users/"+targetID)
}

// StopFollowing stops following the target user (POST /users/stop-following/:id).
func (h *UserHandler) StopFollowing(c echo.Context) error {
	current := middleware.CurrentUser(c)
	targetID := c.Param("id")

	if _, err := h.users.GetByID(c.Request().Context(), targetID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	if err := h.users.Unfollow(c.Request().Context(), current.Key(), targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not unfollow user")
	}

	h.publishUserEvent(c, pubsub.TopicUserUnfollowed, current.Key(), targetID)
	return c.Redirect(http.StatusFound, "/users/"+targetID)
}

// EditGet renders the profile edit form bound to the current user's data
// (GET /users/profile).
func (h *UserHandler) EditGet(c echo.Context) error {
	current := middleware.CurrentUser(c)
	form := profileForm(current)
	return renderPage(c, h.renderer, http.StatusOK, "Edit Profile", pages.EditProfile(form, current.Key()))
}

// EditPost applies a profile update (POST /users/profile). The submitted
// password must match the current user's; a mismatch discards the update and
// redirects home with an unauthorized flash, mirroring the other protected
// flows. Validation failures re-render the form with field errors.
func (h *UserHandler) EditPost(c echo.Context) error {
	current := middleware.CurrentUser(c)

	var input ProfileInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form := profileForm(current)
	form.Bind(c.Request().PostForm)
	if fld := form.Field("password"); fld != nil {
		fld.Value = ""
	}

	if !forms.Check(input, form) {
		return renderPage(c, h.renderer, http.StatusOK, "Edit Profile", pages.EditProfile(form, current.Key()))
	}

	if _, err := h.users.Authenticate(c.Request().Context(), current.Username, input.Password); err != nil {
		view.SetFlashError(c, "Access unauthorized: incorrect password.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	current.Username = input.Username
	current.Email = input.Email
	current.Bio = input.Bio
	current.Location = input.Location
	current.ImageURL = input.ImageURL
	current.HeaderImageURL = input.HeaderImageURL
	// Cleared image fields revert to the default placeholders.
	current.ApplyImageDefaults()

	updated, err := h.users.Update(c.Request().Context(), current)
	if err != nil {
		slog.Error("Failed to update profile", "user_id", current.Key(), "error", err)
		view.SetFlashError(c, "Could not update your profile.")
		return c.Redirect(http.StatusSeeOther, "/users/profile")
	}

	view.SetFlashSuccess(c, "Profile updated.")
	return c.Redirect(http.StatusSeeOther, "/users/"+updated.Key())
}

// Delete removes the current user's account and messages (POST /users/delete).
func (h *UserHandler) Delete(c echo.Context) error {
	current := middleware.CurrentUser(c)

	if err := h.messages.DeleteByAuthor(c.Request().Context(), current.Key()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete messages")
	}
	if err := h.users.Delete(c.Request().Context(), current.Key()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete user")
	}

	h.publishUserEvent(c, pubsub.TopicUserDeleted, current.Key(), "")

	if err := middleware.SignOut(c); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	return c.Redirect(http.StatusFound, "/signup")
}

// publishUserEvent emits a user activity event. Publishing is best-effort;
// failures are logged and never block the response.
func (h *UserHandler) publishUserEvent(c echo.Context, topic, userID, targetID string) {
	if h.publisher == nil {
		return
	}

	payload, _ := json.Marshal(map[string]string{"target_id": targetID})
	err := h.publisher.Publish(c.Request().Context(), pubsub.Message{
		Topic:   topic,
		UserID:  userID,
		Payload: payload,
	})
	if err != nil {
		slog.Error("Failed to publish event", "topic", topic, "error", err)
	}
}
