package handlers

import (
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

// MessageHandler handles creating, showing and deleting messages.
type MessageHandler struct {
	users     domain.UserRepository
	messages  domain.MessageRepository
	publisher pubsub.Publisher
	renderer  rendering.Renderer
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(users domain.UserRepository, messages domain.MessageRepository, publisher pubsub.Publisher, renderer rendering.Renderer) *MessageHandler {
	return &MessageHandler{
		users:     users,
		messages:  messages,
		publisher: publisher,
		renderer:  renderer,
	}
}

// NewGet renders the new-message form (GET /messages/new).
func (h *MessageHandler) NewGet(c echo.Context) error {
	return renderPage(c, h.renderer, http.StatusOK, "New Message", pages.MessageNew(messageForm()))
}

// NewPost creates a message (POST /messages/new) and redirects to the
// author's profile.
func (h *MessageHandler) NewPost(c echo.Context) error {
	current := middleware.CurrentUser(c)

	var input MessageInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form := messageForm()
	form.Bind(c.Request().PostForm)

	if !forms.Check(input, form) {
		return renderPage(c, h.renderer, http.StatusOK, "New Message", pages.MessageNew(form))
	}

	msg := &domain.Message{
		Text:     input.Text,
		AuthorID: current.ID,
	}

	created, err := h.messages.Create(c.Request().Context(), msg)
	if err != nil {
		slog.Error("Failed to create message", "user_id", current.Key(), "error", err)
		view.SetFlashError(c, "Could not post your message.")
		return c.Redirect(http.StatusSeeOther, "/messages/new")
	}

	h.publishMessageEvent(c, pubsub.TopicMessageCreated, current.Key(), created)
	return c.Redirect(http.StatusFound, "/users/"+current.Key())
}

// Show renders a single message (GET /messages/:id). Public.
func (h *MessageHandler) Show(c echo.Context) error {
	viewer := loadSessionUser(c, h.users)

	msg, err := h.messages.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "message not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load message")
	}

	items := messageItems(c, h.users, []domain.Message{*msg})
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "message not found")
	}

	var viewerKey string
	if viewer != nil {
		viewerKey = viewer.Key()
	}
	return renderPage(c, h.renderer, http.StatusOK, "Message", pages.MessageShow(items[0], viewerKey))
}

// Delete removes a message (POST /messages/:id/delete). Only the author may
// delete; anyone else gets an unauthorized flash and a redirect home.
func (h *MessageHandler) Delete(c echo.Context) error {
	current := middleware.CurrentUser(c)

	msg, err := h.messages.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "message not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load message")
	}

	if msg.AuthorKey() != current.Key() {
		view.SetFlashError(c, "Access unauthorized.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.messages.Delete(c.Request().Context(), msg.Key()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete message")
	}

	h.publishMessageEvent(c, pubsub.TopicMessageDeleted, current.Key(), msg)
	return c.Redirect(http.StatusFound, "/users/"+current.Key())
}

func (h *MessageHandler) publishMessageEvent(c echo.Context, topic, userID string, msg *domain.Message) {
	if h.publisher == nil {
		return
	}

	payload, _ := json.Marshal(map[string]string{"message_id": msg.Key(), "text": msg.Text})
	err := h.publisher.Publish(c.Request().Context(), pubsub.Message{
		Topic:   topic,
		UserID:  userID,
		Payload: payload,
	})
	if err != nil {
		slog.Error("Failed to publish event", "topic", topic, "error", err)
	}
}
