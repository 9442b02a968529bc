package domain

import (
	"context"
	"time"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// MaxMessageLength is the hard limit on message text.
const MaxMessageLength = 140

// Message is a short post authored by a user.
type Message struct {
	ID        *surrealmodels.RecordID `json:"id,omitempty"`
	Text      string                  `json:"text"`
	CreatedAt time.Time               `json:"created_at"`
	AuthorID  *surrealmodels.RecordID `json:"author"`
}

// Key returns the record key portion of the message's ID.
func (m *Message) Key() string {
	if m.ID == nil {
		return ""
	}
	if s, ok := m.ID.ID.(string); ok {
		return s
	}
	return ""
}

// AuthorKey returns the record key of the message's author.
func (m *Message) AuthorKey() string {
	if m.AuthorID == nil {
		return ""
	}
	if s, ok := m.AuthorID.ID.(string); ok {
		return s
	}
	return ""
}

// MessageRepository defines the contract for message storage operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) (*Message, error)
	GetByID(ctx context.Context, id string) (*Message, error)
	Delete(ctx context.Context, id string) error
	// ListByAuthor returns a user's messages, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]Message, error)
	// Timeline returns the most recent messages authored by the given user
	// or by anyone they follow, newest first, capped at 100.
	Timeline(ctx context.Context, userID string) ([]Message, error)
	// DeleteByAuthor removes all messages authored by the given user.
	DeleteByAuthor(ctx context.Context, authorID string) error
}
