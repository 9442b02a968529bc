package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/domain"
)

// MessageStore implements domain.MessageRepository.
type MessageStore struct {
	client Client[domain.Message]
}

// NewMessageStore creates a new message repository.
func NewMessageStore(client Client[domain.Message]) *MessageStore {
	return &MessageStore{client: client}
}

// Create inserts a new message record, stamping the creation time.
func (s *MessageStore) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if msg.AuthorID == nil {
		return nil, NewDBError(ErrInvalidInput, "message author is required")
	}

	query := "CREATE type::thing('message', $key) CONTENT $data"
	params := map[string]any{
		"key": uuid.NewString(),
		"data": map[string]any{
			"text":       msg.Text,
			"created_at": time.Now().UTC(),
			"author":     msg.AuthorID,
		},
	}

	created, err := s.client.QueryOne(ctx, query, params)
	if err != nil {
		return nil, NewDBError(err, "create message failed")
	}
	if created == nil {
		return nil, NewDBError(ErrQueryFailed, "create message returned no record")
	}
	return created, nil
}

// GetByID retrieves a message by record key.
func (s *MessageStore) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	msg, err := s.client.QueryOne(ctx, "SELECT * FROM type::thing('message', $id)", map[string]any{"id": id})
	if err != nil {
		return nil, NewDBError(err, "select message failed")
	}
	if msg == nil {
		return nil, domain.ErrNotFound
	}
	return msg, nil
}

// Delete removes a message record.
func (s *MessageStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Execute(ctx, "DELETE type::thing('message', $id)", map[string]any{"id": id}); err != nil {
		return NewDBError(err, "delete message failed")
	}
	return nil
}

// ListByAuthor returns a user's messages, newest first.
func (s *MessageStore) ListByAuthor(ctx context.Context, authorID string) ([]domain.Message, error) {
	query := "SELECT * FROM message WHERE author = type::thing('user', $author) ORDER BY created_at DESC"
	msgs, err := s.client.Query(ctx, query, map[string]any{"author": authorID})
	if err != nil {
		return nil, NewDBError(err, "list messages failed")
	}
	return msgs, nil
}

// Timeline returns the 100 most recent messages from the user and everyone
// they follow.
func (s *MessageStore) Timeline(ctx context.Context, userID string) ([]domain.Message, error) {
	query := `SELECT * FROM message
		WHERE author = type::thing('user', $id)
		OR author IN (SELECT VALUE out FROM follows WHERE in = type::thing('user', $id))
		ORDER BY created_at DESC LIMIT 100`
	msgs, err := s.client.Query(ctx, query, map[string]any{"id": userID})
	if err != nil {
		return nil, NewDBError(err, "timeline query failed")
	}
	return msgs, nil
}

// DeleteByAuthor removes all messages authored by the given user. Used when
// an account is deleted.
func (s *MessageStore) DeleteByAuthor(ctx context.Context, authorID string) error {
	query := "DELETE message WHERE author = type::thing('user', $author)"
	if err := s.client.Execute(ctx, query, map[string]any{"author": authorID}); err != nil {
		return NewDBError(err, "delete messages by author failed")
	}
	return nil
}
