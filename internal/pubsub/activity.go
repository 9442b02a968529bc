package pubsub

import (
	"context"
	"log/slog"
)

// StartActivityLog subscribes to every application topic and records events
// through slog. It gives operators a single stream of user activity without
// touching the request path.
func StartActivityLog(ctx context.Context, sub Subscriber) error {
	for _, topic := range AllTopics() {
		if err := sub.Subscribe(ctx, topic, logActivity); err != nil {
			return err
		}
	}
	return nil
}

func logActivity(ctx context.Context, msg Message) error {
	slog.Info("activity",
		"topic", msg.Topic,
		"user_id", msg.UserID,
		"payload", string(msg.Payload),
	)
	return nil
}
