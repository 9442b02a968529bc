package pubsub

// Topics published by the application. The activity subscriber consumes all
// of them.
const (
	TopicMessageCreated = "message.created"
	TopicMessageDeleted = "message.deleted"
	TopicUserFollowed   = "user.followed"
	TopicUserUnfollowed = "user.unfollowed"
	TopicUserDeleted    = "user.deleted"
)

// AllTopics lists every topic for bulk subscription.
func AllTopics() []string {
	return []string{
		TopicMessageCreated,
		TopicMessageDeleted,
		TopicUserFollowed,
		TopicUserUnfollowed,
		TopicUserDeleted,
	}
}
