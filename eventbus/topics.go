package eventbus

// Global topic declarations: base topic names per feature, kept in one place
// so they can later be swapped for configuration.

var (
	TopicPostEvents = NewTopic("blogboard.post.events")
)

var AllTopics = []Topic{
	TopicPostEvents,
}
