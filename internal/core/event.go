package core

// Event names fanned out to every connected session after a mutation.
const (
	EventNewMessage    = "newMessage"
	EventNewChannel    = "newChannel"
	EventRemoveChannel = "removeChannel"
	EventRenameChannel = "renameChannel"
)

// Event is a named notification sent to all sessions. The payload is one
// of: the full message sequence, a Channel, or a ChannelRef.
type Event struct {
	Name    string
	Payload any
}

// ChannelRef identifies a channel by id alone; it is the payload of a
// removeChannel broadcast.
type ChannelRef struct {
	ID int64
}
