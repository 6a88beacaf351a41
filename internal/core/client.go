package core

// Client is one connected session as seen by the hub.
type Client struct {
	ID     string
	Events chan Event
}

// NewClient constructs a client with a buffered event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan Event, 8),
	}
}
