package proto

import (
	"encoding/json"
	"strconv"
)

// Inbound is the envelope for events coming from the client. ID is the ack
// correlation number; a client that omits it gets no acknowledgement for
// that event.
type Inbound struct {
	Type string          `json:"type"`
	ID   *int64          `json:"id,omitempty"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeNewMessage    = "newMessage"
	InboundTypeNewChannel    = "newChannel"
	InboundTypeRemoveChannel = "removeChannel"
	InboundTypeRenameChannel = "renameChannel"

	OutboundTypeAck   = "ack"
	OutboundTypeEvent = "event"
	OutboundTypeError = "error"
)

// IntOrString accepts a JSON number or a numeric string. Input that parses
// as neither coerces to zero, which matches no entity and so degrades to
// the not-found path instead of failing.
type IntOrString int64

// Int64 returns the coerced value.
func (v IntOrString) Int64() int64 {
	return int64(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *IntOrString) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		*v = IntOrString(int64(value))
	case string:
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			*v = 0
			return nil
		}
		*v = IntOrString(parsed)
	default:
		*v = 0
	}

	return nil
}

// NewMessageData is the payload of a newMessage event.
type NewMessageData struct {
	Text    string `json:"text"`
	Channel int64  `json:"channel"`
}

// NewChannelData is the payload of a newChannel event.
type NewChannelData struct {
	Name string `json:"name"`
}

// RemoveChannelData is the payload of a removeChannel event.
type RemoveChannelData struct {
	ID IntOrString `json:"id"`
}

// RenameChannelData is the payload of a renameChannel event.
type RenameChannelData struct {
	ID   IntOrString `json:"id"`
	Name string      `json:"name"`
}

// Outbound is the envelope for frames sent to the client: acks back to the
// requester, events fanned out after mutations, protocol errors.
type Outbound struct {
	Type  string `json:"type"`
	ID    *int64 `json:"id,omitempty"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Ack acknowledges a mutation to its originator.
type Ack struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// Channel is the wire shape of a channel.
type Channel struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Removable bool   `json:"removable"`
}

// Message is the wire shape of a message.
type Message struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Channel int64  `json:"channel"`
}

// ChannelRef is the payload of a removeChannel broadcast.
type ChannelRef struct {
	ID int64 `json:"id"`
}

// DataResponse is the authenticated read of the shared state. The users
// collection is never part of it.
type DataResponse struct {
	Channels         []Channel `json:"channels"`
	Messages         []Message `json:"messages"`
	CurrentChannelID int64     `json:"currentChannelId"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
