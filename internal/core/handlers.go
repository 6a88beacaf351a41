package core

import "github.com/rs/zerolog"

// Ack is the direct reply to the session that requested a mutation,
// distinct from the broadcast every session receives.
type Ack struct {
	Status string
	Data   any
}

// AckFunc delivers an Ack to the requester. A nil AckFunc means the
// requester did not ask for a reply and is never an error.
type AckFunc func(Ack)

const ackStatusOK = "ok"

// Handlers applies client-requested mutations: validate, call the store,
// acknowledge the requester, then hand the result to the hub for fan-out.
type Handlers struct {
	store *Store
	hub   *Hub
	log   *zerolog.Logger
}

// NewHandlers wires mutation handling to a store and a hub.
func NewHandlers(store *Store, hub *Hub, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		store: store,
		hub:   hub,
		log:   logger,
	}
}

// PostMessage appends a message and broadcasts the full updated sequence.
func (h *Handlers) PostMessage(text string, channelID int64, ack AckFunc) {
	msg, messages := h.store.AddMessage(text, channelID)
	h.log.Debug().Int64("message_id", msg.ID).Int64("channel", channelID).Msg("message posted")

	acknowledge(ack, Ack{Status: ackStatusOK})
	h.hub.Broadcast(Event{Name: EventNewMessage, Payload: messages})
}

// CreateChannel adds a removable channel; the ack carries the new record.
func (h *Handlers) CreateChannel(name string, ack AckFunc) {
	ch := h.store.AddChannel(name)
	h.log.Debug().Int64("channel_id", ch.ID).Str("name", ch.Name).Msg("channel created")

	acknowledge(ack, Ack{Status: ackStatusOK, Data: ch})
	h.hub.Broadcast(Event{Name: EventNewChannel, Payload: ch})
}

// RemoveChannel deletes a channel and its messages. Removing an id that
// matches nothing still acknowledges success and still broadcasts the id.
func (h *Handlers) RemoveChannel(channelID int64, ack AckFunc) {
	removed := h.store.RemoveChannel(channelID)
	h.log.Debug().Int64("channel_id", removed).Msg("channel removed")

	acknowledge(ack, Ack{Status: ackStatusOK})
	h.hub.Broadcast(Event{Name: EventRemoveChannel, Payload: ChannelRef{ID: removed}})
}

// RenameChannel updates a channel's name. Unlike the other handlers it
// short-circuits on a missing channel: no ack, no broadcast.
func (h *Handlers) RenameChannel(channelID int64, name string, ack AckFunc) {
	ch, ok := h.store.RenameChannel(channelID, name)
	if !ok {
		h.log.Debug().Int64("channel_id", channelID).Msg("rename of unknown channel ignored")
		return
	}
	h.log.Debug().Int64("channel_id", ch.ID).Str("name", ch.Name).Msg("channel renamed")

	acknowledge(ack, Ack{Status: ackStatusOK})
	h.hub.Broadcast(Event{Name: EventRenameChannel, Payload: ch})
}

func acknowledge(ack AckFunc, a Ack) {
	if ack != nil {
		ack(a)
	}
}
