package core

import (
	"sync"

	"github.com/samber/lo"
)

// Store serializes access to the shared State. Every operation holds one
// mutex for its whole duration; none of them touch I/O, so the coarse lock
// keeps id assignment and sequence mutation atomic without ever suspending.
type Store struct {
	mu    sync.Mutex
	state *State
}

// NewStore wraps a State in a Store. The State must not be touched
// directly afterwards.
func NewStore(state *State) *Store {
	return &Store{state: state}
}

// AddMessage assigns a fresh id and appends the message. The channel
// reference is not validated. Returns the created record together with a
// copy of the full message sequence: clients re-render from the whole list
// on every new message, so the broadcast payload is the sequence, not the
// delta.
func (s *Store) AddMessage(text string, channelID int64) (Message, []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{ID: s.state.nextID(), Text: text, Channel: channelID}
	s.state.messages = append(s.state.messages, msg)

	return msg, append([]Message(nil), s.state.messages...)
}

// AddChannel assigns a fresh id and appends a removable channel.
func (s *Store) AddChannel(name string) Channel {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := Channel{ID: s.state.nextID(), Name: name, Removable: true}
	s.state.channels = append(s.state.channels, ch)

	return ch
}

// RemoveChannel deletes the channel with the given id and cascades to every
// message referencing it. An absent id is a silent no-op; the Removable
// flag is not consulted. The id is returned either way.
func (s *Store) RemoveChannel(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.channels = lo.Reject(s.state.channels, func(c Channel, _ int) bool {
		return c.ID == id
	})
	s.state.messages = lo.Reject(s.state.messages, func(m Message, _ int) bool {
		return m.Channel == id
	})

	return id
}

// RenameChannel updates the channel's name in place. The second return
// value reports whether the channel existed; callers skip both ack and
// broadcast when it did not.
func (s *Store) RenameChannel(id int64, name string) (Channel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.channels {
		if s.state.channels[i].ID == id {
			s.state.channels[i].Name = name
			return s.state.channels[i], true
		}
	}

	return Channel{}, false
}

// AddUser assigns a fresh id and appends the user. Username uniqueness is
// the auth layer's concern, not a structural constraint here.
func (s *Store) AddUser(username, password string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{ID: s.state.nextID(), Username: username, Password: password}
	s.state.users = append(s.state.users, user)

	return user
}

// FindUserByUsername looks a user up by exact username.
func (s *Store) FindUserByUsername(username string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Find(s.state.users, func(u User) bool {
		return u.Username == username
	})
}

// FindUserByID looks a user up by id.
func (s *Store) FindUserByID(id int64) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Find(s.state.users, func(u User) bool {
		return u.ID == id
	})
}

// Snapshot returns a copy of the state without the users collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Channels:         append([]Channel(nil), s.state.channels...),
		Messages:         append([]Message(nil), s.state.messages...),
		CurrentChannelID: s.state.currentChannelID,
	}
}
