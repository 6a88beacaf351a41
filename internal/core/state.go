package core

// Channel is a named message stream. The two channels installed at startup
// ("general" and "random") are marked non-removable; everything created
// through the client protocol is removable.
type Channel struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Removable bool   `yaml:"removable"`
}

// Message is a text post tied to a channel by numeric reference. The
// reference is not checked on creation; a message may point at a channel
// that no longer exists.
type Message struct {
	ID      int64  `yaml:"id"`
	Text    string `yaml:"message"`
	Channel int64  `yaml:"channel"`
}

// User is a registered account. Password holds whatever the auth layer
// stored for it (a bcrypt hash in this server).
type User struct {
	ID       int64  `yaml:"id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Snapshot is the state exposed to authenticated readers: everything
// except the users collection.
type Snapshot struct {
	Channels         []Channel
	Messages         []Message
	CurrentChannelID int64
}

const (
	bootstrapUsername = "admin"
	bootstrapUserID   = 1
)

// State is the authoritative aggregate for channels, messages and users.
// It lives for the process lifetime and is intentionally ephemeral: nothing
// is persisted and a restart starts from the seed again.
//
// Identifiers for every entity kind are drawn from one counter, so an id
// issued for a message is never reused for a channel or a user.
type State struct {
	channels         []Channel
	messages         []Message
	users            []User
	currentChannelID int64
	lastID           int64
}

// nextID advances the shared counter. Callers must hold the store lock.
func (s *State) nextID() int64 {
	s.lastID++
	return s.lastID
}

// NewState builds the aggregate: the two permanent channels, the bootstrap
// account, then any externally supplied seed entities on top.
//
// The bootstrap account keeps its historical literal id rather than drawing
// from the counter, so the first runtime entity after the two built-in
// channels always gets id 3. Seeded entities likewise keep the ids they
// arrive with and do not advance the counter.
func NewState(bootstrapPassword string, seed Seed) *State {
	s := &State{}

	general := Channel{ID: s.nextID(), Name: "general"}
	random := Channel{ID: s.nextID(), Name: "random"}
	s.channels = []Channel{general, random}
	s.currentChannelID = general.ID
	s.users = []User{{
		ID:       bootstrapUserID,
		Username: bootstrapUsername,
		Password: bootstrapPassword,
	}}

	s.channels = append(s.channels, seed.Channels...)
	s.messages = append(s.messages, seed.Messages...)
	s.users = append(s.users, seed.Users...)
	if seed.CurrentChannelID != 0 {
		s.currentChannelID = seed.CurrentChannelID
	}

	return s
}
