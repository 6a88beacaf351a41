package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedFile(t *testing.T) {
	content := `
channels:
  - id: 10
    name: announcements
    removable: true
messages:
  - id: 11
    message: welcome
    channel: 10
users:
  - id: 12
    username: seeded
    password: plaintext
current_channel_id: 10
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	seed, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	if len(seed.Channels) != 1 || seed.Channels[0].Name != "announcements" {
		t.Fatalf("unexpected channels: %+v", seed.Channels)
	}
	if len(seed.Messages) != 1 || seed.Messages[0].Text != "welcome" || seed.Messages[0].Channel != 10 {
		t.Fatalf("unexpected messages: %+v", seed.Messages)
	}
	if len(seed.Users) != 1 || seed.Users[0].Username != "seeded" {
		t.Fatalf("unexpected users: %+v", seed.Users)
	}
	if seed.CurrentChannelID != 10 {
		t.Fatalf("unexpected current channel: %d", seed.CurrentChannelID)
	}
}

func TestLoadSeedFileMissing(t *testing.T) {
	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}

func TestNewStateLayersSeedOnBuiltins(t *testing.T) {
	seed := Seed{
		Channels:         []Channel{{ID: 10, Name: "announcements", Removable: true}},
		Messages:         []Message{{ID: 11, Text: "welcome", Channel: 10}},
		Users:            []User{{ID: 12, Username: "seeded", Password: "hash"}},
		CurrentChannelID: 10,
	}
	store := NewStore(NewState("bootstrap-hash", seed))

	snap := store.Snapshot()
	if len(snap.Channels) != 3 || snap.Channels[2].Name != "announcements" {
		t.Fatalf("seed channels not appended after builtins: %+v", snap.Channels)
	}
	if snap.CurrentChannelID != 10 {
		t.Fatalf("seed current channel not applied: %d", snap.CurrentChannelID)
	}
	if _, ok := store.FindUserByID(12); !ok {
		t.Fatalf("seed user missing")
	}

	// Seeded entities keep their supplied ids and do not advance the
	// counter: the next issued id follows the two builtin channels.
	ch := store.AddChannel("fresh")
	if ch.ID != 3 {
		t.Fatalf("expected next issued id 3, got %d", ch.ID)
	}
}
