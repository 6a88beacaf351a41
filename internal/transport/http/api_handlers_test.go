package http

import (
	stdhttp "net/http"
	"strings"
	"testing"

	"github.com/chatterbox-im/chatterbox-server/internal/auth"
	"github.com/chatterbox-im/chatterbox-server/internal/proto"
)

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/api/v1/login", map[string]string{"username": "admin", "password": "admin"})
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body proto.AuthResponse
	decodeJSON(t, resp, &body)
	if body.Token == "" || body.Username != "admin" {
		t.Fatalf("unexpected login response: %+v", body)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	for _, creds := range []map[string]string{
		{"username": "admin", "password": "wrong"},
		{"username": "nobody", "password": "admin"},
	} {
		resp := env.postJSON(t, "/api/v1/login", creds)
		resp.Body.Close()
		if resp.StatusCode != stdhttp.StatusUnauthorized {
			t.Fatalf("expected 401 for %v, got %d", creds, resp.StatusCode)
		}
	}
}

func TestSignupCreatesUser(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/api/v1/signup", map[string]string{"username": "alice", "password": "secret123"})
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	var body proto.AuthResponse
	decodeJSON(t, resp, &body)
	if body.Username != "alice" {
		t.Fatalf("unexpected signup response: %+v", body)
	}

	claims, err := env.auth.ValidateToken(body.Token)
	if err != nil {
		t.Fatalf("validate signup token: %v", err)
	}
	if user, ok := env.store.FindUserByID(claims.UserID); !ok || user.Username != "alice" {
		t.Fatalf("signup token not bound to created user")
	}
}

func TestSignupTakenUsername(t *testing.T) {
	env := newTestEnv(t)

	first := env.postJSON(t, "/api/v1/signup", map[string]string{"username": "bob", "password": "secret123"})
	first.Body.Close()
	if first.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d", first.StatusCode)
	}

	dup := env.postJSON(t, "/api/v1/signup", map[string]string{"username": "bob", "password": "other"})
	dup.Body.Close()
	if dup.StatusCode != stdhttp.StatusConflict {
		t.Fatalf("duplicate signup: expected 409, got %d", dup.StatusCode)
	}

	// The rejected signup must not have created anything: the next user
	// gets the id right after bob's.
	var second proto.AuthResponse
	resp := env.postJSON(t, "/api/v1/signup", map[string]string{"username": "carol", "password": "secret123"})
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	decodeJSON(t, resp, &second)

	bob, _ := env.store.FindUserByUsername("bob")
	carol, _ := env.store.FindUserByUsername("carol")
	if carol.ID != bob.ID+1 {
		t.Fatalf("rejected signup consumed an id: bob=%d carol=%d", bob.ID, carol.ID)
	}
}

func TestDataRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	noToken := env.getWithToken(t, "/api/v1/data", "")
	noToken.Body.Close()
	if noToken.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", noToken.StatusCode)
	}

	garbage := env.getWithToken(t, "/api/v1/data", "not-a-token")
	garbage.Body.Close()
	if garbage.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", garbage.StatusCode)
	}
}

func TestDataExcludesUsers(t *testing.T) {
	env := newTestEnv(t)
	env.store.AddMessage("hi", 1)

	login := env.postJSON(t, "/api/v1/login", map[string]string{"username": "admin", "password": "admin"})
	var creds proto.AuthResponse
	decodeJSON(t, login, &creds)

	resp := env.getWithToken(t, "/api/v1/data", creds.Token)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeJSON(t, resp, &body)

	if _, present := body["users"]; present {
		t.Fatalf("data response leaks users: %v", body)
	}
	channels, ok := body["channels"].([]any)
	if !ok || len(channels) != 2 {
		t.Fatalf("unexpected channels: %v", body["channels"])
	}
	messages, ok := body["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("unexpected messages: %v", body["messages"])
	}
	if cur, ok := body["currentChannelId"].(float64); !ok || int64(cur) != 1 {
		t.Fatalf("unexpected currentChannelId: %v", body["currentChannelId"])
	}
}

func TestDataRejectsTokenOfMissingUser(t *testing.T) {
	env := newTestEnv(t)

	token, err := auth.GenerateToken(env.jwtConfig, 9999)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	resp := env.getWithToken(t, "/api/v1/data", token)
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("expected 401 for vanished user, got %d", resp.StatusCode)
	}
}
