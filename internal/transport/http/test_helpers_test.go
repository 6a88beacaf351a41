package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/chatterbox-im/chatterbox-server/internal/auth"
	"github.com/chatterbox-im/chatterbox-server/internal/config"
	"github.com/chatterbox-im/chatterbox-server/internal/core"
)

type testEnv struct {
	ts        *httptest.Server
	store     *core.Store
	auth      *auth.Service
	jwtConfig *auth.JWTConfig
}

// newTestEnv spins up the full HTTP surface over a fresh in-memory state
// with the bootstrap admin/admin account.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := zerolog.Nop()

	adminHash, err := auth.HashPassword("admin")
	if err != nil {
		t.Fatalf("hash admin password: %v", err)
	}
	store := core.NewStore(core.NewState(adminHash, core.Seed{}))

	hub := core.NewHub()
	go hub.Run(ctx)
	handlers := core.NewHandlers(store, hub, &logger)

	jwtConfig := &auth.JWTConfig{
		Secret:   []byte("test-secret"),
		Issuer:   "test",
		Audience: "test",
		TTL:      time.Hour,
	}
	authService := auth.NewService(store, jwtConfig)

	server := NewServer(handlers, hub, authService, store, config.Default(), &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return &testEnv{
		ts:        ts,
		store:     store,
		auth:      authService,
		jwtConfig: jwtConfig,
	}
}

func (env *testEnv) postJSON(t *testing.T, path string, body any) *stdhttp.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	resp, err := stdhttp.Post(env.ts.URL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func (env *testEnv) getWithToken(t *testing.T, path, token string) *stdhttp.Response {
	t.Helper()

	req, err := stdhttp.NewRequest(stdhttp.MethodGet, env.ts.URL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := stdhttp.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *stdhttp.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
