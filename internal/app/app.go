package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/chatterbox-im/chatterbox-server/internal/auth"
	"github.com/chatterbox-im/chatterbox-server/internal/config"
	"github.com/chatterbox-im/chatterbox-server/internal/core"
	transporthttp "github.com/chatterbox-im/chatterbox-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	seed := core.Seed{}
	if cfg.SeedPath != "" {
		var err error
		seed, err = core.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		// Seed files carry plaintext passwords; hash them before the
		// state ever sees them.
		for i := range seed.Users {
			hash, err := auth.HashPassword(seed.Users[i].Password)
			if err != nil {
				return nil, fmt.Errorf("hash seed password: %w", err)
			}
			seed.Users[i].Password = hash
		}
		logger.Info().Str("seed_path", cfg.SeedPath).Msg("seed state loaded")
	}

	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	store := core.NewStore(core.NewState(adminHash, seed))
	hub := core.NewHub()
	handlers := core.NewHandlers(store, hub, logger)

	jwtConfig := &auth.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL,
	}
	authService := auth.NewService(store, jwtConfig)

	server := transporthttp.NewServer(handlers, hub, authService, store, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or
// fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
