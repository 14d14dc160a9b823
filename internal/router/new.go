package router

import (
	"context"

	"sembang-router/internal/dialect"
	"sembang-router/internal/safety"
	"sembang-router/internal/session"
	"sembang-router/pkg/log"
)

// Router resolves one message into a route decision.
type Router interface {
	Route(ctx context.Context, text string, rctx Context) (Decision, error)
}

// Config tunes the routing pipeline.
type Config struct {
	MaxContextTokens int
	StabilizerLevel  dialect.StabilizerLevel
}

// MessageRouter composes the analysis components into decisions. It is
// the only component that calls the others.
type MessageRouter struct {
	store session.Store
	guard *safety.RateGuard
	cfg   Config
	l     log.Logger
}

// Ensure MessageRouter implements Router interface
var _ Router = (*MessageRouter)(nil)

// New creates a MessageRouter. guard may be nil when the caller does its
// own flood control.
func New(store session.Store, guard *safety.RateGuard, cfg Config, l log.Logger) *MessageRouter {
	if cfg.MaxContextTokens <= 0 {
		cfg.MaxContextTokens = 4096
	}
	if cfg.StabilizerLevel == "" {
		cfg.StabilizerLevel = dialect.StabilizerLight
	}
	return &MessageRouter{
		store: store,
		guard: guard,
		cfg:   cfg,
		l:     l,
	}
}
