package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sembang-router/config"
	"sembang-router/internal/dialect"
	"sembang-router/internal/router"
	"sembang-router/internal/safety"
	"sembang-router/internal/session"
	"sembang-router/pkg/log"
)

// routerd wires the classification pipeline the same way a delivery
// layer would: one message per stdin line, one JSON decision per line.
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting sembang-router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Conversation context store
	store := session.NewMemoryStore(session.Options{
		MaxEntries: cfg.Session.MaxEntries,
		TTL:        cfg.Session.TTL,
		MaxTurns:   cfg.Session.MaxTurns,
	})

	// 4. Flood guard (optional)
	var guard *safety.RateGuard
	if cfg.RateGuard.Enabled {
		guard, err = safety.NewRateGuard(cfg.RateGuard.PerMin, cfg.RateGuard.Burst, cfg.RateGuard.MaxSessions)
		if err != nil {
			logger.Errorf(ctx, "Failed to build rate guard: %v", err)
			return
		}
	}

	// 5. Router
	r := router.New(store, guard, router.Config{
		MaxContextTokens: cfg.Pipeline.MaxContextTokens,
		StabilizerLevel:  dialect.StabilizerLevel(cfg.Pipeline.StabilizerLevel),
	}, logger)

	sessionKey := "stdin"
	if len(os.Args) > 1 {
		sessionKey = os.Args[1]
	}

	enc := json.NewEncoder(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Shutting down")
			return
		default:
		}

		decision, rerr := r.Route(ctx, scanner.Text(), router.Context{SessionKey: sessionKey})
		if rerr != nil {
			logger.Errorf(ctx, "Route failed: %v", rerr)
			continue
		}
		if err := enc.Encode(decision); err != nil {
			logger.Errorf(ctx, "Encode failed: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Errorf(ctx, "Input error: %v", err)
	}
}
