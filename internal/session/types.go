package session

import (
	"errors"
	"time"

	"sembang-router/internal/dialect"
)

// Dialect preference codes as stored per session.
const (
	PrefDialectNone  = "none"
	PrefDialectKlate = "klate"
	PrefDialectUtara = "utara"
)

// Preference field names accepted by SetPreference.
const (
	FieldDialect          = "dialect"
	FieldLanguage         = "language"
	FieldDialectIntensity = "dialectIntensity"
)

// Intensity written when a user explicitly asks for a dialect. Sits on
// the post-process activation gate so explicit sessions stay active.
const explicitRequestIntensity = 0.35

var ErrUnknownField = errors.New("session: unknown preference field")

// Preferences is the sticky per-session dialect/language state.
type Preferences struct {
	Dialect          string           `json:"dialect"`
	Language         dialect.Language `json:"language,omitempty"`
	DialectIntensity float64          `json:"dialect_intensity"`
}

func defaultPreferences() Preferences {
	return Preferences{Dialect: PrefDialectNone, DialectIntensity: 0}
}

// Turn is one recorded user message, kept for audit/depth tracking.
type Turn struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// RouterContext is the per-session view handed to the router for audit
// logging: conversational depth plus current preferences.
type RouterContext struct {
	TurnCount   int         `json:"turn_count"`
	RecentTurns []Turn      `json:"recent_turns"`
	Preferences Preferences `json:"preferences"`
}
