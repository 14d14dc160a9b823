package session

import "sembang-router/internal/dialect"

// Store is the conversation-context abstraction injected into the
// router. Implementations must serialize read-modify-write sequences
// for the same session key.
type Store interface {
	GetPreferences(sessionKey string) Preferences
	SetPreference(sessionKey, field string, value interface{}) error
	ApplyExplicitRequest(sessionKey string, req dialect.ExplicitRequest)
	AddUserTurn(sessionKey, text string)
	GetRouterContext(sessionKey string) RouterContext
}
