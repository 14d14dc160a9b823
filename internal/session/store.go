package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"sembang-router/internal/dialect"
)

// MemoryStore keeps session preferences and turn history in an
// expirable LRU, bounding what would otherwise grow without limit. A
// single mutex serializes every read-modify-write; cross-session calls
// are cheap enough that finer locking has not been needed.
type MemoryStore struct {
	mu       sync.Mutex
	entries  *expirable.LRU[string, *entry]
	maxTurns int
}

type entry struct {
	prefs      Preferences
	turns      []Turn
	totalTurns int // survives history trimming
}

var _ Store = (*MemoryStore)(nil)

// Options bound the store. Zero values pick the defaults.
type Options struct {
	MaxEntries int           // default 10000
	TTL        time.Duration // default 24h of inactivity
	MaxTurns   int           // turns kept per session, default 50
}

// NewMemoryStore creates the in-memory store backing the router.
func NewMemoryStore(opts Options) *MemoryStore {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = 10000
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = 50
	}
	return &MemoryStore{
		entries:  expirable.NewLRU[string, *entry](opts.MaxEntries, nil, opts.TTL),
		maxTurns: opts.MaxTurns,
	}
}

// GetPreferences returns the session's stored preferences, or defaults
// for an unseen key. Reading never creates an entry.
func (s *MemoryStore) GetPreferences(sessionKey string) Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries.Get(sessionKey); ok {
		return e.prefs
	}
	return defaultPreferences()
}

// SetPreference writes one preference field, creating the session entry
// lazily on first write.
func (s *MemoryStore) SetPreference(sessionKey, field string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreate(sessionKey)

	switch field {
	case FieldDialect:
		if v, ok := value.(string); ok {
			e.prefs.Dialect = v
			return nil
		}
	case FieldLanguage:
		switch v := value.(type) {
		case dialect.Language:
			e.prefs.Language = v
			return nil
		case string:
			e.prefs.Language = dialect.Language(v)
			return nil
		}
	case FieldDialectIntensity:
		if v, ok := value.(float64); ok {
			e.prefs.DialectIntensity = v
			return nil
		}
	}
	return ErrUnknownField
}

// ApplyExplicitRequest maps a detected switch/reset instruction into
// stored preference codes. KELANTAN and UTARA turn the dialect on at
// explicit intensity; STANDARD resets to unmarked Malay.
func (s *MemoryStore) ApplyExplicitRequest(sessionKey string, req dialect.ExplicitRequest) {
	if !req.Requested {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreate(sessionKey)

	if req.Lang != "" {
		e.prefs.Language = req.Lang
	}
	switch req.Dialect {
	case dialect.DialectKelantan:
		e.prefs.Dialect = PrefDialectKlate
		e.prefs.DialectIntensity = explicitRequestIntensity
	case dialect.DialectUtara:
		e.prefs.Dialect = PrefDialectUtara
		e.prefs.DialectIntensity = explicitRequestIntensity
	case dialect.DialectStandard:
		e.prefs.Dialect = PrefDialectNone
		e.prefs.DialectIntensity = 0
	}
}

// AddUserTurn appends one user message to the session history, trimming
// to the configured window.
func (s *MemoryStore) AddUserTurn(sessionKey, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreate(sessionKey)

	e.turns = append(e.turns, Turn{
		ID:   uuid.NewString(),
		Text: text,
		At:   time.Now(),
	})
	e.totalTurns++
	if len(e.turns) > s.maxTurns {
		e.turns = e.turns[len(e.turns)-s.maxTurns:]
	}
}

// GetRouterContext snapshots the session for audit logging.
func (s *MemoryStore) GetRouterContext(sessionKey string) RouterContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.Get(sessionKey)
	if !ok {
		return RouterContext{RecentTurns: []Turn{}, Preferences: defaultPreferences()}
	}
	turns := make([]Turn, len(e.turns))
	copy(turns, e.turns)
	return RouterContext{
		TurnCount:   e.totalTurns,
		RecentTurns: turns,
		Preferences: e.prefs,
	}
}

// getOrCreate must be called with the store mutex held.
func (s *MemoryStore) getOrCreate(sessionKey string) *entry {
	if e, ok := s.entries.Get(sessionKey); ok {
		return e
	}
	e := &entry{prefs: defaultPreferences()}
	s.entries.Add(sessionKey, e)
	return e
}
