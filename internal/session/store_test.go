package session

import (
	"sync"
	"testing"

	"sembang-router/internal/dialect"
)

func TestGetPreferences_Defaults(t *testing.T) {
	store := NewMemoryStore(Options{})
	got := store.GetPreferences("never-seen")

	if got.Dialect != PrefDialectNone {
		t.Errorf("default dialect = %q, want %q", got.Dialect, PrefDialectNone)
	}
	if got.Language != "" {
		t.Errorf("default language should be unset, got %q", got.Language)
	}
	if got.DialectIntensity != 0 {
		t.Errorf("default intensity = %v, want 0", got.DialectIntensity)
	}
}

func TestApplyExplicitRequest_RoundTrip(t *testing.T) {
	store := NewMemoryStore(Options{})
	key := "visitor-1"

	store.ApplyExplicitRequest(key, dialect.ExplicitRequest{Requested: true, Dialect: dialect.DialectKelantan})
	got := store.GetPreferences(key)
	if got.Dialect != PrefDialectKlate {
		t.Errorf("dialect = %q, want %q", got.Dialect, PrefDialectKlate)
	}
	if got.DialectIntensity != 0.35 {
		t.Errorf("intensity = %v, want 0.35", got.DialectIntensity)
	}

	store.ApplyExplicitRequest(key, dialect.ExplicitRequest{Requested: true, Dialect: dialect.DialectStandard})
	got = store.GetPreferences(key)
	if got.Dialect != PrefDialectNone {
		t.Errorf("after reset dialect = %q, want %q", got.Dialect, PrefDialectNone)
	}
	if got.DialectIntensity != 0 {
		t.Errorf("after reset intensity = %v, want 0", got.DialectIntensity)
	}
}

func TestApplyExplicitRequest_Utara(t *testing.T) {
	store := NewMemoryStore(Options{})
	store.ApplyExplicitRequest("v", dialect.ExplicitRequest{Requested: true, Dialect: dialect.DialectUtara})
	if got := store.GetPreferences("v").Dialect; got != PrefDialectUtara {
		t.Errorf("dialect = %q, want %q", got, PrefDialectUtara)
	}
}

func TestApplyExplicitRequest_LanguageSwitch(t *testing.T) {
	store := NewMemoryStore(Options{})
	store.ApplyExplicitRequest("v", dialect.ExplicitRequest{Requested: true, Lang: dialect.LangEnglish})
	if got := store.GetPreferences("v").Language; got != dialect.LangEnglish {
		t.Errorf("language = %q, want en", got)
	}
}

func TestSetPreference(t *testing.T) {
	store := NewMemoryStore(Options{})

	if err := store.SetPreference("v", FieldDialect, PrefDialectUtara); err != nil {
		t.Fatalf("SetPreference dialect: %v", err)
	}
	if err := store.SetPreference("v", FieldDialectIntensity, 0.5); err != nil {
		t.Fatalf("SetPreference intensity: %v", err)
	}
	got := store.GetPreferences("v")
	if got.Dialect != PrefDialectUtara || got.DialectIntensity != 0.5 {
		t.Errorf("preferences not persisted: %+v", got)
	}

	if err := store.SetPreference("v", "bogus", 1); err == nil {
		t.Error("unknown field should error")
	}
}

func TestPreferencesStickAcrossSessions(t *testing.T) {
	store := NewMemoryStore(Options{})
	store.ApplyExplicitRequest("a", dialect.ExplicitRequest{Requested: true, Dialect: dialect.DialectKelantan})

	if got := store.GetPreferences("b").Dialect; got != PrefDialectNone {
		t.Errorf("session b should be untouched, got %q", got)
	}
	if got := store.GetPreferences("a").Dialect; got != PrefDialectKlate {
		t.Errorf("session a lost its preference, got %q", got)
	}
}

func TestAddUserTurn_TracksDepth(t *testing.T) {
	store := NewMemoryStore(Options{MaxTurns: 3})
	key := "chatty"

	for i := 0; i < 5; i++ {
		store.AddUserTurn(key, "msg")
	}
	rc := store.GetRouterContext(key)

	if rc.TurnCount != 5 {
		t.Errorf("turn count = %d, want 5", rc.TurnCount)
	}
	if len(rc.RecentTurns) != 3 {
		t.Errorf("recent turns = %d, want trimmed window of 3", len(rc.RecentTurns))
	}
	for _, turn := range rc.RecentTurns {
		if turn.ID == "" {
			t.Error("turns should carry IDs")
		}
	}
}

func TestGetRouterContext_UnseenKey(t *testing.T) {
	store := NewMemoryStore(Options{})
	rc := store.GetRouterContext("ghost")
	if rc.TurnCount != 0 || len(rc.RecentTurns) != 0 {
		t.Errorf("unseen key should be empty: %+v", rc)
	}
}

func TestStore_ConcurrentSameKey(t *testing.T) {
	store := NewMemoryStore(Options{})
	key := "racer"

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddUserTurn(key, "turn")
			store.ApplyExplicitRequest(key, dialect.ExplicitRequest{Requested: true, Dialect: dialect.DialectKelantan})
			_ = store.GetPreferences(key)
		}()
	}
	wg.Wait()

	if got := store.GetRouterContext(key).TurnCount; got != 50 {
		t.Errorf("lost updates: turn count = %d, want 50", got)
	}
}
