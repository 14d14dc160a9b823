package dialect

import (
	"strings"
	"testing"
)

func TestApplyPostProcess_BelowThresholdUnchanged(t *testing.T) {
	in := "awak nak pergi mana"
	got := ApplyPostProcess(in, DialectUtara, PostProcessOptions{Intensity: 0.3, Confidence: 0.3})
	if got != in {
		t.Errorf("rewrite activated below threshold: %q", got)
	}
}

func TestApplyPostProcess_AboveThresholdRewrites(t *testing.T) {
	got := ApplyPostProcess("awak nak pergi mana", DialectUtara, PostProcessOptions{Intensity: 0.4})
	if !strings.Contains(got, "hang") {
		t.Errorf("expected utara pronoun, got %q", got)
	}
	if !strings.Contains(got, "pi") {
		t.Errorf("expected utara verb, got %q", got)
	}
}

func TestApplyPostProcess_ExplicitAlwaysActivates(t *testing.T) {
	got := ApplyPostProcess("awak buat apa", DialectKelantan, PostProcessOptions{Explicit: true})
	if !strings.Contains(got, "demo") {
		t.Errorf("explicit request should rewrite regardless of intensity, got %q", got)
	}
	if !strings.Contains(got, "gapo") {
		t.Errorf("expected kelantan rewrite of apa, got %q", got)
	}
}

func TestApplyPostProcess_NoCrossDialectMarkers(t *testing.T) {
	got := ApplyPostProcess("awak nak pergi kenapa", DialectUtara, PostProcessOptions{Explicit: true})

	for marker := range postProcessRewrites[DialectKelantan] {
		replacement := postProcessRewrites[DialectKelantan][marker]
		for _, token := range strings.Fields(got) {
			if token == replacement {
				t.Errorf("utara output contains kelantan marker %q: %q", replacement, got)
			}
		}
	}
}

func TestApplyPostProcess_PreservesCase(t *testing.T) {
	got := ApplyPostProcess("Awak ok tak?", DialectUtara, PostProcessOptions{Explicit: true})
	if !strings.HasPrefix(got, "Hang") {
		t.Errorf("capitalization should carry over, got %q", got)
	}
}
