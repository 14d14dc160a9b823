package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize_StripsZeroWidthAndMarkup(t *testing.T) {
	raw := "hai​ dunia <b>tebal</b>  <script>alert('x')</script> ok"
	got := Normalize(raw).Normalized

	if strings.Contains(got, "​") {
		t.Error("zero-width space should be removed")
	}
	if strings.Contains(got, "alert") {
		t.Error("script tag contents should be removed")
	}
	if strings.Contains(got, "<b>") || strings.Contains(got, "</b>") {
		t.Error("markup tags should be removed")
	}
	if !strings.Contains(got, "tebal") {
		t.Error("non-script tag contents should survive")
	}
	if strings.Contains(got, "  ") {
		t.Error("whitespace runs should collapse to single spaces")
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize("").Normalized; got != "" {
		t.Errorf("empty input should normalize to empty, got %q", got)
	}
	if got := Normalize("   \t\n ").Normalized; got != "" {
		t.Errorf("whitespace-only input should normalize to empty, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"hai dunia",
		"  banyak   ruang  ",
		"ada <i>tag</i> dan <script>bad()</script> sini",
		"zero​width‌‍chars\uFEFF",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in).Normalized
		twice := Normalize(once).Normalized
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeOutput(t *testing.T) {
	out := SanitizeOutput("jawapan anda <script>steal()</script> siap")
	if strings.Contains(out, "steal") || strings.Contains(out, "<script>") {
		t.Errorf("script block should be removed, got %q", out)
	}
	if !strings.Contains(out, "jawapan anda") {
		t.Errorf("surrounding text should survive, got %q", out)
	}

	if got := SanitizeOutput(""); got != "" {
		t.Errorf("empty output should stay empty, got %q", got)
	}
}
