package textnorm

import (
	"regexp"
	"strings"
)

var (
	// Zero-width space, non-joiner, joiner, BOM.
	zeroWidthRe = regexp.MustCompile("[\u200B\u200C\u200D\uFEFF]")

	// Script-like tags are removed together with their contents; other
	// markup loses only the tags themselves.
	scriptBlockRe = regexp.MustCompile(`(?is)<\s*(script|style|iframe)\b[^>]*>.*?<\s*/\s*(script|style|iframe)\s*>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Normalize sanitizes one raw user message. The result is idempotent:
// normalizing an already-normalized string is a no-op.
func Normalize(raw string) Result {
	if raw == "" {
		return Result{Raw: raw, Normalized: ""}
	}

	s := zeroWidthRe.ReplaceAllString(raw, "")
	s = scriptBlockRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	return Result{Raw: raw, Normalized: s}
}

// SanitizeOutput removes embedded script-tag blocks (tag and contents)
// from model-generated text before it reaches the presentation layer.
// It deliberately leaves the rest of the text untouched.
func SanitizeOutput(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(scriptBlockRe.ReplaceAllString(text, ""))
}
