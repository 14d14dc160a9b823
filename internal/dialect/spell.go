package dialect

import (
	"strings"
	"unicode"
)

// ConservativeSpellCorrect expands common chat shorthand into full
// words. Tokens listed in protected are never rewritten, so dialect
// markers survive correction untouched. Punctuation and casing of
// unchanged tokens are preserved.
func ConservativeSpellCorrect(text string, protected []string) string {
	if text == "" {
		return ""
	}

	protectedSet := make(map[string]bool, len(protected))
	for _, p := range protected {
		protectedSet[strings.ToLower(p)] = true
	}

	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		core, prefix, suffix := splitPunct(field)
		lower := strings.ToLower(core)

		replacement, known := spellCorrections[lower]
		if !known || protectedSet[lower] {
			out = append(out, field)
			continue
		}
		out = append(out, prefix+replacement+suffix)
	}
	return strings.Join(out, " ")
}

// splitPunct peels leading/trailing punctuation off a token so "yg,"
// corrects to "yang,".
func splitPunct(token string) (core, prefix, suffix string) {
	runes := []rune(token)
	start := 0
	for start < len(runes) && unicode.IsPunct(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && unicode.IsPunct(runes[end-1]) {
		end--
	}
	return string(runes[start:end]), string(runes[:start]), string(runes[end:])
}
