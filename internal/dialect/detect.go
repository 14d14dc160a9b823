package dialect

import (
	"strings"
	"unicode"
)

// Detect scores one normalized message for language, dialect, formality
// and tone. It is pure and safe for concurrent use.
func Detect(text string) Result {
	tokens := tokenize(text)

	res := Result{
		Language:           LangEnglish,
		Dialect:            DialectNone,
		Formality:          FormalityNeutral,
		Tone:               toneOf(text),
		DialectTokensFound: []string{},
	}
	if len(tokens) == 0 {
		return res
	}

	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	for _, lex := range lexicons {
		score := 0
		for _, marker := range lex.Tokens {
			if tokenSet[marker] {
				score++
				res.DialectTokensFound = append(res.DialectTokensFound, marker)
			}
		}
		switch lex.Dialect {
		case DialectUtara:
			res.UtaraScore = score
		case DialectKelantan:
			res.KelantanScore = score
		}
	}

	hasMalayCue := false
	for _, cue := range malayCues {
		if tokenSet[cue] {
			hasMalayCue = true
			break
		}
	}

	// Winner-takes-all with strict domination. A tie (both > 0) is mixed
	// evidence and falls back to STANDARD.
	switch {
	case res.UtaraScore > res.KelantanScore:
		res.Language = LangMalay
		res.Dialect = DialectUtara
	case res.KelantanScore > res.UtaraScore:
		res.Language = LangMalay
		res.Dialect = DialectKelantan
	case res.UtaraScore > 0: // equal and non-zero
		res.Language = LangMalay
		res.Dialect = DialectStandard
	case hasMalayCue:
		res.Language = LangMalay
		res.Dialect = DialectStandard
	default:
		res.Language = LangEnglish
		res.Dialect = DialectNone
	}

	res.Formality = formalityOf(tokens)
	return res
}

// tokenize lowercases and splits on anything that is not a letter or
// digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func formalityOf(tokens []string) Formality {
	informal := 0
	formal := 0
	informalSet := make(map[string]bool, len(informalMarkers))
	for _, m := range informalMarkers {
		informalSet[m] = true
	}
	formalSet := make(map[string]bool, len(formalMarkers))
	for _, m := range formalMarkers {
		formalSet[m] = true
	}
	for _, t := range tokens {
		if informalSet[t] || isLaughter(t) {
			informal++
		}
		if formalSet[t] {
			formal++
		}
	}

	density := float64(informal) / float64(len(tokens))
	switch {
	case informal >= 2 || density > informalDensityCutoff:
		return FormalityInformal
	case formal > 0 && informal == 0:
		return FormalityFormal
	default:
		return FormalityNeutral
	}
}

// isLaughter catches stretched laughter like "hahahaha" that the fixed
// marker list misses.
func isLaughter(token string) bool {
	if len(token) < 4 {
		return false
	}
	for _, r := range token {
		if r != 'h' && r != 'a' && r != 'e' && r != 'k' && r != 'w' {
			return false
		}
	}
	return strings.Contains(token, "ha") || strings.Contains(token, "he") ||
		strings.Contains(token, "wk")
}

func toneOf(text string) string {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasSuffix(trimmed, "?"):
		return "inquisitive"
	case strings.Contains(trimmed, "!"):
		return "excited"
	default:
		return "neutral"
	}
}
