package dialect

import (
	"fmt"
	"strings"
)

// BuildSmalltalkStabilizer turns a detection result into prose guidance
// for the generation step. The guidance names the resolved dialect,
// cites only exemplar tokens that were actually observed, and warns the
// model off the competing dialect.
func BuildSmalltalkStabilizer(res Result, level StabilizerLevel) Stabilizer {
	limit, ok := stabilizerTokenLimits[level]
	if !ok || limit <= 0 {
		limit = defaultStabilizerTokenLimit
	}

	var b strings.Builder

	switch res.Dialect {
	case DialectUtara, DialectKelantan:
		name, wrongName := dialectNameUtara, dialectNameKelantan
		if res.Dialect == DialectKelantan {
			name, wrongName = dialectNameKelantan, dialectNameUtara
		}

		fmt.Fprintf(&b, "The user is speaking in %s. Reply in the same dialect, keeping it natural and warm.", name)

		exemplars := ownDialectTokens(res, limit)
		if len(exemplars) > 0 {
			fmt.Fprintf(&b, " Dialect words seen in this conversation that you may reuse (at most %d per reply): %s.",
				limit, strings.Join(exemplars, ", "))
		}
		fmt.Fprintf(&b, " Never mix in words from %s — that is the WRONG dialect for this user.", wrongName)
		if level == StabilizerOff {
			b.WriteString(" Keep dialect flavor minimal; standard Malay sentence structure is fine.")
		}

	case DialectStandard:
		fmt.Fprintf(&b, "The user is speaking %s. Reply in standard Malay without regional dialect words.", dialectNameStandard)

	default:
		b.WriteString("The user is speaking English. Reply in clear, friendly English.")
	}

	return Stabilizer{
		Instructions:      b.String(),
		DialectTokenLimit: limit,
	}
}

// ownDialectTokens filters DialectTokensFound down to tokens belonging
// to the resolved dialect, capped at limit. Tokens from the competing
// lexicon must never appear in the guidance.
func ownDialectTokens(res Result, limit int) []string {
	var own map[string]bool
	for _, lex := range lexicons {
		if lex.Dialect == res.Dialect {
			own = make(map[string]bool, len(lex.Tokens))
			for _, t := range lex.Tokens {
				own[t] = true
			}
		}
	}
	if own == nil {
		return nil
	}

	out := make([]string, 0, limit)
	for _, t := range res.DialectTokensFound {
		if own[t] {
			out = append(out, t)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
