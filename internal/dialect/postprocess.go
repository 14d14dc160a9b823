package dialect

import (
	"regexp"
	"strings"
	"sync"
)

var (
	wordReOnce sync.Once
	wordRes    map[Dialect]map[string]*regexp.Regexp
)

// compiled word-boundary patterns for each rewrite table entry.
func rewritePatterns() map[Dialect]map[string]*regexp.Regexp {
	wordReOnce.Do(func() {
		wordRes = make(map[Dialect]map[string]*regexp.Regexp, len(postProcessRewrites))
		for d, table := range postProcessRewrites {
			wordRes[d] = make(map[string]*regexp.Regexp, len(table))
			for neutral := range table {
				wordRes[d][neutral] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(neutral) + `\b`)
			}
		}
	})
	return wordRes
}

// ApplyPostProcess rewrites a small set of neutral lexical items into
// their dialect-specific equivalents. The rewrite only activates when
// the user explicitly asked for the dialect, or when session intensity
// or detection confidence clears the activation threshold; otherwise the
// text passes through unchanged.
func ApplyPostProcess(text string, d Dialect, opts PostProcessOptions) string {
	table, ok := postProcessRewrites[d]
	if !ok || text == "" {
		return text
	}
	if !opts.Explicit && opts.Intensity < postProcessThreshold && opts.Confidence < postProcessThreshold {
		return text
	}

	patterns := rewritePatterns()[d]
	out := text
	for neutral, replacement := range table {
		out = patterns[neutral].ReplaceAllStringFunc(out, func(m string) string {
			if m == strings.ToUpper(m) && len(m) > 1 {
				return strings.ToUpper(replacement)
			}
			if m[0] >= 'A' && m[0] <= 'Z' {
				return strings.ToUpper(replacement[:1]) + replacement[1:]
			}
			return replacement
		})
	}
	return out
}
