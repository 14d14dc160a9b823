package research

import (
	"regexp"
	"strings"
)

var (
	searchTriggerRe = regexp.MustCompile(`(?i)^(cari web:?|search web:?|google:?)\s*`)
	sizeRe          = regexp.MustCompile(`(?i)^(\d+)\s*(gb|tb|mb)$`)
	punctTrimRe     = regexp.MustCompile(`^[\p{P}]+|[\p{P}]+$`)
)

// Reformulate rewrites free text into a search-provider query. Filler
// words drop out, component shorthand expands to full category terms,
// sizes normalize to an uppercase unit, price queries gain a geography
// qualifier, and a named marketplace moves into SiteHint. Anything not
// matched by those tables — brand and model names in particular — passes
// through verbatim.
func Reformulate(text string) ReformulatedQuery {
	text = searchTriggerRe.ReplaceAllString(strings.TrimSpace(text), "")

	var (
		parts      []string
		siteHint   string
		priceQuery bool
	)

	for _, field := range strings.Fields(text) {
		token := punctTrimRe.ReplaceAllString(field, "")
		if token == "" {
			continue
		}
		lower := strings.ToLower(token)

		if domain, ok := marketplaceDomains[lower]; ok {
			siteHint = domain
			continue
		}
		if fillerWords[lower] {
			continue
		}
		if m := sizeRe.FindStringSubmatch(token); m != nil {
			parts = append(parts, m[1]+strings.ToUpper(m[2]))
			continue
		}
		if expanded, ok := abbreviationExpansions[lower]; ok {
			parts = append(parts, expanded)
			continue
		}
		for _, pw := range priceWords {
			if lower == pw {
				priceQuery = true
				break
			}
		}
		parts = append(parts, token)
	}

	query := strings.Join(parts, " ")
	if priceQuery && !strings.Contains(strings.ToLower(query), strings.ToLower(geoQualifier)) {
		query = strings.TrimSpace(query + " " + geoQualifier)
	}

	return ReformulatedQuery{Query: query, SiteHint: siteHint}
}
