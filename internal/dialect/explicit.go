package dialect

import "strings"

// explicitPattern maps an imperative phrasing to the switch it asks for.
// Patterns are matched as lowercase substrings, first match wins.
type explicitPattern struct {
	Phrases []string
	Lang    Language
	Dialect Dialect
}

var explicitPatterns = []explicitPattern{
	{
		Phrases: []string{
			"speak english", "in english please", "english please",
			"reply in english", "answer in english", "cakap english",
			"guna english", "bahasa inggeris",
		},
		Lang: LangEnglish,
	},
	{
		Phrases: []string{
			"standard bm", "bm standard", "bm baku", "bm biasa",
			"bahasa melayu standard", "loghat standard",
			"tak payah loghat", "stop loghat", "bm je",
		},
		Dialect: DialectStandard,
	},
	{
		Phrases: []string{
			"loghat klate", "loghat kelantan", "kecek klate",
			"kecek kelate", "cakap klate", "cakap kelantan",
		},
		Dialect: DialectKelantan,
	},
	{
		Phrases: []string{
			"loghat utara", "cakap utara", "loghat kedah",
			"cakap macam orang utara",
		},
		Dialect: DialectUtara,
	},
}

// DetectExplicitRequest recognizes imperative instructions to switch the
// conversation language or dialect, or reset to unmarked Malay.
func DetectExplicitRequest(text string) ExplicitRequest {
	lower := strings.ToLower(text)
	for _, p := range explicitPatterns {
		for _, phrase := range p.Phrases {
			if strings.Contains(lower, phrase) {
				return ExplicitRequest{Requested: true, Lang: p.Lang, Dialect: p.Dialect}
			}
		}
	}
	return ExplicitRequest{}
}
