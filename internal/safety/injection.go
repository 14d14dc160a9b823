package safety

import "regexp"

const ReasonPromptInjection = "prompt_injection_detected"

// Known override/jailbreak phrasings. Kept narrow so legitimate
// technical questions ("how do prompt injections work?") pass clean.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bignore\s+(all\s+|any\s+)?(previous|prior|earlier|above)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)\bdisregard\s+(all\s+|any\s+)?(previous|prior|your)\s+(instructions?|rules?)`),
	regexp.MustCompile(`(?i)\bforget\s+(all\s+)?(your\s+)?(previous\s+)?instructions\b`),
	regexp.MustCompile(`(?i)\byou\s+are\s+now\s+dan\b`),
	regexp.MustCompile(`(?i)\bdo\s+anything\s+now\b`),
	regexp.MustCompile(`(?i)\bact\s+as\s+if\s+you\s+have\s+no\s+(rules|restrictions|guidelines)`),
	regexp.MustCompile(`(?i)\bpretend\s+(you\s+have\s+no|there\s+are\s+no)\s+(rules|restrictions)`),
	regexp.MustCompile(`(?i)(reveal|show|print|repeat)\s+(me\s+)?(your\s+|the\s+)?(system\s+prompt|hidden\s+instructions)`),
	regexp.MustCompile(`(?i)\bjailbreak\s+(mode|prompt)\b`),
	regexp.MustCompile(`(?i)\boverride\s+(your\s+)?(safety|system)\s+(rules|settings|instructions)`),
}

// CheckPromptInjection screens one normalized message for known
// override attempts.
func CheckPromptInjection(text string) InjectionVerdict {
	for _, re := range injectionPatterns {
		if re.MatchString(text) {
			return InjectionVerdict{Safe: false, Reason: ReasonPromptInjection}
		}
	}
	return InjectionVerdict{Safe: true}
}
