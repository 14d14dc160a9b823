package safety

import "regexp"

// leakPattern labels one secret shape: a recognizable prefix followed by
// a long alphanumeric run.
type leakPattern struct {
	Label string
	Re    *regexp.Regexp
}

var leakPatterns = []leakPattern{
	{"openai_api_key", regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{20,}\b`)},
	{"aws_access_key", regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)},
	{"github_token", regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`)},
	{"google_api_key", regexp.MustCompile(`\bAIza[0-9A-Za-z_-]{35}\b`)},
	{"slack_token", regexp.MustCompile(`\bxox[baprs]-[A-Za-z0-9-]{10,}\b`)},
	{"private_key_block", regexp.MustCompile(`-----BEGIN (RSA |EC |OPENSSH )?PRIVATE KEY-----`)},
	{"generic_secret", regexp.MustCompile(`(?i)\b(api[_-]?key|secret|token|password)["':=\s]+[A-Za-z0-9_\-]{24,}`)},
}

// ScanOutputForLeaks flags secret-shaped substrings in model output
// before it leaves the service. Findings carry the pattern label, never
// the matched value.
func ScanOutputForLeaks(text string) LeakScan {
	scan := LeakScan{Clean: true, Findings: []string{}}
	for _, p := range leakPatterns {
		if p.Re.MatchString(text) {
			scan.Clean = false
			scan.Findings = append(scan.Findings, p.Label)
		}
	}
	return scan
}
