package safety

// InjectionVerdict is the result of screening input for prompt
// injection. A failed check is a normal return value, not an error.
type InjectionVerdict struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
}

// LeakScan is the result of scanning model output for secret-shaped
// substrings.
type LeakScan struct {
	Clean    bool     `json:"clean"`
	Findings []string `json:"findings"`
}

// BudgetInput carries the message and the configured context limit.
type BudgetInput struct {
	Message          string
	MaxContextTokens int
}

// BudgetVerdict reports whether the message fits the token budget.
type BudgetVerdict struct {
	OK bool `json:"ok"`
}
