package safety

import "unicode/utf8"

// EstimateTokens is a cheap chars/4 approximation, rounded up. It is
// monotonically increasing in text length and returns a small positive
// number for any non-empty string.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (utf8.RuneCountInString(text) + 3) / 4
}

// CheckBudget fails exactly when the estimated token count exceeds the
// configured context limit.
func CheckBudget(in BudgetInput) BudgetVerdict {
	return BudgetVerdict{OK: EstimateTokens(in.Message) <= in.MaxContextTokens}
}
