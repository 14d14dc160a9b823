package intent

import "strings"

// rule is one step of the precedence chain. Rules are evaluated
// top-to-bottom; the first predicate that fires decides the intent.
type rule struct {
	Intent     Intent
	Confidence float64
	Reason     string
	Match      func(lower string, ctx Context) bool
}

var rules = []rule{
	{IntentDocument, confidenceDocument, reasonDocumentAttached,
		func(_ string, ctx Context) bool { return ctx.HasDoc }},
	{IntentWebResearch, confidenceWebResearch, reasonWebTrigger,
		func(lower string, _ Context) bool { return containsAny(lower, webResearchTriggers) }},
	{IntentImageGen, confidenceImageGen, reasonImageGenPair,
		func(lower string, _ Context) bool {
			return containsAny(lower, imageGenVerbs) && containsAny(lower, imageGenNouns)
		}},
	{IntentTask, confidenceTask, reasonTaskPattern,
		func(lower string, _ Context) bool { return containsAny(lower, taskTriggers) }},
	{IntentSmalltalk, confidenceSmalltalk, reasonGreeting,
		func(lower string, _ Context) bool { return isGreeting(lower) }},
}

// Classify assigns exactly one intent to a normalized message. It never
// fails: text that matches no rule falls through to QUESTION or
// GENERAL_CHAT depending on interrogative form.
func Classify(text string, ctx Context) Result {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, r := range rules {
		if r.Match(lower, ctx) {
			return Result{Intent: r.Intent, Confidence: r.Confidence, Reason: r.Reason}
		}
	}

	if isInterrogative(lower) {
		return Result{Intent: IntentQuestion, Confidence: confidenceQuestion, Reason: reasonInterrogative}
	}
	return Result{Intent: IntentGeneralChat, Confidence: confidenceGeneralChat, Reason: reasonFallback}
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// isGreeting anchors phatic triggers to the start of the message so a
// greeting word buried mid-sentence does not hijack the intent.
func isGreeting(lower string) bool {
	for _, g := range smalltalkTriggers {
		if lower == g {
			return true
		}
		if strings.HasPrefix(lower, g) {
			rest := lower[len(g):]
			if rest == "" || strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, ",") ||
				strings.HasPrefix(rest, "!") || strings.HasPrefix(rest, ".") {
				return true
			}
		}
	}
	return false
}

func isInterrogative(lower string) bool {
	if strings.HasSuffix(lower, "?") {
		return true
	}
	first, _, _ := strings.Cut(lower, " ")
	for _, lead := range questionLeads {
		if first == lead {
			return true
		}
	}
	return false
}
