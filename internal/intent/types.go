package intent

// Intent is the user's classified intention for one message.
type Intent string

const (
	IntentSmalltalk   Intent = "SMALLTALK"
	IntentQuestion    Intent = "QUESTION"
	IntentTask        Intent = "TASK"
	IntentWebResearch Intent = "WEB_RESEARCH"
	IntentImageGen    Intent = "IMAGE_GEN"
	IntentDocument    Intent = "DOCUMENT"
	IntentGeneralChat Intent = "GENERAL_CHAT"
)

// Result is the classifier's output for one message.
type Result struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"` // 0..1
	Reason     string  `json:"reason"`     // machine-readable, never empty
}

// Context carries attachment flags supplied by the calling layer.
// Image attachments never reach the classifier: the router resolves
// VISION from its own request context before intent is consulted.
type Context struct {
	HasDoc bool
}
