package textnorm

// Result holds the outcome of normalizing one raw user message.
type Result struct {
	Raw        string
	Normalized string
}
