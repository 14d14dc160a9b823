package router

import (
	"sembang-router/internal/dialect"
	"sembang-router/internal/intent"
	"sembang-router/internal/research"
	"sembang-router/internal/safety"
)

// RouteType selects the behavioral path the inference layer should take.
type RouteType string

const (
	RouteDocument    RouteType = "DOCUMENT"
	RouteVision      RouteType = "VISION"
	RouteWebResearch RouteType = "WEB_RESEARCH"
	RouteSmalltalk   RouteType = "SMALLTALK"
	RouteTask        RouteType = "TASK"
	RouteGeneralChat RouteType = "GENERAL_CHAT"
)

// Document describes an attached document, supplied by the caller.
type Document struct {
	Kind string            `json:"kind"`
	Text string            `json:"text"`
	Meta map[string]string `json:"meta,omitempty"`
}

// Context carries per-request flags from the delivery layer.
type Context struct {
	SessionKey string
	HasImage   bool
	HasDoc     bool
	Doc        *Document
}

// DecodingConfig holds the generation limits chosen for the route.
type DecodingConfig struct {
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// SafetyReport bundles the pre-inference verdicts. The caller uses it to
// short-circuit a request before inference; the router itself does not
// reject.
type SafetyReport struct {
	Injection safety.InjectionVerdict `json:"injection"`
	Budget    safety.BudgetVerdict    `json:"budget"`
	RateOK    bool                    `json:"rate_ok"`
}

// Decision is the pipeline's single output artifact.
type Decision struct {
	RouteType    RouteType                   `json:"route_type"`
	SystemPrompt string                      `json:"system_prompt"`
	Lang         dialect.Language            `json:"lang"`
	Dialect      dialect.Dialect             `json:"dialect,omitempty"`
	Intent       intent.Result               `json:"intent"`
	Detection    dialect.Result              `json:"detection"`
	Decoding     *DecodingConfig             `json:"decoding,omitempty"`
	Query        *research.ReformulatedQuery `json:"query,omitempty"`
	Safety       SafetyReport                `json:"safety"`
	TurnCount    int                         `json:"turn_count"`
}
