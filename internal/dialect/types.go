package dialect

// Language is the detected surface language of a message.
type Language string

const (
	LangEnglish Language = "en"
	LangMalay   Language = "ms"
)

// Dialect identifies a Malay regional dialect. The zero value means the
// message carried no Malay cues at all (English text).
type Dialect string

const (
	DialectNone     Dialect = ""
	DialectStandard Dialect = "STANDARD"
	DialectUtara    Dialect = "UTARA"
	DialectKelantan Dialect = "KELANTAN"
)

// Formality labels how formal a message reads.
type Formality string

const (
	FormalityInformal Formality = "informal"
	FormalityNeutral  Formality = "neutral"
	FormalityFormal   Formality = "formal"
)

// Result is the outcome of language/dialect detection for one message.
type Result struct {
	Language           Language  `json:"language"`
	Dialect            Dialect   `json:"dialect,omitempty"`
	Formality          Formality `json:"formality"`
	Tone               string    `json:"tone"`
	DialectTokensFound []string  `json:"dialect_tokens_found"`
	UtaraScore         int       `json:"utara_score"`
	KelantanScore      int       `json:"kelantan_score"`
	ExplicitRequest    bool      `json:"explicit_request"`
}

// ExplicitRequest is a detected imperative instruction to switch or
// reset the conversation language/dialect.
type ExplicitRequest struct {
	Requested bool     `json:"requested"`
	Lang      Language `json:"lang,omitempty"`
	Dialect   Dialect  `json:"dialect,omitempty"`
}

// Stabilizer is generation-time guidance that keeps model output
// consistent with the detected dialect.
type Stabilizer struct {
	Instructions      string `json:"instructions"`
	DialectTokenLimit int    `json:"dialect_token_limit"`
}

// StabilizerLevel controls how much dialect flavor the stabilizer asks
// the model to produce.
type StabilizerLevel string

const (
	StabilizerOff    StabilizerLevel = "off"
	StabilizerLight  StabilizerLevel = "light"
	StabilizerMedium StabilizerLevel = "medium"
)

// PostProcessOptions gate the dialect rewrite in ApplyPostProcess.
type PostProcessOptions struct {
	Intensity  float64
	Explicit   bool
	Confidence float64
}
