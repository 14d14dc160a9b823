package intent

// Trigger phrase and pattern tables for the precedence chain. Matching
// is lowercase-substring or token based; tables are immutable.

var webResearchTriggers = []string{
	"cari web:", "cari web ", "carikan web", "cari kat web",
	"search web:", "search the web", "google:", "googlekan",
}

var imageGenVerbs = []string{
	"lukis", "lukiskan", "jana", "janakan", "hasilkan",
	"draw", "generate", "create", "buatkan",
}

var imageGenNouns = []string{
	"gambar", "imej", "image", "logo", "poster", "ilustrasi",
	"picture", "wallpaper", "banner", "sketch", "lukisan",
}

var taskTriggers = []string{
	"tolong buatkan", "tolong tuliskan", "tolong semak", "tolong susun",
	"buatkan", "tuliskan", "senaraikan", "ringkaskan", "terjemahkan",
	"semakkan", "write me", "make me", "help me write", "summarize",
	"translate", "draft",
}

var smalltalkTriggers = []string{
	"hai", "hi", "hello", "helo", "hey", "yo",
	"assalamualaikum", "salam", "apa khabar", "apa kabar",
	"selamat pagi", "selamat petang", "selamat malam", "good morning",
	"good night", "terima kasih", "thank you", "thanks", "tq",
}

var questionLeads = []string{
	"apa", "siapa", "kenapa", "mengapa", "bila", "mana", "macam mana",
	"berapa", "adakah", "bolehkah", "what", "why", "how", "when",
	"where", "who", "which", "is", "are", "can", "do", "does",
}

// Per-rule confidences. The fallback is never zero.
const (
	confidenceDocument    = 0.95
	confidenceWebResearch = 0.9
	confidenceImageGen    = 0.8
	confidenceTask        = 0.75
	confidenceSmalltalk   = 0.7
	confidenceQuestion    = 0.6
	confidenceGeneralChat = 0.5
)

// Machine-readable reasons, one per rule.
const (
	reasonDocumentAttached = "document_attached"
	reasonWebTrigger       = "web_search_trigger_phrase"
	reasonImageGenPair     = "generation_verb_with_visual_noun"
	reasonTaskPattern      = "actionable_request_pattern"
	reasonGreeting         = "greeting_or_phatic_pattern"
	reasonInterrogative    = "interrogative_form"
	reasonFallback         = "no_rule_matched_fallback"
)
