package dialect

// dialectLexicon pairs a dialect with its marker tokens. The two
// lexicons are disjoint on purpose: a token that exists in both dialects
// (or in standard Malay) cannot separate them and is left out.
type dialectLexicon struct {
	Dialect Dialect
	Tokens  []string
}

// Lexicons reconstructed from common Utara (Kedah/Penang) and Kelantan
// vocabulary. Homographs of standard Malay words ("lagu", "gi", "sat")
// are deliberately excluded to avoid false dialect hits.
var lexicons = []dialectLexicon{
	{
		Dialect: DialectUtara,
		Tokens: []string{
			"hang", "hampa", "depa", "cheq",
			"pi", "mai", "awat", "habaq", "dok",
			"toksah", "satgi", "lani", "sepa", "ketegaq",
		},
	},
	{
		Dialect: DialectKelantan,
		Tokens: []string{
			"ambo", "kawe", "demo", "gapo", "nok",
			"ore", "oghe", "bakpo", "guano", "sokmo",
			"molek", "tubik", "hok", "kecek", "gewe",
		},
	},
}

// malayCues are standard-Malay function words. Any hit marks the
// message as Malay even when no dialect token appears.
var malayCues = []string{
	"saya", "awak", "anda", "kamu", "kita", "kami", "dia", "mereka",
	"tak", "tidak", "boleh", "nak", "hendak", "mahu", "sudah", "dah", "belum",
	"apa", "siapa", "kenapa", "mengapa", "bila", "mana", "macam", "berapa",
	"ini", "itu", "yang", "dengan", "untuk", "dari", "kepada", "dalam",
	"ada", "buat", "pergi", "makan", "tolong", "terima", "kasih",
	"je", "saja", "sahaja", "ke", "la", "lah", "berita", "terbaru", "harga",
}

// informalMarkers drive the formality label. Laughter and chat slang.
var informalMarkers = []string{
	"haha", "hahaha", "hehe", "hihi", "lol", "lolol", "wkwk",
	"weh", "wei", "bro", "bang", "doh", "kot", "eh", "alaa",
	"xde", "takde", "mcm", "korang", "kau", "ko", "aku",
}

// formalMarkers push the label the other way.
var formalMarkers = []string{
	"anda", "tuan", "puan", "encik", "cik", "sila", "mohon",
	"berkenaan", "adalah", "merupakan", "sekiranya", "dimaklumkan",
}

// Spoken names for each dialect, used by the explicit-request detector
// and the stabilizer prose.
const (
	dialectNameUtara    = "loghat utara"
	dialectNameKelantan = "loghat Kelantan"
	dialectNameStandard = "bahasa Melayu standard"
)

// Common Malay chat shorthand for conservative spell correction. Only
// unambiguous expansions belong here.
var spellCorrections = map[string]string{
	"yg":   "yang",
	"dgn":  "dengan",
	"utk":  "untuk",
	"sy":   "saya",
	"bleh": "boleh",
	"dlm":  "dalam",
	"kpd":  "kepada",
	"dr":   "dari",
	"tq":   "terima kasih",
	"sbb":  "sebab",
	"mcm":  "macam",
	"bg":   "bagi",
	"tp":   "tapi",
}

// Stabilizer exemplar budget per level. Always positive so the guidance
// can cite at least a couple of observed tokens.
var stabilizerTokenLimits = map[StabilizerLevel]int{
	StabilizerOff:    2,
	StabilizerLight:  4,
	StabilizerMedium: 6,
}

const defaultStabilizerTokenLimit = 2

// Neutral-to-dialect rewrite tables for ApplyPostProcess. Each table
// only ever introduces its own dialect's markers.
var postProcessRewrites = map[Dialect]map[string]string{
	DialectUtara: {
		"awak":     "hang",
		"kamu":     "hang",
		"pergi":    "pi",
		"kenapa":   "awat",
		"beritahu": "habaq",
		"mereka":   "depa",
	},
	DialectKelantan: {
		"awak":  "demo",
		"kamu":  "demo",
		"saya":  "ambo",
		"apa":   "gapo",
		"nak":   "nok",
		"orang": "ore",
	},
}

// Activation threshold for the dialect post-process. An explicit dialect
// request stores intensity 0.35, which sits exactly on this gate.
const postProcessThreshold = 0.35

// Informal-marker density above this, or two or more markers, reads as
// informal.
const informalDensityCutoff = 0.2
