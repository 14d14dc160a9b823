package research

// Conversational filler dropped from search queries.
var fillerWords = map[string]bool{
	"boleh":   true,
	"tolong":  true,
	"dekat":   true,
	"tak":     true,
	"kat":     true,
	"check":   true,
	"tengok":  true,
	"carikan": true,
	"cari":    true,
	"nak":     true,
	"saya":    true,
	"je":      true,
	"ke":      true,
	"tu":      true,
	"ni":      true,
}

// Informal component shorthand expanded into full category terms.
var abbreviationExpansions = map[string]string{
	"vram": "GPU graphics card VRAM",
	"gpu":  "GPU graphics card",
	"ram":  "RAM memory",
	"ssd":  "SSD storage",
	"psu":  "PSU power supply",
	"cpu":  "CPU processor",
	"mobo": "motherboard",
}

// Price-oriented words that pull in the geography qualifier. Bare
// quantity words ("berapa") stay out: asking how many of something is
// not a shopping query.
var priceWords = []string{"harga", "price", "murah", "rm", "diskaun", "promo"}

const geoQualifier = "Malaysia"

// Marketplace mentions (including common misspellings) mapped to their
// canonical storefront domains.
var marketplaceDomains = map[string]string{
	"shopee":    "shopee.com.my",
	"shope":     "shopee.com.my",
	"shoppe":    "shopee.com.my",
	"lazada":    "lazada.com.my",
	"lzd":       "lazada.com.my",
	"mudah":     "mudah.my",
	"carousell": "carousell.com.my",
}
