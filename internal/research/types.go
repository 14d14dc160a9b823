package research

// ReformulatedQuery is the search-ready rewrite of a free-text request.
// SiteHint is the canonical storefront domain when the user named a
// marketplace, empty otherwise.
type ReformulatedQuery struct {
	Query    string `json:"query"`
	SiteHint string `json:"site_hint,omitempty"`
}
