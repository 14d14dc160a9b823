package research

import (
	"strings"
	"testing"
)

func TestReformulate_MarketplacePriceQuery(t *testing.T) {
	got := Reformulate("boleh check harga vram 16gb dekat shope")

	if got.SiteHint != "shopee.com.my" {
		t.Errorf("site hint = %q, want shopee.com.my", got.SiteHint)
	}
	if !strings.Contains(got.Query, "graphics card") {
		t.Errorf("query should expand vram into a GPU category term: %q", got.Query)
	}
	if !strings.Contains(got.Query, "16GB") {
		t.Errorf("query should normalize the size unit: %q", got.Query)
	}
	if !strings.Contains(got.Query, "Malaysia") {
		t.Errorf("price query should gain a geography qualifier: %q", got.Query)
	}
	for _, filler := range []string{"boleh", "tolong", "dekat", "check"} {
		for _, token := range strings.Fields(got.Query) {
			if strings.EqualFold(token, filler) {
				t.Errorf("filler %q should be stripped: %q", filler, got.Query)
			}
		}
	}
	if strings.Contains(strings.ToLower(got.Query), "shope") {
		t.Errorf("marketplace name should leave the query: %q", got.Query)
	}
}

func TestReformulate_NoMarketplace(t *testing.T) {
	got := Reformulate("cari web: berita terbaru Malaysia")

	if got.SiteHint != "" {
		t.Errorf("site hint should be empty, got %q", got.SiteHint)
	}
	if !strings.Contains(got.Query, "berita terbaru") {
		t.Errorf("query should keep the subject: %q", got.Query)
	}
	if strings.Contains(strings.ToLower(got.Query), "cari web") {
		t.Errorf("search trigger should be stripped: %q", got.Query)
	}
}

func TestReformulate_PreservesBrandTerms(t *testing.T) {
	got := Reformulate("tolong cari harga RTX 4060 kat lazada")

	if !strings.Contains(got.Query, "RTX") || !strings.Contains(got.Query, "4060") {
		t.Errorf("brand/model terms must survive verbatim: %q", got.Query)
	}
	if got.SiteHint != "lazada.com.my" {
		t.Errorf("site hint = %q, want lazada.com.my", got.SiteHint)
	}
}

func TestReformulate_QuantityQuestionGetsNoGeoQualifier(t *testing.T) {
	got := Reformulate("berapa umur Tun Mahathir sekarang")

	if strings.Contains(got.Query, "Malaysia") {
		t.Errorf("non-price quantity question should not gain a geography qualifier: %q", got.Query)
	}
	if !strings.Contains(got.Query, "berapa umur") {
		t.Errorf("question words should survive: %q", got.Query)
	}
}

func TestReformulate_Empty(t *testing.T) {
	got := Reformulate("")
	if got.Query != "" || got.SiteHint != "" {
		t.Errorf("empty input should yield empty query: %+v", got)
	}
}
