package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		url   string
		want  string
		valid bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/user/someone?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://example.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://vimeo.com/12345678", "", false},
		{"not a url", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		id, ok := ExtractYouTubeID(c.url)
		assert.Equal(t, c.valid, ok, c.url)
		assert.Equal(t, c.want, id, c.url)
	}
}

func TestKindlePurchaseURL(t *testing.T) {
	url, ok := KindlePurchaseURL("B0ABCDEF12", "")
	assert.True(t, ok)
	assert.Equal(t, "https://www.amazon.co.jp/dp/B0ABCDEF12", url)

	url, ok = KindlePurchaseURL(" b0abcdef12 ", "")
	assert.True(t, ok, "ASIN is case and whitespace tolerant")
	assert.Equal(t, "https://www.amazon.co.jp/dp/B0ABCDEF12", url)

	url, ok = KindlePurchaseURL("", "https://www.amazon.co.jp/gp/product-title/dp/B0ABCDEF12/ref=sr_1_1")
	assert.True(t, ok)
	assert.Equal(t, "https://www.amazon.co.jp/dp/B0ABCDEF12", url)

	_, ok = KindlePurchaseURL("TOOSHORT", "")
	assert.False(t, ok)

	_, ok = KindlePurchaseURL("", "https://www.amazon.co.jp/")
	assert.False(t, ok)
}

func TestLinkIcon(t *testing.T) {
	cases := map[string]string{
		"note":            "note",
		"My note blog":    "note",
		"Twitter":         "x",
		"x":               "x",
		"X（旧Twitter）":     "x",
		"Facebook Page":   "facebook",
		"LINE":            "line",
		"ホームページ":          "website",
		"公式HPはこちら":        "website",
		"Kindle book":     "book",
		"Amazon store":    "book",
		"Portfolio":       "link",
		"":                "link",
	}
	for label, want := range cases {
		assert.Equal(t, want, LinkIcon(label), label)
	}
}

func TestHeaderInitial(t *testing.T) {
	assert.Equal(t, "A", HeaderInitial("aki"))
	assert.Equal(t, "B", HeaderInitial("  bob  "))
	assert.Equal(t, "田", HeaderInitial("田中"))
	assert.Equal(t, "?", HeaderInitial(""))
	assert.Equal(t, "?", HeaderInitial("   "))
}
