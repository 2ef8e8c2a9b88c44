package render

import (
	"regexp"
	"strings"
	"unicode"
)

// youtubePatterns covers the URL shapes users paste: watch?v=, youtu.be/,
// embed/, /v/ and the older /u/<n>/ form. A video id is always 11
// characters.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`/v/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`/u/\w/([A-Za-z0-9_-]{11})`),
}

// ExtractYouTubeID pulls the 11-character video id out of a YouTube URL.
// The second return is false when no id can be recovered, in which case
// the renderers show an explicit invalid-URL placeholder instead of a
// broken embed.
func ExtractYouTubeID(url string) (string, bool) {
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

var (
	asinRe     = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	asinPathRe = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)
)

// KindlePurchaseURL derives the purchase link either from a bare
// 10-character ASIN or from a /dp/<ASIN>/ path inside a full Amazon URL.
func KindlePurchaseURL(asin, url string) (string, bool) {
	asin = strings.TrimSpace(strings.ToUpper(asin))
	if asinRe.MatchString(asin) {
		return "https://www.amazon.co.jp/dp/" + asin, true
	}
	if m := asinPathRe.FindStringSubmatch(strings.ToUpper(url)); m != nil {
		return "https://www.amazon.co.jp/dp/" + m[1], true
	}
	return "", false
}

// LinkIcon picks a decorative icon for a link entry from its label.
// Purely cosmetic: the destination URL is never affected.
func LinkIcon(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "note"):
		return "note"
	case strings.Contains(l, "twitter"), l == "x", strings.Contains(l, "x.com"),
		strings.Contains(label, "X（旧Twitter）"):
		return "x"
	case strings.Contains(l, "facebook"):
		return "facebook"
	case strings.Contains(l, "line"):
		return "line"
	case strings.Contains(label, "ホームページ"), strings.Contains(label, "公式HP"):
		return "website"
	case strings.Contains(l, "kindle"), strings.Contains(l, "amazon"):
		return "book"
	}
	return "link"
}

// HeaderInitial returns the one-letter avatar placeholder shown when a
// header block has no avatar image: the first character of the name,
// uppercased, or "?" for an empty name.
func HeaderInitial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return "?"
}
