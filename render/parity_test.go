package render

import (
	"regexp"
	"strings"
	"testing"

	"lp-maker/lpmaker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hrefRe = regexp.MustCompile(`href="([^"]*)"`)
var tagRe = regexp.MustCompile(`<[^>]+>`)

func hrefs(html string) []string {
	var out []string
	for _, m := range hrefRe.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	return out
}

func visibleText(html string) string {
	return strings.Join(strings.Fields(tagRe.ReplaceAllString(html, " ")), " ")
}

func trackedContext() Context {
	return Context{
		PageID:  "4a1c2e9e-0000-4000-8000-000000000001",
		Slug:    "aki",
		APIBase: "https://api.example.com",
	}
}

func sampleBlocks() models.BlockList {
	return models.BlockList{
		{ID: "b1", Type: models.HeaderBlock, Data: models.BlockData{
			"name": "Aki", "title": "Illustrator", "align": "center",
		}},
		{ID: "b2", Type: models.TextCardBlock, Data: models.BlockData{
			"title": "About", "content": "Hello **world**",
		}},
		{ID: "b3", Type: models.LinksBlock, Data: models.BlockData{
			"links": []interface{}{
				map[string]interface{}{"id": "l1", "label": "Twitter", "url": "https://x.com/aki"},
				map[string]interface{}{"id": "l2", "label": "note", "url": "https://note.com/aki"},
			},
		}},
		{ID: "b4", Type: models.YouTubeBlock, Data: models.BlockData{
			"url": "https://youtu.be/dQw4w9WgXcQ",
		}},
		{ID: "b5", Type: models.KindleBlock, Data: models.BlockData{
			"title": "My Book", "asin": "B0ABCDEF12",
		}},
		{ID: "b6", Type: models.FAQBlock, Data: models.BlockData{
			"items": []interface{}{
				map[string]interface{}{"id": "f1", "question": "Is it free?", "answer": "Yes."},
			},
		}},
		{ID: "b7", Type: models.PricingBlock, Data: models.BlockData{
			"plans": []interface{}{
				map[string]interface{}{"id": "p1", "name": "Pro", "price": "980", "period": "month",
					"features": []interface{}{"Analytics"}, "ctaUrl": "https://example.com/buy", "highlighted": true},
			},
		}},
		{ID: "b8", Type: models.CTASectionBlock, Data: models.BlockData{
			"title": "Ready?", "buttonLabel": "Go", "buttonUrl": "https://example.com/go",
		}},
		{ID: "b9", Type: models.LeadFormBlock, Data: models.BlockData{
			"title": "Newsletter",
		}},
	}
}

func TestLiveAndStaticContentParity(t *testing.T) {
	ctx := trackedContext()
	nodes := PageNodes(sampleBlocks(), ctx)

	live := Live("Aki", nodes, ctx)
	static := Static("Aki", nodes, ctx)

	assert.Equal(t, hrefs(live), hrefs(static), "destination URLs must match between renderers")

	liveText := visibleText(live)
	staticText := visibleText(static)
	for _, want := range []string{
		"Aki", "Illustrator", "About", "Hello", "world",
		"Twitter", "note", "My Book", "Buy on Kindle",
		"Is it free?", "Yes.", "Pro", "980 / month", "Analytics",
		"Ready?", "Go", "Newsletter", "Subscribe",
	} {
		assert.Contains(t, liveText, want)
		assert.Contains(t, staticText, want)
	}
}

func TestTrackingAttributesOnlyInLiveMode(t *testing.T) {
	ctx := trackedContext()
	nodes := PageNodes(sampleBlocks(), ctx)

	live := Live("Aki", nodes, ctx)
	static := Static("Aki", nodes, ctx)

	assert.Contains(t, live, `data-track="1"`)
	assert.NotContains(t, static, "data-track")
	assert.Contains(t, live, "<script>")
	assert.NotContains(t, static, "<script>")
	assert.Contains(t, live, "navigator.sendBeacon")
}

func TestDemoPageEmitsNoTrackingScript(t *testing.T) {
	ctx := trackedContext()
	ctx.PageID = models.DemoPageID
	nodes := PageNodes(sampleBlocks(), ctx)

	live := Live("Aki", nodes, ctx)

	assert.NotContains(t, live, "navigator.sendBeacon")
	assert.NotContains(t, live, "data-track")
	// The form runtime is not telemetry and stays on in demo mode.
	assert.Contains(t, live, "preventDefault")
}

func TestLeadFormSubmitInterceptedOnLivePage(t *testing.T) {
	ctx := trackedContext()
	blocks := models.BlockList{
		{ID: "b1", Type: models.LeadFormBlock, Data: models.BlockData{"title": "Join"}},
	}
	nodes := PageNodes(blocks, ctx)

	live := Live("Aki", nodes, ctx)

	// Submitting must never navigate to the raw API response: the
	// runtime intercepts the submit, posts over fetch, and swaps in a
	// confirmation or a retryable error in place.
	assert.Contains(t, live, "preventDefault")
	assert.Contains(t, live, "fetch(f.action")
	assert.Contains(t, live, "Thanks! Check your inbox.")
	assert.Contains(t, live, "Please try again.")

	static := Static("Aki", nodes, ctx)
	assert.NotContains(t, static, "<script>")
	assert.NotContains(t, static, "fetch(")
}

func TestFormScriptOmittedWithoutForm(t *testing.T) {
	ctx := trackedContext()
	ctx.PageID = models.DemoPageID
	blocks := models.BlockList{
		{ID: "b1", Type: models.HeaderBlock, Data: models.BlockData{"name": "Aki"}},
	}

	live := Live("Aki", PageNodes(blocks, ctx), ctx)

	assert.NotContains(t, live, "<script>")
}

func TestFAQAccordionState(t *testing.T) {
	ctx := trackedContext()
	nodes := PageNodes(sampleBlocks(), ctx)

	live := LiveFragment(nodes)
	static := StaticFragment(nodes)

	assert.Contains(t, live, "<details>")
	assert.NotContains(t, live, "<details open>")
	assert.Contains(t, static, "<details open>")
	assert.Contains(t, live, "<summary>Is it free?</summary>")
	assert.Contains(t, static, "<summary>Is it free?</summary>")
}

func TestEmptyCollectionsSuppressedInBothRenderers(t *testing.T) {
	ctx := trackedContext()
	blocks := models.BlockList{
		{ID: "b1", Type: models.LinksBlock, Data: models.BlockData{"links": []interface{}{}}},
		{ID: "b2", Type: models.FAQBlock, Data: models.BlockData{"items": []interface{}{}}},
		{ID: "b3", Type: models.PricingBlock, Data: models.BlockData{"plans": []interface{}{}}},
		{ID: "b4", Type: models.TestimonialBlock, Data: models.BlockData{"items": []interface{}{}}},
		{ID: "b5", Type: models.FeaturesBlock, Data: models.BlockData{"items": []interface{}{}}},
	}

	nodes := PageNodes(blocks, ctx)
	require.Empty(t, nodes)
	assert.Empty(t, LiveFragment(nodes))
	assert.Empty(t, StaticFragment(nodes))
}

func TestInvalidYouTubeURLShowsPlaceholderInBoth(t *testing.T) {
	ctx := trackedContext()
	blocks := models.BlockList{
		{ID: "b1", Type: models.YouTubeBlock, Data: models.BlockData{"url": "https://vimeo.com/123"}},
	}

	nodes := PageNodes(blocks, ctx)

	assert.Contains(t, LiveFragment(nodes), "Invalid YouTube URL")
	assert.Contains(t, StaticFragment(nodes), "Invalid YouTube URL")
	assert.NotContains(t, LiveFragment(nodes), "<iframe")
}

func TestYouTubeEmbed(t *testing.T) {
	ctx := trackedContext()
	blocks := models.BlockList{
		{ID: "b1", Type: models.YouTubeBlock, Data: models.BlockData{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}},
	}

	html := LiveFragment(PageNodes(blocks, ctx))
	assert.Contains(t, html, `src="https://www.youtube.com/embed/dQw4w9WgXcQ"`)
}

func TestLeadFormPostsToPublicEndpoint(t *testing.T) {
	ctx := trackedContext()
	blocks := models.BlockList{
		{ID: "b1", Type: models.LeadFormBlock, Data: models.BlockData{"title": "Join"}},
	}

	static := StaticFragment(PageNodes(blocks, ctx))
	assert.Contains(t, static, `action="https://api.example.com/api/v1/pages/aki/leads"`)
	assert.Contains(t, static, `<input type="email" name="email"`)
}

func TestQuizRendering(t *testing.T) {
	ctx := trackedContext()
	ctx.QuizLookup = func(identifier string) (*models.Quiz, error) {
		return &models.Quiz{
			Title: "Which plan fits you?",
			Questions: []models.QuizQuestion{
				{Text: "Team size?", Choices: []string{"Just me", "2-10"}},
			},
		}, nil
	}
	blocks := models.BlockList{
		{ID: "b1", Type: models.QuizBlock, Data: models.BlockData{"quiz": "plan-match"}},
	}

	html := LiveFragment(PageNodes(blocks, ctx))
	assert.Contains(t, html, "Which plan fits you?")
	assert.Contains(t, html, "Team size?")
	assert.Contains(t, html, "Just me")
}

func TestQuizUnavailableFallback(t *testing.T) {
	ctx := trackedContext()
	blocks := models.BlockList{
		{ID: "b1", Type: models.QuizBlock, Data: models.BlockData{"quiz": "plan-match"}},
	}

	html := LiveFragment(PageNodes(blocks, ctx))
	assert.Contains(t, html, "Quiz unavailable")
}

func TestHeaderAvatarFallback(t *testing.T) {
	ctx := trackedContext()
	blocks := models.BlockList{
		{ID: "b1", Type: models.HeaderBlock, Data: models.BlockData{"name": "aki"}},
	}

	html := LiveFragment(PageNodes(blocks, ctx))
	assert.Contains(t, html, `class="avatar-initial"`)
	assert.Contains(t, html, ">A</p>")
}

func TestPageTitle(t *testing.T) {
	page := models.Page{Slug: "fallback"}
	assert.Equal(t, "fallback", PageTitle(&page))

	page.Blocks = models.BlockList{
		{Type: models.HeroBlock, Data: models.BlockData{"headline": "Launch"}},
	}
	assert.Equal(t, "Launch", PageTitle(&page))

	page.Blocks = append(models.BlockList{
		{Type: models.HeaderBlock, Data: models.BlockData{"name": "Aki"}},
	}, page.Blocks...)
	assert.Equal(t, "Aki", PageTitle(&page))
}
