package render

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"lp-maker/lpmaker/models"

	"github.com/yuin/goldmark"
)

// BlockNodes maps one block to its node tree. The switch is exhaustive
// over the variant set; a malformed block degrades to its empty state
// (possibly no output at all) and never aborts the rest of the page.
func BlockNodes(b models.Block, ctx Context) []Node {
	switch b.Type {
	case models.HeaderBlock:
		return headerNodes(b.Data)
	case models.TextCardBlock:
		return textCardNodes(b.Data)
	case models.ImageBlock:
		return imageNodes(b.Data)
	case models.YouTubeBlock:
		return youtubeNodes(b.Data)
	case models.LinksBlock:
		return linksNodes(b.Data)
	case models.KindleBlock:
		return kindleNodes(b.Data)
	case models.LeadFormBlock:
		return leadFormNodes(b.Data, ctx)
	case models.LineCardBlock:
		return lineCardNodes(b.Data)
	case models.FAQBlock:
		return faqNodes(b.Data)
	case models.PricingBlock:
		return pricingNodes(b.Data)
	case models.TestimonialBlock:
		return testimonialNodes(b.Data)
	case models.QuizBlock:
		return quizNodes(b.Data, ctx)
	case models.HeroBlock:
		return heroNodes(b.Data)
	case models.FeaturesBlock:
		return featuresNodes(b.Data)
	case models.CTASectionBlock:
		return ctaSectionNodes(b.Data)
	case models.TwoColumnBlock:
		return twoColumnNodes(b.Data)
	}
	return nil
}

// PageNodes maps a whole block list, concatenating per-block trees in
// document order.
func PageNodes(blocks models.BlockList, ctx Context) []Node {
	var nodes []Node
	for _, b := range blocks {
		nodes = append(nodes, BlockNodes(b, ctx)...)
	}
	return nodes
}

func headerNodes(d models.BlockData) []Node {
	name := d.GetString("name")

	var avatar Node
	if src := d.GetString("avatar"); src != "" {
		avatar = image(src, name)
		avatar.Class = "avatar"
	} else {
		avatar = classedText("avatar-initial", HeaderInitial(name))
	}

	children := []Node{avatar, heading(2, name)}
	if title := d.GetString("title"); title != "" {
		children = append(children, classedText("header-title", title))
	}
	return []Node{section("block block-header align-"+align(d, "center"), children...)}
}

func textCardNodes(d models.BlockData) []Node {
	var children []Node
	if title := d.GetString("title"); title != "" {
		children = append(children, heading(3, title))
	}
	children = append(children, Node{Kind: RawHTMLNode, Text: markdownHTML(d.GetString("content"))})
	return []Node{section("block block-text-card align-"+align(d, "left"), children...)}
}

func imageNodes(d models.BlockData) []Node {
	src := d.GetString("url")
	if src == "" {
		return nil
	}
	children := []Node{image(src, d.GetString("alt"))}
	if caption := d.GetString("caption"); caption != "" {
		children = append(children, classedText("caption", caption))
	}
	return []Node{section("block block-image", children...)}
}

func youtubeNodes(d models.BlockData) []Node {
	id, ok := ExtractYouTubeID(d.GetString("url"))
	if !ok {
		return []Node{section("block block-youtube", placeholder("Invalid YouTube URL"))}
	}
	embed := Node{Kind: EmbedNode, URL: "https://www.youtube.com/embed/" + id}
	return []Node{section("block block-youtube", embed)}
}

func linksNodes(d models.BlockData) []Node {
	entries := d.GetList("links")
	if len(entries) == 0 {
		return nil
	}

	var children []Node
	for _, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		label, _ := entry["label"].(string)
		url, _ := entry["url"].(string)
		if url == "" {
			continue
		}
		children = append(children, Node{
			Kind:    LinkNode,
			Text:    label,
			URL:     url,
			Icon:    LinkIcon(label),
			Tracked: true,
		})
	}
	if len(children) == 0 {
		return nil
	}
	return []Node{section("block block-links", children...)}
}

func kindleNodes(d models.BlockData) []Node {
	var children []Node
	if cover := d.GetString("cover"); cover != "" {
		cov := image(cover, d.GetString("title"))
		cov.Class = "kindle-cover"
		children = append(children, cov)
	}
	if title := d.GetString("title"); title != "" {
		children = append(children, heading(3, title))
	}
	if desc := d.GetString("description"); desc != "" {
		children = append(children, text(desc))
	}
	if url, ok := KindlePurchaseURL(d.GetString("asin"), d.GetString("url")); ok {
		children = append(children, Node{
			Kind:    ButtonNode,
			Text:    "Buy on Kindle",
			URL:     url,
			Class:   "btn-kindle",
			Tracked: true,
		})
	}
	if len(children) == 0 {
		return nil
	}
	return []Node{section("block block-kindle", children...)}
}

func leadFormNodes(d models.BlockData, ctx Context) []Node {
	var intro []Node
	if title := d.GetString("title"); title != "" {
		intro = append(intro, heading(3, title))
	}
	if desc := d.GetString("description"); desc != "" {
		intro = append(intro, text(desc))
	}

	form := Node{
		Kind:     FormNode,
		URL:      ctx.APIBase + "/api/v1/pages/" + ctx.Slug + "/leads",
		Text:     labelOr(d, "buttonLabel", "Subscribe"),
		Alt:      labelOr(d, "placeholder", "you@example.com"),
		Children: intro,
	}
	return []Node{section("block block-lead-form", form)}
}

func lineCardNodes(d models.BlockData) []Node {
	var children []Node
	if title := d.GetString("title"); title != "" {
		children = append(children, heading(3, title))
	}
	if desc := d.GetString("description"); desc != "" {
		children = append(children, text(desc))
	}
	if url := d.GetString("url"); url != "" {
		children = append(children, Node{
			Kind:    ButtonNode,
			Text:    labelOr(d, "buttonLabel", "Add friend"),
			URL:     url,
			Class:   "btn-line",
			Tracked: true,
		})
	}
	if len(children) == 0 {
		return nil
	}
	return []Node{section("block block-line-card", children...)}
}

func faqNodes(d models.BlockData) []Node {
	items := d.GetList("items")
	if len(items) == 0 {
		return nil
	}

	var children []Node
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		question, _ := item["question"].(string)
		answer, _ := item["answer"].(string)
		children = append(children, Node{
			Kind:     DisclosureNode,
			Text:     question,
			Children: []Node{text(answer)},
		})
	}
	if len(children) == 0 {
		return nil
	}
	return []Node{section("block block-faq", children...)}
}

func pricingNodes(d models.BlockData) []Node {
	plans := d.GetList("plans")
	if len(plans) == 0 {
		return nil
	}

	var children []Node
	for _, raw := range plans {
		plan, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := plan["name"].(string)
		price := stringify(plan["price"])
		period, _ := plan["period"].(string)

		planChildren := []Node{heading(3, name)}
		priceText := price
		if period != "" {
			priceText = price + " / " + period
		}
		planChildren = append(planChildren, classedText("price", priceText))

		if features, ok := plan["features"].([]interface{}); ok && len(features) > 0 {
			var items []Node
			for _, f := range features {
				items = append(items, text(stringify(f)))
			}
			planChildren = append(planChildren, Node{Kind: ListNode, Children: items})
		}

		if ctaURL, _ := plan["ctaUrl"].(string); ctaURL != "" {
			label, _ := plan["ctaLabel"].(string)
			if label == "" {
				label = "Choose plan"
			}
			planChildren = append(planChildren, Node{
				Kind:    ButtonNode,
				Text:    label,
				URL:     ctaURL,
				Class:   "btn-plan",
				Tracked: true,
			})
		}

		class := "plan"
		if highlighted, _ := plan["highlighted"].(bool); highlighted {
			class = "plan plan-highlighted"
		}
		children = append(children, Node{Kind: ItemNode, Class: class, Children: planChildren})
	}
	return []Node{section("block block-pricing", children...)}
}

func testimonialNodes(d models.BlockData) []Node {
	items := d.GetList("items")
	if len(items) == 0 {
		return nil
	}

	var children []Node
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := item["name"].(string)
		role, _ := item["role"].(string)
		comment, _ := item["comment"].(string)

		var itemChildren []Node
		if avatar, _ := item["avatar"].(string); avatar != "" {
			av := image(avatar, name)
			av.Class = "avatar"
			itemChildren = append(itemChildren, av)
		}
		itemChildren = append(itemChildren, classedText("comment", comment))
		attribution := name
		if role != "" {
			attribution = name + " — " + role
		}
		itemChildren = append(itemChildren, classedText("attribution", attribution))
		children = append(children, Node{Kind: ItemNode, Class: "testimonial", Children: itemChildren})
	}
	return []Node{section("block block-testimonial", children...)}
}

func quizNodes(d models.BlockData, ctx Context) []Node {
	identifier := quizIdentifier(d)
	if identifier == "" || ctx.QuizLookup == nil {
		return []Node{section("block block-quiz", placeholder("Quiz unavailable"))}
	}

	quiz, err := ctx.QuizLookup(identifier)
	if err != nil || quiz == nil {
		return []Node{section("block block-quiz", placeholder("Quiz unavailable"))}
	}

	children := []Node{heading(3, quiz.Title)}
	for _, q := range quiz.Questions {
		var choices []Node
		for _, c := range q.Choices {
			choices = append(choices, text(c))
		}
		children = append(children, Node{Kind: ItemNode, Class: "quiz-question", Children: append(
			[]Node{classedText("question", q.Text)},
			Node{Kind: ListNode, Children: choices},
		)})
	}
	return []Node{section("block block-quiz", children...)}
}

func heroNodes(d models.BlockData) []Node {
	var children []Node
	if headline := d.GetString("headline"); headline != "" {
		children = append(children, heading(1, headline))
	}
	if sub := d.GetString("subheadline"); sub != "" {
		children = append(children, classedText("subheadline", sub))
	}
	if src := d.GetString("imageUrl"); src != "" {
		children = append(children, image(src, d.GetString("headline")))
	}
	if url := d.GetString("ctaUrl"); url != "" && d.GetString("ctaLabel") != "" {
		children = append(children, Node{
			Kind:    ButtonNode,
			Text:    d.GetString("ctaLabel"),
			URL:     url,
			Class:   "btn-hero",
			Tracked: true,
		})
	}
	if len(children) == 0 {
		return nil
	}
	return []Node{section("block block-hero align-"+align(d, "center"), children...)}
}

func featuresNodes(d models.BlockData) []Node {
	items := d.GetList("items")
	if len(items) == 0 {
		return nil
	}

	var children []Node
	if title := d.GetString("title"); title != "" {
		children = append(children, heading(2, title))
	}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		title, _ := item["title"].(string)
		desc, _ := item["description"].(string)
		children = append(children, Node{Kind: ItemNode, Class: "feature", Children: []Node{
			heading(3, title),
			text(desc),
		}})
	}
	return []Node{section("block block-features", children...)}
}

func ctaSectionNodes(d models.BlockData) []Node {
	var children []Node
	if title := d.GetString("title"); title != "" {
		children = append(children, heading(2, title))
	}
	if desc := d.GetString("description"); desc != "" {
		children = append(children, text(desc))
	}
	if url := d.GetString("buttonUrl"); url != "" && d.GetString("buttonLabel") != "" {
		children = append(children, Node{
			Kind:    ButtonNode,
			Text:    d.GetString("buttonLabel"),
			URL:     url,
			Class:   "btn-cta",
			Tracked: true,
		})
	}
	if len(children) == 0 {
		return nil
	}
	return []Node{section("block block-cta", children...)}
}

func twoColumnNodes(d models.BlockData) []Node {
	left := Node{Kind: ItemNode, Class: "column", Children: []Node{
		heading(3, d.GetString("leftTitle")),
		Node{Kind: RawHTMLNode, Text: markdownHTML(d.GetString("leftBody"))},
	}}
	right := Node{Kind: ItemNode, Class: "column", Children: []Node{
		heading(3, d.GetString("rightTitle")),
		Node{Kind: RawHTMLNode, Text: markdownHTML(d.GetString("rightBody"))},
	}}
	return []Node{section("block block-two-column", left, right)}
}

func align(d models.BlockData, fallback string) string {
	if a := d.GetString("align"); a != "" {
		return a
	}
	return fallback
}

func labelOr(d models.BlockData, key, fallback string) string {
	if v := d.GetString(key); v != "" {
		return v
	}
	return fallback
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// quizIdentifier accepts the current "quiz" key plus the legacy
// "quizId"/"slug" keys, and both string and numeric values.
func quizIdentifier(d models.BlockData) string {
	for _, key := range []string{"quiz", "quizId", "slug"} {
		switch v := d[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// markdownHTML converts a markdown body to HTML. Conversion failures
// degrade to the escaped source text so the block still shows something.
func markdownHTML(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return buf.String()
}
