package render

import (
	"fmt"
	"html"
	"strings"

	"lp-maker/lpmaker/models"
)

type mode int

const (
	liveMode mode = iota
	staticMode
)

func writeNodes(b *strings.Builder, nodes []Node, m mode) {
	for _, n := range nodes {
		writeNode(b, n, m)
	}
}

func writeNode(b *strings.Builder, n Node, m mode) {
	switch n.Kind {
	case SectionNode:
		fmt.Fprintf(b, `<section class="%s">`, html.EscapeString(n.Class))
		writeNodes(b, n.Children, m)
		b.WriteString("</section>")

	case HeadingNode:
		level := n.Level
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(b, "<h%d>%s</h%d>", level, html.EscapeString(n.Text), level)

	case TextNode:
		if n.Class != "" {
			fmt.Fprintf(b, `<p class="%s">%s</p>`, html.EscapeString(n.Class), html.EscapeString(n.Text))
		} else {
			fmt.Fprintf(b, "<p>%s</p>", html.EscapeString(n.Text))
		}

	case RawHTMLNode:
		// Pre-rendered markdown; already sanitized by the converter.
		b.WriteString(n.Text)

	case ImageNode:
		class := ""
		if n.Class != "" {
			class = fmt.Sprintf(` class="%s"`, html.EscapeString(n.Class))
		}
		fmt.Fprintf(b, `<img%s src="%s" alt="%s">`, class, html.EscapeString(n.Src), html.EscapeString(n.Alt))

	case LinkNode:
		fmt.Fprintf(b, `<a class="link-item icon-%s" href="%s"%s>%s</a>`,
			html.EscapeString(n.Icon), html.EscapeString(n.URL), trackAttr(n, m), html.EscapeString(n.Text))

	case ButtonNode:
		fmt.Fprintf(b, `<a class="btn %s" href="%s"%s>%s</a>`,
			html.EscapeString(n.Class), html.EscapeString(n.URL), trackAttr(n, m), html.EscapeString(n.Text))

	case ListNode:
		b.WriteString("<ul>")
		for _, child := range n.Children {
			b.WriteString("<li>")
			if child.Kind == TextNode {
				b.WriteString(html.EscapeString(child.Text))
			} else {
				writeNode(b, child, m)
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")

	case ItemNode:
		fmt.Fprintf(b, `<div class="%s">`, html.EscapeString(n.Class))
		writeNodes(b, n.Children, m)
		b.WriteString("</div>")

	case DisclosureNode:
		// The static export has no script runtime driving accordion
		// state, so every item ships expanded; the live page starts
		// collapsed and toggles natively, items independent of each
		// other.
		if m == staticMode {
			b.WriteString("<details open>")
		} else {
			b.WriteString("<details>")
		}
		fmt.Fprintf(b, "<summary>%s</summary>", html.EscapeString(n.Text))
		writeNodes(b, n.Children, m)
		b.WriteString("</details>")

	case EmbedNode:
		fmt.Fprintf(b, `<div class="video"><iframe src="%s" allowfullscreen loading="lazy"></iframe></div>`,
			html.EscapeString(n.URL))

	case PlaceholderNode:
		fmt.Fprintf(b, `<div class="placeholder">%s</div>`, html.EscapeString(n.Text))

	case FormNode:
		fmt.Fprintf(b, `<form class="lead-form" method="post" action="%s">`, html.EscapeString(n.URL))
		writeNodes(b, n.Children, m)
		fmt.Fprintf(b, `<input type="email" name="email" placeholder="%s" required>`, html.EscapeString(n.Alt))
		fmt.Fprintf(b, `<button type="submit">%s</button>`, html.EscapeString(n.Text))
		b.WriteString("</form>")
	}
}

// trackAttr marks a tracked outbound link in live mode. The static
// export degrades to a plain link: navigation always works, telemetry is
// best-effort and omitted.
func trackAttr(n Node, m mode) string {
	if m == liveMode && n.Tracked {
		return ` data-track="1"`
	}
	return ""
}

var gradientPresets = map[string]string{
	"sunset": "linear-gradient(135deg,#ff9a8b,#ff6a88,#ff99ac)",
	"ocean":  "linear-gradient(135deg,#2193b0,#6dd5ed)",
	"forest": "linear-gradient(135deg,#11998e,#38ef7d)",
	"dusk":   "linear-gradient(135deg,#355c7d,#6c5b7b,#c06c84)",
	"mono":   "linear-gradient(135deg,#f5f7fa,#c3cfe2)",
}

func themeBackground(t models.Theme) string {
	if t.BackgroundImageURL != "" {
		return fmt.Sprintf("background-image:url('%s');background-size:cover;background-position:center", strings.ReplaceAll(t.BackgroundImageURL, "'", "%27"))
	}
	if g, ok := gradientPresets[t.GradientPreset]; ok {
		return "background:" + g
	}
	return "background:" + gradientPresets["mono"]
}

const baseCSS = `
*{box-sizing:border-box;margin:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",sans-serif;min-height:100vh;padding:24px 0}
main{max-width:640px;margin:0 auto;padding:0 16px}
.block{background:rgba(255,255,255,.92);border-radius:16px;padding:24px;margin-bottom:16px}
.align-center{text-align:center}
.align-left{text-align:left}
.align-right{text-align:right}
.avatar{width:96px;height:96px;border-radius:50%;object-fit:cover}
.avatar-initial{width:96px;height:96px;line-height:96px;border-radius:50%;background:#475569;color:#fff;font-size:40px;display:inline-block;text-align:center}
.header-title{color:#64748b}
.link-item{display:block;padding:14px;margin:8px 0;border:1px solid #e2e8f0;border-radius:12px;text-decoration:none;color:#0f172a}
.btn{display:inline-block;padding:12px 28px;border-radius:999px;background:#0f172a;color:#fff;text-decoration:none;margin-top:12px}
.btn-line{background:#06c755}
.btn-kindle{background:#ff9900;color:#0f172a}
.plan{border:1px solid #e2e8f0;border-radius:12px;padding:16px;margin:8px 0}
.plan-highlighted{border-color:#0f172a;border-width:2px}
.price{font-size:24px;font-weight:700}
.testimonial{border-left:3px solid #e2e8f0;padding-left:12px;margin:12px 0}
.attribution{color:#64748b;font-size:14px}
.feature{margin:12px 0}
.block-two-column{display:flex;gap:16px}
.column{flex:1}
.video iframe{width:100%;aspect-ratio:16/9;border:0;border-radius:12px}
.placeholder{padding:24px;border:1px dashed #cbd5e1;border-radius:12px;color:#64748b;text-align:center}
details{margin:8px 0;border:1px solid #e2e8f0;border-radius:12px;padding:12px}
summary{cursor:pointer;font-weight:600}
.lead-form input{width:100%;padding:12px;border:1px solid #e2e8f0;border-radius:12px;margin-top:12px}
.lead-form button{width:100%;padding:12px;border:0;border-radius:12px;background:#0f172a;color:#fff;margin-top:8px;cursor:pointer}
.form-note{color:#64748b;margin-top:8px}
.caption{color:#64748b;font-size:14px}
img{max-width:100%;border-radius:12px}
`

func documentShell(b *strings.Builder, title string, theme models.Theme, body, script string) {
	b.WriteString("<!DOCTYPE html>\n<html lang=\"ja\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	fmt.Fprintf(b, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(b, "<style>%s\nbody{%s}</style>\n", baseCSS, themeBackground(theme))
	b.WriteString("</head>\n<body>\n<main>")
	b.WriteString(body)
	b.WriteString("</main>\n")
	if script != "" {
		fmt.Fprintf(b, "<script>%s</script>\n", script)
	}
	b.WriteString("</body>\n</html>\n")
}

// PageTitle derives the document title from the first header or hero
// block, falling back to the slug.
func PageTitle(page *models.Page) string {
	for _, block := range page.Blocks {
		switch block.Type {
		case models.HeaderBlock:
			if name := block.Data.GetString("name"); name != "" {
				return name
			}
		case models.HeroBlock:
			if headline := block.Data.GetString("headline"); headline != "" {
				return headline
			}
		}
	}
	return page.Slug
}
