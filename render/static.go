package render

import "strings"

// Static renders the page as one self-contained HTML document with no
// framework runtime, suitable for direct download or iframe embedding.
// Visible content and destination URLs match the live renderer for every
// block variant; tracking degrades to plain outbound links and FAQ
// accordions ship expanded so the information is present without a
// script driving toggle state.
func Static(title string, nodes []Node, ctx Context) string {
	var body strings.Builder
	writeNodes(&body, nodes, staticMode)

	var b strings.Builder
	documentShell(&b, title, ctx.Theme, body.String(), "")
	return b.String()
}

// StaticFragment renders the block list without the document shell, used
// when the export is spliced into an existing host page.
func StaticFragment(nodes []Node) string {
	var b strings.Builder
	writeNodes(&b, nodes, staticMode)
	return b.String()
}
