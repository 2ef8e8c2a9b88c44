// Package render turns a page's block list into HTML twice over: once as
// the live, tracked page served on the public route, and once as a
// self-contained static export with no script runtime.
//
// Both targets are derived from one renderer-agnostic node tree per
// block, so business rules (YouTube id parsing, ASIN derivation, icon
// selection, empty-collection suppression) exist in exactly one place
// and the two outputs cannot drift apart in content.
package render

import "lp-maker/lpmaker/models"

type NodeKind string

const (
	SectionNode     NodeKind = "section"
	HeadingNode     NodeKind = "heading"
	TextNode        NodeKind = "text"
	RawHTMLNode     NodeKind = "raw_html"
	ImageNode       NodeKind = "image"
	LinkNode        NodeKind = "link"
	ButtonNode      NodeKind = "button"
	ListNode        NodeKind = "list"
	ItemNode        NodeKind = "item"
	DisclosureNode  NodeKind = "disclosure"
	EmbedNode       NodeKind = "embed"
	PlaceholderNode NodeKind = "placeholder"
	FormNode        NodeKind = "form"
)

// Node is one primitive in the renderer-agnostic tree. Field use depends
// on the kind: links and buttons carry URL and Text, images carry Src and
// Alt, forms carry the action URL, the submit label in Text and the input
// placeholder in Alt.
type Node struct {
	Kind     NodeKind
	Text     string
	URL      string
	Src      string
	Alt      string
	Level    int
	Icon     string
	Class    string
	Tracked  bool
	Children []Node
}

// Context supplies everything the renderers need beyond the blocks
// themselves. PageID may be the demo sentinel, in which case no tracking
// is wired at all.
type Context struct {
	PageID   string
	Slug     string
	BasePath string // public origin used for self-referential links
	APIBase  string // origin for telemetry beacons and lead submission
	Theme    models.Theme

	// QuizLookup resolves a quiz block's identifier (numeric id or slug)
	// to its definition. A nil lookup or a failed fetch degrades to a
	// placeholder, never an error.
	QuizLookup func(identifier string) (*models.Quiz, error)
}

// Tracked reports whether outbound clicks on this page should be
// recorded.
func (c Context) Tracked() bool {
	return c.PageID != "" && c.PageID != models.DemoPageID
}

func section(class string, children ...Node) Node {
	return Node{Kind: SectionNode, Class: class, Children: children}
}

func heading(level int, text string) Node {
	return Node{Kind: HeadingNode, Level: level, Text: text}
}

func text(s string) Node {
	return Node{Kind: TextNode, Text: s}
}

func classedText(class, s string) Node {
	return Node{Kind: TextNode, Class: class, Text: s}
}

func image(src, alt string) Node {
	return Node{Kind: ImageNode, Src: src, Alt: alt}
}

func placeholder(s string) Node {
	return Node{Kind: PlaceholderNode, Text: s}
}
