package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type BlockType string

const (
	HeaderBlock      BlockType = "header"
	TextCardBlock    BlockType = "text_card"
	ImageBlock       BlockType = "image"
	YouTubeBlock     BlockType = "youtube"
	LinksBlock       BlockType = "links"
	KindleBlock      BlockType = "kindle"
	LeadFormBlock    BlockType = "lead_form"
	LineCardBlock    BlockType = "line_card"
	FAQBlock         BlockType = "faq"
	PricingBlock     BlockType = "pricing"
	TestimonialBlock BlockType = "testimonial"
	QuizBlock        BlockType = "quiz"
	HeroBlock        BlockType = "hero"
	FeaturesBlock    BlockType = "features"
	CTASectionBlock  BlockType = "cta_section"
	TwoColumnBlock   BlockType = "two_column"
)

// BlockData stores the variant-specific payload of a block
type BlockData map[string]interface{}

// Block represents one typed content unit on a page
type Block struct {
	ID   string    `json:"id"`
	Type BlockType `json:"type"`
	Data BlockData `json:"data"`
}

// BlockList is the ordered block sequence persisted as a JSONB column
type BlockList []Block

// KnownBlockType reports whether t is part of the closed variant set
func KnownBlockType(t BlockType) bool {
	switch t {
	case HeaderBlock, TextCardBlock, ImageBlock, YouTubeBlock, LinksBlock,
		KindleBlock, LeadFormBlock, LineCardBlock, FAQBlock, PricingBlock,
		TestimonialBlock, QuizBlock, HeroBlock, FeaturesBlock,
		CTASectionBlock, TwoColumnBlock:
		return true
	}
	return false
}

// NewBlockID returns an identifier unique enough to disambiguate sibling
// blocks and nested items within one document.
func NewBlockID() string {
	return uuid.NewString()
}

// NewBlock constructs a block of the given variant with every required
// field populated, so the renderers never see a missing field.
func NewBlock(t BlockType) Block {
	return Block{
		ID:   NewBlockID(),
		Type: t,
		Data: DefaultBlockData(t),
	}
}

// DefaultBlockData returns the safe default payload for a variant.
func DefaultBlockData(t BlockType) BlockData {
	switch t {
	case HeaderBlock:
		return BlockData{"name": "", "title": "", "avatar": "", "align": "center"}
	case TextCardBlock:
		return BlockData{"title": "", "content": "", "align": "left"}
	case ImageBlock:
		return BlockData{"url": "", "alt": "", "caption": ""}
	case YouTubeBlock:
		return BlockData{"url": ""}
	case LinksBlock:
		return BlockData{"links": []interface{}{}}
	case KindleBlock:
		return BlockData{"asin": "", "url": "", "title": "", "cover": "", "description": ""}
	case LeadFormBlock:
		return BlockData{"title": "", "description": "", "buttonLabel": "Subscribe", "placeholder": "you@example.com"}
	case LineCardBlock:
		return BlockData{"title": "", "description": "", "buttonLabel": "Add friend", "url": ""}
	case FAQBlock:
		return BlockData{"items": []interface{}{}}
	case PricingBlock:
		return BlockData{"plans": []interface{}{}}
	case TestimonialBlock:
		return BlockData{"items": []interface{}{}}
	case QuizBlock:
		return BlockData{"quiz": ""}
	case HeroBlock:
		return BlockData{"headline": "", "subheadline": "", "imageUrl": "", "ctaLabel": "", "ctaUrl": "", "align": "center"}
	case FeaturesBlock:
		return BlockData{"title": "", "items": []interface{}{}}
	case CTASectionBlock:
		return BlockData{"title": "", "description": "", "buttonLabel": "", "buttonUrl": ""}
	case TwoColumnBlock:
		return BlockData{"leftTitle": "", "leftBody": "", "rightTitle": "", "rightBody": ""}
	}
	return BlockData{}
}

// NestedCollectionKey returns the data key holding a variant's nested
// entity list, or "" when the variant has none. Every element of that
// list carries its own id for keyed rendering and targeted mutation.
func NestedCollectionKey(t BlockType) string {
	switch t {
	case LinksBlock:
		return "links"
	case FAQBlock, TestimonialBlock, FeaturesBlock:
		return "items"
	case PricingBlock:
		return "plans"
	}
	return ""
}

// GetString reads a string field from the payload, tolerating absent or
// mistyped values.
func (d BlockData) GetString(key string) string {
	if d == nil {
		return ""
	}
	if s, ok := d[key].(string); ok {
		return s
	}
	return ""
}

// GetList reads a list field from the payload.
func (d BlockData) GetList(key string) []interface{} {
	if d == nil {
		return nil
	}
	if l, ok := d[key].([]interface{}); ok {
		return l
	}
	return nil
}

// Value implements the driver.Valuer interface for JSONB storage
func (bl BlockList) Value() (driver.Value, error) {
	if bl == nil {
		return json.Marshal(BlockList{})
	}
	return json.Marshal(bl)
}

// Scan implements the sql.Scanner interface for JSONB retrieval
func (bl *BlockList) Scan(value interface{}) error {
	if value == nil {
		*bl = BlockList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, bl)
}
