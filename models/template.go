package models

import "encoding/json"

// Template is a named, pre-built block list + theme used to seed a new
// page. Templates are never rendered directly; they are cloned into a
// page first so no two pages ever share a block or item id.
type Template struct {
	Name   string    `json:"name"`
	Title  string    `json:"title"`
	Blocks BlockList `json:"blocks"`
	Theme  Theme     `json:"theme"`
}

// Clone deep-copies the template's block list and replaces every block id
// and nested entity id with freshly generated ones, leaving all data
// values unchanged.
func (t *Template) Clone() (BlockList, error) {
	raw, err := json.Marshal(t.Blocks)
	if err != nil {
		return nil, err
	}

	var blocks BlockList
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, err
	}

	for i := range blocks {
		blocks[i].ID = NewBlockID()
		regenerateItemIDs(&blocks[i])
	}
	return blocks, nil
}

func regenerateItemIDs(b *Block) {
	key := NestedCollectionKey(b.Type)
	if key == "" || b.Data == nil {
		return
	}
	for _, raw := range b.Data.GetList(key) {
		if item, ok := raw.(map[string]interface{}); ok {
			item["id"] = NewBlockID()
		}
	}
}

// TemplateByName looks up a built-in template.
func TemplateByName(name string) (*Template, bool) {
	for i := range builtinTemplates {
		if builtinTemplates[i].Name == name {
			return &builtinTemplates[i], true
		}
	}
	return nil, false
}

// TemplateNames lists the built-in template catalog for the editor's
// "new page" picker.
func TemplateNames() []string {
	names := make([]string, 0, len(builtinTemplates))
	for i := range builtinTemplates {
		names = append(names, builtinTemplates[i].Name)
	}
	return names
}

func templateBlock(t BlockType, data BlockData) Block {
	b := NewBlock(t)
	for k, v := range data {
		b.Data[k] = v
	}
	key := NestedCollectionKey(t)
	if key != "" {
		for _, raw := range b.Data.GetList(key) {
			if item, ok := raw.(map[string]interface{}); ok {
				if _, has := item["id"]; !has {
					item["id"] = NewBlockID()
				}
			}
		}
	}
	return b
}

var builtinTemplates = []Template{
	{
		Name:  "simple-profile",
		Title: "Simple profile",
		Theme: Theme{GradientPreset: "sunset"},
		Blocks: BlockList{
			templateBlock(HeaderBlock, BlockData{
				"name":  "Your name",
				"title": "What you do",
			}),
			templateBlock(TextCardBlock, BlockData{
				"title":   "About me",
				"content": "Introduce yourself in a few sentences.",
			}),
			templateBlock(LinksBlock, BlockData{
				"links": []interface{}{
					map[string]interface{}{"label": "X (Twitter)", "url": "https://x.com/you"},
					map[string]interface{}{"label": "note", "url": "https://note.com/you"},
				},
			}),
		},
	},
	{
		Name:  "business-launch",
		Title: "Business launch",
		Theme: Theme{GradientPreset: "ocean"},
		Blocks: BlockList{
			templateBlock(HeroBlock, BlockData{
				"headline":    "Launch your service",
				"subheadline": "A one-line pitch that makes visitors stay.",
				"ctaLabel":    "Get started",
				"ctaUrl":      "https://example.com/signup",
			}),
			templateBlock(FeaturesBlock, BlockData{
				"title": "Why choose us",
				"items": []interface{}{
					map[string]interface{}{"title": "Fast", "description": "Set up in minutes."},
					map[string]interface{}{"title": "Simple", "description": "No code required."},
					map[string]interface{}{"title": "Measurable", "description": "Built-in analytics."},
				},
			}),
			templateBlock(PricingBlock, BlockData{
				"plans": []interface{}{
					map[string]interface{}{"name": "Free", "price": "0", "period": "month", "features": []interface{}{"1 page"}, "ctaLabel": "Start", "ctaUrl": "https://example.com/signup"},
					map[string]interface{}{"name": "Pro", "price": "980", "period": "month", "features": []interface{}{"Unlimited pages", "Analytics"}, "ctaLabel": "Upgrade", "ctaUrl": "https://example.com/upgrade", "highlighted": true},
				},
			}),
			templateBlock(FAQBlock, BlockData{
				"items": []interface{}{
					map[string]interface{}{"question": "Can I cancel anytime?", "answer": "Yes, with one click."},
				},
			}),
			templateBlock(CTASectionBlock, BlockData{
				"title":       "Ready to launch?",
				"buttonLabel": "Create your page",
				"buttonUrl":   "https://example.com/signup",
			}),
		},
	},
}
