package services

import (
	"encoding/json"
	"strings"

	"lp-maker/lpmaker/models"
)

// MigrateContent converts any historical document shape into the current
// block schema. It is total (never returns an error), order-preserving,
// and idempotent: once a block or nested item has an id it keeps it on
// every subsequent pass.
//
// Unrecognized elements are dropped rather than propagated to the
// renderers, but a partially-migratable document still yields whatever
// blocks could be recovered. When nothing survives, or the input is not
// an array at all, the canonical default seed is returned so the editor
// and the public page always have something to show.
func MigrateContent(input interface{}) models.BlockList {
	elements, ok := contentElements(input)
	if !ok {
		return DefaultSeed()
	}

	blocks := make(models.BlockList, 0, len(elements))
	for _, el := range elements {
		if block, ok := migrateElement(el); ok {
			blocks = append(blocks, block)
		}
	}

	if len(blocks) == 0 {
		return DefaultSeed()
	}
	return blocks
}

// DefaultSeed is the block list a brand-new page starts from.
func DefaultSeed() models.BlockList {
	header := models.NewBlock(models.HeaderBlock)
	card := models.NewBlock(models.TextCardBlock)
	card.Data["title"] = "Welcome"
	links := models.NewBlock(models.LinksBlock)
	return models.BlockList{header, card, links}
}

func contentElements(input interface{}) ([]interface{}, bool) {
	switch v := input.(type) {
	case nil:
		return nil, false
	case []interface{}:
		return v, true
	case models.BlockList:
		return genericElements(v)
	case []models.Block:
		return genericElements(v)
	case json.RawMessage:
		return rawElements(v)
	case []byte:
		return rawElements(v)
	case string:
		return rawElements([]byte(v))
	default:
		return nil, false
	}
}

// genericElements round-trips already-typed blocks through JSON so the
// same normalization path handles typed and untyped input alike.
func genericElements(blocks interface{}) ([]interface{}, bool) {
	raw, err := json.Marshal(blocks)
	if err != nil {
		return nil, false
	}
	return rawElements(raw)
}

func rawElements(raw []byte) ([]interface{}, bool) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, false
	}
	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, false
	}
	elements, ok := decoded.([]interface{})
	return elements, ok
}

func migrateElement(el interface{}) (models.Block, bool) {
	m, ok := el.(map[string]interface{})
	if !ok {
		return models.Block{}, false
	}

	if t, ok := m["type"].(string); ok && models.KnownBlockType(models.BlockType(t)) {
		return normalizeTagged(m, models.BlockType(t)), true
	}

	return inferLegacy(m)
}

// normalizeTagged fills missing required fields from the variant
// defaults, keeps every field the element already carries (unknown but
// harmless fields included), and guarantees ids on nested entities.
func normalizeTagged(m map[string]interface{}, t models.BlockType) models.Block {
	block := models.Block{Type: t, ID: elementID(m)}

	data := models.DefaultBlockData(t)
	if d, ok := m["data"].(map[string]interface{}); ok {
		for k, v := range d {
			data[k] = v
		}
	} else {
		// Oldest documents kept the payload beside the type tag.
		for k, v := range m {
			if k != "type" && k != "id" {
				data[k] = v
			}
		}
	}

	ensureItemIDs(t, data)
	block.Data = data
	return block
}

// inferLegacy wraps an untagged legacy object with its implied variant.
// Precedence when shapes overlap: header (a top-level "name") wins over
// links (a "links" array). Anything matching neither is dropped.
func inferLegacy(m map[string]interface{}) (models.Block, bool) {
	if _, ok := m["name"].(string); ok {
		return wrapLegacy(m, models.HeaderBlock), true
	}
	if _, ok := m["links"].([]interface{}); ok {
		return wrapLegacy(m, models.LinksBlock), true
	}
	return models.Block{}, false
}

func wrapLegacy(m map[string]interface{}, t models.BlockType) models.Block {
	block := models.Block{Type: t, ID: elementID(m)}

	data := models.DefaultBlockData(t)
	for k, v := range m {
		if k != "id" {
			data[k] = v
		}
	}

	ensureItemIDs(t, data)
	block.Data = data
	return block
}

func elementID(m map[string]interface{}) string {
	if id, ok := m["id"].(string); ok && id != "" {
		return id
	}
	return models.NewBlockID()
}

// ensureItemIDs synthesizes an id for every nested entity (FAQ items,
// pricing plans, testimonial items, feature items, link entries) that
// lacks one. Existing ids are never touched.
func ensureItemIDs(t models.BlockType, data models.BlockData) {
	key := models.NestedCollectionKey(t)
	if key == "" {
		return
	}
	for _, raw := range data.GetList(key) {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := item["id"].(string); !ok || id == "" {
			item["id"] = models.NewBlockID()
		}
	}
}
