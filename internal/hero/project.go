package hero

import (
	"iter"
	"slices"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

const featuresKey sections.FieldKey = "features"

// Stat is a label/value badge shown next to the hero image.
type Stat struct {
	Label sections.TextLeaf `json:"label"`
	Value sections.TextLeaf `json:"value"`
}

// Image is the hero visual with the keys of its source and alt text.
type Image struct {
	Src    string            `json:"src"`
	SrcKey sections.FieldKey `json:"srcKey"`
	Alt    sections.TextLeaf `json:"alt"`
}

// Tree is the full projection of a hero configuration.
type Tree struct {
	Badge          sections.TextLeaf   `json:"badge"`
	Title          sections.TextLeaf   `json:"title"`
	TitleHighlight sections.TextLeaf   `json:"titleHighlight"`
	Description    sections.TextLeaf   `json:"description"`
	Features       []sections.ListItem `json:"features"`
	PrimaryCTA     sections.LinkEntry  `json:"primaryCTA"`
	SecondaryCTA   sections.LinkEntry  `json:"secondaryCTA"`
	Image          Image               `json:"image"`
	Stats          []Stat              `json:"stats"`
}

// Tags lists every leaf tag of the tree in render order.
func (t Tree) Tags() []sections.Tag {
	tags := []sections.Tag{
		sections.FieldTag(t.Badge.Key),
		sections.FieldTag(t.Title.Key),
		sections.FieldTag(t.TitleHighlight.Key),
		sections.FieldTag(t.Description.Key),
	}
	for _, item := range t.Features {
		tags = append(tags, item.Tag)
	}
	tags = append(tags, t.PrimaryCTA.Tags()...)
	tags = append(tags, t.SecondaryCTA.Tags()...)
	tags = append(tags, sections.FieldTag(t.Image.SrcKey), sections.FieldTag(t.Image.Alt.Key))
	for _, stat := range t.Stats {
		tags = append(tags, sections.FieldTag(stat.Label.Key), sections.FieldTag(stat.Value.Key))
	}
	return tags
}

// Features yields one item per configured feature, tagged features[i]. The
// sequence may be ranged over any number of times.
func Features(cfg Config) iter.Seq[sections.ListItem] {
	return func(yield func(sections.ListItem) bool) {
		for i, text := range cfg.Features {
			if !yield(sections.ListItem{Text: text, Tag: sections.IndexTag(featuresKey, i)}) {
				return
			}
		}
	}
}

// Project builds the whole hero tree from cfg.
func Project(cfg Config) Tree {
	return Tree{
		Badge:          sections.TextLeaf{Text: cfg.Badge, Key: "badge"},
		Title:          sections.TextLeaf{Text: cfg.Title, Key: "title"},
		TitleHighlight: sections.TextLeaf{Text: cfg.TitleHighlight, Key: "titleHighlight"},
		Description:    sections.TextLeaf{Text: cfg.Description, Key: "description"},
		Features:       slices.Collect(Features(cfg)),
		PrimaryCTA: sections.LinkEntry{
			Text:      cfg.PrimaryCTA,
			Target:    cfg.PrimaryCTAHref,
			TextKey:   "primaryCTA",
			TargetKey: "primaryCTAHref",
		},
		SecondaryCTA: sections.LinkEntry{
			Text:      cfg.SecondaryCTA,
			Target:    cfg.SecondaryCTAHref,
			TextKey:   "secondaryCTA",
			TargetKey: "secondaryCTAHref",
		},
		Image: Image{
			Src:    cfg.ImageURL,
			SrcKey: "imageUrl",
			Alt:    sections.TextLeaf{Text: cfg.ImageAlt, Key: "imageAlt"},
		},
		Stats: []Stat{
			{
				Label: sections.TextLeaf{Text: cfg.StatsLabel1, Key: "statsLabel1"},
				Value: sections.TextLeaf{Text: cfg.StatsValue1, Key: "statsValue1"},
			},
			{
				Label: sections.TextLeaf{Text: cfg.StatsLabel2, Key: "statsLabel2"},
				Value: sections.TextLeaf{Text: cfg.StatsValue2, Key: "statsValue2"},
			},
		},
	}
}

var layout = []sections.FieldKey{
	"badge", "title", "titleHighlight", "description", featuresKey,
	"primaryCTA", "primaryCTAHref", "secondaryCTA", "secondaryCTAHref",
	"imageUrl", "imageAlt", "statsLabel1", "statsValue1", "statsLabel2", "statsValue2",
}
