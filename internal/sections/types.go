package sections

// LinkEntry is a rendered link together with the keys it was read from.
type LinkEntry struct {
	Text      string   `json:"text"`
	Target    string   `json:"target"`
	TextKey   FieldKey `json:"textKey"`
	TargetKey FieldKey `json:"targetKey"`
}

// SectionGroup is a titled column of links.
type SectionGroup struct {
	Title    string      `json:"title"`
	TitleKey FieldKey    `json:"titleKey"`
	Links    []LinkEntry `json:"links"`
}

// SocialEntry binds a fixed platform to a configurable target.
type SocialEntry struct {
	Platform  string   `json:"platform"`
	Target    string   `json:"target"`
	TargetKey FieldKey `json:"targetKey"`
}

// ListItem is one element of a list field.
type ListItem struct {
	Text string `json:"text"`
	Tag  Tag    `json:"tag"`
}

// TextLeaf is a standalone text value and its key.
type TextLeaf struct {
	Text string   `json:"text"`
	Key  FieldKey `json:"key"`
}

// Tags returns the tags of the link text and target.
func (l LinkEntry) Tags() []Tag {
	return []Tag{FieldTag(l.TextKey), FieldTag(l.TargetKey)}
}

// Tags returns the title tag followed by every link's tags.
func (g SectionGroup) Tags() []Tag {
	tags := make([]Tag, 0, 1+2*len(g.Links))
	tags = append(tags, FieldTag(g.TitleKey))
	for _, link := range g.Links {
		tags = append(tags, link.Tags()...)
	}
	return tags
}
