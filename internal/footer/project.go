package footer

import "github.com/eugenenazirov/section-kit/internal/sections"

type linkKeys struct {
	text, target sections.FieldKey
}

type groupLayout struct {
	title sections.FieldKey
	links []linkKeys
}

type socialLayout struct {
	platform string
	target   sections.FieldKey
}

var groupsLayout = []groupLayout{
	{
		title: "section1Title",
		links: []linkKeys{
			{"linkFeatures", "linkFeaturesHref"},
			{"linkPricing", "linkPricingHref"},
			{"linkTemplates", "linkTemplatesHref"},
			{"linkIntegrations", "linkIntegrationsHref"},
			{"linkApi", "linkApiHref"},
			{"linkDocumentation", "linkDocumentationHref"},
		},
	},
	{
		title: "section2Title",
		links: []linkKeys{
			{"linkAbout", "linkAboutHref"},
			{"linkBlog", "linkBlogHref"},
			{"linkCareers", "linkCareersHref"},
			{"linkPress", "linkPressHref"},
			{"linkPartners", "linkPartnersHref"},
			{"linkContact", "linkContactHref"},
		},
	},
	{
		title: "section3Title",
		links: []linkKeys{
			{"linkHelp", "linkHelpHref"},
			{"linkCommunity", "linkCommunityHref"},
			{"linkTutorials", "linkTutorialsHref"},
			{"linkWebinars", "linkWebinarsHref"},
			{"linkCaseStudies", "linkCaseStudiesHref"},
			{"linkStatus", "linkStatusHref"},
		},
	},
	{
		title: "section4Title",
		links: []linkKeys{
			{"linkPrivacy", "linkPrivacyHref"},
			{"linkTerms", "linkTermsHref"},
			{"linkCookies", "linkCookiesHref"},
			{"linkGdpr", "linkGdprHref"},
			{"linkSecurity", "linkSecurityHref"},
			{"linkCompliance", "linkComplianceHref"},
		},
	},
}

var socialsLayout = []socialLayout{
	{"Twitter", "social1Href"},
	{"Facebook", "social2Href"},
	{"Instagram", "social3Href"},
	{"LinkedIn", "social4Href"},
	{"GitHub", "social5Href"},
}

var bottomLayout = []linkKeys{
	{"linkSitemap", "linkSitemapHref"},
	{"linkAccessibility", "linkAccessibilityHref"},
	{"linkCookieSettings", "linkCookieSettingsHref"},
	{"linkSupport", "linkSupportHref"},
}

// Keys of standalone text leaves, in render order.
var (
	brandKeys      = []sections.FieldKey{"logoText", "companyDescription"}
	contactKeys    = []sections.FieldKey{"contactEmail", "contactPhone", "contactAddress"}
	newsletterKeys = []sections.FieldKey{"newsletterTitle", "newsletterPlaceholder", "newsletterDisclaimer"}
	legalKeys      = []sections.FieldKey{"socialText", "copyrightText", "madeWithText"}
)

// Tree is the full projection of a footer configuration.
type Tree struct {
	Brand       []sections.TextLeaf     `json:"brand"`
	Contact     []sections.TextLeaf     `json:"contact"`
	Newsletter  []sections.TextLeaf     `json:"newsletter"`
	Groups      []sections.SectionGroup `json:"groups"`
	SocialLabel sections.TextLeaf       `json:"socialLabel"`
	Social      []sections.SocialEntry  `json:"social"`
	Bottom      []sections.LinkEntry    `json:"bottom"`
	Copyright   sections.TextLeaf       `json:"copyright"`
	MadeWith    sections.TextLeaf       `json:"madeWith"`
}

// Tags lists every leaf tag of the tree in render order.
func (t Tree) Tags() []sections.Tag {
	var tags []sections.Tag
	for _, leaves := range [][]sections.TextLeaf{t.Brand, t.Contact, t.Newsletter} {
		for _, leaf := range leaves {
			tags = append(tags, sections.FieldTag(leaf.Key))
		}
	}
	for _, group := range t.Groups {
		tags = append(tags, group.Tags()...)
	}
	tags = append(tags, sections.FieldTag(t.SocialLabel.Key))
	for _, social := range t.Social {
		tags = append(tags, sections.FieldTag(social.TargetKey))
	}
	for _, link := range t.Bottom {
		tags = append(tags, link.Tags()...)
	}
	tags = append(tags, sections.FieldTag(t.Copyright.Key), sections.FieldTag(t.MadeWith.Key))
	return tags
}

// Project builds the whole footer tree from cfg.
func Project(cfg Config) Tree {
	return Tree{
		Brand:       leaves(cfg, brandKeys),
		Contact:     leaves(cfg, contactKeys),
		Newsletter:  leaves(cfg, newsletterKeys),
		Groups:      Sections(cfg),
		SocialLabel: leaf(cfg, "socialText"),
		Social:      SocialLinks(cfg),
		Bottom:      BottomLinks(cfg),
		Copyright:   leaf(cfg, "copyrightText"),
		MadeWith:    leaf(cfg, "madeWithText"),
	}
}

// Sections returns the four link groups in their fixed order.
func Sections(cfg Config) []sections.SectionGroup {
	groups := make([]sections.SectionGroup, 0, len(groupsLayout))
	for _, layout := range groupsLayout {
		groups = append(groups, sections.SectionGroup{
			Title:    schema.Text(cfg, layout.title),
			TitleKey: layout.title,
			Links:    links(cfg, layout.links),
		})
	}
	return groups
}

// SocialLinks returns the five social entries in their fixed order.
func SocialLinks(cfg Config) []sections.SocialEntry {
	out := make([]sections.SocialEntry, 0, len(socialsLayout))
	for _, layout := range socialsLayout {
		out = append(out, sections.SocialEntry{
			Platform:  layout.platform,
			Target:    schema.Text(cfg, layout.target),
			TargetKey: layout.target,
		})
	}
	return out
}

// BottomLinks returns the links of the bottom bar.
func BottomLinks(cfg Config) []sections.LinkEntry {
	return links(cfg, bottomLayout)
}

func links(cfg Config, layout []linkKeys) []sections.LinkEntry {
	out := make([]sections.LinkEntry, 0, len(layout))
	for _, keys := range layout {
		out = append(out, sections.LinkEntry{
			Text:      schema.Text(cfg, keys.text),
			Target:    schema.Text(cfg, keys.target),
			TextKey:   keys.text,
			TargetKey: keys.target,
		})
	}
	return out
}

func leaf(cfg Config, key sections.FieldKey) sections.TextLeaf {
	return sections.TextLeaf{Text: schema.Text(cfg, key), Key: key}
}

func leaves(cfg Config, keys []sections.FieldKey) []sections.TextLeaf {
	out := make([]sections.TextLeaf, 0, len(keys))
	for _, key := range keys {
		out = append(out, leaf(cfg, key))
	}
	return out
}

// layoutKeys returns every key the projection reads.
func layoutKeys() []sections.FieldKey {
	var keys []sections.FieldKey
	keys = append(keys, brandKeys...)
	keys = append(keys, contactKeys...)
	keys = append(keys, newsletterKeys...)
	keys = append(keys, legalKeys...)
	for _, group := range groupsLayout {
		keys = append(keys, group.title)
		for _, link := range group.links {
			keys = append(keys, link.text, link.target)
		}
	}
	for _, social := range socialsLayout {
		keys = append(keys, social.target)
	}
	for _, link := range bottomLayout {
		keys = append(keys, link.text, link.target)
	}
	return keys
}
