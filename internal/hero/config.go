package hero

import (
	"slices"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

// Config holds every configurable value of the hero banner.
type Config struct {
	Badge            string   `json:"badge" yaml:"badge" validate:"required"`
	Title            string   `json:"title" yaml:"title" validate:"required"`
	TitleHighlight   string   `json:"titleHighlight" yaml:"titleHighlight" validate:"required"`
	Description      string   `json:"description" yaml:"description" validate:"required"`
	Features         []string `json:"features" yaml:"features" validate:"required,min=1,dive,required"`
	PrimaryCTA       string   `json:"primaryCTA" yaml:"primaryCTA" validate:"required"`
	SecondaryCTA     string   `json:"secondaryCTA" yaml:"secondaryCTA" validate:"required"`
	PrimaryCTAHref   string   `json:"primaryCTAHref" yaml:"primaryCTAHref" validate:"required"`
	SecondaryCTAHref string   `json:"secondaryCTAHref" yaml:"secondaryCTAHref" validate:"required"`
	ImageURL         string   `json:"imageUrl" yaml:"imageUrl" validate:"required"`
	ImageAlt         string   `json:"imageAlt" yaml:"imageAlt" validate:"required"`
	StatsLabel1      string   `json:"statsLabel1" yaml:"statsLabel1" validate:"required"`
	StatsValue1      string   `json:"statsValue1" yaml:"statsValue1" validate:"required"`
	StatsLabel2      string   `json:"statsLabel2" yaml:"statsLabel2" validate:"required"`
	StatsValue2      string   `json:"statsValue2" yaml:"statsValue2" validate:"required"`
}

// Clone returns a copy of c that does not share the features slice.
func (c Config) Clone() Config {
	c.Features = slices.Clone(c.Features)
	return c
}

var defaults = Config{
	Badge:          "New: AI-Enhanced Builder",
	Title:          "Design & launch faster with",
	TitleHighlight: "Split Layout heroes",
	Description:    "Pair compelling copy with a high-impact visual. Perfect for SaaS, product launches, and creative studios.",
	Features: []string{
		"Responsive by default",
		"Accessible components",
		"Optimized for SEO",
		"Built with Tailwind 4",
	},
	PrimaryCTA:       "Get Started",
	SecondaryCTA:     "Watch Demo",
	PrimaryCTAHref:   "/signup",
	SecondaryCTAHref: "#demo",
	ImageURL:         "https://images.unsplash.com/photo-1556761175-b413da4baf72?q=80&w=1920&auto=format&fit=crop",
	ImageAlt:         "Product screenshot",
	StatsLabel1:      "Performance",
	StatsValue1:      "98 Lighthouse",
	StatsLabel2:      "Accessibility",
	StatsValue2:      "100 score",
}

// Defaults returns a copy of the default hero configuration.
func Defaults() Config {
	return defaults.Clone()
}

var schema = sections.MustSchema[Config]()

// Schema returns the hero configuration schema.
func Schema() *sections.Schema[Config] {
	return schema
}
