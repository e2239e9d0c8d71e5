package hero

import (
	"slices"
	"strings"
	"testing"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

func TestFeaturesAreTaggedByIndex(t *testing.T) {
	var got []string
	for item := range Features(Defaults()) {
		got = append(got, item.Tag.String()+"="+item.Text)
	}

	want := []string{
		"features[0]=Responsive by default",
		"features[1]=Accessible components",
		"features[2]=Optimized for SEO",
		"features[3]=Built with Tailwind 4",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFeaturesCanBeRangedTwice(t *testing.T) {
	seq := Features(Defaults())
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) || len(first) != 4 {
		t.Fatalf("expected the same four items twice, got %v and %v", first, second)
	}

	for range seq {
		break
	}
}

func TestFeaturesOverrideReplacesList(t *testing.T) {
	section, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	cfg, err := section.Effective(sections.Document{"features": []any{"Fast"}})
	if err != nil {
		t.Fatalf("Effective returned error: %v", err)
	}

	items := slices.Collect(Features(cfg))
	if len(items) != 1 || items[0].Text != "Fast" || items[0].Tag != sections.IndexTag("features", 0) {
		t.Fatalf("expected a single replaced feature, got %+v", items)
	}
	if cfg.Badge != Defaults().Badge {
		t.Fatalf("expected default badge, got %s", cfg.Badge)
	}
}

func TestEmptyFeaturesOverrideClearsList(t *testing.T) {
	section, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	cfg, err := section.Effective(sections.Document{"features": []any{}})
	if err != nil {
		t.Fatalf("Effective returned error: %v", err)
	}
	if items := slices.Collect(Features(cfg)); len(items) != 0 {
		t.Fatalf("expected no features, got %v", items)
	}

	res, err := section.Resolve(sections.Document{"features": []any{}})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	for _, tag := range res.Tags {
		if tag.Indexed() {
			t.Fatalf("expected no feature tags, got %s", tag)
		}
	}

	cfg, err = section.Effective(sections.Document{"features": nil})
	if err != nil {
		t.Fatalf("Effective returned error: %v", err)
	}
	if len(cfg.Features) != 4 {
		t.Fatalf("expected null to keep the default features, got %v", cfg.Features)
	}
}

func TestTreeTagsAreUnique(t *testing.T) {
	tags := Project(Defaults()).Tags()
	if len(tags) != 18 {
		t.Fatalf("expected 18 tags, got %d", len(tags))
	}
	seen := make(map[sections.Tag]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			t.Fatalf("duplicate tag %s", tag)
		}
		seen[tag] = true
	}
}

func TestRenderCarriesEditableAttributes(t *testing.T) {
	cfg := Defaults()
	cfg.Badge = "Beta"

	var sb strings.Builder
	if err := Render(cfg).Render(&sb); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		`<section id="hero"`,
		`data-editable="hero"`,
		`<span data-editable="badge">Beta</span>`,
		`<span data-editable="features[2]">Optimized for SEO</span>`,
		`data-editable-href="primaryCTAHref" data-href="/signup"`,
		`data-editable-src="imageUrl"`,
		`data-editable="statsValue2"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in markup, got %s", want, out)
		}
	}
}

func TestDefaultsAreIsolated(t *testing.T) {
	cfg := Defaults()
	cfg.Features[0] = "mutated"
	if Defaults().Features[0] != "Responsive by default" {
		t.Fatalf("Defaults shares its feature list")
	}
}
