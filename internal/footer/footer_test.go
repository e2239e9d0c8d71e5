package footer

import (
	"errors"
	"strings"
	"testing"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

func TestSectionsLayout(t *testing.T) {
	groups := Sections(Defaults())
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}

	wantTitles := []string{"Product", "Company", "Resources", "Legal"}
	for i, group := range groups {
		if group.Title != wantTitles[i] {
			t.Fatalf("group %d: expected title %s, got %s", i, wantTitles[i], group.Title)
		}
		if len(group.Links) != 6 {
			t.Fatalf("group %d: expected 6 links, got %d", i, len(group.Links))
		}
		for _, link := range group.Links {
			if link.Text == "" || link.Target == "" {
				t.Fatalf("group %d: empty link %+v", i, link)
			}
		}
	}
}

func TestSocialAndBottomLinks(t *testing.T) {
	social := SocialLinks(Defaults())
	wantPlatforms := []string{"Twitter", "Facebook", "Instagram", "LinkedIn", "GitHub"}
	if len(social) != len(wantPlatforms) {
		t.Fatalf("expected %d social links, got %d", len(wantPlatforms), len(social))
	}
	for i, entry := range social {
		if entry.Platform != wantPlatforms[i] {
			t.Fatalf("social %d: expected %s, got %s", i, wantPlatforms[i], entry.Platform)
		}
	}

	bottom := BottomLinks(Defaults())
	if len(bottom) != 4 {
		t.Fatalf("expected 4 bottom links, got %d", len(bottom))
	}
	if bottom[0].TextKey != "linkSitemap" || bottom[3].TextKey != "linkSupport" {
		t.Fatalf("unexpected bottom order %+v", bottom)
	}
}

func TestOverrideReachesProjection(t *testing.T) {
	section, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	cfg, err := section.Effective(sections.Document{"linkPricing": "Plans"})
	if err != nil {
		t.Fatalf("Effective returned error: %v", err)
	}
	link := Sections(cfg)[0].Links[1]
	want := sections.LinkEntry{Text: "Plans", Target: "#pricing", TextKey: "linkPricing", TargetKey: "linkPricingHref"}
	if link != want {
		t.Fatalf("expected %+v, got %+v", want, link)
	}

	other := Sections(cfg)[0].Links[0]
	if other.Text != "Features" {
		t.Fatalf("expected untouched default, got %s", other.Text)
	}
}

func TestEmptyOverrideClearsField(t *testing.T) {
	section, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	cfg, err := section.Effective(sections.Document{"linkPricing": ""})
	if err != nil {
		t.Fatalf("Effective returned error: %v", err)
	}
	if got := Sections(cfg)[0].Links[1].Text; got != "" {
		t.Fatalf("expected empty pricing link text, got %q", got)
	}

	doc, err := section.ApplyEdit(nil, sections.FieldTag("copyrightText"), "")
	if err != nil {
		t.Fatalf("ApplyEdit returned error: %v", err)
	}
	cfg, err = section.Effective(doc)
	if err != nil {
		t.Fatalf("Effective returned error: %v", err)
	}
	if cfg.CopyrightText != "" {
		t.Fatalf("expected cleared copyright, got %q", cfg.CopyrightText)
	}
}

func TestTreeTagsCoverEveryKeyOnce(t *testing.T) {
	tags := Project(Defaults()).Tags()
	keys := Schema().Keys()
	if len(tags) != len(keys) {
		t.Fatalf("expected %d tags, got %d", len(keys), len(tags))
	}

	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag.Indexed() {
			t.Fatalf("footer has no list fields, got %s", tag)
		}
		if seen[tag.String()] {
			t.Fatalf("duplicate tag %s", tag)
		}
		seen[tag.String()] = true
	}
	for _, key := range keys {
		if !seen[string(key)] {
			t.Fatalf("key %s is not rendered", key)
		}
	}
}

func TestRenderMinimalIsHiddenCopyright(t *testing.T) {
	var sb strings.Builder
	if err := RenderMinimal(Defaults()).Render(&sb); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, `class="hidden"`) {
		t.Fatalf("expected hidden footer, got %s", out)
	}
	if !strings.Contains(out, `<span data-editable="copyrightText">© 2024 TechFlow. All rights reserved.</span>`) {
		t.Fatalf("expected copyright span, got %s", out)
	}
	if strings.Contains(out, "linkPricing") {
		t.Fatalf("minimal footer must not render link groups")
	}
}

func TestRenderFullTagsEveryLeaf(t *testing.T) {
	section, err := New(WithFullMarkup(true))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	res, err := section.Resolve(sections.Document{"linkPricing": "Plans"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	var sb strings.Builder
	if err := res.Render(&sb); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, `<a href="#pricing" data-editable-href="linkPricingHref"><span data-editable="linkPricing">Plans</span></a>`) {
		t.Fatalf("expected tagged pricing link, got %s", out)
	}
	for _, tag := range res.Tags {
		if !strings.Contains(out, `"`+tag.String()+`"`) {
			t.Fatalf("tag %s missing from markup", tag)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	render := func() string {
		var sb strings.Builder
		if err := RenderFull(Defaults()).Render(&sb); err != nil {
			t.Fatalf("Render returned error: %v", err)
		}
		return sb.String()
	}
	if render() != render() {
		t.Fatalf("expected identical markup for identical input")
	}
}

func TestNewRejectsBadOverrides(t *testing.T) {
	section, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := section.Resolve(sections.Document{"linkPricingg": "x"}); !errors.Is(err, sections.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
