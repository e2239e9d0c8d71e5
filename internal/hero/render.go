package hero

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

// Name is the registry name of the hero section.
const Name = "hero"

// New builds the hero definition.
func New() (*sections.Definition[Config], error) {
	return sections.NewDefinition(Name, schema, defaults,
		func(cfg Config) sections.Projection { return Project(cfg) },
		sections.WithRenderer(Render),
		sections.WithLayout[Config](layout...),
	)
}

// Render renders the split-layout hero banner. Animation hooks are left to the
// client; the markup only carries data-editable markers.
func Render(cfg Config) g.Node {
	tree := Project(cfg)
	return h.Section(
		h.ID("hero"),
		h.Class("relative overflow-hidden bg-background"),
		editable("hero"),
		h.Div(
			h.Class("container relative mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("grid items-center gap-12 py-20 sm:py-24 lg:grid-cols-2 lg:gap-20 lg:py-32"),
				h.Div(
					h.Class("flex flex-col justify-center"),
					h.Div(
						h.Class("mb-4 inline-flex w-fit items-center gap-2 rounded-full border px-3 py-1.5 text-sm font-medium"),
						text(tree.Badge),
					),
					h.H1(
						h.Class("text-4xl font-bold tracking-tight sm:text-5xl lg:text-6xl"),
						text(tree.Title),
						h.Span(h.Class("block"), editable(string(tree.TitleHighlight.Key)), g.Text(tree.TitleHighlight.Text)),
					),
					h.P(h.Class("mt-6 max-w-xl text-lg leading-relaxed"), editable(string(tree.Description.Key)), g.Text(tree.Description.Text)),
					h.Ul(
						h.Class("mt-6 grid gap-3 text-sm sm:grid-cols-2"),
						g.Map(tree.Features, func(item sections.ListItem) g.Node {
							return h.Li(h.Class("flex items-center gap-2"), h.Span(editable(item.Tag.String()), g.Text(item.Text)))
						}),
					),
					h.Div(
						h.Class("mt-8 flex flex-col gap-4 sm:flex-row"),
						cta(tree.PrimaryCTA, "group px-7 text-base"),
						cta(tree.SecondaryCTA, "text-base"),
					),
				),
				h.Div(
					h.Class("relative"),
					h.Div(
						h.Class("relative overflow-hidden rounded-2xl border bg-card shadow-2xl"),
						h.Img(
							h.Src(tree.Image.Src),
							h.Alt(tree.Image.Alt.Text),
							h.Class("object-cover"),
							g.Attr("data-editable-src", string(tree.Image.SrcKey)),
						),
						h.Div(h.Class("absolute left-4 top-4 rounded-full px-3 py-1 text-xs font-medium"), text(tree.Image.Alt)),
					),
					g.Map(tree.Stats, stat),
				),
			),
		),
	)
}

func cta(l sections.LinkEntry, class string) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class(class),
		g.Attr("data-editable-href", string(l.TargetKey)),
		g.Attr("data-href", l.Target),
		h.Span(editable(string(l.TextKey)), g.Text(l.Text)),
	)
}

func stat(s Stat) g.Node {
	return h.Div(
		h.Class("rounded-xl border p-3 shadow-xl"),
		h.P(h.Class("text-xs"), editable(string(s.Label.Key)), g.Text(s.Label.Text)),
		h.P(h.Class("text-sm"), h.Span(h.Class("font-semibold"), editable(string(s.Value.Key)), g.Text(s.Value.Text))),
	)
}

func text(leaf sections.TextLeaf) g.Node {
	return h.Span(editable(string(leaf.Key)), g.Text(leaf.Text))
}

func editable(tag string) g.Node {
	return g.Attr("data-editable", tag)
}
