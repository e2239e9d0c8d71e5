package footer

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

// Name is the registry name of the footer section.
const Name = "footer"

// Option configures New.
type Option func(*options)

type options struct {
	fullMarkup bool
}

// WithFullMarkup renders every projected group instead of the minimal hidden
// footer that only shows the copyright line.
func WithFullMarkup(enabled bool) Option {
	return func(o *options) {
		o.fullMarkup = enabled
	}
}

// New builds the footer definition. It fails if the defaults are incomplete
// or the layout drifted from Config.
func New(opts ...Option) (*sections.Definition[Config], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	render := RenderMinimal
	if o.fullMarkup {
		render = RenderFull
	}

	return sections.NewDefinition(Name, schema, defaults,
		func(cfg Config) sections.Projection { return Project(cfg) },
		sections.WithRenderer(render),
		sections.WithLayout[Config](layoutKeys()...),
	)
}

// RenderMinimal renders the hidden template footer carrying only the
// copyright line.
func RenderMinimal(cfg Config) g.Node {
	tree := Project(cfg)
	return h.Footer(
		h.ID("footer"),
		h.Class("hidden"),
		editable("footer"),
		h.Div(
			h.Class("container mx-auto px-4 py-4"),
			h.Div(
				h.Class("text-center text-sm text-muted-foreground"),
				text(tree.Copyright),
			),
		),
	)
}

// RenderFull renders the complete footer tree.
func RenderFull(cfg Config) g.Node {
	tree := Project(cfg)
	return h.Footer(
		h.ID("footer"),
		h.Class("border-t bg-background"),
		editable("footer"),
		h.Div(
			h.Class("container mx-auto grid gap-12 px-4 py-16 lg:grid-cols-6"),
			h.Div(
				h.Class("lg:col-span-2"),
				h.Span(h.Class("text-xl font-bold"), editable(string(tree.Brand[0].Key)), g.Text(tree.Brand[0].Text)),
				h.P(h.Class("mt-4 text-sm text-muted-foreground"), editable(string(tree.Brand[1].Key)), g.Text(tree.Brand[1].Text)),
				h.Ul(
					h.Class("mt-6 space-y-2 text-sm"),
					g.Map(tree.Contact, func(leaf sections.TextLeaf) g.Node {
						return h.Li(text(leaf))
					}),
				),
			),
			g.Map(tree.Groups, group),
			h.Div(
				h.Class("lg:col-span-2"),
				h.H3(h.Class("font-semibold"), editable(string(tree.Newsletter[0].Key)), g.Text(tree.Newsletter[0].Text)),
				h.Form(
					h.Class("mt-4 flex gap-2"),
					h.Input(
						h.Type("email"),
						h.Placeholder(tree.Newsletter[1].Text),
						editable(string(tree.Newsletter[1].Key)),
					),
				),
				h.P(h.Class("mt-2 text-xs text-muted-foreground"), text(tree.Newsletter[2])),
			),
		),
		h.Div(
			h.Class("container mx-auto flex flex-col gap-4 border-t px-4 py-6 text-sm md:flex-row md:justify-between"),
			h.Div(
				text(tree.Copyright),
				g.Text(" Made with love "),
				text(tree.MadeWith),
			),
			h.Nav(
				h.Class("flex gap-4"),
				g.Map(tree.Bottom, link),
			),
			h.Div(
				h.Class("flex items-center gap-3"),
				text(tree.SocialLabel),
				g.Map(tree.Social, social),
			),
		),
	)
}

func group(gr sections.SectionGroup) g.Node {
	return h.Div(
		h.H3(h.Class("font-semibold"), editable(string(gr.TitleKey)), g.Text(gr.Title)),
		h.Ul(
			h.Class("mt-4 space-y-2 text-sm text-muted-foreground"),
			g.Map(gr.Links, func(l sections.LinkEntry) g.Node {
				return h.Li(link(l))
			}),
		),
	)
}

func link(l sections.LinkEntry) g.Node {
	return h.A(
		h.Href(l.Target),
		g.Attr("data-editable-href", string(l.TargetKey)),
		h.Span(editable(string(l.TextKey)), g.Text(l.Text)),
	)
}

func social(s sections.SocialEntry) g.Node {
	return h.A(
		h.Href(s.Target),
		g.Attr("aria-label", s.Platform),
		g.Attr("data-editable-href", string(s.TargetKey)),
		g.Text(s.Platform),
	)
}

func text(leaf sections.TextLeaf) g.Node {
	return h.Span(editable(string(leaf.Key)), g.Text(leaf.Text))
}

func editable(tag string) g.Node {
	return g.Attr("data-editable", tag)
}
