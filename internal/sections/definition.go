package sections

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	g "maragu.dev/gomponents"
)

// Projection is the presentation tree derived from an effective
// configuration. Tags lists the editable tag of every leaf in render order.
type Projection interface {
	Tags() []Tag
}

// Section is the type-erased view of a Definition used by the HTTP layer.
type Section interface {
	Name() string
	Keys() []FieldKey
	DefaultValues() map[FieldKey]any
	Resolve(doc Document) (*Resolution, error)
	ApplyEdit(doc Document, tag Tag, value string) (Document, error)
}

// Resolution is the outcome of one render pass: the effective configuration,
// its projection and the node ready to be written as HTML.
type Resolution struct {
	Section    string           `json:"section"`
	Config     any              `json:"config"`
	Values     map[FieldKey]any `json:"-"`
	Projection Projection       `json:"projection"`
	Tags       []Tag            `json:"fields"`

	node g.Node
}

// Node returns the rendered markup node, for composing into a page.
func (r *Resolution) Node() g.Node {
	return r.node
}

// Render writes the section markup to w.
func (r *Resolution) Render(w io.Writer) error {
	if r.node == nil {
		return nil
	}
	return r.node.Render(w)
}

// Definition binds a typed configuration to its defaults, projector and
// renderer. It is immutable after NewDefinition returns.
type Definition[T Config[T]] struct {
	name     string
	schema   *Schema[T]
	defaults T
	project  func(T) Projection
	render   func(T) g.Node
}

// DefinitionOption configures NewDefinition.
type DefinitionOption[T Config[T]] func(*definitionConfig[T])

type definitionConfig[T Config[T]] struct {
	render func(T) g.Node
	layout []FieldKey
}

// WithRenderer sets the markup renderer of the section.
func WithRenderer[T Config[T]](render func(T) g.Node) DefinitionOption[T] {
	return func(cfg *definitionConfig[T]) {
		cfg.render = render
	}
}

// WithLayout declares the keys read by the projector. At construction the
// layout must cover every schema key exactly once.
func WithLayout[T Config[T]](keys ...FieldKey) DefinitionOption[T] {
	return func(cfg *definitionConfig[T]) {
		cfg.layout = append(cfg.layout, keys...)
	}
}

// NewDefinition validates defaults and layout and returns the definition.
func NewDefinition[T Config[T]](name string, schema *Schema[T], defaults T, project func(T) Projection, opts ...DefinitionOption[T]) (*Definition[T], error) {
	var cfg definitionConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	if schema == nil {
		return nil, fmt.Errorf("section %s: schema is required", name)
	}
	if project == nil {
		return nil, fmt.Errorf("section %s: projector is required", name)
	}
	if err := checkLayout(name, schema, cfg.layout); err != nil {
		return nil, err
	}
	if err := validateDefaults(name, defaults); err != nil {
		return nil, err
	}

	return &Definition[T]{
		name:     name,
		schema:   schema,
		defaults: defaults.Clone(),
		project:  project,
		render:   cfg.render,
	}, nil
}

// Name returns the section name.
func (d *Definition[T]) Name() string {
	return d.name
}

// Keys returns the configuration keys in declaration order.
func (d *Definition[T]) Keys() []FieldKey {
	return d.schema.Keys()
}

// Defaults returns a copy of the default configuration.
func (d *Definition[T]) Defaults() T {
	return d.defaults.Clone()
}

// DefaultValues returns the defaults flattened by key.
func (d *Definition[T]) DefaultValues() map[FieldKey]any {
	return d.schema.Values(d.defaults)
}

// Effective decodes doc and merges it onto the defaults.
func (d *Definition[T]) Effective(doc Document) (T, error) {
	override, err := Decode(d.name, d.schema, doc)
	if err != nil {
		var zero T
		return zero, err
	}
	return Merge(d.schema, d.defaults, override)
}

// Resolve runs a full pass: decode, merge, project and build the markup.
func (d *Definition[T]) Resolve(doc Document) (*Resolution, error) {
	effective, err := d.Effective(doc)
	if err != nil {
		return nil, err
	}

	projection := d.project(effective)
	res := &Resolution{
		Section:    d.name,
		Config:     effective,
		Values:     d.schema.Values(effective),
		Projection: projection,
		Tags:       projection.Tags(),
	}
	if d.render != nil {
		res.node = d.render(effective)
	}
	return res, nil
}

// ApplyEdit writes value into a copy of doc at the location named by tag.
// Editing a list element stores the whole current list, since lists are
// replaced rather than merged.
func (d *Definition[T]) ApplyEdit(doc Document, tag Tag, value string) (Document, error) {
	key := string(tag.Field)
	if !d.schema.Has(tag.Field) {
		return nil, validationError(d.name, key, ErrUnknownField, "")
	}

	out := doc.Clone()
	switch d.schema.Kind(tag.Field) {
	case KindText:
		if tag.Indexed() {
			return nil, validationError(d.name, tag.String(), ErrInvalidTag, "field is not a list")
		}
		out[key] = value
	case KindList:
		if !tag.Indexed() {
			return nil, validationError(d.name, key, ErrInvalidTag, "list field requires an index")
		}
		effective, err := d.Effective(doc)
		if err != nil {
			return nil, err
		}
		list := d.schema.List(effective, tag.Field)
		if tag.Index >= len(list) {
			return nil, validationError(d.name, tag.String(), ErrInvalidTag, fmt.Sprintf("index out of range [0,%d)", len(list)))
		}
		list[tag.Index] = value
		out[key] = list
	}
	return out, nil
}

// checkLayout verifies that layout partitions the schema keys. An empty
// layout is not checked.
func checkLayout[T any](section string, schema *Schema[T], layout []FieldKey) error {
	if len(layout) == 0 {
		return nil
	}
	seen := make(map[FieldKey]bool, len(layout))
	for _, key := range layout {
		if !schema.Has(key) {
			return validationError(section, string(key), ErrInvalidLayout, "")
		}
		if seen[key] {
			return validationError(section, string(key), ErrInvalidLayout, "listed more than once")
		}
		seen[key] = true
	}
	for _, key := range schema.Keys() {
		if !seen[key] {
			return validationError(section, string(key), ErrInvalidLayout, "not covered by the layout")
		}
	}
	return nil
}

var defaultsValidator = newDefaultsValidator()

func newDefaultsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateDefaults(section string, defaults any) error {
	err := defaultsValidator.Struct(defaults)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return validationError(section, fe.Field(), ErrIncompleteDefaults, "failed "+fe.Tag())
	}
	return validationError(section, "", ErrIncompleteDefaults, err.Error())
}
