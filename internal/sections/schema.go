package sections

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Kind classifies a configuration field.
type Kind int

const (
	// KindText is a single string value.
	KindText Kind = iota + 1
	// KindList is an ordered list of strings.
	KindList
)

// Schema indexes the keys of a typed section configuration. Keys come from
// the json struct tags and are kept in declaration order.
type Schema[T any] struct {
	keys  []FieldKey
	index map[FieldKey]int
	kinds map[FieldKey]Kind
}

// NewSchema builds the schema of T, which must be a struct whose exported
// fields are all strings or string slices with a json tag.
func NewSchema[T any]() (*Schema[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", typ)
	}

	s := &Schema[T]{
		keys:  make([]FieldKey, 0, typ.NumField()),
		index: make(map[FieldKey]int, typ.NumField()),
		kinds: make(map[FieldKey]Kind, typ.NumField()),
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return nil, fmt.Errorf("schema: field %s.%s has no json key", typ, field.Name)
		}

		var kind Kind
		switch {
		case field.Type.Kind() == reflect.String:
			kind = KindText
		case field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.String:
			kind = KindList
		default:
			return nil, fmt.Errorf("schema: field %s.%s has unsupported type %s", typ, field.Name, field.Type)
		}

		key := FieldKey(name)
		if _, dup := s.index[key]; dup {
			return nil, fmt.Errorf("schema: duplicate key %q in %s", key, typ)
		}
		s.keys = append(s.keys, key)
		s.index[key] = i
		s.kinds[key] = kind
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. It is meant for package
// level schema values.
func MustSchema[T any]() *Schema[T] {
	s, err := NewSchema[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// Keys returns the field keys in declaration order.
func (s *Schema[T]) Keys() []FieldKey {
	return slices.Clone(s.keys)
}

// Has reports whether key belongs to the schema.
func (s *Schema[T]) Has(key FieldKey) bool {
	_, ok := s.index[key]
	return ok
}

// Kind returns the kind of key, or zero when the key is unknown.
func (s *Schema[T]) Kind(key FieldKey) Kind {
	return s.kinds[key]
}

// Text returns the string stored under key. Unknown keys and list keys
// yield the empty string; layouts are checked against the schema at startup.
func (s *Schema[T]) Text(cfg T, key FieldKey) string {
	if s.kinds[key] != KindText {
		return ""
	}
	return reflect.ValueOf(cfg).Field(s.index[key]).String()
}

// List returns a copy of the list stored under key.
func (s *Schema[T]) List(cfg T, key FieldKey) []string {
	if s.kinds[key] != KindList {
		return nil
	}
	values, _ := reflect.ValueOf(cfg).Field(s.index[key]).Interface().([]string)
	return slices.Clone(values)
}

// IsEmpty reports whether key holds the empty string or an empty list in cfg.
func (s *Schema[T]) IsEmpty(cfg T, key FieldKey) bool {
	switch s.kinds[key] {
	case KindText:
		return s.Text(cfg, key) == ""
	case KindList:
		return len(s.List(cfg, key)) == 0
	}
	return false
}

// clear sets key to its empty value. Lists become empty, not nil, so they
// encode as [].
func (s *Schema[T]) clear(cfg *T, key FieldKey) {
	field := reflect.ValueOf(cfg).Elem().Field(s.index[key])
	switch s.kinds[key] {
	case KindText:
		field.SetString("")
	case KindList:
		field.Set(reflect.MakeSlice(field.Type(), 0, 0))
	}
}

// Values flattens cfg into a key/value map covering every schema key.
func (s *Schema[T]) Values(cfg T) map[FieldKey]any {
	out := make(map[FieldKey]any, len(s.keys))
	for _, key := range s.keys {
		switch s.kinds[key] {
		case KindText:
			out[key] = s.Text(cfg, key)
		case KindList:
			out[key] = s.List(cfg, key)
		}
	}
	return out
}

// Tags returns one tag per leaf value of cfg: a field tag for text keys and
// one index tag per element of list keys.
func (s *Schema[T]) Tags(cfg T) []Tag {
	tags := make([]Tag, 0, len(s.keys))
	for _, key := range s.keys {
		if s.kinds[key] == KindList {
			for i := range s.List(cfg, key) {
				tags = append(tags, IndexTag(key, i))
			}
			continue
		}
		tags = append(tags, FieldTag(key))
	}
	return tags
}
