package sections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"dario.cat/mergo"
)

// Config is implemented by typed section configurations. Clone must return a
// copy that shares no mutable state (lists included) with the receiver.
type Config[T any] interface {
	Clone() T
}

// Document is a flat override document as supplied by an editor or a config
// file: field key to string or list of strings.
type Document map[string]any

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	out := make(Document, len(d))
	for key, value := range d {
		switch v := value.(type) {
		case []any:
			out[key] = slices.Clone(v)
		case []string:
			out[key] = slices.Clone(v)
		default:
			out[key] = v
		}
	}
	return out
}

// Override is a decoded override document: the typed values together with
// the keys the document supplied.
type Override[T any] struct {
	Value   T
	Present []FieldKey
}

// Has reports whether the document supplied key.
func (o Override[T]) Has(key FieldKey) bool {
	return slices.Contains(o.Present, key)
}

// Merge overlays override onto defaults. Every supplied key wins, including
// the empty string and the empty list; keys the document did not supply keep
// the default. Lists are replaced as a whole.
func Merge[T Config[T]](schema *Schema[T], defaults T, override Override[T]) (T, error) {
	effective := defaults.Clone()
	if err := mergo.Merge(&effective, override.Value.Clone(), mergo.WithOverride); err != nil {
		var zero T
		return zero, fmt.Errorf("merge config: %w", err)
	}
	// mergo skips empty source values.
	for _, key := range override.Present {
		if schema.IsEmpty(override.Value, key) {
			schema.clear(&effective, key)
		}
	}
	return effective, nil
}

// Decode converts doc into a partial T and records the supplied keys. Keys
// outside the schema and values of the wrong type are rejected with a
// *ConfigValidationError; null values are treated as absent.
func Decode[T any](section string, schema *Schema[T], doc Document) (Override[T], error) {
	var out Override[T]
	if len(doc) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	clean := make(map[string]any, len(doc))
	for _, key := range keys {
		value := doc[key]
		field := FieldKey(key)
		if !schema.Has(field) {
			return Override[T]{}, validationError(section, key, ErrUnknownField, "")
		}
		if value == nil {
			continue
		}

		switch schema.Kind(field) {
		case KindText:
			text, ok := value.(string)
			if !ok {
				return Override[T]{}, validationError(section, key, ErrInvalidValue, fmt.Sprintf("expected string, got %T", value))
			}
			clean[key] = text
		case KindList:
			list, err := toStrings(value)
			if err != nil {
				return Override[T]{}, validationError(section, key, ErrInvalidValue, err.Error())
			}
			clean[key] = list
		}
		out.Present = append(out.Present, field)
	}

	raw, err := json.Marshal(clean)
	if err != nil {
		return Override[T]{}, fmt.Errorf("encode override: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out.Value); err != nil {
		return Override[T]{}, validationError(section, "", ErrInvalidValue, err.Error())
	}
	return out, nil
}

func toStrings(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			text, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			out = append(out, text)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", value)
	}
}
