package sections

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldKey names one configuration key, e.g. "linkPricing".
type FieldKey string

// Tag identifies a rendered leaf value. It either points at a whole field or
// at one element of a list field.
type Tag struct {
	Field   FieldKey
	Index   int
	indexed bool
}

// FieldTag returns the tag of a scalar field.
func FieldTag(field FieldKey) Tag {
	return Tag{Field: field}
}

// IndexTag returns the tag of element i of a list field.
func IndexTag(field FieldKey, i int) Tag {
	return Tag{Field: field, Index: i, indexed: true}
}

// Indexed reports whether the tag addresses a list element.
func (t Tag) Indexed() bool {
	return t.indexed
}

// String renders the tag as written into data-editable attributes.
func (t Tag) String() string {
	if !t.indexed {
		return string(t.Field)
	}
	return string(t.Field) + "[" + strconv.Itoa(t.Index) + "]"
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTag is the inverse of Tag.String.
func ParseTag(raw string) (Tag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Tag{}, fmt.Errorf("%w: empty", ErrInvalidTag)
	}

	open := strings.IndexByte(raw, '[')
	if open < 0 {
		if strings.ContainsRune(raw, ']') {
			return Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, raw)
		}
		return FieldTag(FieldKey(raw)), nil
	}

	if open == 0 || !strings.HasSuffix(raw, "]") {
		return Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, raw)
	}
	index, err := strconv.Atoi(raw[open+1 : len(raw)-1])
	if err != nil || index < 0 {
		return Tag{}, fmt.Errorf("%w: bad index in %q", ErrInvalidTag, raw)
	}
	return IndexTag(FieldKey(raw[:open]), index), nil
}
