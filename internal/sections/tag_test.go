package sections

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		raw     string
		want    Tag
		wantErr bool
	}{
		{raw: "linkPricing", want: FieldTag("linkPricing")},
		{raw: "features[0]", want: IndexTag("features", 0)},
		{raw: " features[12] ", want: IndexTag("features", 12)},
		{raw: "", wantErr: true},
		{raw: "[1]", wantErr: true},
		{raw: "features[", wantErr: true},
		{raw: "features[x]", wantErr: true},
		{raw: "features[-1]", wantErr: true},
		{raw: "features]", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseTag(tc.raw)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTag) {
					t.Fatalf("expected ErrInvalidTag, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTag returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestTagStringRoundTrip(t *testing.T) {
	for _, tag := range []Tag{FieldTag("badge"), IndexTag("features", 3)} {
		parsed, err := ParseTag(tag.String())
		if err != nil {
			t.Fatalf("ParseTag(%q) returned error: %v", tag, err)
		}
		if parsed != tag {
			t.Fatalf("expected %+v, got %+v", tag, parsed)
		}
	}

	if got := IndexTag("features", 2).String(); got != "features[2]" {
		t.Fatalf("expected features[2], got %s", got)
	}
	if FieldTag("badge").Indexed() {
		t.Fatalf("field tag must not be indexed")
	}
}

func TestTagJSON(t *testing.T) {
	data, err := json.Marshal([]Tag{FieldTag("badge"), IndexTag("features", 1)})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `["badge","features[1]"]` {
		t.Fatalf("unexpected encoding %s", data)
	}

	var tags []Tag
	if err := json.Unmarshal(data, &tags); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if len(tags) != 2 || tags[1] != IndexTag("features", 1) {
		t.Fatalf("unexpected decoded tags %+v", tags)
	}
}
