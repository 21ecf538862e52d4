package domain

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPropertyKindIsValid(t *testing.T) {
	t.Parallel()
	for _, kind := range PropertyKinds {
		if !kind.IsValid() {
			t.Errorf("Expected kind %q to be valid", kind)
		}
	}

	for _, bad := range []PropertyKind{"", "text", "String", "timestamp", "int"} {
		if bad.IsValid() {
			t.Errorf("Expected kind %q to be invalid", bad)
		}
	}
}

func TestPropertyKindUnmarshalYAML(t *testing.T) {
	t.Parallel()
	var kind PropertyKind
	if err := yaml.Unmarshal([]byte(`datetime`), &kind); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if kind != KindDatetime {
		t.Errorf("Expected %q, got %q", KindDatetime, kind)
	}

	err := yaml.Unmarshal([]byte(`varchar`), &kind)
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("Expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestPropertyDescriptorDefaults(t *testing.T) {
	t.Parallel()
	var prop PropertyDescriptor
	if err := yaml.Unmarshal([]byte(`{type: string, description: a name}`), &prop); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if prop.Optional {
		t.Error("Expected optional to default to false")
	}
	if prop.Array {
		t.Error("Expected array to default to false")
	}
}

func TestPropertyDescriptorValidateExamples(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		prop    PropertyDescriptor
		wantErr bool
	}{
		{
			name: "string examples",
			prop: PropertyDescriptor{Kind: KindString, Examples: []any{"Summer Sale", "Winter Sale"}},
		},
		{
			name: "number examples",
			prop: PropertyDescriptor{Kind: KindNumber, Examples: []any{42, 19.99}},
		},
		{
			name: "boolean example",
			prop: PropertyDescriptor{Kind: KindBoolean, Examples: []any{true}},
		},
		{
			name: "json accepts any shape",
			prop: PropertyDescriptor{Kind: KindJSON, Examples: []any{map[string]any{"width": 300}}},
		},
		{
			name:    "number with string example",
			prop:    PropertyDescriptor{Kind: KindNumber, Examples: []any{"42"}},
			wantErr: true,
		},
		{
			name:    "datetime with numeric example",
			prop:    PropertyDescriptor{Kind: KindDatetime, Examples: []any{1700000000}},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			prop:    PropertyDescriptor{Kind: "uuid"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.prop.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("Expected ErrInvalidDescriptor, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
