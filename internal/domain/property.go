package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PropertyKind identifies the value type of a property.
type PropertyKind string

// The closed set of property kinds. The string values are part of the
// external contract and must not change.
const (
	KindString   PropertyKind = "string"
	KindNumber   PropertyKind = "number"
	KindBoolean  PropertyKind = "boolean"
	KindDatetime PropertyKind = "datetime"
	KindDate     PropertyKind = "date"
	KindJSON     PropertyKind = "json"
	KindURL      PropertyKind = "url"
	KindMarkdown PropertyKind = "markdown"
)

// PropertyKinds lists every recognized kind in declaration order.
var PropertyKinds = []PropertyKind{
	KindString, KindNumber, KindBoolean, KindDatetime,
	KindDate, KindJSON, KindURL, KindMarkdown,
}

// IsValid reports whether the kind is one of the recognized values.
func (k PropertyKind) IsValid() bool {
	switch k {
	case KindString, KindNumber, KindBoolean, KindDatetime,
		KindDate, KindJSON, KindURL, KindMarkdown:
		return true
	default:
		return false
	}
}

// UnmarshalYAML decodes and validates a property kind. Unrecognized
// values are rejected at load time rather than surfacing later in a
// consumer.
func (k *PropertyKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	kind := PropertyKind(s)
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidDescriptor, s)
	}

	*k = kind
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for descriptors submitted as JSON.
func (k *PropertyKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	kind := PropertyKind(s)
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidDescriptor, s)
	}

	*k = kind
	return nil
}

// PropertyDescriptor describes a single typed field on a noun.
// Optional and Array default to false when absent from the source data.
type PropertyDescriptor struct {
	Kind        PropertyKind `json:"type"                  yaml:"type"`
	Optional    bool         `json:"optional,omitempty"    yaml:"optional,omitempty"`
	Array       bool         `json:"array,omitempty"       yaml:"array,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Examples    []any        `json:"examples,omitempty"    yaml:"examples,omitempty"`
}

// Validate checks that the kind is recognized and that every example
// literal conforms to it.
func (p *PropertyDescriptor) Validate() error {
	if !p.Kind.IsValid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidDescriptor, string(p.Kind))
	}

	for i, example := range p.Examples {
		if !exampleConformsTo(p.Kind, example) {
			return fmt.Errorf("%w: example %d (%v) does not conform to type %q",
				ErrInvalidDescriptor, i, example, p.Kind)
		}
	}

	return nil
}

// exampleConformsTo loosely checks an example literal against a kind.
// String-shaped kinds (url, markdown, date, datetime) accept any string
// literal; json accepts anything.
func exampleConformsTo(kind PropertyKind, v any) bool {
	switch kind {
	case KindString, KindURL, KindMarkdown, KindDate, KindDatetime:
		_, ok := v.(string)
		return ok
	case KindNumber:
		switch v.(type) {
		case int, int64, float64, float32:
			return true
		default:
			// json.Unmarshal decodes numbers into json.Number when
			// configured, but we only ever see the default float64.
			return false
		}
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindJSON:
		return true
	default:
		return false
	}
}
