package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reference is a structured link to another noun. The wire form is the
// target noun's name, optionally suffixed "[]" for a to-many link
// (e.g. "AdGroup[]"). The suffix is parsed exactly once, here, so
// consumers never deal with raw strings.
type Reference struct {
	Target string
	ToMany bool
}

// ParseReference parses the wire form of a reference.
func ParseReference(s string) (Reference, error) {
	target, toMany := strings.CutSuffix(s, "[]")
	if target == "" {
		return Reference{}, fmt.Errorf("%w: empty relationship target in %q", ErrInvalidDescriptor, s)
	}
	if strings.ContainsAny(target, "[]") {
		return Reference{}, fmt.Errorf("%w: malformed relationship target %q", ErrInvalidDescriptor, s)
	}

	return Reference{Target: target, ToMany: toMany}, nil
}

// String renders the wire form of the reference.
func (r Reference) String() string {
	if r.ToMany {
		return r.Target + "[]"
	}
	return r.Target
}

// UnmarshalYAML parses the "Name" / "Name[]" wire form.
func (r *Reference) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	ref, err := ParseReference(s)
	if err != nil {
		return err
	}

	*r = ref
	return nil
}

// MarshalYAML renders the wire form.
func (r Reference) MarshalYAML() (any, error) {
	return r.String(), nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON input.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	ref, err := ParseReference(s)
	if err != nil {
		return err
	}

	*r = ref
	return nil
}

// MarshalJSON renders the wire form.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// RelationshipDescriptor describes a link from one noun to another.
// Required defaults to true when absent from the source data: an
// undeclared flag means the relationship must be populated.
type RelationshipDescriptor struct {
	Type        Reference `json:"type"`
	Required    bool      `json:"required"`
	Backref     string    `json:"backref,omitempty"`
	Description string    `json:"description,omitempty"`
}

// relationshipWire carries the serialized shape. Required is a pointer
// so an absent flag can default to true.
type relationshipWire struct {
	Type        Reference `json:"type"                  yaml:"type"`
	Required    *bool     `json:"required,omitempty"    yaml:"required,omitempty"`
	Backref     string    `json:"backref,omitempty"     yaml:"backref,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

func (d *RelationshipDescriptor) fromWire(w relationshipWire) {
	d.Type = w.Type
	d.Required = w.Required == nil || *w.Required
	d.Backref = w.Backref
	d.Description = w.Description
}

// UnmarshalYAML decodes a relationship, defaulting Required to true.
// A decoder's KnownFields setting does not reach into custom
// unmarshalers, so unknown keys are rejected here explicitly.
func (d *RelationshipDescriptor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content)-1; i += 2 {
			key := value.Content[i].Value
			switch key {
			case "type", "required", "backref", "description":
			default:
				return fmt.Errorf("%w: unknown relationship field %q", ErrInvalidDescriptor, key)
			}
		}
	}

	var w relationshipWire
	if err := value.Decode(&w); err != nil {
		return err
	}

	d.fromWire(w)
	return nil
}

// UnmarshalJSON decodes a relationship, defaulting Required to true.
func (d *RelationshipDescriptor) UnmarshalJSON(data []byte) error {
	var w relationshipWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	d.fromWire(w)
	return nil
}

// MarshalYAML renders the serialized shape, omitting the required flag
// when it holds the default.
func (d RelationshipDescriptor) MarshalYAML() (any, error) {
	w := relationshipWire{
		Type:        d.Type,
		Backref:     d.Backref,
		Description: d.Description,
	}
	if !d.Required {
		required := false
		w.Required = &required
	}
	return w, nil
}

// Validate checks the reference target is present.
func (d *RelationshipDescriptor) Validate() error {
	if d.Type.Target == "" {
		return fmt.Errorf("%w: relationship has no target noun", ErrInvalidDescriptor)
	}
	return nil
}
