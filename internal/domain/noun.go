package domain

import (
	"fmt"
	"sort"
)

// NounDescriptor describes a business entity type: its display names,
// typed properties, relationships to other nouns, supported actions
// (verbs), and emitted events (past-tense state transitions).
//
// Name is the registry key (PascalCase by convention, e.g. "AdGroup").
// In serialized packs it is the mapping key rather than a field, so it
// carries no yaml/json struct tag for input; the loader fills it in.
type NounDescriptor struct {
	Name          string                             `json:"name"                    yaml:"-"`
	Singular      string                             `json:"singular"                yaml:"singular"`
	Plural        string                             `json:"plural"                  yaml:"plural"`
	Description   string                             `json:"description,omitempty"   yaml:"description,omitempty"`
	Properties    map[string]*PropertyDescriptor     `json:"properties,omitempty"    yaml:"properties,omitempty"`
	Relationships map[string]*RelationshipDescriptor `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Actions       []string                           `json:"actions,omitempty"       yaml:"actions,omitempty"`
	Events        []string                           `json:"events,omitempty"        yaml:"events,omitempty"`
}

// Validate checks the descriptor's internal consistency: non-empty
// names, recognized property kinds, well-formed relationship targets,
// and unique actions and events. Cross-descriptor checks (relationship
// targets, backrefs) belong to the registry.
func (n *NounDescriptor) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("%w: noun name cannot be empty", ErrInvalidDescriptor)
	}
	if n.Singular == "" {
		return fmt.Errorf("%w: noun %q has no singular display name", ErrInvalidDescriptor, n.Name)
	}
	if n.Plural == "" {
		return fmt.Errorf("%w: noun %q has no plural display name", ErrInvalidDescriptor, n.Name)
	}

	for name, prop := range n.Properties {
		if name == "" {
			return fmt.Errorf("%w: noun %q has a property with an empty name", ErrInvalidDescriptor, n.Name)
		}
		if prop == nil {
			return fmt.Errorf("%w: property %s.%s is empty", ErrInvalidDescriptor, n.Name, name)
		}
		if err := prop.Validate(); err != nil {
			return fmt.Errorf("property %s.%s: %w", n.Name, name, err)
		}
	}

	for name, rel := range n.Relationships {
		if name == "" {
			return fmt.Errorf("%w: noun %q has a relationship with an empty name", ErrInvalidDescriptor, n.Name)
		}
		if rel == nil {
			return fmt.Errorf("%w: relationship %s.%s is empty", ErrInvalidDescriptor, n.Name, name)
		}
		if err := rel.Validate(); err != nil {
			return fmt.Errorf("relationship %s.%s: %w", n.Name, name, err)
		}
	}

	if err := validateNameList(n.Name, "action", n.Actions); err != nil {
		return err
	}
	if err := validateNameList(n.Name, "event", n.Events); err != nil {
		return err
	}

	return nil
}

// PropertyNames returns the property names in sorted order.
func (n *NounDescriptor) PropertyNames() []string {
	names := make([]string, 0, len(n.Properties))
	for name := range n.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RelationshipNames returns the relationship names in sorted order.
func (n *NounDescriptor) RelationshipNames() []string {
	names := make([]string, 0, len(n.Relationships))
	for name := range n.Relationships {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateNameList rejects empty and duplicate entries in an action or
// event list.
func validateNameList(noun, kind string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%w: noun %q has an empty %s name", ErrInvalidDescriptor, noun, kind)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: noun %q declares %s %q twice", ErrInvalidDescriptor, noun, kind, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
