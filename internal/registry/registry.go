// Package registry holds the full descriptor set, validates its
// internal consistency, and exposes lookup by noun name. A registry is
// populated once at startup, finalized, and read-only afterward, so
// concurrent readers need no synchronization.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/harlowgray/lexica-api/internal/domain"
)

// ErrSealed is returned when a descriptor or category is registered
// after Finalize.
var ErrSealed = errors.New("registry is sealed")

// Registry is the descriptor catalog. The zero value is not usable;
// construct with New.
type Registry struct {
	nouns      map[string]*domain.NounDescriptor
	categories map[string][]string
	sealed     bool
}

// New creates an empty, unsealed registry.
func New() *Registry {
	return &Registry{
		nouns:      make(map[string]*domain.NounDescriptor),
		categories: make(map[string][]string),
	}
}

// Register adds a descriptor to the registry. It fails fast with
// domain.ErrInvalidDescriptor when the descriptor is structurally
// malformed and domain.ErrDuplicateNoun when the name is taken.
// Relationship targets are resolved later, in Finalize, because packs
// legitimately contain reference cycles (Document <-> DocumentVersion).
func (r *Registry) Register(noun *domain.NounDescriptor) error {
	if r.sealed {
		return ErrSealed
	}
	if noun == nil {
		return fmt.Errorf("%w: descriptor is nil", domain.ErrInvalidDescriptor)
	}

	if err := noun.Validate(); err != nil {
		return err
	}

	if _, exists := r.nouns[noun.Name]; exists {
		return fmt.Errorf("%w: %q is already registered", domain.ErrDuplicateNoun, noun.Name)
	}

	r.nouns[noun.Name] = noun
	return nil
}

// RegisterCategory adds a documentation grouping of noun names. The
// label must not already exist; entries are resolved in Finalize.
func (r *Registry) RegisterCategory(label string, nounNames []string) error {
	if r.sealed {
		return ErrSealed
	}
	if label == "" {
		return fmt.Errorf("%w: category label cannot be empty", domain.ErrInvalidDescriptor)
	}
	if _, exists := r.categories[label]; exists {
		return fmt.Errorf("%w: category %q is already registered", domain.ErrDuplicateNoun, label)
	}

	r.categories[label] = append([]string(nil), nounNames...)
	return nil
}

// Finalize seals the registry after checking every cross-descriptor
// reference: each relationship must target a registered noun and each
// category entry must resolve. Registration-time errors abort the
// build; there is no partial registry.
func (r *Registry) Finalize() error {
	if r.sealed {
		return nil
	}

	for _, name := range r.Nouns() {
		noun := r.nouns[name]
		for relName, rel := range noun.Relationships {
			if _, ok := r.nouns[rel.Type.Target]; !ok {
				return fmt.Errorf("%w: relationship %s.%s targets unknown noun %q",
					domain.ErrInvalidDescriptor, name, relName, rel.Type.Target)
			}
		}
	}

	for _, label := range r.CategoryLabels() {
		for _, name := range r.categories[label] {
			if _, ok := r.nouns[name]; !ok {
				return fmt.Errorf("%w: category %q lists unregistered noun %q",
					domain.ErrUnknownNoun, label, name)
			}
		}
	}

	r.sealed = true
	return nil
}

// Resolve returns the descriptor registered under name. Reads never
// mutate the registry.
func (r *Registry) Resolve(name string) (*domain.NounDescriptor, error) {
	noun, ok := r.nouns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownNoun, name)
	}
	return noun, nil
}

// Nouns returns every registered noun name in sorted order.
func (r *Registry) Nouns() []string {
	names := make([]string, 0, len(r.nouns))
	for name := range r.nouns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered nouns.
func (r *Registry) Len() int {
	return len(r.nouns)
}

// CategoryLabels returns every category label in sorted order.
func (r *Registry) CategoryLabels() []string {
	labels := make([]string, 0, len(r.categories))
	for label := range r.categories {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Categories returns a copy of the category map.
func (r *Registry) Categories() map[string][]string {
	out := make(map[string][]string, len(r.categories))
	for label, names := range r.categories {
		out[label] = append([]string(nil), names...)
	}
	return out
}

// Category returns the noun names grouped under label.
func (r *Registry) Category(label string) ([]string, error) {
	names, ok := r.categories[label]
	if !ok {
		return nil, fmt.Errorf("%w: category %q", domain.ErrUnknownNoun, label)
	}
	return append([]string(nil), names...), nil
}
