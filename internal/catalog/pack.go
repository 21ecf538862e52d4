package catalog

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/harlowgray/lexica-api/internal/domain"
	"github.com/harlowgray/lexica-api/internal/registry"
)

// Pack is one serialized descriptor document: the nouns of a single
// SaaS domain plus its documentation categories. The YAML field names
// (`type`, `optional`, `array`, `required`, `backref`) are the external
// contract and are preserved exactly.
type Pack struct {
	Version    string                             `yaml:"version"`
	Domain     string                             `yaml:"domain"`
	Nouns      map[string]*domain.NounDescriptor  `yaml:"nouns"`
	Categories map[string][]string                `yaml:"categories,omitempty"`
}

// ParsePack decodes a descriptor pack. Unknown mapping keys, unknown
// property kinds, and malformed references are all rejected here so
// that bad data never reaches the registry.
func ParsePack(data []byte) (*Pack, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var pack Pack
	if err := dec.Decode(&pack); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDescriptor, err)
	}

	if pack.Domain == "" {
		return nil, fmt.Errorf("%w: pack has no domain", domain.ErrInvalidDescriptor)
	}
	if pack.Version == "" {
		return nil, fmt.Errorf("%w: pack %q has no version", domain.ErrInvalidDescriptor, pack.Domain)
	}

	compatible, err := IsCompatible(pack.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: pack %q: %v", domain.ErrInvalidDescriptor, pack.Domain, err)
	}
	if !compatible {
		return nil, fmt.Errorf("%w: pack %q version %s is incompatible with catalog version %s",
			domain.ErrInvalidDescriptor, pack.Domain, pack.Version, Version)
	}

	// The noun name is the mapping key, not a field.
	for name, noun := range pack.Nouns {
		if noun == nil {
			return nil, fmt.Errorf("%w: pack %q: noun %q is empty",
				domain.ErrInvalidDescriptor, pack.Domain, name)
		}
		noun.Name = name
	}

	return &pack, nil
}

// NounNames returns the pack's noun names in sorted order.
func (p *Pack) NounNames() []string {
	names := make([]string, 0, len(p.Nouns))
	for name := range p.Nouns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// register adds every noun and category of the pack to the registry in
// deterministic (sorted) order.
func (p *Pack) register(reg *registry.Registry) error {
	for _, name := range p.NounNames() {
		if err := reg.Register(p.Nouns[name]); err != nil {
			return fmt.Errorf("pack %q: %w", p.Domain, err)
		}
	}

	labels := make([]string, 0, len(p.Categories))
	for label := range p.Categories {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if err := reg.RegisterCategory(label, p.Categories[label]); err != nil {
			return fmt.Errorf("pack %q: %w", p.Domain, err)
		}
	}

	return nil
}
