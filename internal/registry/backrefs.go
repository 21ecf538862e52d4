package registry

import "fmt"

// BackrefViolation describes one backref declaration that is not
// mirrored on the target noun.
type BackrefViolation struct {
	Noun         string `json:"noun"`
	Relationship string `json:"relationship"`
	Backref      string `json:"backref"`
	Target       string `json:"target"`
	Reason       string `json:"reason"`
}

// String renders the violation as "Noun.relationship: reason".
func (v BackrefViolation) String() string {
	return fmt.Sprintf("%s.%s: %s", v.Noun, v.Relationship, v.Reason)
}

// AuditBackrefs verifies that every relationship declaring a backref is
// mirrored: the target noun must declare a relationship of that name
// whose own target (ignoring cardinality) is the source noun. Every
// violation across the catalog is collected before returning, so a
// single report covers all inconsistencies; an empty slice means the
// catalog is symmetric. This is a data-quality audit, not a load gate.
func (r *Registry) AuditBackrefs() []BackrefViolation {
	var violations []BackrefViolation

	for _, name := range r.Nouns() {
		noun := r.nouns[name]
		for _, relName := range noun.RelationshipNames() {
			rel := noun.Relationships[relName]
			if rel.Backref == "" {
				continue
			}

			violation := BackrefViolation{
				Noun:         name,
				Relationship: relName,
				Backref:      rel.Backref,
				Target:       rel.Type.Target,
			}

			target, ok := r.nouns[rel.Type.Target]
			if !ok {
				violation.Reason = fmt.Sprintf("target noun %q is not registered", rel.Type.Target)
				violations = append(violations, violation)
				continue
			}

			mirror, ok := target.Relationships[rel.Backref]
			if !ok {
				violation.Reason = fmt.Sprintf("target noun %q declares no relationship %q",
					rel.Type.Target, rel.Backref)
				violations = append(violations, violation)
				continue
			}

			if mirror.Type.Target != name {
				violation.Reason = fmt.Sprintf("backref %s.%s targets %q, not %q",
					rel.Type.Target, rel.Backref, mirror.Type.Target, name)
				violations = append(violations, violation)
			}
		}
	}

	return violations
}
