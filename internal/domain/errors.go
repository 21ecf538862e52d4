// Package domain defines the noun descriptor model and its errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidDescriptor is returned when a descriptor is structurally
	// malformed: an unknown property type, an empty name, a duplicate
	// action or event, or a relationship targeting an unknown noun.
	// It is usually wrapped with a more specific message.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrDuplicateNoun is returned when a descriptor is registered under
	// a name that is already taken.
	ErrDuplicateNoun = errors.New("duplicate noun")

	// ErrUnknownNoun is returned when a lookup or category entry names a
	// noun that is not registered.
	ErrUnknownNoun = errors.New("unknown noun")

	// ErrBackrefInconsistency is returned when a declared backref is not
	// mirrored by a matching relationship on the target noun.
	ErrBackrefInconsistency = errors.New("backref inconsistency")
)
