package schema

import "errors"

var (
	// ErrUnknownKind is returned when a kind is not registered.
	ErrUnknownKind = errors.New("propman: unknown entity kind")

	// ErrUnknownPattern is returned when a kind has no access pattern with the given name.
	ErrUnknownPattern = errors.New("propman: unknown access pattern")

	// ErrInvalidKeyValue is returned when a key value is empty or contains the separator.
	ErrInvalidKeyValue = errors.New("propman: invalid key value")

	// ErrMissingKeyAttribute is returned when an attribute needed for the primary key is absent.
	ErrMissingKeyAttribute = errors.New("propman: missing key attribute")

	// ErrInvalidDefinition is returned when a definition breaks a registry invariant.
	ErrInvalidDefinition = errors.New("propman: invalid schema definition")
)
