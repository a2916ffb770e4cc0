package store

import "errors"

var (
	// ErrNotFound is returned when no record exists for a key.
	ErrNotFound = errors.New("propman: record not found")

	// ErrConditionalWriteFailed is returned when a put with IfNotExists finds an existing record.
	ErrConditionalWriteFailed = errors.New("propman: conditional write failed")

	// ErrInvalidCursor is returned when a cursor cannot be decoded or belongs to another query.
	ErrInvalidCursor = errors.New("propman: invalid cursor")

	// ErrUnscopedQuery is returned when a query has no partition or kind scope.
	ErrUnscopedQuery = errors.New("propman: query must be scoped by partition and kind")
)
