package repository

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/propman/schema"
)

var (
	// ErrDataIntegrity is matched by every *DataIntegrityError.
	ErrDataIntegrity = errors.New("propman: data integrity violation")

	// ErrInvalidField is returned when a field supplied to create or update does not
	// satisfy the rules of its attribute.
	ErrInvalidField = errors.New("propman: invalid field")
)

// DataIntegrityError reports a stored record that does not conform to its kind.
type DataIntegrityError struct {
	Kind schema.Kind
	Op   string

	// Raw is the record as returned by the store.
	Raw map[string]types.AttributeValue

	Err error
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("propman: %s %s: data integrity violation: %v", e.Kind, e.Op, e.Err)
}

func (e *DataIntegrityError) Unwrap() error { return e.Err }

func (e *DataIntegrityError) Is(target error) bool { return target == ErrDataIntegrity }
