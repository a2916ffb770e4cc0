package entity

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/propman/schema"
)

// Base holds the attributes shared by every record.
type Base struct {
	CreatedAt Timestamp `dynamodbav:"createdAt,omitempty" validate:"required"`
	UpdatedAt Timestamp `dynamodbav:"updatedAt,omitempty" validate:"required"`

	// Extra holds attributes present on the stored record that the struct does not
	// declare. They are written back unchanged on create.
	Extra map[string]types.AttributeValue `dynamodbav:"-" validate:"-"`
}

// Meta returns the shared attributes.
func (b *Base) Meta() *Base { return b }

// Record is implemented by pointers to every entity struct.
type Record interface {
	Meta() *Base
	Kind() schema.Kind
}
