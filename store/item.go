package store

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/propman/schema"
)

// Item is a record read from the table.
type Item struct {
	// Raw is the full attribute map, key attributes included.
	Raw map[string]types.AttributeValue

	// EntityType is the kind discriminator.
	EntityType string

	// CreatedAt is the creation timestamp as stored.
	CreatedAt string

	// UpdatedAt is the last update timestamp as stored.
	UpdatedAt string
}

// PutOptions configures Put.
type PutOptions struct {
	// IfNotExists fails the put with ErrConditionalWriteFailed when the key is taken.
	IfNotExists bool
}

// QueryInput defines one page of a kind-scoped query.
type QueryInput struct {
	// Kind is the entity kind being listed, for logging.
	Kind schema.Kind

	// Slot selects the base table or one of the shared indexes.
	Slot schema.Slot

	// Partition is the rendered partition key value.
	Partition string

	// Sort restricts the query to the kind (and optionally a sort prefix).
	Sort schema.SortCondition

	// Limit is the page size; 0 uses Config.DefaultLimit.
	Limit int32

	// Cursor resumes a previous query; empty starts from the beginning.
	Cursor Cursor
}

// Page is one page of query results.
type Page struct {
	Items []*Item

	// Next resumes the query; empty when the scan is complete.
	Next Cursor
}

// unmarshalItem converts a DynamoDB item to an Item struct.
func unmarshalItem(raw map[string]types.AttributeValue) *Item {
	item := &Item{Raw: raw}

	if v, ok := raw[schema.AttrEntityType].(*types.AttributeValueMemberS); ok {
		item.EntityType = v.Value
	}
	if v, ok := raw[schema.AttrCreatedAt].(*types.AttributeValueMemberS); ok {
		item.CreatedAt = v.Value
	}
	if v, ok := raw[schema.AttrUpdatedAt].(*types.AttributeValueMemberS); ok {
		item.UpdatedAt = v.Value
	}

	return item
}

// keyAttrs converts a rendered key to its attribute map.
func keyAttrs(key schema.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		schema.AttrPK: &types.AttributeValueMemberS{Value: key.PK},
		schema.AttrSK: &types.AttributeValueMemberS{Value: key.SK},
	}
}
