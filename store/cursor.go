package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/propman/schema"
)

// Cursor is an opaque continuation token. Callers pass it back verbatim.
type Cursor string

// encodeCursor encodes a LastEvaluatedKey.
// Format: base64url(json({attr: value}))
func encodeCursor(lek map[string]types.AttributeValue) (Cursor, error) {
	if len(lek) == 0 {
		return "", nil
	}

	var attrs map[string]string
	if err := attributevalue.UnmarshalMap(lek, &attrs); err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return Cursor(base64.RawURLEncoding.EncodeToString(data)), nil
}

// decodeCursor decodes a cursor and checks it belongs to the query scope.
func decodeCursor(c Cursor, in QueryInput) (map[string]types.AttributeValue, error) {
	data, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var attrs map[string]string
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	required := []string{schema.AttrPK, schema.AttrSK, in.Slot.PartitionAttr(), in.Slot.SortAttr()}
	for _, name := range required {
		if attrs[name] == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidCursor, name)
		}
	}
	if len(attrs) != len(uniq(required)) {
		return nil, fmt.Errorf("%w: unexpected attributes", ErrInvalidCursor)
	}

	if attrs[in.Slot.PartitionAttr()] != in.Partition {
		return nil, fmt.Errorf("%w: partition mismatch", ErrInvalidCursor)
	}
	sk := attrs[in.Slot.SortAttr()]
	if in.Sort.Exact && sk != in.Sort.Value || !in.Sort.Exact && !strings.HasPrefix(sk, in.Sort.Value) {
		return nil, fmt.Errorf("%w: sort key out of scope", ErrInvalidCursor)
	}

	lek, err := attributevalue.MarshalMap(attrs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return lek, nil
}

func uniq(names []string) []string {
	seen := map[string]bool{}
	out := names[:0:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
