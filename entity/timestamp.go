package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/propman/schema"
)

// Timestamp is an instant in the canonical wire layout (schema.TimestampLayout).
//
// Older records carry epoch seconds, epoch milliseconds or RFC 3339 strings without
// milliseconds; all of them decode to the canonical form.
type Timestamp string

// NewTimestamp formats t in the canonical layout.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(schema.TimestampLayout))
}

// Time parses the timestamp.
func (ts Timestamp) Time() (time.Time, error) {
	return time.Parse(schema.TimestampLayout, string(ts))
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (ts *Timestamp) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		if t, err := time.Parse(time.RFC3339Nano, v.Value); err == nil {
			*ts = NewTimestamp(t)
			return nil
		}
		if n, err := strconv.ParseInt(v.Value, 10, 64); err == nil {
			*ts = NewTimestamp(fromEpoch(n))
			return nil
		}
		return fmt.Errorf("timestamp: cannot parse %q", v.Value)
	case *types.AttributeValueMemberN:
		n, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return fmt.Errorf("timestamp: cannot parse %q: %w", v.Value, err)
		}
		*ts = NewTimestamp(fromEpoch(int64(n)))
		return nil
	case *types.AttributeValueMemberNULL:
		*ts = ""
		return nil
	default:
		return fmt.Errorf("timestamp: unsupported attribute type %T", av)
	}
}

// fromEpoch treats values above 1e12 as milliseconds.
func fromEpoch(n int64) time.Time {
	if n > 1e12 || n < -1e12 {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}
