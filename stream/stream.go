// Package stream turns DynamoDB Streams records from the propman table into
// validated, kind-tagged change events.
package stream

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/repository"
	"github.com/jacentio/propman/schema"
)

// Op is the kind of write a change describes.
type Op string

const (
	OpInsert Op = "INSERT"
	OpModify Op = "MODIFY"
	OpRemove Op = "REMOVE"
)

// Change is one decoded write to the table. New is nil for removals and Old is nil
// for inserts or when the stream does not carry old images.
type Change struct {
	EventID string
	Kind    schema.Kind
	Op      Op
	Key     schema.Key
	New     entity.Record
	Old     entity.Record
}

// Sink receives decoded changes.
type Sink interface {
	Publish(ctx context.Context, change Change) error
}

// Handler decodes stream batches and publishes each change to a Sink.
type Handler struct {
	decoder *repository.Decoder
	sink    Sink
	logger  zerolog.Logger
}

// NewHandler creates a new stream handler.
func NewHandler(decoder *repository.Decoder, sink Sink, logger zerolog.Logger) *Handler {
	return &Handler{
		decoder: decoder,
		sink:    sink,
		logger:  logger,
	}
}

// Handle processes a stream batch in order. Records of kinds the decoder does not
// know are skipped. An invalid old image is logged and dropped from the change. A
// record whose new image fails to decode, or that fails to publish, fails the whole
// batch so Lambda retries it.
func (h *Handler) Handle(ctx context.Context, event events.DynamoDBEvent) error {
	for _, record := range event.Records {
		change, ok, err := h.decode(record)
		if err != nil {
			h.logger.Error().
				Err(err).
				Str("event_id", record.EventID).
				Msg("failed to decode stream record")
			return err
		}
		if !ok {
			continue
		}
		if err := h.sink.Publish(ctx, change); err != nil {
			return fmt.Errorf("publish %s: %w", record.EventID, err)
		}
	}
	return nil
}

func (h *Handler) decode(record events.DynamoDBEventRecord) (Change, bool, error) {
	change := Change{EventID: record.EventID, Op: Op(record.EventName)}
	switch change.Op {
	case OpInsert, OpModify, OpRemove:
	default:
		return Change{}, false, fmt.Errorf("%s: unknown event name %q", record.EventID, record.EventName)
	}

	keys, err := Image(record.Change.Keys)
	if err != nil {
		return Change{}, false, fmt.Errorf("%s keys: %w", record.EventID, err)
	}
	change.Key = schema.Key{PK: stringAttr(keys, schema.AttrPK), SK: stringAttr(keys, schema.AttrSK)}

	if len(record.Change.NewImage) == 0 && len(record.Change.OldImage) == 0 {
		h.logger.Warn().
			Str("event_id", record.EventID).
			Str("key", change.Key.String()).
			Msg("stream record carries no images, skipping")
		return Change{}, false, nil
	}

	var skipped bool
	change.New, change.Kind, skipped, err = h.image(record.Change.NewImage)
	if err != nil {
		return Change{}, false, fmt.Errorf("%s %s new image: %w", record.EventID, change.Key, err)
	}
	if skipped {
		return Change{}, false, nil
	}

	var kind schema.Kind
	change.Old, kind, skipped, err = h.image(record.Change.OldImage)
	var die *repository.DataIntegrityError
	switch {
	case errors.As(err, &die):
		// Only an invalid new image fails the batch.
		h.logger.Warn().
			Err(err).
			Str("event_id", record.EventID).
			Str("key", change.Key.String()).
			Interface("raw", plain(die.Raw)).
			Msg("old image failed validation, publishing without it")
		change.Old = nil
	case err != nil:
		return Change{}, false, fmt.Errorf("%s %s old image: %w", record.EventID, change.Key, err)
	case skipped:
		return Change{}, false, nil
	}
	if change.Kind == "" {
		change.Kind = kind
	}
	return change, true, nil
}

// image decodes one stream image. A nil image decodes to a nil record.
func (h *Handler) image(img map[string]events.DynamoDBAttributeValue) (entity.Record, schema.Kind, bool, error) {
	if len(img) == 0 {
		return nil, "", false, nil
	}
	raw, err := Image(img)
	if err != nil {
		return nil, "", false, err
	}
	kind, _ := repository.Kind(raw)
	rec, err := h.decoder.Decode("stream", raw)
	if errors.Is(err, schema.ErrUnknownKind) {
		h.logger.Warn().Str("kind", string(kind)).Msg("unknown kind in stream, skipping")
		return nil, kind, true, nil
	}
	if err != nil {
		return nil, kind, false, err
	}
	return rec, kind, false, nil
}

// plain converts a record to JSON-friendly values for logging.
func plain(raw map[string]types.AttributeValue) map[string]any {
	var out map[string]any
	if err := attributevalue.UnmarshalMap(raw, &out); err != nil {
		return map[string]any{"unreadable": err.Error()}
	}
	return out
}

func stringAttr(attrs map[string]types.AttributeValue, name string) string {
	if s, ok := attrs[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

// Image converts a stream image to SDK attribute values.
func Image(img map[string]events.DynamoDBAttributeValue) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(img))
	for name, v := range img {
		av, err := attributeValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}

func attributeValue(v events.DynamoDBAttributeValue) (types.AttributeValue, error) {
	switch v.DataType() {
	case events.DataTypeString:
		return &types.AttributeValueMemberS{Value: v.String()}, nil
	case events.DataTypeNumber:
		return &types.AttributeValueMemberN{Value: v.Number()}, nil
	case events.DataTypeBinary:
		return &types.AttributeValueMemberB{Value: v.Binary()}, nil
	case events.DataTypeBoolean:
		return &types.AttributeValueMemberBOOL{Value: v.Boolean()}, nil
	case events.DataTypeNull:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case events.DataTypeStringSet:
		return &types.AttributeValueMemberSS{Value: v.StringSet()}, nil
	case events.DataTypeNumberSet:
		return &types.AttributeValueMemberNS{Value: v.NumberSet()}, nil
	case events.DataTypeBinarySet:
		return &types.AttributeValueMemberBS{Value: v.BinarySet()}, nil
	case events.DataTypeList:
		list := make([]types.AttributeValue, 0, len(v.List()))
		for i, item := range v.List() {
			av, err := attributeValue(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			list = append(list, av)
		}
		return &types.AttributeValueMemberL{Value: list}, nil
	case events.DataTypeMap:
		m, err := Image(v.Map())
		if err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberM{Value: m}, nil
	default:
		return nil, fmt.Errorf("unsupported stream attribute type %d", v.DataType())
	}
}
