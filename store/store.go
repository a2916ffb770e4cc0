package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/jacentio/propman/schema"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Store provides single-table DynamoDB operations.
type Store struct {
	client DynamoDBAPI
	config Config
	logger zerolog.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock sets the clock used for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a new Store instance.
func New(client DynamoDBAPI, config Config, opts ...Option) *Store {
	config.validate()
	s := &Store{
		client: client,
		config: config,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the validated configuration.
func (s *Store) Config() Config {
	return s.config
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(schema.TimestampLayout)
}

// Get retrieves a record by key, returning ErrNotFound if missing.
func (s *Store) Get(ctx context.Context, key schema.Key) (*Item, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.config.TableName),
		Key:            keyAttrs(key),
		ConsistentRead: aws.Bool(s.config.ConsistentRead),
	})
	if err != nil {
		return nil, err
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	return unmarshalItem(result.Item), nil
}

// Put writes a full record. createdAt and updatedAt are always set by the store.
func (s *Store) Put(ctx context.Context, attrs map[string]types.AttributeValue, opts PutOptions) (*Item, error) {
	item := maps.Clone(attrs)
	if _, ok := item[schema.AttrPK]; !ok {
		return nil, fmt.Errorf("put: %w: %s", schema.ErrMissingKeyAttribute, schema.AttrPK)
	}
	if _, ok := item[schema.AttrSK]; !ok {
		return nil, fmt.Errorf("put: %w: %s", schema.ErrMissingKeyAttribute, schema.AttrSK)
	}

	now := s.timestamp()
	item[schema.AttrCreatedAt] = &types.AttributeValueMemberS{Value: now}
	item[schema.AttrUpdatedAt] = &types.AttributeValueMemberS{Value: now}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      item,
	}
	if opts.IfNotExists {
		input.ConditionExpression = aws.String("attribute_not_exists(#pk)")
		input.ExpressionAttributeNames = map[string]string{"#pk": schema.AttrPK}
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil, ErrConditionalWriteFailed
		}
		return nil, err
	}

	s.logger.Debug().
		Str("entity_type", stringAttr(item, schema.AttrEntityType)).
		Str("pk", stringAttr(item, schema.AttrPK)).
		Str("sk", stringAttr(item, schema.AttrSK)).
		Msg("record put")

	return unmarshalItem(item), nil
}

// managed reports whether an attribute may not be changed by Update.
func managed(name string) bool {
	switch name {
	case schema.AttrPK, schema.AttrSK, schema.AttrEntityType, schema.AttrCreatedAt, schema.AttrUpdatedAt:
		return true
	}
	return false
}

// Update merges set into an existing record, removes the attributes in remove and
// returns the full record after the update. Returns ErrNotFound if the record is missing.
func (s *Store) Update(ctx context.Context, key schema.Key, set map[string]types.AttributeValue, remove []string) (*Item, error) {
	exprNames := map[string]string{
		"#pk":         schema.AttrPK,
		"#updated_at": schema.AttrUpdatedAt,
	}
	exprValues := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: s.timestamp()},
	}

	var setClauses []string
	for i, k := range slices.Sorted(maps.Keys(set)) {
		if managed(k) {
			continue
		}
		nameKey := fmt.Sprintf("#attr%d", i)
		valueKey := fmt.Sprintf(":val%d", i)
		exprNames[nameKey] = k
		exprValues[valueKey] = set[k]
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", nameKey, valueKey))
	}
	setClauses = append(setClauses, "#updated_at = :updated_at")

	var removeClauses []string
	for i, k := range slices.Sorted(slices.Values(remove)) {
		if managed(k) {
			continue
		}
		if _, ok := set[k]; ok {
			continue
		}
		nameKey := fmt.Sprintf("#rm%d", i)
		exprNames[nameKey] = k
		removeClauses = append(removeClauses, nameKey)
	}

	updateExpr := "SET " + strings.Join(setClauses, ", ")
	if len(removeClauses) > 0 {
		updateExpr += " REMOVE " + strings.Join(removeClauses, ", ")
	}

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.config.TableName),
		Key:                       keyAttrs(key),
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.logger.Debug().
		Str("pk", key.PK).
		Str("sk", key.SK).
		Int("set", len(setClauses)-1).
		Int("removed", len(removeClauses)).
		Msg("record updated")

	return unmarshalItem(result.Attributes), nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *Store) Delete(ctx context.Context, key schema.Key) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       keyAttrs(key),
	})
	if err != nil {
		return err
	}

	s.logger.Debug().Str("pk", key.PK).Str("sk", key.SK).Msg("record deleted")
	return nil
}

// Query returns one page of records of a single kind within one partition, in
// ascending sort key order.
func (s *Store) Query(ctx context.Context, in QueryInput) (*Page, error) {
	if in.Partition == "" || in.Sort.Value == "" {
		return nil, ErrUnscopedQuery
	}

	limit := in.Limit
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}
	if limit > s.config.MaxLimit {
		limit = s.config.MaxLimit
	}

	keyCond := "#pk = :pk AND begins_with(#sk, :sk)"
	if in.Sort.Exact {
		keyCond = "#pk = :pk AND #sk = :sk"
	}

	queryInput := &dynamodb.QueryInput{
		TableName:              aws.String(s.config.TableName),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeNames: map[string]string{
			"#pk": in.Slot.PartitionAttr(),
			"#sk": in.Slot.SortAttr(),
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: in.Partition},
			":sk": &types.AttributeValueMemberS{Value: in.Sort.Value},
		},
		Limit:            aws.Int32(limit),
		ScanIndexForward: aws.Bool(true),
	}
	if name := in.Slot.IndexName(); name != "" {
		queryInput.IndexName = aws.String(name)
	}
	if in.Cursor != "" {
		startKey, err := decodeCursor(in.Cursor, in)
		if err != nil {
			return nil, err
		}
		queryInput.ExclusiveStartKey = startKey
	}

	result, err := s.client.Query(ctx, queryInput)
	if err != nil {
		return nil, err
	}

	page := &Page{Items: make([]*Item, 0, len(result.Items))}
	for _, raw := range result.Items {
		page.Items = append(page.Items, unmarshalItem(raw))
	}
	page.Next, err = encodeCursor(result.LastEvaluatedKey)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("kind", string(in.Kind)).
		Stringer("slot", in.Slot).
		Str("partition", in.Partition).
		Int("items", len(page.Items)).
		Bool("has_more", page.Next != "").
		Msg("query page")

	return page, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
