// Package ddbtest provides an in-memory stand-in for the DynamoDB operations used by
// the store package. It understands the expressions the store builds and nothing more.
package ddbtest

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Table is a single in-memory table with pk/sk keys and any number of
// "<index>pk"/"<index>sk" secondary indexes.
type Table struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue

	// Err, when set, is returned by every operation.
	Err error

	// Calls counts operations by name.
	Calls map[string]int
}

// New creates an empty table.
func New() *Table {
	return &Table{
		items: make(map[string]map[string]types.AttributeValue),
		Calls: make(map[string]int),
	}
}

// Seed stores a raw item, bypassing every check.
func (t *Table) Seed(item map[string]types.AttributeValue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items[id(item)] = maps.Clone(item)
}

// Raw returns the stored item for a key, or nil.
func (t *Table) Raw(pk, sk string) map[string]types.AttributeValue {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.items[pk+"\x00"+sk])
}

// Len returns the number of stored items.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

func (t *Table) begin(op string) error {
	t.Calls[op]++
	return t.Err
}

func (t *Table) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.begin("GetItem"); err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: maps.Clone(t.items[id(in.Key)])}, nil
}

func (t *Table) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.begin("PutItem"); err != nil {
		return nil, err
	}
	k := id(in.Item)
	if cond := aws.ToString(in.ConditionExpression); strings.Contains(cond, "attribute_not_exists") {
		if _, ok := t.items[k]; ok {
			return nil, conditionFailed()
		}
	}
	t.items[k] = maps.Clone(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (t *Table) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.begin("UpdateItem"); err != nil {
		return nil, err
	}

	k := id(in.Key)
	item, ok := t.items[k]
	if cond := aws.ToString(in.ConditionExpression); strings.Contains(cond, "attribute_exists") && !ok {
		return nil, conditionFailed()
	}
	if !ok {
		item = maps.Clone(in.Key)
	} else {
		item = maps.Clone(item)
	}

	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	setPart, removePart, _ := strings.Cut(expr, " REMOVE ")
	for _, clause := range strings.Split(setPart, ", ") {
		name, value, found := strings.Cut(clause, " = ")
		if !found {
			return nil, fmt.Errorf("ddbtest: unsupported clause %q", clause)
		}
		item[in.ExpressionAttributeNames[name]] = in.ExpressionAttributeValues[value]
	}
	if removePart != "" {
		for _, name := range strings.Split(removePart, ", ") {
			delete(item, in.ExpressionAttributeNames[name])
		}
	}
	t.items[k] = item

	out := &dynamodb.UpdateItemOutput{}
	if in.ReturnValues == types.ReturnValueAllNew {
		out.Attributes = maps.Clone(item)
	}
	return out, nil
}

func (t *Table) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.begin("DeleteItem"); err != nil {
		return nil, err
	}
	delete(t.items, id(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (t *Table) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.begin("Query"); err != nil {
		return nil, err
	}

	pkAttr := in.ExpressionAttributeNames["#pk"]
	skAttr := in.ExpressionAttributeNames["#sk"]
	pk := str(in.ExpressionAttributeValues[":pk"])
	sk := str(in.ExpressionAttributeValues[":sk"])
	prefix := strings.Contains(aws.ToString(in.KeyConditionExpression), "begins_with")

	var matched []map[string]types.AttributeValue
	for _, item := range t.items {
		if str(item[pkAttr]) != pk {
			continue
		}
		v, ok := item[skAttr]
		if !ok {
			continue
		}
		if prefix && !strings.HasPrefix(str(v), sk) || !prefix && str(v) != sk {
			continue
		}
		matched = append(matched, item)
	}

	order := func(item map[string]types.AttributeValue) []string {
		return []string{str(item[skAttr]), str(item["pk"]), str(item["sk"])}
	}
	slices.SortFunc(matched, func(a, b map[string]types.AttributeValue) int {
		return slices.Compare(order(a), order(b))
	})

	if in.ExclusiveStartKey != nil {
		start := order(in.ExclusiveStartKey)
		i, _ := slices.BinarySearchFunc(matched, start, func(item map[string]types.AttributeValue, target []string) int {
			return slices.Compare(order(item), target)
		})
		for i < len(matched) && slices.Equal(order(matched[i]), start) {
			i++
		}
		matched = matched[i:]
	}

	out := &dynamodb.QueryOutput{}
	limit := len(matched)
	if in.Limit != nil && int(*in.Limit) < limit {
		limit = int(*in.Limit)
	}
	for _, item := range matched[:limit] {
		out.Items = append(out.Items, maps.Clone(item))
	}
	out.Count = int32(len(out.Items))

	if limit < len(matched) && limit > 0 {
		last := matched[limit-1]
		lek := map[string]types.AttributeValue{"pk": last["pk"], "sk": last["sk"]}
		lek[pkAttr] = last[pkAttr]
		lek[skAttr] = last[skAttr]
		out.LastEvaluatedKey = lek
	}
	return out, nil
}

func id(item map[string]types.AttributeValue) string {
	return str(item["pk"]) + "\x00" + str(item["sk"])
}

func str(v types.AttributeValue) string {
	if s, ok := v.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}
