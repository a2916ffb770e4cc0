package entity_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/propman/entity"
)

func TestMoney_Marshal(t *testing.T) {
	av, err := attributevalue.Marshal(entity.MustMoney("19.90"))
	require.NoError(t, err)
	require.Equal(t, &types.AttributeValueMemberN{Value: "19.9"}, av)
}

func TestMoney_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		av   types.AttributeValue
		want string
	}{
		{"number", &types.AttributeValueMemberN{Value: "120.50"}, "120.5"},
		{"string", &types.AttributeValueMemberS{Value: "0.10"}, "0.1"},
		{"integer", &types.AttributeValueMemberN{Value: "7"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m entity.Money
			require.NoError(t, m.UnmarshalDynamoDBAttributeValue(tt.av))
			require.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_UnmarshalInvalid(t *testing.T) {
	var m entity.Money
	require.Error(t, m.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberS{Value: "ten dollars"}))
	require.Error(t, m.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberBOOL{Value: true}))
}

func TestMoney_NoFloatDrift(t *testing.T) {
	var inv entity.Invoice
	err := attributevalue.UnmarshalMap(map[string]types.AttributeValue{
		"total": &types.AttributeValueMemberN{Value: "0.1"},
	}, &inv)
	require.NoError(t, err)

	sum := inv.Total.Add(entity.MustMoney("0.2").Decimal)
	require.Equal(t, "0.3", sum.String())
}

func TestNewMoney_Invalid(t *testing.T) {
	_, err := entity.NewMoney("abc")
	require.Error(t, err)
	require.Panics(t, func() { entity.MustMoney("abc") })
}
