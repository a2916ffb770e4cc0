package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacentio/propman/schema"
)

func lookup(t *testing.T, kind schema.Kind) *schema.Definition {
	t.Helper()
	def, err := schema.Default().Lookup(kind)
	require.NoError(t, err)
	return def
}

func TestPrimaryKey(t *testing.T) {
	tests := []struct {
		kind   schema.Kind
		values []string
		want   schema.Key
	}{
		{schema.KindOrganization, []string{"org-1"}, schema.Key{PK: "ORG#org-1", SK: "ORGANIZATION"}},
		{schema.KindEmployee, []string{"org-1", "e1"}, schema.Key{PK: "ORG#org-1", SK: "EMPLOYEE#e1"}},
		{schema.KindProperty, []string{"p1"}, schema.Key{PK: "PROPERTY#p1", SK: "PROPERTY"}},
		{schema.KindPlanService, []string{"org-1", "plan-1", "ps-1"}, schema.Key{PK: "ORG#org-1", SK: "PLAN_SERVICE#plan-1#ps-1"}},
		{schema.KindPaymentMethod, []string{"c1", "pm1"}, schema.Key{PK: "CUSTOMER#c1", SK: "PAYMENT_METHOD#pm1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			key, err := lookup(t, tt.kind).PrimaryKey(tt.values...)
			require.NoError(t, err)
			require.Equal(t, tt.want, key)
		})
	}
}

func TestPrimaryKey_Errors(t *testing.T) {
	def := lookup(t, schema.KindEmployee)

	_, err := def.PrimaryKey("org-1")
	require.ErrorIs(t, err, schema.ErrInvalidKeyValue)

	_, err = def.PrimaryKey("org-1", "")
	require.ErrorIs(t, err, schema.ErrInvalidKeyValue)

	_, err = def.PrimaryKey("org#1", "e1")
	require.ErrorIs(t, err, schema.ErrInvalidKeyValue)
}

func TestBind(t *testing.T) {
	t.Run("partition only lists the kind", func(t *testing.T) {
		a, err := lookup(t, schema.KindEmployee).Pattern(schema.PatternByOrganization)
		require.NoError(t, err)

		pk, sk, err := a.Bind("org-1")
		require.NoError(t, err)
		require.Equal(t, "ORG#org-1", pk)
		require.Equal(t, schema.SortCondition{Value: "EMPLOYEE#"}, sk)
	})

	t.Run("partial sort binding ends in separator", func(t *testing.T) {
		a, err := lookup(t, schema.KindPlanService).Pattern(schema.PatternByPlan)
		require.NoError(t, err)

		pk, sk, err := a.Bind("org-1", "plan-1")
		require.NoError(t, err)
		require.Equal(t, "ORG#org-1", pk)
		require.Equal(t, schema.SortCondition{Value: "PLAN_SERVICE#plan-1#"}, sk)
	})

	t.Run("fully bound is exact", func(t *testing.T) {
		a, err := lookup(t, schema.KindOrganization).Pattern(schema.PatternBySlug)
		require.NoError(t, err)

		pk, sk, err := a.Bind("acme")
		require.NoError(t, err)
		require.Equal(t, "ORG_SLUG#acme", pk)
		require.Equal(t, schema.SortCondition{Value: "ORGANIZATION", Exact: true}, sk)
	})

	t.Run("constant partition", func(t *testing.T) {
		a, err := lookup(t, schema.KindServiceType).Pattern(schema.PatternCatalog)
		require.NoError(t, err)

		pk, sk, err := a.Bind()
		require.NoError(t, err)
		require.Equal(t, "CATALOG", pk)
		require.Equal(t, "SERVICE_TYPE#", sk.Value)
	})

	t.Run("too few values", func(t *testing.T) {
		a, err := lookup(t, schema.KindEmployee).Pattern(schema.PatternByStatus)
		require.NoError(t, err)

		_, _, err = a.Bind("org-1")
		require.ErrorIs(t, err, schema.ErrInvalidKeyValue)
	})

	t.Run("unknown pattern", func(t *testing.T) {
		_, err := lookup(t, schema.KindEmployee).Pattern("byShoeSize")
		require.ErrorIs(t, err, schema.ErrUnknownPattern)
	})
}

func TestKeyAttrs(t *testing.T) {
	def := lookup(t, schema.KindInvoice)

	got, err := def.KeyAttrs(map[string]string{
		"organizationId": "org-1",
		"invoiceId":      "inv-1",
		"customerId":     "c1",
		"issueDate":      "2024-03-01",
		"status":         "issued",
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"pk":         "ORG#org-1",
		"sk":         "INVOICE#inv-1",
		"gsi1pk":     "CUSTOMER#org-1#c1",
		"gsi1sk":     "INVOICE#2024-03-01#inv-1",
		"gsi2pk":     "ORG#org-1#issued",
		"gsi2sk":     "INVOICE#inv-1",
		"entityType": "invoice",
	}, got)
}

func TestKeyAttrs_SparseIndex(t *testing.T) {
	def := lookup(t, schema.KindProperty)

	got, err := def.KeyAttrs(map[string]string{"propertyId": "p1", "customerId": "c1"})
	require.NoError(t, err)
	require.Equal(t, "CUSTOMER#c1", got["gsi1pk"])
	require.NotContains(t, got, "gsi2pk")
	require.NotContains(t, got, "gsi2sk")
}

func TestKeyAttrs_MissingPrimary(t *testing.T) {
	_, err := lookup(t, schema.KindEmployee).KeyAttrs(map[string]string{"employeeId": "e1"})
	require.ErrorIs(t, err, schema.ErrMissingKeyAttribute)
}

func TestIndexedAttrs(t *testing.T) {
	require.ElementsMatch(t,
		[]string{"organizationId", "status", "employeeId", "email"},
		lookup(t, schema.KindEmployee).IndexedAttrs())
	require.Empty(t, lookup(t, schema.KindPropertyType).IndexedAttrs())
}

func TestSlot(t *testing.T) {
	require.Equal(t, "", schema.SlotPrimary.IndexName())
	require.Equal(t, "pk", schema.SlotPrimary.PartitionAttr())
	require.Equal(t, "gsi1", schema.SlotGSI1.IndexName())
	require.Equal(t, "gsi1sk", schema.SlotGSI1.SortAttr())
	require.Equal(t, "gsi2pk", schema.SlotGSI2.PartitionAttr())
	require.True(t, schema.IsReserved("gsi2sk"))
	require.False(t, schema.IsReserved("status"))
}
