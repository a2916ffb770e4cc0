package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/internal/ddbtest"
	"github.com/jacentio/propman/repository"
	"github.com/jacentio/propman/schema"
	"github.com/jacentio/propman/store"
)

func s(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }

func newStore(table *ddbtest.Table) *store.Store {
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return store.New(table, store.DefaultConfig(), store.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
}

func newRepos(t *testing.T) (*repository.Repositories, *ddbtest.Table) {
	t.Helper()
	table := ddbtest.New()
	repos, err := repository.NewRepositories(newStore(table))
	require.NoError(t, err)
	return repos, table
}

func jane() *entity.Employee {
	return &entity.Employee{
		OrganizationID: "org-1",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@x.com",
		Role:           entity.RoleTech,
	}
}

func TestEmployee_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	created, err := repos.Employees.Create(ctx, jane())
	require.NoError(t, err)
	_, err = uuid.Parse(created.EmployeeID)
	require.NoError(t, err, "id should be a generated uuid")
	require.Equal(t, entity.StatusActive, created.Status)
	require.NotEmpty(t, created.CreatedAt)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	page, err := repos.Employees.ListByOrganization(ctx, "org-1", repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, created, page.Items[0])
	require.Empty(t, page.Cursor)

	updated, err := repos.Employees.Update(ctx, "org-1", created.EmployeeID, repository.Fields{"role": "manager"})
	require.NoError(t, err)
	require.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)

	want := *created
	want.Role = entity.RoleManager
	want.UpdatedAt = updated.UpdatedAt
	require.Equal(t, &want, updated)
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	in := jane()
	in.EmployeeID = "e-1"
	in.HireDate = "2023-09-01"
	in.Phone = "555-0100"
	in.CreatedAt = "1999-01-01T00:00:00.000Z"

	created, err := repos.Employees.Create(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, in.CreatedAt, created.CreatedAt, "client timestamps are replaced")

	got, err := repos.Employees.Get(ctx, "org-1", "e-1")
	require.NoError(t, err)
	require.Equal(t, created, got)

	want := *in
	want.Status = entity.StatusActive
	want.CreatedAt, want.UpdatedAt = got.CreatedAt, got.UpdatedAt
	require.Equal(t, &want, got)
}

func TestRepository_CreateDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	repos, table := newRepos(t)

	first := jane()
	first.EmployeeID = "e-1"
	first.Phone = "555"
	created, err := repos.Employees.Create(ctx, first)
	require.NoError(t, err)

	second := jane()
	second.EmployeeID = "e-1"
	second.FirstName = "Janet"
	_, err = repos.Employees.Create(ctx, second)
	require.ErrorIs(t, err, store.ErrConditionalWriteFailed)

	got, err := repos.Employees.Get(ctx, "org-1", "e-1")
	require.NoError(t, err)
	require.Equal(t, created, got)
	require.Equal(t, "555", got.Phone)
	require.Equal(t, "Jane", got.FirstName)
	require.Equal(t, 1, table.Len())
}

func TestRepository_NullOptionalField(t *testing.T) {
	repos, table := newRepos(t)
	raw := storedEmployee("e-1")
	raw["phone"] = &types.AttributeValueMemberNULL{Value: true}
	table.Seed(raw)

	got, err := repos.Employees.Get(context.Background(), "org-1", "e-1")
	require.NoError(t, err)
	require.Empty(t, got.Phone)
}

func TestRepository_GetMissing(t *testing.T) {
	repos, _ := newRepos(t)
	got, err := repos.Employees.Get(context.Background(), "org-1", "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRepository_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repos, table := newRepos(t)

	created, err := repos.Employees.Create(ctx, jane())
	require.NoError(t, err)

	require.NoError(t, repos.Employees.Delete(ctx, "org-1", created.EmployeeID))
	require.NoError(t, repos.Employees.Delete(ctx, "org-1", created.EmployeeID))
	require.Zero(t, table.Len())
}

func storedEmployee(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk":             s("ORG#org-1"),
		"sk":             s("EMPLOYEE#" + id),
		"entityType":     s("employee"),
		"organizationId": s("org-1"),
		"employeeId":     s(id),
		"firstName":      s("Sam"),
		"lastName":       s("Lee"),
		"email":          s("sam@x.com"),
		"role":           s("office"),
		"status":         s("active"),
		"createdAt":      s("2024-01-01T00:00:00.000Z"),
		"updatedAt":      s("2024-01-01T00:00:00.000Z"),
	}
}

func TestRepository_GetFailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]types.AttributeValue)
	}{
		{"missing required field", func(m map[string]types.AttributeValue) { delete(m, "lastName") }},
		{"enum outside closed set", func(m map[string]types.AttributeValue) { m["role"] = s("ceo") }},
		{"wrong primitive type", func(m map[string]types.AttributeValue) { m["firstName"] = &types.AttributeValueMemberBOOL{Value: true} }},
		{"number in string field", func(m map[string]types.AttributeValue) { m["firstName"] = &types.AttributeValueMemberN{Value: "5"} }},
		{"number in id field", func(m map[string]types.AttributeValue) { m["employeeId"] = &types.AttributeValueMemberN{Value: "1"} }},
		{"number in enum field", func(m map[string]types.AttributeValue) { m["status"] = &types.AttributeValueMemberN{Value: "1"} }},
		{"null in required field", func(m map[string]types.AttributeValue) { m["lastName"] = &types.AttributeValueMemberNULL{Value: true} }},
		{"bad email", func(m map[string]types.AttributeValue) { m["email"] = s("not-an-email") }},
		{"missing discriminator", func(m map[string]types.AttributeValue) { delete(m, "entityType") }},
		{"other kind", func(m map[string]types.AttributeValue) { m["entityType"] = s("customer") }},
		{"unparsable timestamp", func(m map[string]types.AttributeValue) { m["createdAt"] = s("last tuesday") }},
		{"missing timestamp", func(m map[string]types.AttributeValue) { delete(m, "updatedAt") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, table := newRepos(t)
			raw := storedEmployee("e-1")
			tt.mutate(raw)
			table.Seed(raw)

			got, err := repos.Employees.Get(context.Background(), "org-1", "e-1")
			require.Nil(t, got)
			require.ErrorIs(t, err, repository.ErrDataIntegrity)

			var die *repository.DataIntegrityError
			require.True(t, errors.As(err, &die))
			require.Equal(t, schema.KindEmployee, die.Kind)
			require.Equal(t, "get", die.Op)
			require.Equal(t, raw, die.Raw)
		})
	}
}

func TestRepository_ListFailsClosed(t *testing.T) {
	repos, table := newRepos(t)
	table.Seed(storedEmployee("e-1"))
	bad := storedEmployee("e-2")
	bad["status"] = s("retired")
	table.Seed(bad)
	table.Seed(storedEmployee("e-3"))

	page, err := repos.Employees.ListByOrganization(context.Background(), "org-1", repository.PageOptions{})
	require.Nil(t, page)
	require.ErrorIs(t, err, repository.ErrDataIntegrity)
}

// lossyStore drops an attribute from every record it returns from a write.
type lossyStore struct {
	*store.Store
	drop string
}

func (l lossyStore) Put(ctx context.Context, attrs map[string]types.AttributeValue, opts store.PutOptions) (*store.Item, error) {
	item, err := l.Store.Put(ctx, attrs, opts)
	if err == nil {
		delete(item.Raw, l.drop)
	}
	return item, err
}

func (l lossyStore) Update(ctx context.Context, key schema.Key, set map[string]types.AttributeValue, remove []string) (*store.Item, error) {
	item, err := l.Store.Update(ctx, key, set, remove)
	if err == nil {
		delete(item.Raw, l.drop)
	}
	return item, err
}

func TestRepository_WritesFailClosed(t *testing.T) {
	ctx := context.Background()
	table := ddbtest.New()
	table.Seed(storedEmployee("e-1"))

	repos, err := repository.NewRepositories(lossyStore{Store: newStore(table), drop: "firstName"})
	require.NoError(t, err)

	_, err = repos.Employees.Create(ctx, jane())
	require.ErrorIs(t, err, repository.ErrDataIntegrity)

	_, err = repos.Employees.Update(ctx, "org-1", "e-1", repository.Fields{"phone": "555-0199"})
	require.ErrorIs(t, err, repository.ErrDataIntegrity)

	var die *repository.DataIntegrityError
	require.True(t, errors.As(err, &die))
	require.Equal(t, "update", die.Op)
}

func TestRepository_CreateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		edit func(*entity.Employee)
		want error
	}{
		{"missing required", func(e *entity.Employee) { e.LastName = "" }, repository.ErrInvalidField},
		{"bad enum", func(e *entity.Employee) { e.Role = "ceo" }, repository.ErrInvalidField},
		{"bad date", func(e *entity.Employee) { e.HireDate = "09/01/2023" }, repository.ErrInvalidField},
		{"separator in key", func(e *entity.Employee) { e.EmployeeID = "e#1" }, schema.ErrInvalidKeyValue},
		{"missing tenant", func(e *entity.Employee) { e.OrganizationID = "" }, schema.ErrMissingKeyAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, table := newRepos(t)
			e := jane()
			tt.edit(e)

			_, err := repos.Employees.Create(context.Background(), e)
			require.ErrorIs(t, err, tt.want)
			require.Zero(t, table.Len(), "nothing written")
		})
	}
}

func TestRepository_UpdateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		fields repository.Fields
	}{
		{"bad enum", repository.Fields{"role": "ceo"}},
		{"bad email", repository.Fields{"email": "nope"}},
		{"remove required", repository.Fields{"firstName": nil}},
		{"empty required", repository.Fields{"lastName": ""}},
		{"bad date", repository.Fields{"hireDate": "tomorrow"}},
		{"number for string", repository.Fields{"firstName": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, table := newRepos(t)
			table.Seed(storedEmployee("e-1"))

			_, err := repos.Employees.Update(context.Background(), "org-1", "e-1", tt.fields)
			require.ErrorIs(t, err, repository.ErrInvalidField)
			require.Equal(t, storedEmployee("e-1"), table.Raw("ORG#org-1", "EMPLOYEE#e-1"))
		})
	}
}

func TestRepository_UpdateMissing(t *testing.T) {
	repos, _ := newRepos(t)

	_, err := repos.Employees.Update(context.Background(), "org-1", "nope", repository.Fields{"phone": "1"})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = repos.Employees.Update(context.Background(), "org-1", "nope", repository.Fields{"status": "inactive"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_UpdateImmutable(t *testing.T) {
	repos, table := newRepos(t)
	table.Seed(storedEmployee("e-1"))

	got, err := repos.Employees.Update(context.Background(), "org-1", "e-1", repository.Fields{
		"organizationId": "org-2",
		"employeeId":     "e-9",
		"createdAt":      "2030-01-01T00:00:00.000Z",
		"pk":             "ORG#org-2",
		"phone":          "555-0100",
	})
	require.NoError(t, err)
	require.Equal(t, "org-1", got.OrganizationID)
	require.Equal(t, "e-1", got.EmployeeID)
	require.Equal(t, entity.Timestamp("2024-01-01T00:00:00.000Z"), got.CreatedAt)
	require.Equal(t, "555-0100", got.Phone)
	require.Equal(t, 1, table.Len())
}

func TestRepository_UpdateRemovesAttribute(t *testing.T) {
	repos, table := newRepos(t)
	raw := storedEmployee("e-1")
	raw["phone"] = s("555-0100")
	table.Seed(raw)

	got, err := repos.Employees.Update(context.Background(), "org-1", "e-1", repository.Fields{"phone": nil})
	require.NoError(t, err)
	require.Empty(t, got.Phone)
	require.NotContains(t, table.Raw("ORG#org-1", "EMPLOYEE#e-1"), "phone")
}

func TestRepository_UpdateRebuildsIndexKeys(t *testing.T) {
	ctx := context.Background()
	repos, table := newRepos(t)

	created, err := repos.Employees.Create(ctx, jane())
	require.NoError(t, err)
	id := created.EmployeeID

	_, err = repos.Employees.Update(ctx, "org-1", id, repository.Fields{"status": entity.StatusInactive, "email": "jd@x.com"})
	require.NoError(t, err)

	raw := table.Raw("ORG#org-1", "EMPLOYEE#"+id)
	require.Equal(t, s("ORG#org-1#inactive"), raw["gsi1pk"])
	require.Equal(t, s("EMAIL#org-1#jd@x.com"), raw["gsi2pk"])

	active, err := repos.Employees.ListByStatus(ctx, "org-1", entity.StatusActive, repository.PageOptions{})
	require.NoError(t, err)
	require.Empty(t, active.Items)

	inactive, err := repos.Employees.ListByStatus(ctx, "org-1", entity.StatusInactive, repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, inactive.Items, 1)

	byEmail, err := repos.Employees.ListByEmail(ctx, "org-1", "jd@x.com", repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, byEmail.Items, 1)
}

func TestRepository_SparseIndex(t *testing.T) {
	ctx := context.Background()
	repos, table := newRepos(t)

	_, err := repos.Organizations.Create(ctx, &entity.Organization{OrganizationID: "org-1", Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	got, err := repos.Organizations.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "org-1", got.OrganizationID)

	_, err = repos.Organizations.Update(ctx, "org-1", repository.Fields{"slug": nil})
	require.NoError(t, err)

	raw := table.Raw("ORG#org-1", "ORGANIZATION")
	require.NotContains(t, raw, "gsi1pk")
	require.NotContains(t, raw, "gsi1sk")
	require.Equal(t, s("ORG_STATUS#active"), raw["gsi2pk"])

	got, err = repos.Organizations.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRepository_ExtraAttributesPassThrough(t *testing.T) {
	ctx := context.Background()
	repos, table := newRepos(t)
	raw := storedEmployee("e-1")
	raw["legacyCode"] = s("X-9")
	raw["badges"] = &types.AttributeValueMemberSS{Value: []string{"a", "b"}}
	table.Seed(raw)

	got, err := repos.Employees.Get(ctx, "org-1", "e-1")
	require.NoError(t, err)
	require.Equal(t, map[string]types.AttributeValue{
		"legacyCode": s("X-9"),
		"badges":     &types.AttributeValueMemberSS{Value: []string{"a", "b"}},
	}, got.Extra)

	clone := *got
	clone.EmployeeID = "e-2"
	_, err = repos.Employees.Create(ctx, &clone)
	require.NoError(t, err)
	require.Equal(t, s("X-9"), table.Raw("ORG#org-1", "EMPLOYEE#e-2")["legacyCode"])
}

func TestRepository_ExtrasCannotOverrideKeys(t *testing.T) {
	ctx := context.Background()
	repos, table := newRepos(t)

	e := jane()
	e.EmployeeID = "e-1"
	e.Extra = map[string]types.AttributeValue{"pk": s("ORG#org-2"), "entityType": s("customer")}

	_, err := repos.Employees.Create(ctx, e)
	require.NoError(t, err)
	raw := table.Raw("ORG#org-1", "EMPLOYEE#e-1")
	require.Equal(t, s("employee"), raw["entityType"])
}

func TestRepository_TimestampCoercedOnRead(t *testing.T) {
	repos, table := newRepos(t)
	raw := storedEmployee("e-1")
	raw["createdAt"] = &types.AttributeValueMemberN{Value: "1704067200000"}
	raw["updatedAt"] = s("2024-01-02T03:04:05Z")
	table.Seed(raw)

	got, err := repos.Employees.Get(context.Background(), "org-1", "e-1")
	require.NoError(t, err)
	require.Equal(t, entity.Timestamp("2024-01-01T00:00:00.000Z"), got.CreatedAt)
	require.Equal(t, entity.Timestamp("2024-01-02T03:04:05.000Z"), got.UpdatedAt)
}

func TestRepository_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	for _, org := range []string{"org-1", "org-2"} {
		for i := 0; i < 3; i++ {
			_, err := repos.Customers.Create(ctx, &entity.Customer{
				OrganizationID: org, CustomerID: fmt.Sprintf("c-%d", i), FirstName: "A", LastName: "B",
			})
			require.NoError(t, err)
		}
	}

	page, err := repos.Customers.ListByOrganization(ctx, "org-1", repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	for _, c := range page.Items {
		require.Equal(t, "org-1", c.OrganizationID)
	}

	// an active employee shares the gsi1 partition but never appears in a customer listing
	_, err = repos.Employees.Create(ctx, jane())
	require.NoError(t, err)
	page, err = repos.Customers.ListByStatus(ctx, "org-1", entity.StatusActive, repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	other, err := repos.Customers.Get(ctx, "org-2", "c-0")
	require.NoError(t, err)
	require.Equal(t, "org-2", other.OrganizationID)
}

func TestRepository_Pagination(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	for i := 0; i < 7; i++ {
		_, err := repos.Customers.Create(ctx, &entity.Customer{
			OrganizationID: "org-1", CustomerID: fmt.Sprintf("c-%d", i), FirstName: "A", LastName: "B",
		})
		require.NoError(t, err)
	}

	var ids []string
	opts := repository.PageOptions{Limit: 3}
	for {
		page, err := repos.Customers.ListByOrganization(ctx, "org-1", opts)
		require.NoError(t, err)
		for _, c := range page.Items {
			ids = append(ids, c.CustomerID)
		}
		if page.Cursor == "" {
			break
		}
		opts.Cursor = page.Cursor
	}
	require.Equal(t, []string{"c-0", "c-1", "c-2", "c-3", "c-4", "c-5", "c-6"}, ids)
}

func TestInvoice_MoneyAndDateOrder(t *testing.T) {
	ctx := context.Background()
	repos, table := newRepos(t)

	for _, in := range []struct{ id, date, total string }{
		{"inv-b", "2024-03-01", "120.50"},
		{"inv-a", "2024-04-01", "80"},
		{"inv-c", "2024-01-15", "0.10"},
	} {
		_, err := repos.Invoices.Create(ctx, &entity.Invoice{
			OrganizationID: "org-1", InvoiceID: in.id, CustomerID: "c-1",
			IssueDate: in.date, Total: entity.MustMoney(in.total),
		})
		require.NoError(t, err)
	}

	require.Equal(t, &types.AttributeValueMemberN{Value: "120.5"}, table.Raw("ORG#org-1", "INVOICE#inv-b")["total"])

	page, err := repos.Invoices.ListByCustomer(ctx, "org-1", "c-1", repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.Equal(t, "inv-c", page.Items[0].InvoiceID)
	require.Equal(t, "inv-b", page.Items[1].InvoiceID)
	require.Equal(t, "inv-a", page.Items[2].InvoiceID)
	require.Equal(t, entity.StatusDraft, page.Items[0].Status)

	updated, err := repos.Invoices.Update(ctx, "org-1", "inv-a", repository.Fields{"total": "99.99", "status": "issued"})
	require.NoError(t, err)
	require.Equal(t, "99.99", updated.Total.String())
	require.Equal(t, &types.AttributeValueMemberN{Value: "99.99"}, table.Raw("ORG#org-1", "INVOICE#inv-a")["total"])

	issued, err := repos.Invoices.ListByStatus(ctx, "org-1", entity.StatusIssued, repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, issued.Items, 1)
}

func TestPlanService_ListByPlanIsPrefixSafe(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	for _, plan := range []string{"plan-1", "plan-10"} {
		_, err := repos.PlanServices.Create(ctx, &entity.PlanService{
			OrganizationID: "org-1", PlanID: plan, ServiceTypeID: "mow",
		})
		require.NoError(t, err)
	}

	page, err := repos.PlanServices.ListByPlan(ctx, "org-1", "plan-1", repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "plan-1", page.Items[0].PlanID)

	byType, err := repos.PlanServices.ListByServiceType(ctx, "org-1", "mow", repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, byType.Items, 2)
}

func TestServiceType_Catalog(t *testing.T) {
	ctx := context.Background()
	repos, _ := newRepos(t)

	for _, name := range []string{"Mowing", "Pruning"} {
		_, err := repos.ServiceTypes.Create(ctx, &entity.ServiceType{Name: name})
		require.NoError(t, err)
	}
	_, err := repos.CostTypes.Create(ctx, &entity.CostType{Name: "Fuel", Category: entity.CostCategoryMaterial})
	require.NoError(t, err)

	services, err := repos.ServiceTypes.ListCatalog(ctx, repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, services.Items, 2)

	costs, err := repos.CostTypes.ListCatalog(ctx, repository.PageOptions{})
	require.NoError(t, err)
	require.Len(t, costs.Items, 1)
}

func TestWithIDGenerator(t *testing.T) {
	table := ddbtest.New()
	repos, err := repository.NewRepositories(newStore(table), repository.WithIDGenerator(func() string { return "fixed" }))
	require.NoError(t, err)

	got, err := repos.Servicers.Create(context.Background(), &entity.Servicer{Name: "Crew A"})
	require.NoError(t, err)
	require.Equal(t, "fixed", got.ServicerID)
	require.NotNil(t, table.Raw("SERVICER#fixed", "SERVICER"))
}
