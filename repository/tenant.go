package repository

import (
	"context"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/schema"
)

// OrganizationRepository stores organizations.
type OrganizationRepository struct {
	repo *Repository[entity.Organization, *entity.Organization]
}

// NewOrganizationRepository creates a repository for organization records.
func NewOrganizationRepository(st Store, opts ...Option) (*OrganizationRepository, error) {
	repo, err := New[entity.Organization](st, opts...)
	if err != nil {
		return nil, err
	}
	return &OrganizationRepository{repo: repo}, nil
}

// Create stores a new organization.
func (r *OrganizationRepository) Create(ctx context.Context, e *entity.Organization) (*entity.Organization, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the organization with the given key.
func (r *OrganizationRepository) Get(ctx context.Context, orgID string) (*entity.Organization, error) {
	return r.repo.Get(ctx, orgID)
}

// GetBySlug returns the organization with the given slug, or nil.
func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*entity.Organization, error) {
	page, err := r.repo.List(ctx, schema.PatternBySlug, PageOptions{Limit: 1}, slug)
	if err != nil || len(page.Items) == 0 {
		return nil, err
	}
	return page.Items[0], nil
}

// ListByStatus returns a page of organization records by status.
func (r *OrganizationRepository) ListByStatus(ctx context.Context, status entity.Status, opts PageOptions) (*Page[entity.Organization], error) {
	return r.repo.List(ctx, schema.PatternByStatus, opts, string(status))
}

// Update applies fields to an existing organization and returns the result.
func (r *OrganizationRepository) Update(ctx context.Context, orgID string, fields Fields) (*entity.Organization, error) {
	return r.repo.Update(ctx, fields, orgID)
}

// Delete removes the organization.
func (r *OrganizationRepository) Delete(ctx context.Context, orgID string) error {
	return r.repo.Delete(ctx, orgID)
}

// EmployeeRepository stores an organization's employees.
type EmployeeRepository struct {
	repo *Repository[entity.Employee, *entity.Employee]
}

// NewEmployeeRepository creates a repository for employee records.
func NewEmployeeRepository(st Store, opts ...Option) (*EmployeeRepository, error) {
	repo, err := New[entity.Employee](st, opts...)
	if err != nil {
		return nil, err
	}
	return &EmployeeRepository{repo: repo}, nil
}

// Create stores a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the employee with the given key.
func (r *EmployeeRepository) Get(ctx context.Context, orgID, employeeID string) (*entity.Employee, error) {
	return r.repo.Get(ctx, orgID, employeeID)
}

// ListByOrganization returns a page of employee records by organization.
func (r *EmployeeRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.Employee], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByStatus returns a page of employee records by status.
func (r *EmployeeRepository) ListByStatus(ctx context.Context, orgID string, status entity.Status, opts PageOptions) (*Page[entity.Employee], error) {
	return r.repo.List(ctx, schema.PatternByStatus, opts, orgID, string(status))
}

// ListByEmail returns a page of employee records by email.
func (r *EmployeeRepository) ListByEmail(ctx context.Context, orgID, email string, opts PageOptions) (*Page[entity.Employee], error) {
	return r.repo.List(ctx, schema.PatternByEmail, opts, orgID, email)
}

// Update applies fields to an existing employee and returns the result.
func (r *EmployeeRepository) Update(ctx context.Context, orgID, employeeID string, fields Fields) (*entity.Employee, error) {
	return r.repo.Update(ctx, fields, orgID, employeeID)
}

// Delete removes the employee.
func (r *EmployeeRepository) Delete(ctx context.Context, orgID, employeeID string) error {
	return r.repo.Delete(ctx, orgID, employeeID)
}

// CustomerRepository stores an organization's customers.
type CustomerRepository struct {
	repo *Repository[entity.Customer, *entity.Customer]
}

// NewCustomerRepository creates a repository for customer records.
func NewCustomerRepository(st Store, opts ...Option) (*CustomerRepository, error) {
	repo, err := New[entity.Customer](st, opts...)
	if err != nil {
		return nil, err
	}
	return &CustomerRepository{repo: repo}, nil
}

// Create stores a new customer.
func (r *CustomerRepository) Create(ctx context.Context, e *entity.Customer) (*entity.Customer, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the customer with the given key.
func (r *CustomerRepository) Get(ctx context.Context, orgID, customerID string) (*entity.Customer, error) {
	return r.repo.Get(ctx, orgID, customerID)
}

// ListByOrganization returns a page of customer records by organization.
func (r *CustomerRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.Customer], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByStatus returns a page of customer records by status.
func (r *CustomerRepository) ListByStatus(ctx context.Context, orgID string, status entity.Status, opts PageOptions) (*Page[entity.Customer], error) {
	return r.repo.List(ctx, schema.PatternByStatus, opts, orgID, string(status))
}

// ListByEmail returns a page of customer records by email.
func (r *CustomerRepository) ListByEmail(ctx context.Context, orgID, email string, opts PageOptions) (*Page[entity.Customer], error) {
	return r.repo.List(ctx, schema.PatternByEmail, opts, orgID, email)
}

// Update applies fields to an existing customer and returns the result.
func (r *CustomerRepository) Update(ctx context.Context, orgID, customerID string, fields Fields) (*entity.Customer, error) {
	return r.repo.Update(ctx, fields, orgID, customerID)
}

// Delete removes the customer.
func (r *CustomerRepository) Delete(ctx context.Context, orgID, customerID string) error {
	return r.repo.Delete(ctx, orgID, customerID)
}

// DelegateRepository stores people acting for customers.
type DelegateRepository struct {
	repo *Repository[entity.Delegate, *entity.Delegate]
}

// NewDelegateRepository creates a repository for delegate records.
func NewDelegateRepository(st Store, opts ...Option) (*DelegateRepository, error) {
	repo, err := New[entity.Delegate](st, opts...)
	if err != nil {
		return nil, err
	}
	return &DelegateRepository{repo: repo}, nil
}

// Create stores a new delegate.
func (r *DelegateRepository) Create(ctx context.Context, e *entity.Delegate) (*entity.Delegate, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the delegate with the given key.
func (r *DelegateRepository) Get(ctx context.Context, orgID, delegateID string) (*entity.Delegate, error) {
	return r.repo.Get(ctx, orgID, delegateID)
}

// ListByOrganization returns a page of delegate records by organization.
func (r *DelegateRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.Delegate], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByCustomer returns a page of delegate records by customer.
func (r *DelegateRepository) ListByCustomer(ctx context.Context, orgID, customerID string, opts PageOptions) (*Page[entity.Delegate], error) {
	return r.repo.List(ctx, schema.PatternByCustomer, opts, orgID, customerID)
}

// ListByEmail returns a page of delegate records by email.
func (r *DelegateRepository) ListByEmail(ctx context.Context, orgID, email string, opts PageOptions) (*Page[entity.Delegate], error) {
	return r.repo.List(ctx, schema.PatternByEmail, opts, orgID, email)
}

// Update applies fields to an existing delegate and returns the result.
func (r *DelegateRepository) Update(ctx context.Context, orgID, delegateID string, fields Fields) (*entity.Delegate, error) {
	return r.repo.Update(ctx, fields, orgID, delegateID)
}

// Delete removes the delegate.
func (r *DelegateRepository) Delete(ctx context.Context, orgID, delegateID string) error {
	return r.repo.Delete(ctx, orgID, delegateID)
}

// AccountRepository stores customer accounts.
type AccountRepository struct {
	repo *Repository[entity.Account, *entity.Account]
}

// NewAccountRepository creates a repository for account records.
func NewAccountRepository(st Store, opts ...Option) (*AccountRepository, error) {
	repo, err := New[entity.Account](st, opts...)
	if err != nil {
		return nil, err
	}
	return &AccountRepository{repo: repo}, nil
}

// Create stores a new account.
func (r *AccountRepository) Create(ctx context.Context, e *entity.Account) (*entity.Account, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the account with the given key.
func (r *AccountRepository) Get(ctx context.Context, orgID, accountID string) (*entity.Account, error) {
	return r.repo.Get(ctx, orgID, accountID)
}

// ListByOrganization returns a page of account records by organization.
func (r *AccountRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.Account], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByCustomer returns a page of account records by customer.
func (r *AccountRepository) ListByCustomer(ctx context.Context, orgID, customerID string, opts PageOptions) (*Page[entity.Account], error) {
	return r.repo.List(ctx, schema.PatternByCustomer, opts, orgID, customerID)
}

// ListByStatus returns a page of account records by status.
func (r *AccountRepository) ListByStatus(ctx context.Context, orgID string, status entity.Status, opts PageOptions) (*Page[entity.Account], error) {
	return r.repo.List(ctx, schema.PatternByStatus, opts, orgID, string(status))
}

// Update applies fields to an existing account and returns the result.
func (r *AccountRepository) Update(ctx context.Context, orgID, accountID string, fields Fields) (*entity.Account, error) {
	return r.repo.Update(ctx, fields, orgID, accountID)
}

// Delete removes the account.
func (r *AccountRepository) Delete(ctx context.Context, orgID, accountID string) error {
	return r.repo.Delete(ctx, orgID, accountID)
}
