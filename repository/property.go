package repository

import (
	"context"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/schema"
)

// PropertyTypeRepository stores an organization's property types.
type PropertyTypeRepository struct {
	repo *Repository[entity.PropertyType, *entity.PropertyType]
}

// NewPropertyTypeRepository creates a repository for property type records.
func NewPropertyTypeRepository(st Store, opts ...Option) (*PropertyTypeRepository, error) {
	repo, err := New[entity.PropertyType](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PropertyTypeRepository{repo: repo}, nil
}

// Create stores a new property type.
func (r *PropertyTypeRepository) Create(ctx context.Context, e *entity.PropertyType) (*entity.PropertyType, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the property type with the given key.
func (r *PropertyTypeRepository) Get(ctx context.Context, orgID, propertyTypeID string) (*entity.PropertyType, error) {
	return r.repo.Get(ctx, orgID, propertyTypeID)
}

// ListByOrganization returns a page of property type records by organization.
func (r *PropertyTypeRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.PropertyType], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// Update applies fields to an existing property type and returns the result.
func (r *PropertyTypeRepository) Update(ctx context.Context, orgID, propertyTypeID string, fields Fields) (*entity.PropertyType, error) {
	return r.repo.Update(ctx, fields, orgID, propertyTypeID)
}

// Delete removes the property type.
func (r *PropertyTypeRepository) Delete(ctx context.Context, orgID, propertyTypeID string) error {
	return r.repo.Delete(ctx, orgID, propertyTypeID)
}

// PropertyRepository stores properties. Properties are keyed by id alone.
type PropertyRepository struct {
	repo *Repository[entity.Property, *entity.Property]
}

// NewPropertyRepository creates a repository for property records.
func NewPropertyRepository(st Store, opts ...Option) (*PropertyRepository, error) {
	repo, err := New[entity.Property](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PropertyRepository{repo: repo}, nil
}

// Create stores a new property.
func (r *PropertyRepository) Create(ctx context.Context, e *entity.Property) (*entity.Property, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the property with the given key.
func (r *PropertyRepository) Get(ctx context.Context, propertyID string) (*entity.Property, error) {
	return r.repo.Get(ctx, propertyID)
}

// ListByCustomer returns a page of property records by customer.
func (r *PropertyRepository) ListByCustomer(ctx context.Context, customerID string, opts PageOptions) (*Page[entity.Property], error) {
	return r.repo.List(ctx, schema.PatternByCustomer, opts, customerID)
}

// ListByPropertyType returns a page of property records by property type.
func (r *PropertyRepository) ListByPropertyType(ctx context.Context, propertyTypeID string, opts PageOptions) (*Page[entity.Property], error) {
	return r.repo.List(ctx, schema.PatternByPropertyType, opts, propertyTypeID)
}

// Update applies fields to an existing property and returns the result.
func (r *PropertyRepository) Update(ctx context.Context, propertyID string, fields Fields) (*entity.Property, error) {
	return r.repo.Update(ctx, fields, propertyID)
}

// Delete removes the property.
func (r *PropertyRepository) Delete(ctx context.Context, propertyID string) error {
	return r.repo.Delete(ctx, propertyID)
}

// ServiceTypeRepository stores the service catalog.
type ServiceTypeRepository struct {
	repo *Repository[entity.ServiceType, *entity.ServiceType]
}

// NewServiceTypeRepository creates a repository for service type records.
func NewServiceTypeRepository(st Store, opts ...Option) (*ServiceTypeRepository, error) {
	repo, err := New[entity.ServiceType](st, opts...)
	if err != nil {
		return nil, err
	}
	return &ServiceTypeRepository{repo: repo}, nil
}

// Create stores a new service type.
func (r *ServiceTypeRepository) Create(ctx context.Context, e *entity.ServiceType) (*entity.ServiceType, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the service type with the given key.
func (r *ServiceTypeRepository) Get(ctx context.Context, serviceTypeID string) (*entity.ServiceType, error) {
	return r.repo.Get(ctx, serviceTypeID)
}

// ListCatalog returns a page of the global service type catalog.
func (r *ServiceTypeRepository) ListCatalog(ctx context.Context, opts PageOptions) (*Page[entity.ServiceType], error) {
	return r.repo.List(ctx, schema.PatternCatalog, opts)
}

// Update applies fields to an existing service type and returns the result.
func (r *ServiceTypeRepository) Update(ctx context.Context, serviceTypeID string, fields Fields) (*entity.ServiceType, error) {
	return r.repo.Update(ctx, fields, serviceTypeID)
}

// Delete removes the service type.
func (r *ServiceTypeRepository) Delete(ctx context.Context, serviceTypeID string) error {
	return r.repo.Delete(ctx, serviceTypeID)
}

// CostTypeRepository stores the cost catalog.
type CostTypeRepository struct {
	repo *Repository[entity.CostType, *entity.CostType]
}

// NewCostTypeRepository creates a repository for cost type records.
func NewCostTypeRepository(st Store, opts ...Option) (*CostTypeRepository, error) {
	repo, err := New[entity.CostType](st, opts...)
	if err != nil {
		return nil, err
	}
	return &CostTypeRepository{repo: repo}, nil
}

// Create stores a new cost type.
func (r *CostTypeRepository) Create(ctx context.Context, e *entity.CostType) (*entity.CostType, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the cost type with the given key.
func (r *CostTypeRepository) Get(ctx context.Context, costTypeID string) (*entity.CostType, error) {
	return r.repo.Get(ctx, costTypeID)
}

// ListCatalog returns a page of the global cost type catalog.
func (r *CostTypeRepository) ListCatalog(ctx context.Context, opts PageOptions) (*Page[entity.CostType], error) {
	return r.repo.List(ctx, schema.PatternCatalog, opts)
}

// Update applies fields to an existing cost type and returns the result.
func (r *CostTypeRepository) Update(ctx context.Context, costTypeID string, fields Fields) (*entity.CostType, error) {
	return r.repo.Update(ctx, fields, costTypeID)
}

// Delete removes the cost type.
func (r *CostTypeRepository) Delete(ctx context.Context, costTypeID string) error {
	return r.repo.Delete(ctx, costTypeID)
}

// CostRepository stores costs incurred on properties.
type CostRepository struct {
	repo *Repository[entity.Cost, *entity.Cost]
}

// NewCostRepository creates a repository for cost records.
func NewCostRepository(st Store, opts ...Option) (*CostRepository, error) {
	repo, err := New[entity.Cost](st, opts...)
	if err != nil {
		return nil, err
	}
	return &CostRepository{repo: repo}, nil
}

// Create stores a new cost.
func (r *CostRepository) Create(ctx context.Context, e *entity.Cost) (*entity.Cost, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the cost with the given key.
func (r *CostRepository) Get(ctx context.Context, orgID, costID string) (*entity.Cost, error) {
	return r.repo.Get(ctx, orgID, costID)
}

// ListByOrganization returns a page of cost records by organization.
func (r *CostRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.Cost], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByProperty lists a property's costs ordered by the date they were incurred.
func (r *CostRepository) ListByProperty(ctx context.Context, orgID, propertyID string, opts PageOptions) (*Page[entity.Cost], error) {
	return r.repo.List(ctx, schema.PatternByProperty, opts, orgID, propertyID)
}

// ListByCostType returns a page of cost records by cost type.
func (r *CostRepository) ListByCostType(ctx context.Context, orgID, costTypeID string, opts PageOptions) (*Page[entity.Cost], error) {
	return r.repo.List(ctx, schema.PatternByCostType, opts, orgID, costTypeID)
}

// Update applies fields to an existing cost and returns the result.
func (r *CostRepository) Update(ctx context.Context, orgID, costID string, fields Fields) (*entity.Cost, error) {
	return r.repo.Update(ctx, fields, orgID, costID)
}

// Delete removes the cost.
func (r *CostRepository) Delete(ctx context.Context, orgID, costID string) error {
	return r.repo.Delete(ctx, orgID, costID)
}
