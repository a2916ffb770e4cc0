package repository

import (
	"context"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/schema"
)

// PlanRepository stores service plans.
type PlanRepository struct {
	repo *Repository[entity.Plan, *entity.Plan]
}

// NewPlanRepository creates a repository for plan records.
func NewPlanRepository(st Store, opts ...Option) (*PlanRepository, error) {
	repo, err := New[entity.Plan](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PlanRepository{repo: repo}, nil
}

// Create stores a new plan.
func (r *PlanRepository) Create(ctx context.Context, e *entity.Plan) (*entity.Plan, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the plan with the given key.
func (r *PlanRepository) Get(ctx context.Context, planID string) (*entity.Plan, error) {
	return r.repo.Get(ctx, planID)
}

// ListByProperty returns a page of plan records by property.
func (r *PlanRepository) ListByProperty(ctx context.Context, propertyID string, opts PageOptions) (*Page[entity.Plan], error) {
	return r.repo.List(ctx, schema.PatternByProperty, opts, propertyID)
}

// ListByStatus returns a page of plan records by status.
func (r *PlanRepository) ListByStatus(ctx context.Context, status entity.Status, opts PageOptions) (*Page[entity.Plan], error) {
	return r.repo.List(ctx, schema.PatternByStatus, opts, string(status))
}

// Update applies fields to an existing plan and returns the result.
func (r *PlanRepository) Update(ctx context.Context, planID string, fields Fields) (*entity.Plan, error) {
	return r.repo.Update(ctx, fields, planID)
}

// Delete removes the plan.
func (r *PlanRepository) Delete(ctx context.Context, planID string) error {
	return r.repo.Delete(ctx, planID)
}

// PlanServiceRepository stores the service types included in plans.
type PlanServiceRepository struct {
	repo *Repository[entity.PlanService, *entity.PlanService]
}

// NewPlanServiceRepository creates a repository for plan service records.
func NewPlanServiceRepository(st Store, opts ...Option) (*PlanServiceRepository, error) {
	repo, err := New[entity.PlanService](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PlanServiceRepository{repo: repo}, nil
}

// Create stores a new plan service.
func (r *PlanServiceRepository) Create(ctx context.Context, e *entity.PlanService) (*entity.PlanService, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the plan service with the given key.
func (r *PlanServiceRepository) Get(ctx context.Context, orgID, planID, planServiceID string) (*entity.PlanService, error) {
	return r.repo.Get(ctx, orgID, planID, planServiceID)
}

// ListByPlan returns a page of plan service records by plan.
func (r *PlanServiceRepository) ListByPlan(ctx context.Context, orgID, planID string, opts PageOptions) (*Page[entity.PlanService], error) {
	return r.repo.List(ctx, schema.PatternByPlan, opts, orgID, planID)
}

// ListByServiceType returns a page of plan service records by service type.
func (r *PlanServiceRepository) ListByServiceType(ctx context.Context, orgID, serviceTypeID string, opts PageOptions) (*Page[entity.PlanService], error) {
	return r.repo.List(ctx, schema.PatternByServiceType, opts, orgID, serviceTypeID)
}

// Update applies fields to an existing plan service and returns the result.
func (r *PlanServiceRepository) Update(ctx context.Context, orgID, planID, planServiceID string, fields Fields) (*entity.PlanService, error) {
	return r.repo.Update(ctx, fields, orgID, planID, planServiceID)
}

// Delete removes the plan service.
func (r *PlanServiceRepository) Delete(ctx context.Context, orgID, planID, planServiceID string) error {
	return r.repo.Delete(ctx, orgID, planID, planServiceID)
}

// PropertyServiceRepository stores services delivered to properties.
type PropertyServiceRepository struct {
	repo *Repository[entity.PropertyService, *entity.PropertyService]
}

// NewPropertyServiceRepository creates a repository for property service records.
func NewPropertyServiceRepository(st Store, opts ...Option) (*PropertyServiceRepository, error) {
	repo, err := New[entity.PropertyService](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PropertyServiceRepository{repo: repo}, nil
}

// Create stores a new property service.
func (r *PropertyServiceRepository) Create(ctx context.Context, e *entity.PropertyService) (*entity.PropertyService, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the property service with the given key.
func (r *PropertyServiceRepository) Get(ctx context.Context, orgID, propertyID, propertyServiceID string) (*entity.PropertyService, error) {
	return r.repo.Get(ctx, orgID, propertyID, propertyServiceID)
}

// ListByProperty returns a page of property service records by property.
func (r *PropertyServiceRepository) ListByProperty(ctx context.Context, orgID, propertyID string, opts PageOptions) (*Page[entity.PropertyService], error) {
	return r.repo.List(ctx, schema.PatternByProperty, opts, orgID, propertyID)
}

// ListByServicer returns a page of property service records by servicer.
func (r *PropertyServiceRepository) ListByServicer(ctx context.Context, orgID, servicerID string, opts PageOptions) (*Page[entity.PropertyService], error) {
	return r.repo.List(ctx, schema.PatternByServicer, opts, orgID, servicerID)
}

// Update applies fields to an existing property service and returns the result.
func (r *PropertyServiceRepository) Update(ctx context.Context, orgID, propertyID, propertyServiceID string, fields Fields) (*entity.PropertyService, error) {
	return r.repo.Update(ctx, fields, orgID, propertyID, propertyServiceID)
}

// Delete removes the property service.
func (r *PropertyServiceRepository) Delete(ctx context.Context, orgID, propertyID, propertyServiceID string) error {
	return r.repo.Delete(ctx, orgID, propertyID, propertyServiceID)
}

// ServicerRepository stores servicers.
type ServicerRepository struct {
	repo *Repository[entity.Servicer, *entity.Servicer]
}

// NewServicerRepository creates a repository for servicer records.
func NewServicerRepository(st Store, opts ...Option) (*ServicerRepository, error) {
	repo, err := New[entity.Servicer](st, opts...)
	if err != nil {
		return nil, err
	}
	return &ServicerRepository{repo: repo}, nil
}

// Create stores a new servicer.
func (r *ServicerRepository) Create(ctx context.Context, e *entity.Servicer) (*entity.Servicer, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the servicer with the given key.
func (r *ServicerRepository) Get(ctx context.Context, servicerID string) (*entity.Servicer, error) {
	return r.repo.Get(ctx, servicerID)
}

// ListByStatus returns a page of servicer records by status.
func (r *ServicerRepository) ListByStatus(ctx context.Context, status entity.Status, opts PageOptions) (*Page[entity.Servicer], error) {
	return r.repo.List(ctx, schema.PatternByStatus, opts, string(status))
}

// ListByEmail returns a page of servicer records by email.
func (r *ServicerRepository) ListByEmail(ctx context.Context, email string, opts PageOptions) (*Page[entity.Servicer], error) {
	return r.repo.List(ctx, schema.PatternByEmail, opts, email)
}

// Update applies fields to an existing servicer and returns the result.
func (r *ServicerRepository) Update(ctx context.Context, servicerID string, fields Fields) (*entity.Servicer, error) {
	return r.repo.Update(ctx, fields, servicerID)
}

// Delete removes the servicer.
func (r *ServicerRepository) Delete(ctx context.Context, servicerID string) error {
	return r.repo.Delete(ctx, servicerID)
}

// CapabilityRepository stores the service types each servicer can perform.
type CapabilityRepository struct {
	repo *Repository[entity.Capability, *entity.Capability]
}

// NewCapabilityRepository creates a repository for capability records.
func NewCapabilityRepository(st Store, opts ...Option) (*CapabilityRepository, error) {
	repo, err := New[entity.Capability](st, opts...)
	if err != nil {
		return nil, err
	}
	return &CapabilityRepository{repo: repo}, nil
}

// Create stores a new capability.
func (r *CapabilityRepository) Create(ctx context.Context, e *entity.Capability) (*entity.Capability, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the capability with the given key.
func (r *CapabilityRepository) Get(ctx context.Context, orgID, servicerID, capabilityID string) (*entity.Capability, error) {
	return r.repo.Get(ctx, orgID, servicerID, capabilityID)
}

// ListByServicer returns a page of capability records by servicer.
func (r *CapabilityRepository) ListByServicer(ctx context.Context, orgID, servicerID string, opts PageOptions) (*Page[entity.Capability], error) {
	return r.repo.List(ctx, schema.PatternByServicer, opts, orgID, servicerID)
}

// ListByServiceType returns a page of capability records by service type.
func (r *CapabilityRepository) ListByServiceType(ctx context.Context, orgID, serviceTypeID string, opts PageOptions) (*Page[entity.Capability], error) {
	return r.repo.List(ctx, schema.PatternByServiceType, opts, orgID, serviceTypeID)
}

// Update applies fields to an existing capability and returns the result.
func (r *CapabilityRepository) Update(ctx context.Context, orgID, servicerID, capabilityID string, fields Fields) (*entity.Capability, error) {
	return r.repo.Update(ctx, fields, orgID, servicerID, capabilityID)
}

// Delete removes the capability.
func (r *CapabilityRepository) Delete(ctx context.Context, orgID, servicerID, capabilityID string) error {
	return r.repo.Delete(ctx, orgID, servicerID, capabilityID)
}

// ServiceScheduleRepository stores planned visits.
type ServiceScheduleRepository struct {
	repo *Repository[entity.ServiceSchedule, *entity.ServiceSchedule]
}

// NewServiceScheduleRepository creates a repository for service schedule records.
func NewServiceScheduleRepository(st Store, opts ...Option) (*ServiceScheduleRepository, error) {
	repo, err := New[entity.ServiceSchedule](st, opts...)
	if err != nil {
		return nil, err
	}
	return &ServiceScheduleRepository{repo: repo}, nil
}

// Create stores a new service schedule.
func (r *ServiceScheduleRepository) Create(ctx context.Context, e *entity.ServiceSchedule) (*entity.ServiceSchedule, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the service schedule with the given key.
func (r *ServiceScheduleRepository) Get(ctx context.Context, orgID, serviceScheduleID string) (*entity.ServiceSchedule, error) {
	return r.repo.Get(ctx, orgID, serviceScheduleID)
}

// ListByOrganization returns a page of service schedule records by organization.
func (r *ServiceScheduleRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.ServiceSchedule], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByPropertyService lists visits in scheduled date order.
func (r *ServiceScheduleRepository) ListByPropertyService(ctx context.Context, orgID, propertyServiceID string, opts PageOptions) (*Page[entity.ServiceSchedule], error) {
	return r.repo.List(ctx, schema.PatternByPropertyService, opts, orgID, propertyServiceID)
}

// ListByServicerOn lists a servicer's visits on one date.
func (r *ServiceScheduleRepository) ListByServicerOn(ctx context.Context, orgID, servicerID, date string, opts PageOptions) (*Page[entity.ServiceSchedule], error) {
	return r.repo.List(ctx, schema.PatternByServicer, opts, orgID, servicerID, date)
}

// ListByServicer lists visits in scheduled date order.
func (r *ServiceScheduleRepository) ListByServicer(ctx context.Context, orgID, servicerID string, opts PageOptions) (*Page[entity.ServiceSchedule], error) {
	return r.repo.List(ctx, schema.PatternByServicer, opts, orgID, servicerID)
}

// Update applies fields to an existing service schedule and returns the result.
func (r *ServiceScheduleRepository) Update(ctx context.Context, orgID, serviceScheduleID string, fields Fields) (*entity.ServiceSchedule, error) {
	return r.repo.Update(ctx, fields, orgID, serviceScheduleID)
}

// Delete removes the service schedule.
func (r *ServiceScheduleRepository) Delete(ctx context.Context, orgID, serviceScheduleID string) error {
	return r.repo.Delete(ctx, orgID, serviceScheduleID)
}
