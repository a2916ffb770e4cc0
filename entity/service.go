package entity

import "github.com/jacentio/propman/schema"

// Plan is a recurring service offering for a property.
type Plan struct {
	Base
	PlanID     string    `dynamodbav:"planId,omitempty" validate:"required"`
	PropertyID string    `dynamodbav:"propertyId,omitempty"`
	Name       string    `dynamodbav:"name,omitempty" validate:"required"`
	Price      *Money    `dynamodbav:"price,omitempty"`
	Frequency  Frequency `dynamodbav:"frequency,omitempty" validate:"omitempty,oneof=weekly biweekly monthly quarterly annually"`
	Status     Status    `dynamodbav:"status,omitempty" validate:"required,oneof=draft active inactive cancelled"`
}

func (Plan) Kind() schema.Kind { return schema.KindPlan }

// PlanService is a service type included in a plan.
type PlanService struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	PlanID         string `dynamodbav:"planId,omitempty" validate:"required"`
	PlanServiceID  string `dynamodbav:"planServiceId,omitempty" validate:"required"`
	ServiceTypeID  string `dynamodbav:"serviceTypeId,omitempty" validate:"required"`
	Quantity       int    `dynamodbav:"quantity,omitempty" validate:"omitempty,min=1"`
	Price          *Money `dynamodbav:"price,omitempty"`
}

func (PlanService) Kind() schema.Kind { return schema.KindPlanService }

// PropertyService is a service type being delivered to a property.
type PropertyService struct {
	Base
	OrganizationID    string `dynamodbav:"organizationId,omitempty" validate:"required"`
	PropertyID        string `dynamodbav:"propertyId,omitempty" validate:"required"`
	PropertyServiceID string `dynamodbav:"propertyServiceId,omitempty" validate:"required"`
	ServiceTypeID     string `dynamodbav:"serviceTypeId,omitempty" validate:"required"`
	ServicerID        string `dynamodbav:"servicerId,omitempty"`
	Price             *Money `dynamodbav:"price,omitempty"`
	Status            Status `dynamodbav:"status,omitempty" validate:"required,oneof=active paused cancelled"`
}

func (PropertyService) Kind() schema.Kind { return schema.KindPropertyService }

// Servicer is a person or crew that performs services.
type Servicer struct {
	Base
	ServicerID string `dynamodbav:"servicerId,omitempty" validate:"required"`
	Name       string `dynamodbav:"name,omitempty" validate:"required"`
	Email      string `dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Status     Status `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive suspended"`
}

func (Servicer) Kind() schema.Kind { return schema.KindServicer }

// Capability records that a servicer can perform a service type.
type Capability struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	ServicerID     string `dynamodbav:"servicerId,omitempty" validate:"required"`
	CapabilityID   string `dynamodbav:"capabilityId,omitempty" validate:"required"`
	ServiceTypeID  string `dynamodbav:"serviceTypeId,omitempty" validate:"required"`
	Level          Level  `dynamodbav:"level,omitempty" validate:"omitempty,oneof=trainee standard expert"`
}

func (Capability) Kind() schema.Kind { return schema.KindCapability }

// ServiceSchedule is one planned visit for a property service.
type ServiceSchedule struct {
	Base
	OrganizationID    string    `dynamodbav:"organizationId,omitempty" validate:"required"`
	ServiceScheduleID string    `dynamodbav:"serviceScheduleId,omitempty" validate:"required"`
	PropertyServiceID string    `dynamodbav:"propertyServiceId,omitempty" validate:"required"`
	ServicerID        string    `dynamodbav:"servicerId,omitempty"`
	ScheduledDate     string    `dynamodbav:"scheduledDate,omitempty" validate:"required,datetime=2006-01-02"`
	Status            Status    `dynamodbav:"status,omitempty" validate:"required,oneof=scheduled completed skipped cancelled"`
	CompletedAt       Timestamp `dynamodbav:"completedAt,omitempty"`
}

func (ServiceSchedule) Kind() schema.Kind { return schema.KindServiceSchedule }
