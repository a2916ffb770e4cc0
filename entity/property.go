package entity

import "github.com/jacentio/propman/schema"

// PropertyType classifies properties within an organization.
type PropertyType struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	PropertyTypeID string `dynamodbav:"propertyTypeId,omitempty" validate:"required"`
	Name           string `dynamodbav:"name,omitempty" validate:"required"`
	Description    string `dynamodbav:"description,omitempty"`
}

func (PropertyType) Kind() schema.Kind { return schema.KindPropertyType }

// Property is a serviced location owned by a customer.
type Property struct {
	Base
	PropertyID     string `dynamodbav:"propertyId,omitempty" validate:"required"`
	CustomerID     string `dynamodbav:"customerId,omitempty" validate:"required"`
	PropertyTypeID string `dynamodbav:"propertyTypeId,omitempty"`
	OrganizationID string `dynamodbav:"organizationId,omitempty"`
	Name           string `dynamodbav:"name,omitempty" validate:"required"`
	Street         string `dynamodbav:"street,omitempty"`
	City           string `dynamodbav:"city,omitempty"`
	State          string `dynamodbav:"state,omitempty"`
	PostalCode     string `dynamodbav:"postalCode,omitempty"`
	Status         Status `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive"`
}

func (Property) Kind() schema.Kind { return schema.KindProperty }

// ServiceType is a catalog entry for work that can be performed.
type ServiceType struct {
	Base
	ServiceTypeID string `dynamodbav:"serviceTypeId,omitempty" validate:"required"`
	Name          string `dynamodbav:"name,omitempty" validate:"required"`
	Description   string `dynamodbav:"description,omitempty"`
	Status        Status `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive"`
}

func (ServiceType) Kind() schema.Kind { return schema.KindServiceType }

// CostType is a catalog entry for incurred costs.
type CostType struct {
	Base
	CostTypeID string       `dynamodbav:"costTypeId,omitempty" validate:"required"`
	Name       string       `dynamodbav:"name,omitempty" validate:"required"`
	Category   CostCategory `dynamodbav:"category,omitempty" validate:"omitempty,oneof=labor material equipment other"`
}

func (CostType) Kind() schema.Kind { return schema.KindCostType }

// Cost is an expense incurred on a property.
type Cost struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	CostID         string `dynamodbav:"costId,omitempty" validate:"required"`
	PropertyID     string `dynamodbav:"propertyId,omitempty" validate:"required"`
	CostTypeID     string `dynamodbav:"costTypeId,omitempty" validate:"required"`
	Amount         *Money `dynamodbav:"amount,omitempty" validate:"required"`
	Description    string `dynamodbav:"description,omitempty"`
	IncurredOn     string `dynamodbav:"incurredOn,omitempty" validate:"required,datetime=2006-01-02"`
}

func (Cost) Kind() schema.Kind { return schema.KindCost }
