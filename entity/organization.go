package entity

import "github.com/jacentio/propman/schema"

// Organization is a tenant.
type Organization struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	Name           string `dynamodbav:"name,omitempty" validate:"required"`
	Slug           string `dynamodbav:"slug,omitempty"`
	Status         Status `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive suspended"`
	Email          string `dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Timezone       string `dynamodbav:"timezone,omitempty"`
}

func (Organization) Kind() schema.Kind { return schema.KindOrganization }

// Employee is a member of an organization's staff.
type Employee struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	EmployeeID     string `dynamodbav:"employeeId,omitempty" validate:"required"`
	FirstName      string `dynamodbav:"firstName,omitempty" validate:"required"`
	LastName       string `dynamodbav:"lastName,omitempty" validate:"required"`
	Email          string `dynamodbav:"email,omitempty" validate:"required,email"`
	Role           Role   `dynamodbav:"role,omitempty" validate:"required,oneof=owner admin manager tech office"`
	Status         Status `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive terminated"`
	HireDate       string `dynamodbav:"hireDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone          string `dynamodbav:"phone,omitempty"`
}

func (Employee) Kind() schema.Kind { return schema.KindEmployee }

// Customer is an organization's client.
type Customer struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	CustomerID     string `dynamodbav:"customerId,omitempty" validate:"required"`
	FirstName      string `dynamodbav:"firstName,omitempty" validate:"required"`
	LastName       string `dynamodbav:"lastName,omitempty" validate:"required"`
	Email          string `dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Status         Status `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive suspended"`
	Street         string `dynamodbav:"street,omitempty"`
	City           string `dynamodbav:"city,omitempty"`
	State          string `dynamodbav:"state,omitempty"`
	PostalCode     string `dynamodbav:"postalCode,omitempty"`
}

func (Customer) Kind() schema.Kind { return schema.KindCustomer }

// Delegate is a person allowed to act for a customer.
type Delegate struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	DelegateID     string `dynamodbav:"delegateId,omitempty" validate:"required"`
	CustomerID     string `dynamodbav:"customerId,omitempty" validate:"required"`
	FirstName      string `dynamodbav:"firstName,omitempty" validate:"required"`
	LastName       string `dynamodbav:"lastName,omitempty" validate:"required"`
	Email          string `dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Relationship   string `dynamodbav:"relationship,omitempty"`
	Status         Status `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive"`
}

func (Delegate) Kind() schema.Kind { return schema.KindDelegate }

// Account is a customer's receivable balance.
type Account struct {
	Base
	OrganizationID string `dynamodbav:"organizationId,omitempty" validate:"required"`
	AccountID      string `dynamodbav:"accountId,omitempty" validate:"required"`
	CustomerID     string `dynamodbav:"customerId,omitempty" validate:"required"`
	Balance        *Money `dynamodbav:"balance,omitempty"`
	Status         Status `dynamodbav:"status,omitempty" validate:"required,oneof=open closed delinquent"`
}

func (Account) Kind() schema.Kind { return schema.KindAccount }
