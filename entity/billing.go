package entity

import "github.com/jacentio/propman/schema"

// Pay is a payout to a servicer.
type Pay struct {
	Base
	PayID         string `dynamodbav:"payId,omitempty" validate:"required"`
	ServicerID    string `dynamodbav:"servicerId,omitempty" validate:"required"`
	PayScheduleID string `dynamodbav:"payScheduleId,omitempty"`
	Amount        *Money `dynamodbav:"amount,omitempty" validate:"required"`
	PayDate       string `dynamodbav:"payDate,omitempty" validate:"required,datetime=2006-01-02"`
	Status        Status `dynamodbav:"status,omitempty" validate:"required,oneof=pending paid void"`
}

func (Pay) Kind() schema.Kind { return schema.KindPay }

// PaySchedule is the cadence on which a servicer is paid.
type PaySchedule struct {
	Base
	PayScheduleID string    `dynamodbav:"payScheduleId,omitempty" validate:"required"`
	ServicerID    string    `dynamodbav:"servicerId,omitempty" validate:"required"`
	Frequency     Frequency `dynamodbav:"frequency,omitempty" validate:"required,oneof=weekly biweekly monthly quarterly annually"`
	NextPayDate   string    `dynamodbav:"nextPayDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status        Status    `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive"`
}

func (PaySchedule) Kind() schema.Kind { return schema.KindPaySchedule }

// Invoice is a bill issued to a customer.
type Invoice struct {
	Base
	OrganizationID    string `dynamodbav:"organizationId,omitempty" validate:"required"`
	InvoiceID         string `dynamodbav:"invoiceId,omitempty" validate:"required"`
	CustomerID        string `dynamodbav:"customerId,omitempty" validate:"required"`
	InvoiceScheduleID string `dynamodbav:"invoiceScheduleId,omitempty"`
	IssueDate         string `dynamodbav:"issueDate,omitempty" validate:"required,datetime=2006-01-02"`
	DueDate           string `dynamodbav:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Total             *Money `dynamodbav:"total,omitempty" validate:"required"`
	Status            Status `dynamodbav:"status,omitempty" validate:"required,oneof=draft issued paid void overdue"`
}

func (Invoice) Kind() schema.Kind { return schema.KindInvoice }

// InvoiceSchedule is the cadence on which a customer is invoiced.
type InvoiceSchedule struct {
	Base
	OrganizationID    string    `dynamodbav:"organizationId,omitempty" validate:"required"`
	InvoiceScheduleID string    `dynamodbav:"invoiceScheduleId,omitempty" validate:"required"`
	CustomerID        string    `dynamodbav:"customerId,omitempty" validate:"required"`
	Frequency         Frequency `dynamodbav:"frequency,omitempty" validate:"required,oneof=weekly biweekly monthly quarterly annually"`
	DayOfMonth        int       `dynamodbav:"dayOfMonth,omitempty" validate:"omitempty,min=1,max=28"`
	NextIssueDate     string    `dynamodbav:"nextIssueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status            Status    `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive"`
}

func (InvoiceSchedule) Kind() schema.Kind { return schema.KindInvoiceSchedule }

// PaymentMethod is a stored instrument a customer pays with.
type PaymentMethod struct {
	Base
	CustomerID      string      `dynamodbav:"customerId,omitempty" validate:"required"`
	PaymentMethodID string      `dynamodbav:"paymentMethodId,omitempty" validate:"required"`
	Type            PaymentType `dynamodbav:"type,omitempty" validate:"required,oneof=card ach check cash"`
	Last4           string      `dynamodbav:"last4,omitempty" validate:"omitempty,len=4,numeric"`
	ProviderRef     string      `dynamodbav:"providerRef,omitempty"`
	IsDefault       bool        `dynamodbav:"isDefault,omitempty"`
	Status          Status      `dynamodbav:"status,omitempty" validate:"required,oneof=active inactive expired"`
}

func (PaymentMethod) Kind() schema.Kind { return schema.KindPaymentMethod }
