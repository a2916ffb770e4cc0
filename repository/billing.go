package repository

import (
	"context"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/schema"
)

// PayRepository stores servicer payouts.
type PayRepository struct {
	repo *Repository[entity.Pay, *entity.Pay]
}

// NewPayRepository creates a repository for pay records.
func NewPayRepository(st Store, opts ...Option) (*PayRepository, error) {
	repo, err := New[entity.Pay](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PayRepository{repo: repo}, nil
}

// Create stores a new pay.
func (r *PayRepository) Create(ctx context.Context, e *entity.Pay) (*entity.Pay, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the pay with the given key.
func (r *PayRepository) Get(ctx context.Context, payID string) (*entity.Pay, error) {
	return r.repo.Get(ctx, payID)
}

// ListByServicer lists a servicer's payouts in pay date order.
func (r *PayRepository) ListByServicer(ctx context.Context, servicerID string, opts PageOptions) (*Page[entity.Pay], error) {
	return r.repo.List(ctx, schema.PatternByServicer, opts, servicerID)
}

// ListByPaySchedule returns a page of pay records by pay schedule.
func (r *PayRepository) ListByPaySchedule(ctx context.Context, payScheduleID string, opts PageOptions) (*Page[entity.Pay], error) {
	return r.repo.List(ctx, schema.PatternByPaySchedule, opts, payScheduleID)
}

// Update applies fields to an existing pay and returns the result.
func (r *PayRepository) Update(ctx context.Context, payID string, fields Fields) (*entity.Pay, error) {
	return r.repo.Update(ctx, fields, payID)
}

// Delete removes the pay.
func (r *PayRepository) Delete(ctx context.Context, payID string) error {
	return r.repo.Delete(ctx, payID)
}

// PayScheduleRepository stores servicer pay cadences.
type PayScheduleRepository struct {
	repo *Repository[entity.PaySchedule, *entity.PaySchedule]
}

// NewPayScheduleRepository creates a repository for pay schedule records.
func NewPayScheduleRepository(st Store, opts ...Option) (*PayScheduleRepository, error) {
	repo, err := New[entity.PaySchedule](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PayScheduleRepository{repo: repo}, nil
}

// Create stores a new pay schedule.
func (r *PayScheduleRepository) Create(ctx context.Context, e *entity.PaySchedule) (*entity.PaySchedule, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the pay schedule with the given key.
func (r *PayScheduleRepository) Get(ctx context.Context, payScheduleID string) (*entity.PaySchedule, error) {
	return r.repo.Get(ctx, payScheduleID)
}

// ListByServicer returns a page of pay schedule records by servicer.
func (r *PayScheduleRepository) ListByServicer(ctx context.Context, servicerID string, opts PageOptions) (*Page[entity.PaySchedule], error) {
	return r.repo.List(ctx, schema.PatternByServicer, opts, servicerID)
}

// Update applies fields to an existing pay schedule and returns the result.
func (r *PayScheduleRepository) Update(ctx context.Context, payScheduleID string, fields Fields) (*entity.PaySchedule, error) {
	return r.repo.Update(ctx, fields, payScheduleID)
}

// Delete removes the pay schedule.
func (r *PayScheduleRepository) Delete(ctx context.Context, payScheduleID string) error {
	return r.repo.Delete(ctx, payScheduleID)
}

// InvoiceRepository stores customer invoices.
type InvoiceRepository struct {
	repo *Repository[entity.Invoice, *entity.Invoice]
}

// NewInvoiceRepository creates a repository for invoice records.
func NewInvoiceRepository(st Store, opts ...Option) (*InvoiceRepository, error) {
	repo, err := New[entity.Invoice](st, opts...)
	if err != nil {
		return nil, err
	}
	return &InvoiceRepository{repo: repo}, nil
}

// Create stores a new invoice.
func (r *InvoiceRepository) Create(ctx context.Context, e *entity.Invoice) (*entity.Invoice, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the invoice with the given key.
func (r *InvoiceRepository) Get(ctx context.Context, orgID, invoiceID string) (*entity.Invoice, error) {
	return r.repo.Get(ctx, orgID, invoiceID)
}

// ListByOrganization returns a page of invoice records by organization.
func (r *InvoiceRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.Invoice], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByCustomer lists a customer's invoices in issue date order.
func (r *InvoiceRepository) ListByCustomer(ctx context.Context, orgID, customerID string, opts PageOptions) (*Page[entity.Invoice], error) {
	return r.repo.List(ctx, schema.PatternByCustomer, opts, orgID, customerID)
}

// ListByStatus returns a page of invoice records by status.
func (r *InvoiceRepository) ListByStatus(ctx context.Context, orgID string, status entity.Status, opts PageOptions) (*Page[entity.Invoice], error) {
	return r.repo.List(ctx, schema.PatternByStatus, opts, orgID, string(status))
}

// Update applies fields to an existing invoice and returns the result.
func (r *InvoiceRepository) Update(ctx context.Context, orgID, invoiceID string, fields Fields) (*entity.Invoice, error) {
	return r.repo.Update(ctx, fields, orgID, invoiceID)
}

// Delete removes the invoice.
func (r *InvoiceRepository) Delete(ctx context.Context, orgID, invoiceID string) error {
	return r.repo.Delete(ctx, orgID, invoiceID)
}

// InvoiceScheduleRepository stores customer invoicing cadences.
type InvoiceScheduleRepository struct {
	repo *Repository[entity.InvoiceSchedule, *entity.InvoiceSchedule]
}

// NewInvoiceScheduleRepository creates a repository for invoice schedule records.
func NewInvoiceScheduleRepository(st Store, opts ...Option) (*InvoiceScheduleRepository, error) {
	repo, err := New[entity.InvoiceSchedule](st, opts...)
	if err != nil {
		return nil, err
	}
	return &InvoiceScheduleRepository{repo: repo}, nil
}

// Create stores a new invoice schedule.
func (r *InvoiceScheduleRepository) Create(ctx context.Context, e *entity.InvoiceSchedule) (*entity.InvoiceSchedule, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the invoice schedule with the given key.
func (r *InvoiceScheduleRepository) Get(ctx context.Context, orgID, invoiceScheduleID string) (*entity.InvoiceSchedule, error) {
	return r.repo.Get(ctx, orgID, invoiceScheduleID)
}

// ListByOrganization returns a page of invoice schedule records by organization.
func (r *InvoiceScheduleRepository) ListByOrganization(ctx context.Context, orgID string, opts PageOptions) (*Page[entity.InvoiceSchedule], error) {
	return r.repo.List(ctx, schema.PatternByOrganization, opts, orgID)
}

// ListByCustomer returns a page of invoice schedule records by customer.
func (r *InvoiceScheduleRepository) ListByCustomer(ctx context.Context, orgID, customerID string, opts PageOptions) (*Page[entity.InvoiceSchedule], error) {
	return r.repo.List(ctx, schema.PatternByCustomer, opts, orgID, customerID)
}

// Update applies fields to an existing invoice schedule and returns the result.
func (r *InvoiceScheduleRepository) Update(ctx context.Context, orgID, invoiceScheduleID string, fields Fields) (*entity.InvoiceSchedule, error) {
	return r.repo.Update(ctx, fields, orgID, invoiceScheduleID)
}

// Delete removes the invoice schedule.
func (r *InvoiceScheduleRepository) Delete(ctx context.Context, orgID, invoiceScheduleID string) error {
	return r.repo.Delete(ctx, orgID, invoiceScheduleID)
}

// PaymentMethodRepository stores customer payment instruments. Payment methods are
// keyed by customer alone.
type PaymentMethodRepository struct {
	repo *Repository[entity.PaymentMethod, *entity.PaymentMethod]
}

// NewPaymentMethodRepository creates a repository for payment method records.
func NewPaymentMethodRepository(st Store, opts ...Option) (*PaymentMethodRepository, error) {
	repo, err := New[entity.PaymentMethod](st, opts...)
	if err != nil {
		return nil, err
	}
	return &PaymentMethodRepository{repo: repo}, nil
}

// Create stores a new payment method.
func (r *PaymentMethodRepository) Create(ctx context.Context, e *entity.PaymentMethod) (*entity.PaymentMethod, error) {
	return r.repo.Create(ctx, e)
}

// Get returns the payment method with the given key.
func (r *PaymentMethodRepository) Get(ctx context.Context, customerID, paymentMethodID string) (*entity.PaymentMethod, error) {
	return r.repo.Get(ctx, customerID, paymentMethodID)
}

// ListByCustomer returns a page of payment method records by customer.
func (r *PaymentMethodRepository) ListByCustomer(ctx context.Context, customerID string, opts PageOptions) (*Page[entity.PaymentMethod], error) {
	return r.repo.List(ctx, schema.PatternByCustomer, opts, customerID)
}

// Update applies fields to an existing payment method and returns the result.
func (r *PaymentMethodRepository) Update(ctx context.Context, customerID, paymentMethodID string, fields Fields) (*entity.PaymentMethod, error) {
	return r.repo.Update(ctx, fields, customerID, paymentMethodID)
}

// Delete removes the payment method.
func (r *PaymentMethodRepository) Delete(ctx context.Context, customerID, paymentMethodID string) error {
	return r.repo.Delete(ctx, customerID, paymentMethodID)
}
