package repository

// Repositories bundles a repository for every kind over one store.
type Repositories struct {
	Organizations    *OrganizationRepository
	Employees        *EmployeeRepository
	Customers        *CustomerRepository
	Delegates        *DelegateRepository
	Accounts         *AccountRepository
	PropertyTypes    *PropertyTypeRepository
	Properties       *PropertyRepository
	ServiceTypes     *ServiceTypeRepository
	CostTypes        *CostTypeRepository
	Costs            *CostRepository
	Plans            *PlanRepository
	PlanServices     *PlanServiceRepository
	PropertyServices *PropertyServiceRepository
	Servicers        *ServicerRepository
	Capabilities     *CapabilityRepository
	ServiceSchedules *ServiceScheduleRepository
	Pays             *PayRepository
	PaySchedules     *PayScheduleRepository
	Invoices         *InvoiceRepository
	InvoiceSchedules *InvoiceScheduleRepository
	PaymentMethods   *PaymentMethodRepository
}

// NewRepositories creates every repository.
func NewRepositories(st Store, opts ...Option) (*Repositories, error) {
	r := &Repositories{}
	var err error
	if r.Organizations, err = NewOrganizationRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Employees, err = NewEmployeeRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Customers, err = NewCustomerRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Delegates, err = NewDelegateRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Accounts, err = NewAccountRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.PropertyTypes, err = NewPropertyTypeRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Properties, err = NewPropertyRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.ServiceTypes, err = NewServiceTypeRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.CostTypes, err = NewCostTypeRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Costs, err = NewCostRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Plans, err = NewPlanRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.PlanServices, err = NewPlanServiceRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.PropertyServices, err = NewPropertyServiceRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Servicers, err = NewServicerRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Capabilities, err = NewCapabilityRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.ServiceSchedules, err = NewServiceScheduleRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Pays, err = NewPayRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.PaySchedules, err = NewPayScheduleRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.Invoices, err = NewInvoiceRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.InvoiceSchedules, err = NewInvoiceScheduleRepository(st, opts...); err != nil {
		return nil, err
	}
	if r.PaymentMethods, err = NewPaymentMethodRepository(st, opts...); err != nil {
		return nil, err
	}
	return r, nil
}
