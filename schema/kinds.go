package schema

// Kinds stored in the table.
const (
	KindOrganization    Kind = "organization"
	KindEmployee        Kind = "employee"
	KindCustomer        Kind = "customer"
	KindDelegate        Kind = "delegate"
	KindAccount         Kind = "account"
	KindPropertyType    Kind = "propertyType"
	KindProperty        Kind = "property"
	KindServiceType     Kind = "serviceType"
	KindCostType        Kind = "costType"
	KindCost            Kind = "cost"
	KindPlan            Kind = "plan"
	KindPlanService     Kind = "planService"
	KindPropertyService Kind = "propertyService"
	KindServicer        Kind = "servicer"
	KindCapability      Kind = "capability"
	KindServiceSchedule Kind = "serviceSchedule"
	KindPay             Kind = "pay"
	KindPaySchedule     Kind = "paySchedule"
	KindInvoice         Kind = "invoice"
	KindInvoiceSchedule Kind = "invoiceSchedule"
	KindPaymentMethod   Kind = "paymentMethod"
)

// Access pattern names shared across kinds.
const (
	PatternByOrganization    = "byOrganization"
	PatternBySlug            = "bySlug"
	PatternByStatus          = "byStatus"
	PatternByEmail           = "byEmail"
	PatternByCustomer        = "byCustomer"
	PatternByPropertyType    = "byPropertyType"
	PatternCatalog           = "catalog"
	PatternByProperty        = "byProperty"
	PatternByCostType        = "byCostType"
	PatternByPlan            = "byPlan"
	PatternByServiceType     = "byServiceType"
	PatternByServicer        = "byServicer"
	PatternByPropertyService = "byPropertyService"
	PatternByPaySchedule     = "byPaySchedule"
	PatternByID              = "byId"
)

func t(prefix string, attrs ...string) Template {
	return Template{Prefix: prefix, Attrs: attrs}
}

func primary(name string, pk, sk Template) Access {
	return Access{Name: name, Slot: SlotPrimary, Partition: pk, Sort: sk}
}

func gsi1(name string, pk, sk Template) Access {
	return Access{Name: name, Slot: SlotGSI1, Partition: pk, Sort: sk}
}

func gsi2(name string, pk, sk Template) Access {
	return Access{Name: name, Slot: SlotGSI2, Partition: pk, Sort: sk}
}

var active = map[string]string{"status": "active"}

// Definitions returns the layout of every kind in the table.
func Definitions() []Definition {
	const org = AttrOrganizationID
	return []Definition{
		{
			Kind: KindOrganization, Tag: "ORGANIZATION", Scope: ScopeRoot, IDAttr: org,
			Primary: primary(PatternByID, t("ORG", org), t("ORGANIZATION")),
			Indexes: []Access{
				gsi1(PatternBySlug, t("ORG_SLUG", "slug"), t("ORGANIZATION")),
				gsi2(PatternByStatus, t("ORG_STATUS", "status"), t("ORGANIZATION", org)),
			},
			Defaults: active,
		},
		{
			Kind: KindEmployee, Tag: "EMPLOYEE", Scope: ScopeTenant, IDAttr: "employeeId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("EMPLOYEE", "employeeId")),
			Indexes: []Access{
				gsi1(PatternByStatus, t("ORG", org, "status"), t("EMPLOYEE", "employeeId")),
				gsi2(PatternByEmail, t("EMAIL", org, "email"), t("EMPLOYEE", "employeeId")),
			},
			Defaults: active,
		},
		{
			Kind: KindCustomer, Tag: "CUSTOMER", Scope: ScopeTenant, IDAttr: "customerId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("CUSTOMER", "customerId")),
			Indexes: []Access{
				gsi1(PatternByStatus, t("ORG", org, "status"), t("CUSTOMER", "customerId")),
				gsi2(PatternByEmail, t("EMAIL", org, "email"), t("CUSTOMER", "customerId")),
			},
			Defaults: active,
		},
		{
			Kind: KindDelegate, Tag: "DELEGATE", Scope: ScopeTenant, IDAttr: "delegateId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("DELEGATE", "delegateId")),
			Indexes: []Access{
				gsi1(PatternByCustomer, t("CUSTOMER", org, "customerId"), t("DELEGATE", "delegateId")),
				gsi2(PatternByEmail, t("EMAIL", org, "email"), t("DELEGATE", "delegateId")),
			},
			Defaults: active,
		},
		{
			Kind: KindAccount, Tag: "ACCOUNT", Scope: ScopeTenant, IDAttr: "accountId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("ACCOUNT", "accountId")),
			Indexes: []Access{
				gsi1(PatternByCustomer, t("CUSTOMER", org, "customerId"), t("ACCOUNT", "accountId")),
				gsi2(PatternByStatus, t("ORG", org, "status"), t("ACCOUNT", "accountId")),
			},
			Defaults: map[string]string{"status": "open"},
		},
		{
			Kind: KindPropertyType, Tag: "PROPERTY_TYPE", Scope: ScopeTenant, IDAttr: "propertyTypeId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("PROPERTY_TYPE", "propertyTypeId")),
		},
		{
			Kind: KindProperty, Tag: "PROPERTY", Scope: ScopeGlobal, IDAttr: "propertyId",
			Primary: primary(PatternByID, t("PROPERTY", "propertyId"), t("PROPERTY")),
			Indexes: []Access{
				gsi1(PatternByCustomer, t("CUSTOMER", "customerId"), t("PROPERTY", "propertyId")),
				gsi2(PatternByPropertyType, t("PROPERTY_TYPE", "propertyTypeId"), t("PROPERTY", "propertyId")),
			},
			Defaults: active,
		},
		{
			Kind: KindServiceType, Tag: "SERVICE_TYPE", Scope: ScopeGlobal, IDAttr: "serviceTypeId",
			Primary: primary(PatternByID, t("SERVICE_TYPE", "serviceTypeId"), t("SERVICE_TYPE")),
			Indexes: []Access{
				gsi1(PatternCatalog, t("CATALOG"), t("SERVICE_TYPE", "serviceTypeId")),
			},
			Defaults: active,
		},
		{
			Kind: KindCostType, Tag: "COST_TYPE", Scope: ScopeGlobal, IDAttr: "costTypeId",
			Primary: primary(PatternByID, t("COST_TYPE", "costTypeId"), t("COST_TYPE")),
			Indexes: []Access{
				gsi1(PatternCatalog, t("CATALOG"), t("COST_TYPE", "costTypeId")),
			},
		},
		{
			Kind: KindCost, Tag: "COST", Scope: ScopeTenant, IDAttr: "costId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("COST", "costId")),
			Indexes: []Access{
				gsi1(PatternByProperty, t("PROPERTY", org, "propertyId"), t("COST", "incurredOn", "costId")),
				gsi2(PatternByCostType, t("COST_TYPE", org, "costTypeId"), t("COST", "costId")),
			},
		},
		{
			Kind: KindPlan, Tag: "PLAN", Scope: ScopeGlobal, IDAttr: "planId",
			Primary: primary(PatternByID, t("PLAN", "planId"), t("PLAN")),
			Indexes: []Access{
				gsi1(PatternByProperty, t("PROPERTY", "propertyId"), t("PLAN", "planId")),
				gsi2(PatternByStatus, t("STATUS", "status"), t("PLAN", "planId")),
			},
			Defaults: map[string]string{"status": "draft"},
		},
		{
			Kind: KindPlanService, Tag: "PLAN_SERVICE", Scope: ScopeTenant, IDAttr: "planServiceId",
			Primary: primary(PatternByPlan, t("ORG", org), t("PLAN_SERVICE", "planId", "planServiceId")),
			Indexes: []Access{
				gsi1(PatternByServiceType, t("SERVICE_TYPE", org, "serviceTypeId"), t("PLAN_SERVICE", "planServiceId")),
			},
		},
		{
			Kind: KindPropertyService, Tag: "PROPERTY_SERVICE", Scope: ScopeTenant, IDAttr: "propertyServiceId",
			Primary: primary(PatternByProperty, t("ORG", org), t("PROPERTY_SERVICE", "propertyId", "propertyServiceId")),
			Indexes: []Access{
				gsi1(PatternByServicer, t("SERVICER", org, "servicerId"), t("PROPERTY_SERVICE", "propertyServiceId")),
			},
			Defaults: active,
		},
		{
			Kind: KindServicer, Tag: "SERVICER", Scope: ScopeGlobal, IDAttr: "servicerId",
			Primary: primary(PatternByID, t("SERVICER", "servicerId"), t("SERVICER")),
			Indexes: []Access{
				gsi1(PatternByStatus, t("STATUS", "status"), t("SERVICER", "servicerId")),
				gsi2(PatternByEmail, t("EMAIL", "email"), t("SERVICER", "servicerId")),
			},
			Defaults: active,
		},
		{
			Kind: KindCapability, Tag: "CAPABILITY", Scope: ScopeTenant, IDAttr: "capabilityId",
			Primary: primary(PatternByServicer, t("ORG", org), t("CAPABILITY", "servicerId", "capabilityId")),
			Indexes: []Access{
				gsi1(PatternByServiceType, t("SERVICE_TYPE", org, "serviceTypeId"), t("CAPABILITY", "capabilityId")),
			},
		},
		{
			Kind: KindServiceSchedule, Tag: "SERVICE_SCHEDULE", Scope: ScopeTenant, IDAttr: "serviceScheduleId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("SERVICE_SCHEDULE", "serviceScheduleId")),
			Indexes: []Access{
				gsi1(PatternByPropertyService, t("PROPERTY_SERVICE", org, "propertyServiceId"), t("SERVICE_SCHEDULE", "scheduledDate", "serviceScheduleId")),
				gsi2(PatternByServicer, t("SERVICER", org, "servicerId"), t("SERVICE_SCHEDULE", "scheduledDate", "serviceScheduleId")),
			},
			Defaults: map[string]string{"status": "scheduled"},
		},
		{
			Kind: KindPay, Tag: "PAY", Scope: ScopeGlobal, IDAttr: "payId",
			Primary: primary(PatternByID, t("PAY", "payId"), t("PAY")),
			Indexes: []Access{
				gsi1(PatternByServicer, t("SERVICER", "servicerId"), t("PAY", "payDate", "payId")),
				gsi2(PatternByPaySchedule, t("PAY_SCHEDULE", "payScheduleId"), t("PAY", "payId")),
			},
			Defaults: map[string]string{"status": "pending"},
		},
		{
			Kind: KindPaySchedule, Tag: "PAY_SCHEDULE", Scope: ScopeGlobal, IDAttr: "payScheduleId",
			Primary: primary(PatternByID, t("PAY_SCHEDULE", "payScheduleId"), t("PAY_SCHEDULE")),
			Indexes: []Access{
				gsi1(PatternByServicer, t("SERVICER", "servicerId"), t("PAY_SCHEDULE", "payScheduleId")),
			},
			Defaults: active,
		},
		{
			Kind: KindInvoice, Tag: "INVOICE", Scope: ScopeTenant, IDAttr: "invoiceId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("INVOICE", "invoiceId")),
			Indexes: []Access{
				gsi1(PatternByCustomer, t("CUSTOMER", org, "customerId"), t("INVOICE", "issueDate", "invoiceId")),
				gsi2(PatternByStatus, t("ORG", org, "status"), t("INVOICE", "invoiceId")),
			},
			Defaults: map[string]string{"status": "draft"},
		},
		{
			Kind: KindInvoiceSchedule, Tag: "INVOICE_SCHEDULE", Scope: ScopeTenant, IDAttr: "invoiceScheduleId",
			Primary: primary(PatternByOrganization, t("ORG", org), t("INVOICE_SCHEDULE", "invoiceScheduleId")),
			Indexes: []Access{
				gsi1(PatternByCustomer, t("CUSTOMER", org, "customerId"), t("INVOICE_SCHEDULE", "invoiceScheduleId")),
			},
			Defaults: active,
		},
		{
			Kind: KindPaymentMethod, Tag: "PAYMENT_METHOD", Scope: ScopeGlobal, IDAttr: "paymentMethodId",
			Primary: primary(PatternByCustomer, t("CUSTOMER", "customerId"), t("PAYMENT_METHOD", "paymentMethodId")),
			Defaults: active,
		},
	}
}

// Default returns a registry holding every kind in the table.
func Default() *Registry {
	r := NewRegistry()
	for _, def := range Definitions() {
		r.MustRegister(def)
	}
	return r
}
