package entity

// Status is the lifecycle state of a record. Each kind accepts its own subset.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusSuspended  Status = "suspended"
	StatusTerminated Status = "terminated"
	StatusDraft      Status = "draft"
	StatusCancelled  Status = "cancelled"
	StatusPaused     Status = "paused"
	StatusScheduled  Status = "scheduled"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusVoid       Status = "void"
	StatusIssued     Status = "issued"
	StatusOverdue    Status = "overdue"
	StatusOpen       Status = "open"
	StatusClosed     Status = "closed"
	StatusDelinquent Status = "delinquent"
	StatusExpired    Status = "expired"
)

// Role is an employee's role within an organization.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleTech    Role = "tech"
	RoleOffice  Role = "office"
)

// Frequency is a billing or pay cadence.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// CostCategory groups cost types.
type CostCategory string

const (
	CostCategoryLabor     CostCategory = "labor"
	CostCategoryMaterial  CostCategory = "material"
	CostCategoryEquipment CostCategory = "equipment"
	CostCategoryOther     CostCategory = "other"
)

// PaymentType is the instrument behind a payment method.
type PaymentType string

const (
	PaymentTypeCard  PaymentType = "card"
	PaymentTypeACH   PaymentType = "ach"
	PaymentTypeCheck PaymentType = "check"
	PaymentTypeCash  PaymentType = "cash"
)

// Level is a servicer's proficiency for a service type.
type Level string

const (
	LevelTrainee  Level = "trainee"
	LevelStandard Level = "standard"
	LevelExpert   Level = "expert"
)
