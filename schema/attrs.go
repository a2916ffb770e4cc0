package schema

// Physical attribute names shared by every record in the table.
const (
	AttrPK         = "pk"
	AttrSK         = "sk"
	AttrGSI1PK     = "gsi1pk"
	AttrGSI1SK     = "gsi1sk"
	AttrGSI2PK     = "gsi2pk"
	AttrGSI2SK     = "gsi2sk"
	AttrEntityType = "entityType"

	AttrOrganizationID = "organizationId"
	AttrCreatedAt      = "createdAt"
	AttrUpdatedAt      = "updatedAt"
)

// Index names as provisioned on the table.
const (
	IndexGSI1 = "gsi1"
	IndexGSI2 = "gsi2"
)

// Separator joins the prefix and values of a rendered key.
const Separator = "#"

// TimestampLayout is the canonical wire format for audit timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Slot identifies the physical key pair an access pattern reads from.
type Slot int

const (
	SlotPrimary Slot = iota
	SlotGSI1
	SlotGSI2
)

// IndexName returns the DynamoDB index name, or "" for the base table.
func (s Slot) IndexName() string {
	switch s {
	case SlotGSI1:
		return IndexGSI1
	case SlotGSI2:
		return IndexGSI2
	default:
		return ""
	}
}

// PartitionAttr returns the partition key attribute for the slot.
func (s Slot) PartitionAttr() string {
	switch s {
	case SlotGSI1:
		return AttrGSI1PK
	case SlotGSI2:
		return AttrGSI2PK
	default:
		return AttrPK
	}
}

// SortAttr returns the sort key attribute for the slot.
func (s Slot) SortAttr() string {
	switch s {
	case SlotGSI1:
		return AttrGSI1SK
	case SlotGSI2:
		return AttrGSI2SK
	default:
		return AttrSK
	}
}

func (s Slot) String() string {
	if name := s.IndexName(); name != "" {
		return name
	}
	return "primary"
}

// ReservedAttrs lists the attributes owned by the key layer. They never round-trip
// through domain records.
func ReservedAttrs() []string {
	return []string{AttrPK, AttrSK, AttrGSI1PK, AttrGSI1SK, AttrGSI2PK, AttrGSI2SK, AttrEntityType}
}

// IsReserved reports whether name is owned by the key layer.
func IsReserved(name string) bool {
	for _, r := range ReservedAttrs() {
		if r == name {
			return true
		}
	}
	return false
}

// Key is a rendered primary key.
type Key struct {
	PK string
	SK string
}

func (k Key) String() string {
	return k.PK + " / " + k.SK
}
