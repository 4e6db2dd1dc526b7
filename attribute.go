package auditable

const (
	FieldCreatedAt   = "CreatedAt"
	FieldUpdatedAt   = "UpdatedAt"
	FieldDeletedAt   = "DeletedAt"
	FieldCreatedByID = "CreatedByID"
	FieldUpdatedByID = "UpdatedByID"
	FieldDeletedByID = "DeletedByID"
)

// SlotKind selects the value source of an audit slot.
type SlotKind uint8

const (
	Timestamp SlotKind = iota
	Actor
)

// AttributeSpec names one audit slot and how to fill it.
type AttributeSpec struct {
	Name string
	Kind SlotKind
}

// EventAttributeMap maps an event name to the ordered slots filled when the
// event fires.
type EventAttributeMap map[string][]AttributeSpec

// Slots is the full set of audit slots a behavior may fill. An empty name
// disables the slot.
type Slots struct {
	CreatedAt string
	UpdatedAt string
	DeletedAt string
	CreatedBy string
	UpdatedBy string
	DeletedBy string
}

func DefaultSlots() Slots {
	return Slots{
		CreatedAt: FieldCreatedAt,
		UpdatedAt: FieldUpdatedAt,
		DeletedAt: FieldDeletedAt,
		CreatedBy: FieldCreatedByID,
		UpdatedBy: FieldUpdatedByID,
		DeletedBy: FieldDeletedByID,
	}
}

// EventMap builds the default event wiring from the enabled slots: create
// fills created+updated, update fills updated, soft delete fills deleted.
func (this Slots) EventMap() EventAttributeMap {
	m := EventAttributeMap{}
	add := func(event, name string, kind SlotKind) {
		if name != "" {
			m[event] = append(m[event], AttributeSpec{Name: name, Kind: kind})
		}
	}
	add(EventBeforeCreate, this.CreatedAt, Timestamp)
	add(EventBeforeCreate, this.UpdatedAt, Timestamp)
	add(EventBeforeCreate, this.CreatedBy, Actor)
	add(EventBeforeCreate, this.UpdatedBy, Actor)
	add(EventBeforeUpdate, this.UpdatedAt, Timestamp)
	add(EventBeforeUpdate, this.UpdatedBy, Actor)
	add(EventBeforeSoftDelete, this.DeletedAt, Timestamp)
	add(EventBeforeSoftDelete, this.DeletedBy, Actor)
	return m
}
