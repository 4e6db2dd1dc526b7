package auditable

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Attribute is a get/set accessor pair for one named slot of an owner,
// resolved at configuration time.
type Attribute interface {
	Get() interface{}
	Set(value interface{})
}

// AttributeFuncs adapts a function pair to Attribute.
type AttributeFuncs struct {
	Getter func() interface{}
	Setter func(value interface{})
}

func (this AttributeFuncs) Get() interface{} {
	return this.Getter()
}

func (this AttributeFuncs) Set(value interface{}) {
	this.Setter(value)
}

// Owner is the record surface the behavior requires. The owner owns the
// behavior's lifetime, not vice versa.
type Owner interface {
	Table() string
	// Attribute resolves a named slot. Unknown names report ok=false and the
	// behavior silently skips them.
	Attribute(name string) (attr Attribute, ok bool)
	// DirtyAttributes returns the attributes whose in-memory value differs
	// from the last persisted one.
	DirtyAttributes() map[string]interface{}
	// OldPrimaryKey returns the primary key attribute name and its last
	// persisted value.
	OldPrimaryKey() (name string, value interface{})
	// OptimisticLock returns the declared lock attribute and its current
	// value, or ok=false when the owner declares none.
	OptimisticLock() (name string, value int64, ok bool)
	// Transactional reports whether op runs inside a transaction on this
	// owner's storage.
	Transactional(op Operation) bool
	// SyncPersisted assigns attrs to the owner's in-memory attributes and
	// records them as the last persisted values.
	SyncPersisted(attrs map[string]interface{})
	Events() *Observers
	Store() Store
}

// Optional owner hooks. Consulted when the owner implements them.
type (
	BeforeDeleter interface {
		BeforeDelete() bool
	}

	AfterDeleter interface {
		AfterDelete()
	}

	BeforeSoftDeleter interface {
		BeforeSoftDelete() bool
	}

	AfterSoftDeleter interface {
		AfterSoftDelete()
	}
)

// ActorProvider yields the ambient current-actor identifier. Absent in
// non-interactive contexts.
type ActorProvider interface {
	CurrentActor() (id interface{}, ok bool)
}

type ActorProviderFunc func() (interface{}, bool)

func (f ActorProviderFunc) CurrentActor() (interface{}, bool) {
	return f()
}
