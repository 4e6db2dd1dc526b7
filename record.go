package auditable

import "reflect"

// Record is a ready-made Owner backed by attribute accessors registered at
// construction time. Dirty attributes are computed against the snapshot taken
// by Load and refreshed by SyncPersisted.
type Record struct {
	table         string
	store         Store
	attrs         map[string]Attribute
	persisted     map[string]interface{}
	pkName        string
	oldPK         interface{}
	lockName      string
	transactional map[Operation]bool
	events        Observers
}

func NewRecord(table string, store Store) *Record {
	return &Record{
		table:     table,
		store:     store,
		attrs:     map[string]Attribute{},
		persisted: map[string]interface{}{},
	}
}

// RegisterAttribute binds name to an accessor pair.
func (this *Record) RegisterAttribute(name string, attr Attribute) *Record {
	this.attrs[name] = attr
	return this
}

func (this *Record) RegisterAttributeFuncs(name string, getter func() interface{}, setter func(interface{})) *Record {
	return this.RegisterAttribute(name, AttributeFuncs{Getter: getter, Setter: setter})
}

// PrimaryKey declares the primary key attribute.
func (this *Record) PrimaryKey(name string) *Record {
	this.pkName = name
	return this
}

// LockField declares the optimistic lock attribute.
func (this *Record) LockField(name string) *Record {
	this.lockName = name
	return this
}

// TransactionalOps declares which operations run inside a transaction.
func (this *Record) TransactionalOps(ops ...Operation) *Record {
	if this.transactional == nil {
		this.transactional = map[Operation]bool{}
	}
	for _, op := range ops {
		this.transactional[op] = true
	}
	return this
}

// Load snapshots the current attribute values as the last persisted state
// and captures the old primary key.
func (this *Record) Load() *Record {
	for name, attr := range this.attrs {
		this.persisted[name] = attr.Get()
	}
	if pk, ok := this.attrs[this.pkName]; ok {
		this.oldPK = pk.Get()
	}
	return this
}

func (this *Record) Table() string {
	return this.table
}

func (this *Record) Attribute(name string) (Attribute, bool) {
	attr, ok := this.attrs[name]
	return attr, ok
}

// Get returns the current value of a named attribute, or nil when unknown.
func (this *Record) Get(name string) interface{} {
	if attr, ok := this.attrs[name]; ok {
		return attr.Get()
	}
	return nil
}

// Set assigns a named attribute, silently no-oping on unknown names.
func (this *Record) Set(name string, value interface{}) *Record {
	if attr, ok := this.attrs[name]; ok {
		attr.Set(value)
	}
	return this
}

func (this *Record) DirtyAttributes() map[string]interface{} {
	dirty := map[string]interface{}{}
	for name, attr := range this.attrs {
		if name == this.pkName {
			continue
		}
		current := attr.Get()
		if !reflect.DeepEqual(current, this.persisted[name]) {
			dirty[name] = current
		}
	}
	return dirty
}

func (this *Record) OldPrimaryKey() (string, interface{}) {
	return this.pkName, this.oldPK
}

func (this *Record) OptimisticLock() (name string, value int64, ok bool) {
	if this.lockName == "" {
		return "", 0, false
	}
	attr, found := this.attrs[this.lockName]
	if !found {
		return "", 0, false
	}
	value, ok = toInt64(attr.Get())
	if !ok {
		return "", 0, false
	}
	return this.lockName, value, true
}

func (this *Record) Transactional(op Operation) bool {
	return this.transactional[op]
}

func (this *Record) SyncPersisted(attrs map[string]interface{}) {
	for name, value := range attrs {
		if attr, ok := this.attrs[name]; ok {
			attr.Set(value)
			this.persisted[name] = attr.Get()
		}
	}
	if pk, ok := attrs[this.pkName]; ok {
		this.oldPK = pk
	}
}

func (this *Record) Events() *Observers {
	return &this.events
}

func (this *Record) Store() Store {
	return this.store
}

// Raise publishes a lifecycle event against the record and returns it.
func (this *Record) Raise(name string) *Event {
	e := NewEvent(name, this)
	this.events.Publish(e)
	return e
}

// RaiseCancelable publishes a cancelable lifecycle event against the record
// and returns it; inspect Valid, Rows and Err for the outcome.
func (this *Record) RaiseCancelable(name string) *Event {
	e := NewCancelableEvent(name, this)
	this.events.Publish(e)
	return e
}
