package auditable

import "sync"

const (
	EventBeforeCreate     = "beforeCreate"
	EventBeforeUpdate     = "beforeUpdate"
	EventBeforeDelete     = "beforeDelete"
	EventAfterDelete      = "afterDelete"
	EventBeforeSoftDelete = "beforeSoftDelete"
	EventAfterSoftDelete  = "afterSoftDelete"
)

// Event carries one lifecycle notification raised against an owner.
type Event struct {
	Name  string
	Owner Owner

	cancelable bool
	invalid    bool
	rows       int64
	err        error
}

func NewEvent(name string, owner Owner) *Event {
	return &Event{Name: name, Owner: owner}
}

// NewCancelableEvent creates an event whose observers may veto the operation
// that raised it.
func NewCancelableEvent(name string, owner Owner) *Event {
	return &Event{Name: name, Owner: owner, cancelable: true}
}

func (this *Event) Cancelable() bool {
	return this.cancelable
}

// Invalidate marks the operation that raised this event as vetoed. Only
// meaningful on cancelable events.
func (this *Event) Invalidate() {
	this.invalid = true
}

func (this *Event) Valid() bool {
	return !this.invalid
}

// Rows returns the affected row count recorded by an observer that performed
// a write on behalf of the event (see Behavior delete interception).
func (this *Event) Rows() int64 {
	return this.rows
}

func (this *Event) Err() error {
	return this.err
}

func (this *Event) SetError(err error) {
	this.err = err
}

type Observer = func(e *Event)

// Observers is a registry of event observers keyed by event name.
type Observers struct {
	m  map[string][]Observer
	mu sync.RWMutex
}

func (this *Observers) Register(name string, f ...Observer) {
	this.mu.Lock()
	defer this.mu.Unlock()

	if this.m == nil {
		this.m = map[string][]Observer{}
	}
	this.m[name] = append(this.m[name], f...)
}

// Publish calls the observers registered for e.Name in registration order.
// Returns false if a cancelable event was invalidated; remaining observers
// are not called.
func (this *Observers) Publish(e *Event) (ok bool) {
	this.mu.RLock()
	observers := this.m[e.Name]
	this.mu.RUnlock()

	for _, observer := range observers {
		observer(e)
		if e.cancelable && e.invalid {
			return false
		}
	}
	return true
}
