package auditable

// Behavior stamps audit attributes on the owner's lifecycle events and
// rewrites physical deletes into soft deletes. Configure it right after
// construction; the configuration is treated as immutable afterwards.
type Behavior struct {
	owner Owner

	// EventAttributes maps event names to the slots stamped on them.
	EventAttributes EventAttributeMap
	// SkipUpdateOnClean suppresses stamping on update events when the owner
	// has no dirty attributes.
	SkipUpdateOnClean bool
	// PreserveNonEmptyValues keeps attributes that already hold a non-blank
	// value.
	PreserveNonEmptyValues bool
	// TimestampSource overrides the stamped time value. Defaults to NowFunc.
	TimestampSource func(e *Event) interface{}
	// ActorSource overrides the stamped actor value. Defaults to Actor.
	ActorSource func(e *Event) (interface{}, bool)
	// Actor is the ambient current-actor context. When nil and no
	// ActorSource is set, actor slots are left untouched.
	Actor ActorProvider
}

// New creates a behavior with the default slot wiring and subscribes it to
// the owner's events.
func New(owner Owner) *Behavior {
	return NewWithSlots(owner, DefaultSlots())
}

func NewWithSlots(owner Owner, slots Slots) *Behavior {
	return NewWithMap(owner, slots.EventMap())
}

func NewWithMap(owner Owner, events EventAttributeMap) *Behavior {
	this := &Behavior{
		owner:             owner,
		EventAttributes:   events,
		SkipUpdateOnClean: true,
	}
	this.install()
	return this
}

// install subscribes the behavior to every configured stamping event and
// intercepts the owner's physical delete. The soft-delete event is stamped
// explicitly after its guards pass, not through the subscription.
func (this *Behavior) install() {
	events := this.owner.Events()
	for name := range this.EventAttributes {
		if name == EventBeforeSoftDelete {
			continue
		}
		events.Register(name, this.Handle)
	}
	events.Register(EventBeforeDelete, this.interceptDelete)
}

// Handle stamps the attributes configured for the event into the owner's
// in-memory attribute set. It does not persist.
func (this *Behavior) Handle(e *Event) {
	if e.Name == EventBeforeUpdate && this.SkipUpdateOnClean && len(this.owner.DirtyAttributes()) == 0 {
		return
	}
	this.stamp(e, func(name string, attr Attribute, value interface{}) {
		attr.Set(value)
	})
}

// stamp resolves the configured slots for the event and hands each computed
// value to assign. Timestamp and actor values are computed lazily, once.
func (this *Behavior) stamp(e *Event, assign func(name string, attr Attribute, value interface{})) {
	specs := this.EventAttributes[e.Name]
	if len(specs) == 0 {
		return
	}

	var (
		now             interface{}
		actor           interface{}
		hasActor, asked bool
	)

	for _, spec := range specs {
		attr, ok := this.owner.Attribute(spec.Name)
		if !ok {
			continue
		}
		if this.PreserveNonEmptyValues && !IsBlankValue(attr.Get()) {
			continue
		}
		switch spec.Kind {
		case Timestamp:
			if now == nil {
				now = this.timestamp(e)
			}
			assign(spec.Name, attr, now)
		case Actor:
			if !asked {
				actor, hasActor = this.actor(e)
				asked = true
			}
			if hasActor {
				assign(spec.Name, attr, actor)
			}
		}
	}
}

func (this *Behavior) timestamp(e *Event) interface{} {
	if this.TimestampSource != nil {
		return this.TimestampSource(e)
	}
	return NowFunc()
}

func (this *Behavior) actor(e *Event) (interface{}, bool) {
	if this.ActorSource != nil {
		return this.ActorSource(e)
	}
	if this.Actor != nil {
		return this.Actor.CurrentActor()
	}
	return nil, false
}

// FixedTimestamp returns a timestamp source that always yields value.
func FixedTimestamp(value interface{}) func(*Event) interface{} {
	return func(*Event) interface{} {
		return value
	}
}

// FixedActor returns an actor source that always yields id.
func FixedActor(id interface{}) func(*Event) (interface{}, bool) {
	return func(*Event) (interface{}, bool) {
		return id, true
	}
}
