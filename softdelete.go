package auditable

// SoftDelete rewrites a physical delete of the owner into an update marking
// it deleted. It returns the affected row count; zero rows is a valid
// successful outcome. Guard rejection (owner pre-hook or observer veto)
// returns ErrSoftDeleteRejected with no write performed. A lost optimistic
// lock surfaces as *StaleObjectError.
//
// When the owner declares delete or update operations transactional and its
// store supports transactions, the whole operation runs inside one: rolled
// back on failure, committed otherwise. Panics raised mid-write trigger
// rollback and re-panic with the original value.
func (this *Behavior) SoftDelete() (rows int64, err error) {
	del := func(store Store) (int64, error) {
		if hook, ok := this.owner.(BeforeDeleter); ok && !hook.BeforeDelete() {
			return 0, ErrSoftDeleteRejected
		}
		rows, err := this.softDeleteInternal(store)
		if err != nil {
			return rows, err
		}
		if hook, ok := this.owner.(AfterDeleter); ok {
			hook.AfterDelete()
		}
		return rows, nil
	}

	store := this.owner.Store()
	if !this.owner.Transactional(OpDelete) && !this.owner.Transactional(OpUpdate) {
		return del(store)
	}
	ts, ok := store.(TransactionalStore)
	if !ok {
		return del(store)
	}

	tx, err := ts.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("rollback after panic:", rbErr)
			}
			panic(r)
		}
	}()

	if rows, err = del(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback:", rbErr)
		}
		return rows, err
	}
	if err = tx.Commit(); err != nil {
		return rows, err
	}
	return rows, nil
}

// softDeleteInternal performs the guarded soft-delete write against store.
func (this *Behavior) softDeleteInternal(store Store) (int64, error) {
	e := NewCancelableEvent(EventBeforeSoftDelete, this.owner)
	if !this.beforeSoftDelete(e) {
		return 0, ErrSoftDeleteRejected
	}

	attrs := map[string]interface{}{}
	for name, value := range this.owner.DirtyAttributes() {
		attrs[name] = value
	}
	this.stamp(e, func(name string, attr Attribute, value interface{}) {
		attrs[name] = value
	})

	rows, err := this.updateAttributes(store, attrs)
	if err != nil {
		return rows, err
	}
	this.afterSoftDelete()
	return rows, nil
}

// beforeSoftDelete runs the owner pre-hook, then the cancelable observer
// notification. Either may reject.
func (this *Behavior) beforeSoftDelete(e *Event) bool {
	if hook, ok := this.owner.(BeforeSoftDeleter); ok && !hook.BeforeSoftDelete() {
		return false
	}
	return this.owner.Events().Publish(e)
}

// afterSoftDelete runs the owner post-hook, then a non-cancelable observer
// notification.
func (this *Behavior) afterSoftDelete() {
	if hook, ok := this.owner.(AfterSoftDeleter); ok {
		hook.AfterSoftDelete()
	}
	this.owner.Events().Publish(NewEvent(EventAfterSoftDelete, this.owner))
}

// interceptDelete redirects a physical delete request to the soft-delete
// write and invalidates the original delete so it never executes.
func (this *Behavior) interceptDelete(e *Event) {
	rows, err := this.softDeleteInternal(this.owner.Store())
	e.rows = rows
	if err != nil {
		e.SetError(err)
	}
	e.Invalidate()
}
