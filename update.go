package auditable

// UpdateAttributes persists attrs for the owner, honoring its optimistic
// lock. Without a lock field the write is an unconditional update by the old
// primary key. With one, the write condition also matches the current lock
// value and the written attributes carry the bumped one; zero matched rows
// raise *StaleObjectError and leave the owner untouched. On success the
// owner's in-memory attributes and last-persisted bookkeeping are synced to
// what was written.
func (this *Behavior) UpdateAttributes(attrs map[string]interface{}) (int64, error) {
	return this.updateAttributes(this.owner.Store(), attrs)
}

func (this *Behavior) updateAttributes(store Store, attrs map[string]interface{}) (int64, error) {
	if len(attrs) == 0 {
		return 0, nil
	}

	pkName, pkValue := this.owner.OldPrimaryKey()

	lockName, lockValue, locked := this.owner.OptimisticLock()
	if !locked {
		rows, err := store.Update(this.owner.Table(), attrs, Condition{pkName: pkValue})
		if err != nil {
			return 0, err
		}
		this.owner.SyncPersisted(attrs)
		return rows, nil
	}

	write := make(map[string]interface{}, len(attrs)+1)
	for name, value := range attrs {
		write[name] = value
	}
	write[lockName] = lockValue + 1

	rows, err := store.Update(this.owner.Table(), write, Condition{
		pkName:   pkValue,
		lockName: lockValue,
	})
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, &StaleObjectError{Table: this.owner.Table(), PrimaryKey: pkValue}
	}
	this.owner.SyncPersisted(write)
	return rows, nil
}
