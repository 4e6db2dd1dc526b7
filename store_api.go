package auditable

// Condition is a conjunction of attribute equality tests.
type Condition map[string]interface{}

// Store is the persistence surface the behavior delegates writes to.
type Store interface {
	// Update sets attrs on the rows matching cond and returns the affected
	// row count.
	Update(table string, attrs map[string]interface{}, cond Condition) (int64, error)
}

// TransactionalStore is a Store able to scope writes to a transaction.
type TransactionalStore interface {
	Store
	Begin() (StoreTx, error)
}

// StoreTx is a transaction-scoped store.
type StoreTx interface {
	Store
	Commit() error
	Rollback() error
}
