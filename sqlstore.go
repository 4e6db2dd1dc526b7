package auditable

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/moisespsena-go/tracederror"
	"github.com/pkg/errors"
)

// SQLCommon is the minimal database/sql surface SQLStore writes through.
type SQLCommon interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// SQLStore implements Store over database/sql. Attribute and condition names
// are converted to column names with ToDBName; columns are emitted in sorted
// order so the generated SQL is the same every time.
type SQLStore struct {
	db     SQLCommon
	Quoter Quoter
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, Quoter: DefaultQuoter}
}

func (this *SQLStore) Update(table string, attrs map[string]interface{}, cond Condition) (int64, error) {
	var (
		assignments []string
		conditions  []string
		args        []interface{}
	)

	for _, name := range sortedKeys(attrs) {
		assignments = append(assignments, Quote(this.Quoter, ToDBName(name))+" = ?")
		args = append(args, attrs[name])
	}
	for _, name := range sortedKeys(cond) {
		conditions = append(conditions, Quote(this.Quoter, ToDBName(name))+" = ?")
		args = append(args, cond[name])
	}

	query := fmt.Sprintf(
		"UPDATE %v SET %v WHERE %v",
		Quote(this.Quoter, table),
		strings.Join(assignments, ", "),
		strings.Join(conditions, " AND "),
	)
	log.Debugf("%s %v", query, args)

	result, err := this.db.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, query)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return rows, nil
}

func (this *SQLStore) Begin() (StoreTx, error) {
	db, ok := this.db.(*sql.DB)
	if !ok {
		return nil, ErrCantStartTransaction
	}
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	return &sqlStoreTx{SQLStore: SQLStore{db: tx, Quoter: this.Quoter}, tx: tx}, nil
}

// Transaction executes f inside a transaction, rolling back on error or
// panic and committing otherwise.
func (this *SQLStore) Transaction(f func(tx StoreTx) (err error)) (err error) {
	var tx StoreTx
	if tx, err = this.Begin(); err != nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			err = tracederror.New(errors.Wrap(r.(error), "transaction"))
		} else if err != nil {
			tx.Rollback()
			err = errors.Wrap(err, "transaction")
		} else {
			err = errors.Wrap(tx.Commit(), "commit")
		}
	}()
	return f(tx)
}

type sqlStoreTx struct {
	SQLStore
	tx *sql.Tx
}

func (this *sqlStoreTx) Commit() error {
	if this.tx == nil {
		return ErrInvalidTransaction
	}
	return this.tx.Commit()
}

func (this *sqlStoreTx) Rollback() error {
	if this.tx == nil {
		return ErrInvalidTransaction
	}
	return this.tx.Rollback()
}
