package auditable

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSoftDeleteRejected soft delete vetoed by an owner pre-hook or an
	// observer. A normal negative result, not a storage failure.
	ErrSoftDeleteRejected = errors.New("soft delete rejected")
	// ErrInvalidTransaction invalid transaction when you are trying to `Commit` or `Rollback`
	ErrInvalidTransaction = errors.New("no valid transaction")
	// ErrCantStartTransaction can't start transaction when you are trying to start one with `Begin`
	ErrCantStartTransaction = errors.New("can't start transaction")
)

// StaleObjectError is raised when an optimistic-locked update matches zero
// rows: the row was concurrently modified or deleted between read and write.
// Never retried internally.
type StaleObjectError struct {
	Table      string
	PrimaryKey interface{}
}

func (e *StaleObjectError) Error() string {
	return fmt.Sprintf("stale object: %v[%v] was concurrently modified or deleted", e.Table, e.PrimaryKey)
}

// Errors contains all happened errors
type Errors []error

func WalkErr(cb func(err error) (stop bool), errs ...error) (stop bool) {
	for _, err := range errs {
		if err == nil {
			continue
		}

		if cb(err) {
			return true
		}

		if err, ok := err.(interface{ Err() error }); ok {
			if WalkErr(cb, err.Err()) {
				return true
			}
		}

		if err, ok := err.(interface{ Cause() error }); ok {
			if WalkErr(cb, err.Cause()) {
				return true
			}
		} else if err, ok := err.(interface{ Unwrap() error }); ok {
			if WalkErr(cb, err.Unwrap()) {
				return true
			}
		}

		if errs, ok := err.(Errors); ok {
			if WalkErr(cb, errs...) {
				return true
			}
		} else if errs, ok := err.(interface{ GetErrors() []error }); ok {
			if WalkErr(cb, errs.GetErrors()...) {
				return true
			}
		}
	}
	return false
}

func IsError(expected error, err ...error) (is bool) {
	return WalkErr(func(err error) (stop bool) {
		return err == expected
	}, err...)
}

// IsStaleObjectError returns whether err carries a *StaleObjectError.
func IsStaleObjectError(err error) (is bool) {
	WalkErr(func(err error) (stop bool) {
		_, is = err.(*StaleObjectError)
		return is
	}, err)
	return
}

// IsSoftDeleteRejected returns whether err carries ErrSoftDeleteRejected.
func IsSoftDeleteRejected(err error) bool {
	return IsError(ErrSoftDeleteRejected, err)
}

// GetErrors gets all happened errors
func (errs Errors) GetErrors() []error {
	return errs
}

// Add adds an error
func (errs Errors) Add(newErrors ...error) Errors {
	for _, err := range newErrors {
		if err == nil {
			continue
		}

		if errors, ok := err.(Errors); ok {
			errs = errs.Add(errors...)
		} else {
			ok = true
			for _, e := range errs {
				if err == e {
					ok = false
				}
			}
			if ok {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

// Error format happened errors
func (errs Errors) Error() string {
	var errors = []string{}
	for _, e := range errs {
		errors = append(errors, e.Error())
	}
	return strings.Join(errors, "; ")
}
