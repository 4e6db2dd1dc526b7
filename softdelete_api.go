package auditable

import "time"

type SoftDeleter interface {
	GetDeletedAt() *time.Time
}

type SoftDeleteAuditor interface {
	SoftDeleter
	SetDeletedBy(deletedBy interface{})
	GetDeletedBy() *string
}
