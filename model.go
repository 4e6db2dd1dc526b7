package auditable

import (
	"fmt"
	"time"

	"github.com/moisespsena-go/bid"
)

// Model base model definition with a BID primary key, which could be
// embedded in your models
//    type Product struct {
//      auditable.Model
//    }
type Model struct {
	ID bid.BID
}

func (m *Model) GetID() bid.BID {
	return m.ID
}

func (m *Model) SetID(id bid.BID) {
	m.ID = id
}

type KeyStringSerial struct {
	ID string
}

func (p *KeyStringSerial) GetID() string {
	return p.ID
}

func (p *KeyStringSerial) SetID(value string) {
	p.ID = value
}

type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Timestamps) GetCreatedAt() time.Time {
	return t.CreatedAt
}

func (t *Timestamps) GetUpdatedAt() time.Time {
	return t.UpdatedAt
}

type Audited struct {
	CreatedByID string
	UpdatedByID string
}

func (a *Audited) SetCreatedBy(createdBy interface{}) {
	a.CreatedByID = fmt.Sprintf("%v", createdBy)
}

func (a *Audited) GetCreatedBy() string {
	return a.CreatedByID
}

func (a *Audited) SetUpdatedBy(updatedBy interface{}) {
	a.UpdatedByID = fmt.Sprintf("%v", updatedBy)
}

func (a *Audited) GetUpdatedBy() string {
	return a.UpdatedByID
}

type SoftDelete struct {
	DeletedAt *time.Time `sql:"index"`
}

func (d *SoftDelete) GetDeletedAt() *time.Time {
	return d.DeletedAt
}

type SoftDeleteAudited struct {
	SoftDelete
	DeletedByID *string
}

func (a *SoftDeleteAudited) SetDeletedBy(deletedBy interface{}) {
	if deletedBy == nil {
		a.DeletedByID = nil
	} else {
		v := fmt.Sprintf("%v", deletedBy)
		a.DeletedByID = &v
	}
}

func (a *SoftDeleteAudited) GetDeletedBy() *string {
	return a.DeletedByID
}

type AuditedModel struct {
	KeyStringSerial
	Audited
	Timestamps
}

type SoftDeleteAuditedModel struct {
	AuditedModel
	SoftDeleteAudited
}

// BindTimestamps registers the Timestamps attributes on r.
func BindTimestamps(r *Record, m *Timestamps) {
	r.RegisterAttributeFuncs(FieldCreatedAt,
		func() interface{} { return m.CreatedAt },
		func(value interface{}) { m.CreatedAt = toTime(value) },
	)
	r.RegisterAttributeFuncs(FieldUpdatedAt,
		func() interface{} { return m.UpdatedAt },
		func(value interface{}) { m.UpdatedAt = toTime(value) },
	)
}

// BindAudited registers the Audited attributes on r.
func BindAudited(r *Record, m *Audited) {
	r.RegisterAttributeFuncs(FieldCreatedByID,
		func() interface{} { return m.CreatedByID },
		func(value interface{}) { m.SetCreatedBy(value) },
	)
	r.RegisterAttributeFuncs(FieldUpdatedByID,
		func() interface{} { return m.UpdatedByID },
		func(value interface{}) { m.SetUpdatedBy(value) },
	)
}

// BindSoftDeleteAudited registers the soft-delete attributes on r.
func BindSoftDeleteAudited(r *Record, m *SoftDeleteAudited) {
	r.RegisterAttributeFuncs(FieldDeletedAt,
		func() interface{} { return m.DeletedAt },
		func(value interface{}) {
			switch t := value.(type) {
			case nil:
				m.DeletedAt = nil
			case time.Time:
				m.DeletedAt = &t
			case *time.Time:
				m.DeletedAt = t
			}
		},
	)
	r.RegisterAttributeFuncs(FieldDeletedByID,
		func() interface{} { return m.DeletedByID },
		func(value interface{}) { m.SetDeletedBy(value) },
	)
}

// BindAuditedModel registers the AuditedModel attributes on r and declares
// its primary key.
func BindAuditedModel(r *Record, m *AuditedModel) {
	r.RegisterAttributeFuncs("ID",
		func() interface{} { return m.ID },
		func(value interface{}) { m.SetID(fmt.Sprintf("%v", value)) },
	)
	r.PrimaryKey("ID")
	BindAudited(r, &m.Audited)
	BindTimestamps(r, &m.Timestamps)
}

// BindSoftDeleteAuditedModel registers the SoftDeleteAuditedModel attributes
// on r and declares its primary key.
func BindSoftDeleteAuditedModel(r *Record, m *SoftDeleteAuditedModel) {
	BindAuditedModel(r, &m.AuditedModel)
	BindSoftDeleteAudited(r, &m.SoftDeleteAudited)
}

func toTime(value interface{}) time.Time {
	switch t := value.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}
