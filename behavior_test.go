package auditable_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moisespsena-go/auditable"
)

type note struct {
	auditable.SoftDeleteAuditedModel
	Body    string
	Version int64
}

func newNoteRecord(store auditable.Store, n *note) *auditable.Record {
	r := auditable.NewRecord("notes", store)
	auditable.BindSoftDeleteAuditedModel(r, &n.SoftDeleteAuditedModel)
	r.RegisterAttributeFuncs("Body",
		func() interface{} { return n.Body },
		func(value interface{}) { n.Body = value.(string) },
	)
	r.RegisterAttributeFuncs("Version",
		func() interface{} { return n.Version },
		func(value interface{}) {
			switch v := value.(type) {
			case int64:
				n.Version = v
			case int:
				n.Version = int64(v)
			}
		},
	)
	return r
}

type fakeUpdate struct {
	table string
	attrs map[string]interface{}
	cond  auditable.Condition
}

// fakeStore records updates and reports a scripted affected-row count.
type fakeStore struct {
	updates   []fakeUpdate
	rows      int64
	err       error
	panicWith interface{}

	begun      int
	committed  int
	rolledBack int
}

func (s *fakeStore) Update(table string, attrs map[string]interface{}, cond auditable.Condition) (int64, error) {
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	if s.err != nil {
		return 0, s.err
	}
	s.updates = append(s.updates, fakeUpdate{table: table, attrs: attrs, cond: cond})
	return s.rows, nil
}

func (s *fakeStore) Begin() (auditable.StoreTx, error) {
	s.begun++
	return &fakeTx{s}, nil
}

type fakeTx struct {
	*fakeStore
}

func (t *fakeTx) Commit() error {
	t.committed++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack++
	return nil
}

func TestStampOnCreate(t *testing.T) {
	n := &note{}
	n.ID = "n1"
	r := newNoteRecord(&fakeStore{}, n).Load()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	actor := uuid.NewString()

	b := auditable.New(r)
	b.TimestampSource = auditable.FixedTimestamp(now)
	b.Actor = auditable.ActorProviderFunc(func() (interface{}, bool) { return actor, true })

	r.Raise(auditable.EventBeforeCreate)

	assert.Equal(t, now, n.CreatedAt)
	assert.Equal(t, now, n.UpdatedAt)
	assert.Equal(t, actor, n.CreatedByID)
	assert.Equal(t, actor, n.UpdatedByID)
	assert.Nil(t, n.DeletedAt)
	assert.Nil(t, n.DeletedByID)
}

func TestStampOnCreateWithoutActor(t *testing.T) {
	n := &note{}
	r := newNoteRecord(&fakeStore{}, n).Load()
	auditable.New(r)

	r.Raise(auditable.EventBeforeCreate)

	assert.False(t, n.CreatedAt.IsZero())
	assert.Empty(t, n.CreatedByID)
	assert.Empty(t, n.UpdatedByID)
}

func TestSkipUpdateOnClean(t *testing.T) {
	n := &note{}
	n.ID = "n1"
	n.Body = "draft"
	r := newNoteRecord(&fakeStore{}, n).Load()
	auditable.New(r)

	r.Raise(auditable.EventBeforeUpdate)
	assert.True(t, n.UpdatedAt.IsZero(), "clean record must not be stamped")

	n.Body = "edited"
	r.Raise(auditable.EventBeforeUpdate)
	assert.False(t, n.UpdatedAt.IsZero())
}

func TestStampCleanUpdateWhenSkipDisabled(t *testing.T) {
	n := &note{}
	r := newNoteRecord(&fakeStore{}, n).Load()
	b := auditable.New(r)
	b.SkipUpdateOnClean = false

	r.Raise(auditable.EventBeforeUpdate)
	assert.False(t, n.UpdatedAt.IsZero())
}

func TestPreserveNonEmptyValues(t *testing.T) {
	existing := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	n := &note{}
	n.CreatedAt = existing
	r := newNoteRecord(&fakeStore{}, n)

	b := auditable.New(r)
	b.PreserveNonEmptyValues = true
	b.TimestampSource = auditable.FixedTimestamp(now)

	r.Raise(auditable.EventBeforeCreate)

	assert.Equal(t, existing, n.CreatedAt, "non-empty value must remain unchanged")
	assert.Equal(t, now, n.UpdatedAt)
}

func TestTimestampSourceSeesEvent(t *testing.T) {
	n := &note{}
	r := newNoteRecord(&fakeStore{}, n).Load()

	var seen string
	b := auditable.New(r)
	b.TimestampSource = func(e *auditable.Event) interface{} {
		seen = e.Name
		return time.Now()
	}

	r.Raise(auditable.EventBeforeCreate)
	assert.Equal(t, auditable.EventBeforeCreate, seen)
}

func TestCustomEventMap(t *testing.T) {
	n := &note{}
	r := newNoteRecord(&fakeStore{}, n).Load()

	b := auditable.NewWithMap(r, auditable.EventAttributeMap{
		"archive": {{Name: "UpdatedAt", Kind: auditable.Timestamp}},
	})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b.TimestampSource = auditable.FixedTimestamp(now)

	r.Raise("archive")
	assert.Equal(t, now, n.UpdatedAt)
	assert.True(t, n.CreatedAt.IsZero(), "unmapped slots must stay untouched")
}

func TestUnknownAttributeNamesAreSkipped(t *testing.T) {
	n := &note{}
	r := newNoteRecord(&fakeStore{}, n).Load()

	auditable.NewWithMap(r, auditable.EventAttributeMap{
		auditable.EventBeforeCreate: {
			{Name: "NoSuchField", Kind: auditable.Timestamp},
			{Name: "CreatedAt", Kind: auditable.Timestamp},
		},
	})

	require.NotPanics(t, func() {
		r.Raise(auditable.EventBeforeCreate)
	})
	assert.False(t, n.CreatedAt.IsZero())
}

func TestDisabledSlot(t *testing.T) {
	n := &note{}
	r := newNoteRecord(&fakeStore{}, n).Load()

	slots := auditable.DefaultSlots()
	slots.UpdatedAt = ""
	auditable.NewWithSlots(r, slots)

	r.Raise(auditable.EventBeforeCreate)
	assert.False(t, n.CreatedAt.IsZero())
	assert.True(t, n.UpdatedAt.IsZero())
}

func TestDirtyAttributes(t *testing.T) {
	n := &note{}
	n.ID = "n1"
	n.Body = "draft"
	r := newNoteRecord(&fakeStore{}, n).Load()

	assert.Empty(t, r.DirtyAttributes())

	n.Body = "edited"
	dirty := r.DirtyAttributes()
	require.Len(t, dirty, 1)
	assert.Equal(t, "edited", dirty["Body"])
}
