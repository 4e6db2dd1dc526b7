package auditable

type Auditable interface {
	SetCreatedBy(createdBy interface{})
	GetCreatedBy() string
	SetUpdatedBy(updatedBy interface{})
	GetUpdatedBy() string
}

type Auditor interface {
	Timestamper
	Auditable
}
