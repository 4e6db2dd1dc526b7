package auditable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moisespsena-go/auditable"
)

func TestToDBName(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"ID":          "id",
		"CreatedAt":   "created_at",
		"DeletedByID": "deleted_by_id",
		"HTTPStatus":  "http_status",
		"Body":        "body",
	}
	for name, want := range cases {
		assert.Equal(t, want, auditable.ToDBName(name), name)
	}
}

func TestTableNameOf(t *testing.T) {
	assert.Equal(t, "audited_products", auditable.TableNameOf("AuditedProduct"))
	assert.Equal(t, "notes", auditable.TableNameOf("Note"))
}

func TestNamifyString(t *testing.T) {
	assert.Equal(t, "OrderItemData", auditable.NamifyString("order_item-data"))
}
