package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

func TestBuildSellerDirectory_Fallbacks(t *testing.T) {
	dir := BuildSellerDirectory([]entity.SellerRecord{
		{ID: "s1", Username: "alice", Name: "Alice A."},
		{ID: "s2", Name: "Bob"},
		{ID: "s3"},
		{Username: "sin-id"},
	})

	assert.Equal(t, "alice", dir.NameOf("s1", "unknownUser"))
	assert.Equal(t, "Bob", dir.NameOf("s2", "unknownUser"))
	assert.Equal(t, "s3", dir.NameOf("s3", "unknownUser"))
	assert.Equal(t, "unknownUser", dir.NameOf("s9", "unknownUser"))
	assert.Len(t, dir, 3)
}

func TestBuildCatalog_UltimoGanaYFallbacks(t *testing.T) {
	cat := BuildCatalog([]entity.ProductRecord{
		{Barcode: "A", Name: "Viejo", Category: "X", CostPrice: d("1")},
		{Barcode: "A", Name: "Widget", Category: "Tools", CostPrice: d("5")},
		{Barcode: "B", Name: "", Category: ""},
	})

	assert.Equal(t, "Widget", cat.NameOf("A"))
	assertDec(t, "5", cat.Cost("A"))
	assert.Equal(t, "Tools", cat.CategoryOf("A", "uncategorized"))

	// Caso: producto sin nombre ni categoría
	assert.Equal(t, "B", cat.NameOf("B"))
	assert.Equal(t, "uncategorized", cat.CategoryOf("B", "uncategorized"))

	// Caso: producto eliminado del catálogo
	assert.Equal(t, "ZZZ", cat.NameOf("ZZZ"))
	assertDec(t, "0", cat.Cost("ZZZ"))
	_, ok := cat.Lookup("ZZZ")
	assert.False(t, ok)
}

func TestCatalog_NilEsVacio(t *testing.T) {
	var cat Catalog
	assert.Equal(t, "A", cat.NameOf("A"))
	assertDec(t, "0", cat.Cost("A"))
}
