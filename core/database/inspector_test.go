package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// Create a source view stand-in
	err = db.Exec("CREATE TABLE reflex_stock (SKU TEXT, Qualite_Origine TEXT, Stock_en_VL INTEGER)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "reflex_stock")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["sku"])
	assert.Equal(t, "text", colMap["qualite_origine"])
	assert.Equal(t, "integer", colMap["stock_en_vl"])

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestRequireColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE m3_stock (SKU TEXT, WMS TEXT, Depot TEXT, Quantite INTEGER)").Error
	assert.NoError(t, err)

	t.Run("AllPresent", func(t *testing.T) {
		err := RequireColumns(db, "m3_stock", "SKU", "WMS", "Depot", "Quantite")
		assert.NoError(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		err := RequireColumns(db, "m3_stock", "SKU", "Lot", "Emplacement")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Lot")
		assert.Contains(t, err.Error(), "Emplacement")
	})
}
