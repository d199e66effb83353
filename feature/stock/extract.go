package stock

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"stock-regul/core/database"
	"stock-regul/core/storage"
	"stock-regul/feature/stock/snapshot"

	"gorm.io/gorm"
)

// Upstream sources the extraction pulls from. The views expose the
// column-exact schemas the standardization step expects.
const (
	ReflexSource = "reflex_stock_vl"
	M3Source     = "m3_stock_balance"
	POSource     = "web_po_list"
)

// ReflexColumns is the raw Reflex snapshot schema.
var ReflexColumns = []string{
	snapshot.ColSKU, snapshot.ColQuality, snapshot.ColLocation,
	snapshot.ColLotReflex, snapshot.ColQtyReflex,
}

// M3Columns is the raw M3 snapshot schema.
var M3Columns = []string{
	snapshot.ColSKU, snapshot.ColWMS, snapshot.ColDepot, snapshot.ColType,
	snapshot.ColLocation, snapshot.ColLot, snapshot.ColQtyM3,
}

// POColumns is the purchase-order exclusion list schema.
var POColumns = []string{snapshot.ColPO}

// ExtractRows pulls every row of a source into raw string cells, in
// source order. The source schema is verified first: a missing column
// aborts the extraction instead of staging a truncated snapshot.
func ExtractRows(ctx context.Context, db *gorm.DB, table string, columns []string) ([][]string, error) {
	if err := database.RequireColumns(db, table, columns...); err != nil {
		return nil, err
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = "`" + c + "`"
	}
	query := fmt.Sprintf("SELECT %s FROM `%s`", strings.Join(quoted, ", "), table)

	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		row := make([]string, len(columns))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}
	return out, nil
}

// StageSnapshot extracts a source and uploads it as an xlsx snapshot
// object, ready for a reconciliation run.
func StageSnapshot(ctx context.Context, db *gorm.DB, client storage.Client, bucket, object, table string, columns []string) (int, error) {
	rows, err := ExtractRows(ctx, db, table, columns)
	if err != nil {
		return 0, err
	}
	f, err := snapshot.NewWorkbook("Sheet1", columns, rows)
	if err != nil {
		return 0, fmt.Errorf("failed to build snapshot workbook for %s: %w", table, err)
	}
	defer f.Close()

	if err := snapshot.Upload(ctx, client, bucket, object, f); err != nil {
		return 0, err
	}
	return len(rows), nil
}
