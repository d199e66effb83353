package snapshot

import (
	"fmt"

	"stock-regul/feature/stock/models"
	"stock-regul/feature/stock/regulate"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the run workbook, one per persisted dataset.
const (
	SheetWide       = "Correspondance"
	SheetReliquat   = "Reliquat"
	SheetRegulation = "Regulation"
	SheetActions    = "Correctifs"
	SheetPO         = "PO_Web"
)

// BuildRunWorkbook assembles the output workbook for one reconciliation
// run: the wide correspondence, the reliquat, the regulation decisions,
// the corrective actions, and the purchase-order rows set aside from
// regulation. Column names follow the established report layout.
func BuildRunWorkbook(
	depots []string,
	wide []models.WideRow,
	reliquat []models.ReliquatRow,
	regulation []models.RegulationRow,
	allocations []regulate.Allocation,
	purchaseOrders []models.WideRow,
) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetWide); err != nil {
		return nil, err
	}
	for _, sheet := range []string{SheetReliquat, SheetRegulation, SheetActions, SheetPO} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	if err := writeWideSheet(f, SheetWide, depots, wide); err != nil {
		return nil, err
	}
	if err := writeReliquatSheet(f, reliquat); err != nil {
		return nil, err
	}
	if err := writeRegulationSheet(f, depots, regulation); err != nil {
		return nil, err
	}
	if err := writeActionsSheet(f, allocations); err != nil {
		return nil, err
	}
	if err := writeWideSheet(f, SheetPO, depots, purchaseOrders); err != nil {
		return nil, err
	}
	return f, nil
}

func writeWideSheet(f *excelize.File, sheet string, depots []string, rows []models.WideRow) error {
	head := []interface{}{"sku", "lot", "qualite", "type", "category", "qty_reflex"}
	for _, d := range depots {
		head = append(head, "stock_"+d)
	}
	head = append(head, "stock_total_m3", "ecart_rfx_m3")
	if err := writeRow(f, sheet, 1, head); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []interface{}{r.SKU, r.Lot, r.Quality, r.Type, r.Category, r.QtyReflex.String()}
		for _, d := range depots {
			cells = append(cells, r.Depots[d].String())
		}
		cells = append(cells, r.TotalM3.String(), r.Ecart.String())
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeReliquatSheet(f *excelize.File, rows []models.ReliquatRow) error {
	head := []interface{}{"sku", "lot", "depot", "emplacement", "category", "qty_m3", "reliquat_reason"}
	if err := writeRow(f, SheetReliquat, 1, head); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []interface{}{r.SKU, r.Lot, r.Depot, r.Location, r.Category, r.Qty.String(), string(r.Reason)}
		if err := writeRow(f, SheetReliquat, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRegulationSheet(f *excelize.File, depots []string, rows []models.RegulationRow) error {
	head := []interface{}{"sku", "lot", "type", "category", "qty_reflex", "stock_total_m3", "ecart_rfx_m3"}
	for _, d := range depots {
		head = append(head, "regul_"+d)
	}
	head = append(head, "regul_total")
	if err := writeRow(f, SheetRegulation, 1, head); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []interface{}{r.SKU, r.Lot, r.Type, r.Category, r.QtyReflex.String(), r.TotalM3.String(), r.Ecart.String()}
		for _, d := range depots {
			cells = append(cells, r.Withdrawals[d].String())
		}
		cells = append(cells, r.WithdrawTotal.String())
		if err := writeRow(f, SheetRegulation, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeActionsSheet(f *excelize.File, allocations []regulate.Allocation) error {
	head := []interface{}{"CONO", "WHLO", "ITNO", "WHSL", "BANO", "STQI", "STAG", "BREM", "RSCD"}
	if err := writeRow(f, SheetActions, 1, head); err != nil {
		return err
	}
	row := 2
	for _, a := range allocations {
		for _, act := range a.Actions {
			cells := []interface{}{
				act.CONO, act.WHLO, act.ITNO, act.WHSL, act.BANO,
				act.STQI.IntPart(), act.STAG, act.BREM, act.RSCD,
			}
			if err := writeRow(f, SheetActions, row, cells); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	return f.SetSheetRow(sheet, start, &cells)
}
