package snapshot

import (
	"fmt"
	"strings"

	"stock-regul/feature/stock/models"

	"github.com/shopspring/decimal"
)

// Column-exact headers of the raw snapshots, as the upstream extractions
// produce them.
const (
	ColSKU      = "SKU"
	ColWMS      = "WMS"
	ColDepot    = "Depot"
	ColType     = "Type"
	ColLocation = "Emplacement"
	ColLot      = "Lot"
	ColQtyM3    = "Quantite"

	ColQuality   = "Qualite_Origine"
	ColLotReflex = "Lot_1"
	ColQtyReflex = "Stock_en_VL"

	ColPO = "PO"
)

// lotSentinels are the raw values accepted as "no lot".
var lotSentinels = map[string]struct{}{
	"":     {},
	"None": {},
	"nan":  {},
	"NaN":  {},
	"N/A":  {},
}

// NormalizeLot trims a raw lot value and collapses the accepted
// empty-value sentinels to the absent-lot marker (empty string).
func NormalizeLot(raw string) string {
	s := strings.TrimSpace(raw)
	if _, ok := lotSentinels[s]; ok {
		return ""
	}
	return s
}

// ParseQuantity coerces a raw quantity cell to a decimal. Malformed or
// empty values become zero: a data-quality tolerance the upstream
// sources require, not an error.
func ParseQuantity(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// resolveSKU prefers the WMS identifier over the M3 one when non-empty.
// The WMS column shares the lot sentinels for emptiness.
func resolveSKU(skuM3, skuWMS string) string {
	if _, empty := lotSentinels[skuWMS]; !empty {
		return skuWMS
	}
	return skuM3
}

// header maps column names to their index in the header row.
type header map[string]int

func parseHeader(rows [][]string) (header, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("snapshot is empty")
	}
	h := make(header, len(rows[0]))
	for i, name := range rows[0] {
		h[strings.TrimSpace(name)] = i
	}
	return h, nil
}

// require returns the indices of the named columns, or an error naming
// every missing one.
func (h header) require(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	var missing []string
	for i, name := range names {
		j, ok := h[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("snapshot is missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// cell reads a column from a data row, tolerating rows shorter than the
// header (trailing empty cells are not materialized by the reader).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// StandardizeReflex parses the raw Reflex snapshot (header row first)
// into standardized lines. The location column is optional; when the
// extraction computes it away, the quality code stands in for it.
func StandardizeReflex(rows [][]string) ([]models.ReflexLine, error) {
	h, err := parseHeader(rows)
	if err != nil {
		return nil, fmt.Errorf("reflex %w", err)
	}
	idx, err := h.require(ColSKU, ColQuality, ColLotReflex, ColQtyReflex)
	if err != nil {
		return nil, fmt.Errorf("reflex %w", err)
	}
	locIdx, hasLoc := h[ColLocation]

	lines := make([]models.ReflexLine, 0, len(rows)-1)
	for _, row := range rows[1:] {
		l := models.ReflexLine{
			SKU:     cell(row, idx[0]),
			Quality: cell(row, idx[1]),
			Lot:     NormalizeLot(cell(row, idx[2])),
			Qty:     ParseQuantity(cell(row, idx[3])),
		}
		if hasLoc {
			l.Location = cell(row, locIdx)
		} else {
			l.Location = l.Quality
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// StandardizeM3 parses the raw M3 snapshot (header row first) into
// standardized lines, resolving the preferred SKU identifier.
func StandardizeM3(rows [][]string) ([]models.M3Line, error) {
	h, err := parseHeader(rows)
	if err != nil {
		return nil, fmt.Errorf("m3 %w", err)
	}
	idx, err := h.require(ColSKU, ColWMS, ColDepot, ColType, ColLocation, ColLot, ColQtyM3)
	if err != nil {
		return nil, fmt.Errorf("m3 %w", err)
	}

	lines := make([]models.M3Line, 0, len(rows)-1)
	for _, row := range rows[1:] {
		skuM3 := cell(row, idx[0])
		lines = append(lines, models.M3Line{
			SKU:      resolveSKU(skuM3, cell(row, idx[1])),
			SKUM3:    skuM3,
			Depot:    cell(row, idx[2]),
			Type:     cell(row, idx[3]),
			Location: cell(row, idx[4]),
			Lot:      NormalizeLot(cell(row, idx[5])),
			Qty:      ParseQuantity(cell(row, idx[6])),
		})
	}
	return lines, nil
}

// ParsePOList parses the purchase-order exclusion snapshot into the set
// of lot identifiers flagged for separate handling.
func ParsePOList(rows [][]string) (map[string]struct{}, error) {
	h, err := parseHeader(rows)
	if err != nil {
		return nil, fmt.Errorf("po list %w", err)
	}
	idx, err := h.require(ColPO)
	if err != nil {
		return nil, fmt.Errorf("po list %w", err)
	}

	pos := make(map[string]struct{}, len(rows)-1)
	for _, row := range rows[1:] {
		lot := NormalizeLot(cell(row, idx[0]))
		if lot != "" {
			pos[lot] = struct{}{}
		}
	}
	return pos, nil
}
