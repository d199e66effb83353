package reconcile

import (
	"stock-regul/feature/stock/models"
)

// FindReliquat returns the M3 lines with no Reflex counterpart, in
// snapshot order. It uses the same key regimes as the Reconciler: a
// lot-carrying line must match (sku, lot, category) exactly, a lot-less
// line matches on (sku, category). Diverging from those definitions
// would silently disagree with the Reconciler's notion of "matched".
func FindReliquat(m3 []models.M3Line, reflex []models.ReflexLine) []models.ReliquatRow {
	withLotKeys := make(map[joinKey]struct{})
	noLotKeys := make(map[joinKey]struct{})
	for _, l := range reflex {
		if l.HasLot() {
			withLotKeys[joinKey{sku: l.SKU, lot: l.Lot, category: l.Category}] = struct{}{}
		} else {
			noLotKeys[joinKey{sku: l.SKU, category: l.Category}] = struct{}{}
		}
	}

	var out []models.ReliquatRow
	for _, l := range m3 {
		var matched bool
		var reason models.ReliquatReason
		if l.HasLot() {
			_, matched = withLotKeys[joinKey{sku: l.SKU, lot: l.Lot, category: l.Category}]
			reason = models.ReasonNoMatchWithLot
		} else {
			_, matched = noLotKeys[joinKey{sku: l.SKU, category: l.Category}]
			reason = models.ReasonNoMatchNoLot
		}
		if matched {
			continue
		}
		out = append(out, models.ReliquatRow{
			SKU:      l.SKU,
			Lot:      l.Lot,
			Depot:    l.Depot,
			Location: l.Location,
			Category: l.Category,
			Qty:      l.Qty,
			Reason:   reason,
		})
	}
	return out
}
