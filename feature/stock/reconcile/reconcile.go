package reconcile

import (
	"sort"

	"stock-regul/feature/stock/models"

	"github.com/shopspring/decimal"
)

// Reconciler builds the wide Reflex-vs-M3 comparison. The target depot
// list is fixed at construction: every output row carries one quantity
// column per configured depot, zero-filled where M3 contributed nothing.
type Reconciler struct {
	depots   []string
	depotSet map[string]struct{}
}

// New creates a Reconciler for the given target depot columns.
func New(depots []string) *Reconciler {
	set := make(map[string]struct{}, len(depots))
	for _, d := range depots {
		set[d] = struct{}{}
	}
	cols := make([]string, len(depots))
	copy(cols, depots)
	return &Reconciler{depots: cols, depotSet: set}
}

// Depots returns the configured target depot columns.
func (r *Reconciler) Depots() []string {
	cols := make([]string, len(r.depots))
	copy(cols, r.depots)
	return cols
}

// Build produces one WideRow per reconciliation key. Lines with a lot
// are matched on (sku, lot, category) exactly; lines without a lot are
// aggregated and matched on (sku, category). The two flows partition
// the input, so no line is counted twice.
func (r *Reconciler) Build(reflex []models.ReflexLine, m3 []models.M3Line) []models.WideRow {
	var m3Targeted []models.M3Line
	for _, l := range m3 {
		if _, ok := r.depotSet[l.Depot]; ok {
			m3Targeted = append(m3Targeted, l)
		}
	}

	var reflexWithLot, reflexNoLot []models.ReflexLine
	for _, l := range reflex {
		if l.HasLot() {
			reflexWithLot = append(reflexWithLot, l)
		} else {
			reflexNoLot = append(reflexNoLot, l)
		}
	}

	var m3WithLot, m3NoLot []models.M3Line
	for _, l := range m3Targeted {
		if l.HasLot() {
			m3WithLot = append(m3WithLot, l)
		} else {
			m3NoLot = append(m3NoLot, l)
		}
	}

	rows := r.buildWithLot(reflexWithLot, m3WithLot)
	rows = append(rows, r.buildNoLot(reflexNoLot, m3NoLot)...)

	for i := range rows {
		total := decimal.Zero
		for _, d := range r.depots {
			total = total.Add(rows[i].Depots[d])
		}
		rows[i].TotalM3 = total
		rows[i].Ecart = rows[i].QtyReflex.Sub(total)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.SKU != b.SKU {
			return a.SKU < b.SKU
		}
		if a.Lot != b.Lot {
			return a.Lot < b.Lot
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Type < b.Type
	})

	return rows
}

// pivotKey identifies one aggregated M3 group after the depot pivot.
type pivotKey struct {
	category string
	lot      string
	typ      string
	sku      string
}

// joinKey is the key shared with Reflex. Lot is empty in the lot-absent
// flow, where the key intentionally discards it.
type joinKey struct {
	sku      string
	lot      string
	category string
}

// buildWithLot joins un-aggregated Reflex lines against the pivoted M3
// groups on (sku, lot, category). A Reflex line matching several M3
// type groups yields one row per type, repeating the Reflex quantity.
func (r *Reconciler) buildWithLot(reflex []models.ReflexLine, m3 []models.M3Line) []models.WideRow {
	pivot, index := r.pivotM3(m3, true)

	var rows []models.WideRow
	for _, rl := range reflex {
		jk := joinKey{sku: rl.SKU, lot: rl.Lot, category: rl.Category}
		matches := index[jk]
		if len(matches) == 0 {
			rows = append(rows, models.WideRow{
				SKU:       rl.SKU,
				Lot:       rl.Lot,
				Quality:   rl.Quality,
				Category:  rl.Category,
				QtyReflex: rl.Qty,
				Depots:    r.fillDepots(nil),
			})
			continue
		}
		for _, pk := range matches {
			rows = append(rows, models.WideRow{
				SKU:       rl.SKU,
				Lot:       rl.Lot,
				Quality:   rl.Quality,
				Type:      pk.typ,
				Category:  rl.Category,
				QtyReflex: rl.Qty,
				Depots:    r.fillDepots(pivot[pk]),
			})
		}
	}
	return rows
}

// buildNoLot aggregates Reflex by (location, category, sku) and joins
// against the pivoted M3 groups on (sku, category). The output lot is
// empty by construction.
func (r *Reconciler) buildNoLot(reflex []models.ReflexLine, m3 []models.M3Line) []models.WideRow {
	type aggKey struct {
		location string
		category string
		sku      string
	}
	agg := make(map[aggKey]decimal.Decimal)
	var aggOrder []aggKey
	for _, rl := range reflex {
		k := aggKey{location: rl.Location, category: rl.Category, sku: rl.SKU}
		if _, seen := agg[k]; !seen {
			aggOrder = append(aggOrder, k)
		}
		agg[k] = agg[k].Add(rl.Qty)
	}

	pivot, index := r.pivotM3(m3, false)

	var rows []models.WideRow
	for _, k := range aggOrder {
		jk := joinKey{sku: k.sku, category: k.category}
		matches := index[jk]
		if len(matches) == 0 {
			rows = append(rows, models.WideRow{
				SKU:       k.sku,
				Category:  k.category,
				QtyReflex: agg[k],
				Depots:    r.fillDepots(nil),
			})
			continue
		}
		for _, pk := range matches {
			rows = append(rows, models.WideRow{
				SKU:       k.sku,
				Type:      pk.typ,
				Category:  k.category,
				QtyReflex: agg[k],
				Depots:    r.fillDepots(pivot[pk]),
			})
		}
	}
	return rows
}

// pivotM3 aggregates M3 quantity per (category, lot, type, sku) group
// and per depot within each group, and indexes the groups by join key.
// Match lists are ordered by type so output is deterministic.
func (r *Reconciler) pivotM3(m3 []models.M3Line, withLot bool) (map[pivotKey]map[string]decimal.Decimal, map[joinKey][]pivotKey) {
	pivot := make(map[pivotKey]map[string]decimal.Decimal)
	for _, l := range m3 {
		k := pivotKey{category: l.Category, typ: l.Type, sku: l.SKU}
		if withLot {
			k.lot = l.Lot
		}
		cols, ok := pivot[k]
		if !ok {
			cols = make(map[string]decimal.Decimal, len(r.depots))
			pivot[k] = cols
		}
		cols[l.Depot] = cols[l.Depot].Add(l.Qty)
	}

	index := make(map[joinKey][]pivotKey)
	for k := range pivot {
		jk := joinKey{sku: k.sku, lot: k.lot, category: k.category}
		index[jk] = append(index[jk], k)
	}
	for jk := range index {
		keys := index[jk]
		sort.Slice(keys, func(i, j int) bool { return keys[i].typ < keys[j].typ })
	}
	return pivot, index
}

// fillDepots materializes every configured depot column, defaulting to
// zero at the point of pivot rather than at later reads.
func (r *Reconciler) fillDepots(cols map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.depots))
	for _, d := range r.depots {
		out[d] = cols[d]
	}
	return out
}
