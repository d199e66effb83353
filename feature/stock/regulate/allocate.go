package regulate

import (
	"sort"

	"stock-regul/feature/stock/models"

	"github.com/shopspring/decimal"
)

// AllocationStatus reports how much of a withdrawal target the detailed
// M3 lines could cover.
type AllocationStatus string

const (
	StatusFulfilled   AllocationStatus = "FULFILLED"
	StatusPartial     AllocationStatus = "PARTIAL"
	StatusUnfulfilled AllocationStatus = "UNFULFILLED"
)

// Allocation is the outcome for one (sku, lot, category, depot) group:
// the target withdrawal, the quantity the candidate lines covered, and
// one Action per line touched. A shortfall never emits a partial
// action, but it is no longer silent: the status and the Allocated /
// Target pair expose it.
type Allocation struct {
	SKU       string           `json:"sku"`
	Lot       string           `json:"lot"`
	Category  string           `json:"category"`
	Depot     string           `json:"depot"`
	Target    decimal.Decimal  `json:"target"`
	Allocated decimal.Decimal  `json:"allocated"`
	Status    AllocationStatus `json:"status"`
	Actions   []models.Action  `json:"actions"`
}

// Allocator distributes per-depot withdrawal totals across concrete M3
// lines, greedily from the largest line down. Largest-first is a
// required, observable ordering: it minimizes the number of lines
// touched and avoids leaving many near-empty residual lines.
type Allocator struct {
	cono   int
	depots []string
}

// NewAllocator creates an Allocator emitting actions for company cono,
// walking depots in the given column order.
func NewAllocator(cono int, depots []string) *Allocator {
	cols := make([]string, len(depots))
	copy(cols, depots)
	return &Allocator{cono: cono, depots: cols}
}

// Allocate walks every regulation row and every depot with a positive
// withdrawal, and draws the target from the matching detailed lines.
// Rows and depots are visited in deterministic order, so identical
// input yields identical output.
func (a *Allocator) Allocate(rows []models.RegulationRow, lines []models.M3Line) []Allocation {
	var out []Allocation
	for _, row := range rows {
		for _, depot := range a.depots {
			target := row.Withdrawals[depot]
			if target.Sign() <= 0 {
				continue
			}
			out = append(out, a.allocateGroup(row, depot, target, lines))
		}
	}
	return out
}

func (a *Allocator) allocateGroup(row models.RegulationRow, depot string, target decimal.Decimal, lines []models.M3Line) Allocation {
	alloc := Allocation{
		SKU:      row.SKU,
		Lot:      row.Lot,
		Category: row.Category,
		Depot:    depot,
		Target:   target,
		Status:   StatusUnfulfilled,
	}

	candidates := selectCandidates(row, depot, lines)
	sortCandidates(candidates)

	remaining := target
	allocated := decimal.Zero
	for _, c := range candidates {
		if remaining.Sign() <= 0 {
			break
		}
		take := decimal.Min(remaining, c.Qty)
		if take.Sign() <= 0 {
			continue
		}
		alloc.Actions = append(alloc.Actions, models.Action{
			CONO: a.cono,
			WHLO: depot,
			ITNO: c.SKUM3,
			WHSL: c.Location,
			BANO: row.Lot,
			STQI: take,
			STAG: models.ActionStatusPending,
			BREM: models.ActionReasonEcart,
			RSCD: models.ActionCauseCode,
		})
		allocated = allocated.Add(take)
		remaining = remaining.Sub(take)
	}

	alloc.Allocated = allocated
	switch {
	case allocated.Equal(target):
		alloc.Status = StatusFulfilled
	case allocated.Sign() > 0:
		alloc.Status = StatusPartial
	}
	return alloc
}

// selectCandidates keeps the detailed lines matching the group's sku,
// category, depot and lot regime: exact lot equality when the key
// carries a lot, lot-less lines otherwise.
func selectCandidates(row models.RegulationRow, depot string, lines []models.M3Line) []models.M3Line {
	var out []models.M3Line
	for _, l := range lines {
		if l.SKU != row.SKU || l.Category != row.Category || l.Depot != depot {
			continue
		}
		if row.Lot != "" {
			if l.Lot != row.Lot {
				continue
			}
		} else if l.HasLot() {
			continue
		}
		out = append(out, l)
	}
	return out
}

// sortCandidates orders by descending available quantity, breaking ties
// by location then M3 identifier so repeated runs emit identical
// actions.
func sortCandidates(lines []models.M3Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Qty.Equal(lines[j].Qty) {
			return lines[i].Qty.GreaterThan(lines[j].Qty)
		}
		if lines[i].Location != lines[j].Location {
			return lines[i].Location < lines[j].Location
		}
		return lines[i].SKUM3 < lines[j].SKUM3
	})
}
