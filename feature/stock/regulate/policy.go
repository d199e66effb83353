package regulate

import (
	"fmt"

	"stock-regul/feature/stock/models"

	"github.com/shopspring/decimal"
)

// Depots targeted by the withdrawal cascade.
const (
	DepotPicking   = "100" // primary for STOCK/NDISP type A01
	DepotReserve   = "150" // absorbs the A01 remainder
	DepotDowngrade = "200" // DES/DEF stock
	DepotSMS       = "400" // STOCK/NDISP type A06
)

// M3 sub-type codes with a defined cascade.
const (
	TypeA01 = "A01"
	TypeA06 = "A06"
)

// Policy decides, per category/type, which depot(s) must absorb a
// compensating withdrawal when M3 over-reports stock relative to Reflex.
type Policy struct {
	depots []string
}

// NewPolicy creates a Policy over the configured target depot columns.
// Every depot the cascade can target must be present among the columns;
// a misconfigured depot set cannot silently produce empty withdrawals.
func NewPolicy(depots []string) (*Policy, error) {
	present := make(map[string]struct{}, len(depots))
	for _, d := range depots {
		present[d] = struct{}{}
	}
	for _, d := range []string{DepotPicking, DepotReserve, DepotDowngrade, DepotSMS} {
		if _, ok := present[d]; !ok {
			return nil, fmt.Errorf("regulation misconfigured: cascade depot %s missing from target depot columns %v", d, depots)
		}
	}
	cols := make([]string, len(depots))
	copy(cols, depots)
	return &Policy{depots: cols}, nil
}

// Apply computes per-depot withdrawals for every wide row. Rows without
// a warehouse surplus, and rows whose category/type pair has no defined
// cascade, carry all-zero withdrawals.
func (p *Policy) Apply(rows []models.WideRow) []models.RegulationRow {
	out := make([]models.RegulationRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, p.regulate(row))
	}
	return out
}

func (p *Policy) regulate(row models.WideRow) models.RegulationRow {
	reg := models.RegulationRow{
		WideRow:     row,
		Withdrawals: make(map[string]decimal.Decimal, len(p.depots)),
	}
	for _, d := range p.depots {
		reg.Withdrawals[d] = decimal.Zero
	}

	surplus := row.Surplus()
	if surplus.Sign() <= 0 {
		return reg
	}

	switch {
	case (row.Category == models.CategoryStock || row.Category == models.CategoryNDisp) && row.Type == TypeA01:
		// Primary depot first, capped at its stock. The remainder goes
		// to the reserve depot uncapped: reference behavior, see the
		// UncappedRemainder field for how much exceeds its stock.
		fromPicking := decimal.Min(surplus, row.Depots[DepotPicking])
		reg.Withdrawals[DepotPicking] = fromPicking
		remainder := surplus.Sub(fromPicking)
		if remainder.Sign() > 0 {
			reg.Withdrawals[DepotReserve] = remainder
			if over := remainder.Sub(row.Depots[DepotReserve]); over.Sign() > 0 {
				reg.UncappedRemainder = over
			}
		}

	case (row.Category == models.CategoryStock || row.Category == models.CategoryNDisp) && row.Type == TypeA06:
		reg.Withdrawals[DepotSMS] = decimal.Min(surplus, row.Depots[DepotSMS])

	case row.Category == models.CategoryDes || row.Category == models.CategoryDef:
		reg.Withdrawals[DepotDowngrade] = decimal.Min(surplus, row.Depots[DepotDowngrade])
	}

	total := decimal.Zero
	for _, d := range p.depots {
		total = total.Add(reg.Withdrawals[d])
	}
	reg.WithdrawTotal = total
	return reg
}
