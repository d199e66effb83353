package regulate

import (
	"testing"

	"stock-regul/feature/stock/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regRow(sku, lot, category string, withdrawals map[string]int64) models.RegulationRow {
	reg := models.RegulationRow{
		WideRow:     models.WideRow{SKU: sku, Lot: lot, Category: category},
		Withdrawals: make(map[string]decimal.Decimal, len(depots)),
	}
	for _, depot := range depots {
		q := d(withdrawals[depot])
		reg.Withdrawals[depot] = q
		reg.WithdrawTotal = reg.WithdrawTotal.Add(q)
	}
	return reg
}

func TestAllocate_LargestFirst(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "L1", "STOCK", map[string]int64{"100": 10}),
	}
	lines := []models.M3Line{
		{SKU: "A1", SKUM3: "M1", Lot: "L1", Depot: "100", Location: "P1", Category: "STOCK", Qty: d(3)},
		{SKU: "A1", SKUM3: "M2", Lot: "L1", Depot: "100", Location: "P2", Category: "STOCK", Qty: d(8)},
		{SKU: "A1", SKUM3: "M3", Lot: "L1", Depot: "100", Location: "P3", Category: "STOCK", Qty: d(5)},
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 1)

	alloc := out[0]
	assert.Equal(t, StatusFulfilled, alloc.Status)
	assert.True(t, alloc.Allocated.Equal(d(10)))
	require.Len(t, alloc.Actions, 2)

	// Largest line first, then the remainder from the next largest.
	assert.Equal(t, "M2", alloc.Actions[0].ITNO)
	assert.True(t, alloc.Actions[0].STQI.Equal(d(8)))
	assert.Equal(t, "M3", alloc.Actions[1].ITNO)
	assert.True(t, alloc.Actions[1].STQI.Equal(d(2)))
}

func TestAllocate_ActionSchema(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "L1", "STOCK", map[string]int64{"100": 2}),
	}
	lines := []models.M3Line{
		{SKU: "A1", SKUM3: "M3A1", Lot: "L1", Depot: "100", Location: "P1", Category: "STOCK", Qty: d(6)},
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 1)
	require.Len(t, out[0].Actions, 1)

	action := out[0].Actions[0]
	assert.Equal(t, 100, action.CONO)
	assert.Equal(t, "100", action.WHLO)
	assert.Equal(t, "M3A1", action.ITNO)
	assert.Equal(t, "P1", action.WHSL)
	assert.Equal(t, "L1", action.BANO)
	assert.True(t, action.STQI.Equal(d(2)))
	assert.Equal(t, models.ActionStatusPending, action.STAG)
	assert.Equal(t, models.ActionReasonEcart, action.BREM)
	assert.Equal(t, models.ActionCauseCode, action.RSCD)
}

func TestAllocate_PartialAndUnfulfilled(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "L1", "STOCK", map[string]int64{"100": 10}),
		regRow("B1", "L2", "STOCK", map[string]int64{"150": 5}),
	}
	lines := []models.M3Line{
		// Only 4 available against the target of 10.
		{SKU: "A1", SKUM3: "M1", Lot: "L1", Depot: "100", Location: "P1", Category: "STOCK", Qty: d(4)},
		// Nothing at all for B1.
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 2)

	assert.Equal(t, StatusPartial, out[0].Status)
	assert.True(t, out[0].Allocated.Equal(d(4)))
	assert.True(t, out[0].Target.Equal(d(10)))
	require.Len(t, out[0].Actions, 1)

	assert.Equal(t, StatusUnfulfilled, out[1].Status)
	assert.True(t, out[1].Allocated.IsZero())
	assert.Empty(t, out[1].Actions)
}

func TestAllocate_NeverExceedsTarget(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "L1", "STOCK", map[string]int64{"100": 7}),
	}
	lines := []models.M3Line{
		{SKU: "A1", SKUM3: "M1", Lot: "L1", Depot: "100", Location: "P1", Category: "STOCK", Qty: d(50)},
		{SKU: "A1", SKUM3: "M2", Lot: "L1", Depot: "100", Location: "P2", Category: "STOCK", Qty: d(50)},
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 1)
	require.Len(t, out[0].Actions, 1)
	assert.True(t, out[0].Actions[0].STQI.Equal(d(7)))
	assert.Equal(t, StatusFulfilled, out[0].Status)
}

func TestAllocate_CandidateFilter(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "L1", "STOCK", map[string]int64{"100": 10}),
	}
	lines := []models.M3Line{
		// Wrong depot.
		{SKU: "A1", SKUM3: "M1", Lot: "L1", Depot: "150", Category: "STOCK", Qty: d(9)},
		// Wrong lot.
		{SKU: "A1", SKUM3: "M2", Lot: "L2", Depot: "100", Category: "STOCK", Qty: d(9)},
		// Wrong category.
		{SKU: "A1", SKUM3: "M3", Lot: "L1", Depot: "100", Category: "DEF", Qty: d(9)},
		// Match.
		{SKU: "A1", SKUM3: "M4", Lot: "L1", Depot: "100", Category: "STOCK", Qty: d(9)},
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 1)
	require.Len(t, out[0].Actions, 1)
	assert.Equal(t, "M4", out[0].Actions[0].ITNO)
}

func TestAllocate_LotlessGroupSkipsLotLines(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "", "STOCK", map[string]int64{"100": 5}),
	}
	lines := []models.M3Line{
		{SKU: "A1", SKUM3: "M1", Lot: "L1", Depot: "100", Location: "P1", Category: "STOCK", Qty: d(9)},
		{SKU: "A1", SKUM3: "M2", Depot: "100", Location: "P2", Category: "STOCK", Qty: d(9)},
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 1)
	require.Len(t, out[0].Actions, 1)

	action := out[0].Actions[0]
	assert.Equal(t, "M2", action.ITNO)
	assert.Equal(t, "", action.BANO)
}

func TestAllocate_DeterministicTieBreak(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "L1", "STOCK", map[string]int64{"100": 3}),
	}
	lines := []models.M3Line{
		{SKU: "A1", SKUM3: "M2", Lot: "L1", Depot: "100", Location: "P2", Category: "STOCK", Qty: d(5)},
		{SKU: "A1", SKUM3: "M1", Lot: "L1", Depot: "100", Location: "P1", Category: "STOCK", Qty: d(5)},
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 1)
	require.Len(t, out[0].Actions, 1)
	// Equal quantities fall back to location order.
	assert.Equal(t, "P1", out[0].Actions[0].WHSL)
}

func TestAllocate_MultipleDepotsPerRow(t *testing.T) {
	rows := []models.RegulationRow{
		regRow("A1", "L1", "STOCK", map[string]int64{"100": 4, "150": 6}),
	}
	lines := []models.M3Line{
		{SKU: "A1", SKUM3: "M1", Lot: "L1", Depot: "100", Location: "P1", Category: "STOCK", Qty: d(4)},
		{SKU: "A1", SKUM3: "M2", Lot: "L1", Depot: "150", Location: "R1", Category: "STOCK", Qty: d(9)},
	}

	out := NewAllocator(100, depots).Allocate(rows, lines)
	require.Len(t, out, 2)

	// Depot column order is preserved.
	assert.Equal(t, "100", out[0].Depot)
	assert.Equal(t, "150", out[1].Depot)
	assert.Equal(t, StatusFulfilled, out[0].Status)
	assert.Equal(t, StatusFulfilled, out[1].Status)
}
