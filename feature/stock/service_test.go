package stock

import (
	"testing"

	"stock-regul/feature/stock/category"
	"stock-regul/feature/stock/models"
	"stock-regul/feature/stock/regulate"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDepots = []string{"100", "150", "200", "400"}

var testRules = category.Rules{
	ReflexMapping: map[string]string{
		"BON": models.CategoryStock,
	},
	M3Rules: []category.M3Rule{
		{DepotIn: []string{"100"}, LocationEq: "PICK", Category: models.CategoryStock},
		{DepotIn: []string{"150"}, LocationEq: "RES", Category: models.CategoryStock},
	},
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestBuildReport_EndToEnd(t *testing.T) {
	// Retail declares 10 of A1/L1; the warehouse holds 4 in picking and
	// 20 in reserve. The 14 surplus cascades as 4 from picking and 10
	// from reserve, then lands on concrete lines.
	reflex := []models.ReflexLine{
		{SKU: "A1", Lot: "L1", Quality: "BON", Qty: d(10)},
	}
	m3 := []models.M3Line{
		{SKU: "A1", SKUM3: "M3A1", Lot: "L1", Depot: "100", Type: "A01", Location: "PICK", Qty: d(4)},
		{SKU: "A1", SKUM3: "M3A1", Lot: "L1", Depot: "150", Type: "A01", Location: "RES", Qty: d(20)},
	}

	report, err := BuildReport(Inputs{
		Reflex:  reflex,
		M3:      m3,
		Rules:   testRules,
		Depots:  testDepots,
		Company: 100,
	})
	require.NoError(t, err)

	require.Len(t, report.WideRows, 1)
	row := report.WideRows[0]
	assert.True(t, row.TotalM3.Equal(d(24)))
	assert.True(t, row.Ecart.Equal(d(-14)))

	require.Len(t, report.Regulation, 1)
	reg := report.Regulation[0]
	assert.True(t, reg.Withdrawals["100"].Equal(d(4)))
	assert.True(t, reg.Withdrawals["150"].Equal(d(10)))
	assert.True(t, reg.WithdrawTotal.Equal(d(14)))

	require.Len(t, report.Allocations, 2)
	assert.Equal(t, regulate.StatusFulfilled, report.Allocations[0].Status)
	assert.Equal(t, regulate.StatusFulfilled, report.Allocations[1].Status)

	require.Len(t, report.Actions, 2)
	assert.Equal(t, "100", report.Actions[0].WHLO)
	assert.True(t, report.Actions[0].STQI.Equal(d(4)))
	assert.Equal(t, "150", report.Actions[1].WHLO)
	assert.True(t, report.Actions[1].STQI.Equal(d(10)))

	s := report.Summary
	assert.Equal(t, 1, s.WideRows)
	assert.Equal(t, 0, s.ReliquatRows)
	assert.Equal(t, 2, s.Actions)
	assert.Equal(t, 2, s.Fulfilled)
	assert.True(t, s.WithdrawTotal.Equal(d(14)))
}

func TestBuildReport_PurchaseOrderSplit(t *testing.T) {
	reflex := []models.ReflexLine{
		{SKU: "A1", Lot: "L1", Quality: "BON", Qty: d(1)},
		{SKU: "A2", Lot: "L2", Quality: "BON", Qty: d(1)},
	}
	m3 := []models.M3Line{
		{SKU: "A1", SKUM3: "M3A1", Lot: "L1", Depot: "100", Type: "A01", Location: "PICK", Qty: d(9)},
		{SKU: "A2", SKUM3: "M3A2", Lot: "L2", Depot: "100", Type: "A01", Location: "PICK", Qty: d(9)},
	}

	report, err := BuildReport(Inputs{
		Reflex:         reflex,
		M3:             m3,
		PurchaseOrders: map[string]struct{}{"L1": {}},
		Rules:          testRules,
		Depots:         testDepots,
		Company:        100,
	})
	require.NoError(t, err)

	// L1 is set aside: reported, flagged, never regulated.
	require.Len(t, report.PurchaseOrders, 1)
	assert.Equal(t, "L1", report.PurchaseOrders[0].Lot)
	assert.True(t, report.PurchaseOrders[0].PurchaseOrder)

	require.Len(t, report.WideRows, 1)
	assert.Equal(t, "L2", report.WideRows[0].Lot)
	require.Len(t, report.Regulation, 1)
	assert.Equal(t, "L2", report.Regulation[0].Lot)
	assert.Equal(t, 1, report.Summary.PurchaseOrders)
}

func TestBuildReport_UnmappedCounted(t *testing.T) {
	reflex := []models.ReflexLine{
		{SKU: "A1", Quality: "MYSTERY", Qty: d(1)},
	}
	m3 := []models.M3Line{
		{SKU: "B1", SKUM3: "M3B1", Depot: "100", Type: "A01", Location: "NOWHERE", Qty: d(1)},
	}

	report, err := BuildReport(Inputs{
		Reflex:  reflex,
		M3:      m3,
		Rules:   testRules,
		Depots:  testDepots,
		Company: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.UnmappedReflex)
	assert.Equal(t, 1, report.Summary.UnmappedM3)
	// Unmapped lines are data: the reflex side still yields a wide row,
	// the m3 side lands in the reliquat.
	assert.Equal(t, 1, report.Summary.WideRows)
	assert.Equal(t, 1, report.Summary.ReliquatRows)
}

func TestBuildReport_UnmatchedM3GoesToReliquat(t *testing.T) {
	m3 := []models.M3Line{
		{SKU: "A1", SKUM3: "M3A1", Depot: "400", Type: "A06", Location: "SMS", Qty: d(1)},
	}

	report, err := BuildReport(Inputs{
		M3:      m3,
		Rules:   testRules,
		Depots:  testDepots,
		Company: 100,
	})
	require.NoError(t, err)

	require.Len(t, report.Reliquat, 1)
	assert.Equal(t, "400", report.Reliquat[0].Depot)
}

func TestBuildReport_BadDepotConfig(t *testing.T) {
	_, err := BuildReport(Inputs{
		Rules:  testRules,
		Depots: []string{"100", "150"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "misconfigured")
}

func TestConfig_DepotColumns(t *testing.T) {
	cfg := Config{Depots: "100, 150 ,200,400,"}
	assert.Equal(t, []string{"100", "150", "200", "400"}, cfg.DepotColumns())
}
