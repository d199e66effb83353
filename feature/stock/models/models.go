package models

import (
	"github.com/shopspring/decimal"
)

// Category sentinels for codes that no rule or mapping covers.
// Unmapped lines are kept and reported, never dropped.
const (
	CategoryUnmappedReflex = "UNMAPPED_REFLEX"
	CategoryUnmappedM3     = "UNMAPPED_M3"
)

// Well-known categories referenced by the regulation cascade.
const (
	CategoryStock = "STOCK"
	CategoryNDisp = "NDISP"
	CategoryDes   = "DES"
	CategoryDef   = "DEF"
)

// ReflexLine is one standardized row of the retail (Reflex) stock snapshot.
// Lot is the empty string when the item is not lot-tracked.
type ReflexLine struct {
	SKU      string          `json:"sku"`
	Lot      string          `json:"lot"`
	Quality  string          `json:"quality"`
	Location string          `json:"location"`
	Qty      decimal.Decimal `json:"qty"`

	// Category is set by the categorizer; empty until then.
	Category string `json:"category"`
}

// HasLot reports whether the line carries a lot identifier.
func (l ReflexLine) HasLot() bool { return l.Lot != "" }

// M3Line is one standardized row of the warehouse (M3) stock snapshot.
// SKU is the resolved identifier (WMS id preferred over the M3 id when
// non-empty); SKUM3 keeps the raw M3 identifier for corrective actions.
type M3Line struct {
	SKU      string          `json:"sku"`
	SKUM3    string          `json:"sku_m3"`
	Lot      string          `json:"lot"`
	Depot    string          `json:"depot"`
	Type     string          `json:"type"`
	Location string          `json:"location"`
	Qty      decimal.Decimal `json:"qty"`

	Category string `json:"category"`

	// SMS marks lines held in the SMS depot, carried for downstream
	// handling outside the reconciliation core.
	SMS bool `json:"sms"`
}

// HasLot reports whether the line carries a lot identifier.
func (l M3Line) HasLot() bool { return l.Lot != "" }

// WideRow is one reconciled row: the Reflex quantity against one column
// per configured target depot. Depots always contains every configured
// depot code, zero-filled when M3 contributed no stock there.
type WideRow struct {
	SKU      string `json:"sku"`
	Lot      string `json:"lot"`
	Quality  string `json:"quality"`
	Type     string `json:"type"`
	Category string `json:"category"`

	QtyReflex decimal.Decimal            `json:"qty_reflex"`
	Depots    map[string]decimal.Decimal `json:"depots"`
	TotalM3   decimal.Decimal            `json:"total_m3"`

	// Ecart is QtyReflex minus TotalM3; negative when M3 over-reports.
	Ecart decimal.Decimal `json:"ecart"`

	// PurchaseOrder marks rows whose lot is on the PO exclusion list.
	// They are reported separately and never regulated.
	PurchaseOrder bool `json:"purchase_order"`
}

// Surplus returns the warehouse over-report (TotalM3 minus QtyReflex).
// Only rows with a positive surplus receive withdrawals.
func (r WideRow) Surplus() decimal.Decimal {
	return r.TotalM3.Sub(r.QtyReflex)
}

// ReliquatReason explains why an M3 line found no Reflex counterpart.
type ReliquatReason string

const (
	ReasonNoMatchWithLot ReliquatReason = "NO_MATCH_WITH_LOT"
	ReasonNoMatchNoLot   ReliquatReason = "NO_MATCH_NO_LOT"
)

// ReliquatRow is an M3 line with no matching Reflex key in its lot regime.
type ReliquatRow struct {
	SKU      string          `json:"sku"`
	Lot      string          `json:"lot"`
	Depot    string          `json:"depot"`
	Location string          `json:"location"`
	Category string          `json:"category"`
	Qty      decimal.Decimal `json:"qty"`
	Reason   ReliquatReason  `json:"reason"`
}

// RegulationRow is a WideRow plus the per-depot withdrawals decided by
// the regulation cascade. Withdrawals carries every configured depot,
// zero for depots the cascade did not target.
type RegulationRow struct {
	WideRow

	Withdrawals   map[string]decimal.Decimal `json:"withdrawals"`
	WithdrawTotal decimal.Decimal            `json:"withdraw_total"`

	// UncappedRemainder is the part of the secondary-depot withdrawal
	// that exceeds that depot's available stock (the A01 cascade does
	// not cap its remainder). Zero everywhere else.
	UncappedRemainder decimal.Decimal `json:"uncapped_remainder"`
}

// Fixed fields of the corrective-action output, as M3 expects them.
const (
	ActionStatusPending = 2       // STAG
	ActionReasonEcart   = "ECART" // BREM
	ActionCauseCode     = "X01"   // RSCD
)

// Action is a single line-level corrective withdrawal instruction.
// Field names follow the M3 stock-correction schema.
type Action struct {
	CONO int             `json:"cono"`
	WHLO string          `json:"whlo"`
	ITNO string          `json:"itno"`
	WHSL string          `json:"whsl"`
	BANO string          `json:"bano"`
	STQI decimal.Decimal `json:"stqi"`
	STAG int             `json:"stag"`
	BREM string          `json:"brem"`
	RSCD string          `json:"rscd"`
}
