package stock

import "strings"

// Config holds the reconciliation pipeline settings.
type Config struct {
	// Depots is the comma-separated list of target depot codes. The
	// list defines the wide output columns and is fixed once per run.
	Depots string `mapstructure:"depots" default:"100,150,200,400"`
	// ReflexObject is the staged Reflex snapshot object name.
	ReflexObject string `mapstructure:"reflex_object" default:"snapshots/reflex_stock.xlsx"`
	// M3Object is the staged M3 snapshot object name.
	M3Object string `mapstructure:"m3_object" default:"snapshots/m3_stock.xlsx"`
	// POObject is the staged purchase-order exclusion list object name.
	POObject string `mapstructure:"po_object" default:"snapshots/web_pos.xlsx"`
	// OutputObject is where the run workbook is written.
	OutputObject string `mapstructure:"output_object" default:"outputs/regul_stock.xlsx"`
	// RulesPath is the path of the categorization rules file.
	RulesPath string `mapstructure:"rules_path" default:"rules.yaml"`
	// Company is the company number (CONO) stamped on corrective actions.
	Company int `mapstructure:"company" default:"100"`
}

// DepotColumns returns the configured target depot codes in order.
func (c Config) DepotColumns() []string {
	var out []string
	for _, d := range strings.Split(c.Depots, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
