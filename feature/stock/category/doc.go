// Package category assigns semantic categories to raw stock lines so the
// Reflex and M3 snapshots become comparable.
//
// The two sources use different raw vocabularies: Reflex reports a quality
// code resolved through a lookup table, M3 reports depot and location codes
// resolved through an ordered list of set-membership rules (first match
// wins). Unmapped codes are data, not failures; they fall to the
// UNMAPPED_REFLEX / UNMAPPED_M3 sentinels and stay visible downstream.
//
// Rule sets are configuration, loaded once per run from a YAML file via
// LoadRules and passed to the categorizers at construction.
package category
