package services

import (
	"pick-time-service/internal/domain"
	"strconv"
	"strings"
)

// unitTypeAliases maps source-system unit codes to the canonical types keyed
// in the cost model.
var unitTypeAliases = map[string]string{
	"PCS":          "item",
	"PIECE":        "item",
	"PIECES":       "virtual_pack",
	"ITEM":         "item",
	"UNIT":         "item",
	"UNITS":        "item",
	"EA":           "item",
	"PK":           "pack",
	"PACK":         "pack",
	"BX":           "box",
	"BOX":          "box",
	"CS":           "case",
	"CASE":         "case",
	"VPACK":        "virtual_pack",
	"VIRTUAL_PACK": "virtual_pack",
	"VIRTUAL PACK": "virtual_pack",
}

// NormalizeUnitType collapses unit-type synonyms ("units" -> "item",
// "vpack" -> "virtual_pack"). Blank input defaults to "item"; unknown types
// pass through lower-cased so they can still be configured explicitly.
func NormalizeUnitType(raw string) string {
	u := strings.ToUpper(strings.TrimSpace(raw))
	if u == "" {
		return "item"
	}
	if mapped, ok := unitTypeAliases[u]; ok {
		return mapped
	}
	return strings.ToLower(u)
}

// unitTypeLookup reads a per-unit-type cost, falling back to the "item" entry
// and finally to def when the map has neither key.
func unitTypeLookup(m map[string]float64, unitType string, def float64) float64 {
	if v, ok := m[unitType]; ok {
		return v
	}
	if v, ok := m["item"]; ok {
		return v
	}
	return def
}

// DisplayQty is the quantity the picker actually handles. Virtual packs are
// picked piece by piece, so their quantity expands by pieces-per-unit; every
// other unit type is handled as-is.
func DisplayQty(line *domain.OrderLine, item *domain.ItemMaster) int {
	qty := line.Qty
	if item != nil && item.PiecesPerUnit > 0 && lineUnitType(line, item) == "virtual_pack" {
		qty = line.Qty * item.PiecesPerUnit
	}
	return qty
}

func lineUnitType(line *domain.OrderLine, item *domain.ItemMaster) string {
	raw := line.UnitType
	if strings.TrimSpace(raw) == "" && item != nil {
		raw = item.UnitType
	}
	return NormalizeUnitType(raw)
}

// truthy accepts the boolean encodings seen in warehouse attribute feeds.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "y", "on":
		return true
	}
	return false
}

// ladderSeconds returns the extra seconds for picks that need a ladder,
// when the stop's corridor and level match a configured rule.
func ladderSeconds(corridor, level string, params *domain.Params) float64 {
	level = strings.ToUpper(level)
	for _, rule := range params.Pick.LadderRules {
		if !containsFold(rule.Levels, level) {
			continue
		}
		if containsFold(rule.Corridors, corridor) {
			return rule.LadderSeconds
		}
	}
	return 0
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// EstimatePickSeconds computes the touch time for one order line:
// a unit-type base cost plus a per-unit increment for every unit beyond the
// first, a per-line scan/align constant, a location-level penalty, a ladder
// penalty, an item-difficulty penalty and handling penalties. Heat-sensitive
// handling only applies in summer mode. The result is floored at zero.
//
// A nil item master degrades to zero-valued attributes (difficulty "2",
// no handling flags) so a missing catalog row never aborts an estimation.
func EstimatePickSeconds(line *domain.OrderLine, item *domain.ItemMaster, params *domain.Params, summerMode bool) float64 {
	pick := params.Pick

	unitType := lineUnitType(line, item)
	base := unitTypeLookup(pick.BaseByUnitType, unitType, 6)
	perQty := unitTypeLookup(pick.PerQtyByUnitType, unitType, 1.0)

	qty := DisplayQty(line, item)
	if qty < 1 {
		qty = 1
	}

	seconds := base + perQty*float64(qty-1)
	seconds += pick.SecAlignScanPerLine

	parsed := ParseLocation(line.Location, line.Corridor, params)
	level := strings.ToUpper(parsed.Level)
	seconds += pick.LevelSeconds[level]
	seconds += ladderSeconds(parsed.Corridor, level, params)

	// Unrated or unparseable difficulty falls back to the middle rating.
	difficulty := 2
	if item != nil {
		difficulty = safeInt(item.PickDifficulty, 2)
	}
	seconds += pick.DifficultySeconds[strconv.Itoa(difficulty)]

	if item != nil {
		handling := pick.HandlingSeconds
		switch strings.ToLower(strings.TrimSpace(item.Fragility)) {
		case "yes", "y", "true", "fragile":
			seconds += handling["fragility_yes"]
		case "semi", "moderate", "medium":
			seconds += handling["fragility_semi"]
		}
		if truthy(item.SpillRisk) {
			seconds += handling["spill_true"]
		}
		if strings.EqualFold(strings.TrimSpace(item.PressureSensitivity), "high") {
			seconds += handling["pressure_high"]
		}
		if summerMode && strings.EqualFold(strings.TrimSpace(item.TemperatureSensitivity), "heat_sensitive") {
			seconds += handling["heat_sensitive_summer"]
		}
	}

	if seconds < 0 {
		return 0
	}
	return seconds
}
