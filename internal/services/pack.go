package services

import (
	"pick-time-service/internal/domain"
	"sort"
	"strings"
)

// EstimatePackSeconds computes the invoice-level packing time: a base cost,
// a per-line cost, and one penalty per distinct special-handling group present
// anywhere in the order. A group is charged at most once no matter how many
// lines exhibit it.
//
// Groups: fragile, spill, pressure_high, and (summer mode only) heat_sensitive.
func EstimatePackSeconds(lines []*domain.OrderLine, itemsByCode map[string]*domain.ItemMaster, params *domain.Params, summerMode bool) (float64, domain.PackDebug) {
	pack := params.Pack

	groups := make(map[string]struct{}, 4)
	for _, line := range lines {
		item := itemsByCode[line.ItemCode]
		if item == nil {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(item.Fragility)) {
		case "yes", "y", "true", "fragile", "semi", "moderate", "medium":
			groups["fragile"] = struct{}{}
		}
		if truthy(item.SpillRisk) {
			groups["spill"] = struct{}{}
		}
		if strings.EqualFold(strings.TrimSpace(item.PressureSensitivity), "high") {
			groups["pressure_high"] = struct{}{}
		}
		if summerMode && strings.EqualFold(strings.TrimSpace(item.TemperatureSensitivity), "heat_sensitive") {
			groups["heat_sensitive"] = struct{}{}
		}
	}

	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)

	seconds := pack.BaseSeconds +
		pack.PerLineSeconds*float64(len(lines)) +
		pack.SpecialGroupSeconds*float64(len(groups))
	if seconds < 0 {
		seconds = 0
	}

	return seconds, domain.PackDebug{Lines: len(lines), SpecialGroups: names}
}
