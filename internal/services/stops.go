package services

import (
	"pick-time-service/internal/domain"
	"slices"
	"strings"
)

// BuildStops collapses order lines into the unique physical stops a picker
// must visit. Identity is the (zone, corridor, bay, level, pos) tuple; lines
// sharing a location produce one stop. Output preserves first-seen order;
// route ordering is OrderStopsOneTrip's job.
func BuildStops(lines []*domain.OrderLine, params *domain.Params) []domain.Stop {
	seen := make(map[domain.StopKey]struct{}, len(lines))
	stops := make([]domain.Stop, 0, len(lines))

	for _, line := range lines {
		stop := stopForLine(line, params)
		key := stop.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		stops = append(stops, stop)
	}
	return stops
}

func stopForLine(line *domain.OrderLine, params *domain.Params) domain.Stop {
	zone := strings.ToUpper(strings.TrimSpace(line.Zone))
	if zone == "" {
		zone = "MAIN"
	}

	parsed := ParseLocation(line.Location, line.Corridor, params)
	return domain.Stop{
		Zone:     zone,
		Corridor: parsed.Corridor,
		Bay:      parsed.Bay,
		Level:    parsed.Level,
		Pos:      parsed.Pos,
		Location: line.Location,
	}
}

// OrderStopsOneTrip orders stops into a single warehouse walking trip:
// every ground-floor stop first, then all upper-floor stops as one contiguous
// block, so the route never climbs the stairs more than once.
//
// Each floor is sorted by zone priority, then corridor, bay, level and
// position, with large sentinels for unknown fields so dirty locations sort
// last within their zone.
func OrderStopsOneTrip(stops []domain.Stop, params *domain.Params) []domain.Stop {
	upper := upperCorridorSet(params)

	prio := make(map[string]int, len(params.Travel.ZonePriority))
	for i, z := range params.Travel.ZonePriority {
		prio[strings.ToUpper(z)] = i
	}

	zoneRank := func(zone string) int {
		if r, ok := prio[strings.ToUpper(zone)]; ok {
			return r
		}
		// Unknown zones sort after every named zone.
		return 999
	}

	cmp := func(a, b domain.Stop) int {
		if d := zoneRank(a.Zone) - zoneRank(b.Zone); d != 0 {
			return d
		}
		if d := safeInt(a.Corridor, 9999) - safeInt(b.Corridor, 9999); d != 0 {
			return d
		}
		if d := intOr(a.Bay, 999) - intOr(b.Bay, 999); d != 0 {
			return d
		}
		if c := strings.Compare(levelOr(a.Level), levelOr(b.Level)); c != 0 {
			return c
		}
		return intOr(a.Pos, 999) - intOr(b.Pos, 999)
	}

	ground := make([]domain.Stop, 0, len(stops))
	upstairs := make([]domain.Stop, 0)
	for _, s := range stops {
		if _, ok := upper[s.Corridor]; ok {
			upstairs = append(upstairs, s)
		} else {
			ground = append(ground, s)
		}
	}

	slices.SortStableFunc(ground, cmp)
	slices.SortStableFunc(upstairs, cmp)

	return append(ground, upstairs...)
}

func upperCorridorSet(params *domain.Params) map[string]struct{} {
	upper := make(map[string]struct{}, len(params.Location.UpperCorridors))
	for _, c := range params.Location.UpperCorridors {
		upper[c] = struct{}{}
	}
	return upper
}

func isUpperStop(s domain.Stop, upper map[string]struct{}) bool {
	_, ok := upper[s.Corridor]
	return ok
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func levelOr(level string) string {
	if level == "" {
		return "Z"
	}
	return level
}
