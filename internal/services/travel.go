package services

import (
	"pick-time-service/internal/domain"
)

// legCost is the incremental cost of arriving at one stop from the previous
// one (nil prev means the first stop of the route). Stairs are excluded here:
// they are a one-time per-order charge, not a per-leg one.
type legCost struct {
	seconds         float64
	zoneSwitch      bool
	corridorChange  bool
	baySteps        int
	posSteps        int
}

// alignSeconds prefers the newer per-move key; payloads predating the split
// carry only sec_align_per_stop.
func alignSeconds(t domain.TravelParams) float64 {
	if t.SecAlignPerMove > 0 {
		return t.SecAlignPerMove
	}
	return t.SecAlignPerStop
}

func travelLeg(prev *domain.Stop, cur domain.Stop, params *domain.Params, upper map[string]struct{}) legCost {
	t := params.Travel
	align := alignSeconds(t)
	leg := legCost{seconds: align}

	if prev != nil {
		if prev.Zone != cur.Zone {
			leg.seconds += t.ZoneSwitchSeconds
			leg.zoneSwitch = true
		}

		if prev.Corridor != cur.Corridor {
			leg.seconds += t.SecPerCorridorChange
			leg.corridorChange = true

			// Skipping several corridors costs more than walking to an
			// adjacent one; charge the extra distance beyond the first.
			prevC := safeInt(prev.Corridor, -1)
			curC := safeInt(cur.Corridor, -1)
			if prevC >= 0 && curC >= 0 {
				jump := absInt(curC - prevC)
				if jump > 1 {
					leg.seconds += float64(jump-1) * t.SecPerCorridorStep
				}
			}
		}

		if prev.Bay != nil && cur.Bay != nil {
			leg.baySteps = absInt(*cur.Bay - *prev.Bay)
			leg.seconds += float64(leg.baySteps) * t.SecPerBayStep
		}

		if prev.Pos != nil && cur.Pos != nil {
			leg.posSteps = absInt(*cur.Pos - *prev.Pos)
			leg.seconds += float64(leg.posSteps) * t.SecPerPosStep
		}
	}

	// v1 approximation: the upper-floor multiplier is applied to the
	// alignment portion of upstairs stops, not to true incremental distance.
	// Changing this formula would shift all historical estimates.
	if t.UpperWalkMultiplier != 1.0 && isUpperStop(cur, upper) {
		leg.seconds += align * (t.UpperWalkMultiplier - 1.0)
	}

	return leg
}

// EstimateTravelSeconds walks the ordered stop sequence and sums per-step
// costs: alignment at every stop, zone switches, corridor changes and jumps,
// bay and position steps, and a one-time stairs up+down charge if any stop in
// the route is on an upper floor (one trip upstairs per order, regardless of
// how many upstairs stops exist).
//
// An empty route costs exactly zero.
func EstimateTravelSeconds(ordered []domain.Stop, params *domain.Params) (float64, domain.TravelDebug) {
	dbg := domain.TravelDebug{Stops: len(ordered)}
	if len(ordered) == 0 {
		return 0, dbg
	}

	upper := upperCorridorSet(params)

	total := 0.0
	var prev *domain.Stop
	for i := range ordered {
		leg := travelLeg(prev, ordered[i], params, upper)
		total += leg.seconds
		if leg.zoneSwitch {
			dbg.ZoneSwitches++
		}
		if leg.corridorChange {
			dbg.CorridorChanges++
		}
		dbg.BaySteps += leg.baySteps
		dbg.PosSteps += leg.posSteps
		prev = &ordered[i]
	}

	if anyUpperStop(ordered, upper) {
		dbg.StairsSeconds = params.Travel.SecStairsUp + params.Travel.SecStairsDown
		total += dbg.StairsSeconds
	}

	return total, dbg
}

// WalkSecondsAtStops allocates the travel cost of reaching each stop, keyed by
// stop identity. The first line picked at a stop carries this cost in its
// persisted minutes; later lines at the same stop carry none. The stairs
// charge stays order-level and is deliberately not allocated to any line.
func WalkSecondsAtStops(ordered []domain.Stop, params *domain.Params) map[domain.StopKey]float64 {
	walk := make(map[domain.StopKey]float64, len(ordered))
	upper := upperCorridorSet(params)

	var prev *domain.Stop
	for i := range ordered {
		key := ordered[i].Key()
		if _, ok := walk[key]; !ok {
			walk[key] = travelLeg(prev, ordered[i], params, upper).seconds
		}
		prev = &ordered[i]
	}
	return walk
}

func anyUpperStop(stops []domain.Stop, upper map[string]struct{}) bool {
	for _, s := range stops {
		if isUpperStop(s, upper) {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
