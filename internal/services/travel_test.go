package services

import (
	"math"
	"pick-time-service/internal/domain"
	"testing"
)

func almostEqual(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s: got %v, want %v", msg, got, want)
	}
}

func stopAt(zone, corridor string, bay int, level string, pos int) domain.Stop {
	return domain.Stop{Zone: zone, Corridor: corridor, Bay: &bay, Level: level, Pos: &pos}
}

func TestTravelEmptyRouteCostsZero(t *testing.T) {
	params := domain.DefaultParams()

	total, dbg := EstimateTravelSeconds(nil, params)
	if total != 0 {
		t.Fatalf("empty route cost = %v, want 0", total)
	}
	if dbg.Stops != 0 || dbg.StairsSeconds != 0 {
		t.Fatalf("empty route debug = %+v, want zeroes", dbg)
	}
}

func TestTravelSingleStopChargesAlignmentOnly(t *testing.T) {
	params := domain.DefaultParams()

	total, dbg := EstimateTravelSeconds([]domain.Stop{stopAt("MAIN", "10", 1, "A", 2)}, params)
	almostEqual(t, total, params.Travel.SecAlignPerMove, "single ground stop")
	if dbg.ZoneSwitches != 0 || dbg.CorridorChanges != 0 || dbg.StairsSeconds != 0 {
		t.Fatalf("unexpected extra charges: %+v", dbg)
	}
}

func TestTravelBayAndPosSteps(t *testing.T) {
	params := domain.DefaultParams()

	stops := []domain.Stop{
		stopAt("MAIN", "10", 1, "A", 2),
		stopAt("MAIN", "10", 4, "A", 6),
	}

	total, dbg := EstimateTravelSeconds(stops, params)

	tr := params.Travel
	want := 2*tr.SecAlignPerMove + 3*tr.SecPerBayStep + 4*tr.SecPerPosStep
	almostEqual(t, total, want, "two stops same corridor")
	if dbg.BaySteps != 3 || dbg.PosSteps != 4 {
		t.Fatalf("steps = %+v, want bay 3 pos 4", dbg)
	}
}

func TestTravelCorridorJumpCostsMoreThanAdjacent(t *testing.T) {
	params := domain.DefaultParams()

	adjacent := []domain.Stop{
		stopAt("MAIN", "10", 1, "A", 1),
		stopAt("MAIN", "11", 1, "A", 1),
	}
	jump := []domain.Stop{
		stopAt("MAIN", "10", 1, "A", 1),
		stopAt("MAIN", "14", 1, "A", 1),
	}

	adjTotal, adjDbg := EstimateTravelSeconds(adjacent, params)
	jumpTotal, jumpDbg := EstimateTravelSeconds(jump, params)

	if adjDbg.CorridorChanges != 1 || jumpDbg.CorridorChanges != 1 {
		t.Fatalf("corridor changes = %d / %d, want 1 / 1", adjDbg.CorridorChanges, jumpDbg.CorridorChanges)
	}
	almostEqual(t, jumpTotal-adjTotal, 3*params.Travel.SecPerCorridorStep, "jump of 4 corridors adds 3 step charges")
}

func TestTravelZoneSwitch(t *testing.T) {
	params := domain.DefaultParams()

	stops := []domain.Stop{
		stopAt("CROSS_SHIPPING", "05", 1, "A", 1),
		stopAt("MAIN", "05", 1, "A", 1),
	}

	_, dbg := EstimateTravelSeconds(stops, params)
	if dbg.ZoneSwitches != 1 {
		t.Fatalf("zone switches = %d, want 1", dbg.ZoneSwitches)
	}
}

func TestTravelStairsChargedExactlyOnce(t *testing.T) {
	params := domain.DefaultParams()
	wantStairs := params.Travel.SecStairsUp + params.Travel.SecStairsDown

	one := []domain.Stop{
		stopAt("MAIN", "10", 1, "A", 1),
		stopAt("MAIN", "70", 1, "A", 1),
	}
	five := []domain.Stop{
		stopAt("MAIN", "10", 1, "A", 1),
		stopAt("MAIN", "70", 1, "A", 1),
		stopAt("MAIN", "70", 2, "A", 1),
		stopAt("MAIN", "70", 3, "A", 1),
		stopAt("MAIN", "80", 1, "A", 1),
		stopAt("MAIN", "90", 1, "A", 1),
	}

	_, oneDbg := EstimateTravelSeconds(one, params)
	_, fiveDbg := EstimateTravelSeconds(five, params)

	almostEqual(t, oneDbg.StairsSeconds, wantStairs, "stairs with 1 upstairs stop")
	almostEqual(t, fiveDbg.StairsSeconds, wantStairs, "stairs with 5 upstairs stops")
}

func TestTravelNoStairsWithoutUpperStops(t *testing.T) {
	params := domain.DefaultParams()

	stops := []domain.Stop{
		stopAt("MAIN", "10", 1, "A", 1),
		stopAt("MAIN", "12", 1, "A", 1),
	}

	_, dbg := EstimateTravelSeconds(stops, params)
	if dbg.StairsSeconds != 0 {
		t.Fatalf("stairs = %v, want 0 on all-ground route", dbg.StairsSeconds)
	}
}

func TestTravelUpperMultiplierAppliesToAlignment(t *testing.T) {
	params := domain.DefaultParams()
	params.Travel.UpperWalkMultiplier = 1.5

	total, _ := EstimateTravelSeconds([]domain.Stop{stopAt("MAIN", "70", 1, "A", 1)}, params)

	tr := params.Travel
	want := tr.SecAlignPerMove + tr.SecAlignPerMove*0.5 + tr.SecStairsUp + tr.SecStairsDown
	almostEqual(t, total, want, "upper stop with multiplier 1.5")
}

func TestTravelUnknownBaySkipsStepCharge(t *testing.T) {
	params := domain.DefaultParams()

	known := stopAt("MAIN", "10", 3, "A", 2)
	unknown := domain.Stop{Zone: "MAIN", Corridor: "10"}

	total, dbg := EstimateTravelSeconds([]domain.Stop{known, unknown}, params)
	almostEqual(t, total, 2*params.Travel.SecAlignPerMove, "unknown bay/pos contributes alignment only")
	if dbg.BaySteps != 0 || dbg.PosSteps != 0 {
		t.Fatalf("steps = %+v, want none", dbg)
	}
}

func TestWalkSecondsAllocation(t *testing.T) {
	params := domain.DefaultParams()

	first := stopAt("MAIN", "10", 1, "A", 2)
	second := stopAt("MAIN", "10", 4, "A", 2)
	ordered := []domain.Stop{first, second}

	walk := WalkSecondsAtStops(ordered, params)

	tr := params.Travel
	almostEqual(t, walk[first.Key()], tr.SecAlignPerMove, "first stop carries alignment only")
	almostEqual(t, walk[second.Key()], tr.SecAlignPerMove+3*tr.SecPerBayStep, "second stop carries its leg")
}
