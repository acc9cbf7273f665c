package services

import (
	"pick-time-service/internal/domain"
	"testing"
)

func plainItem() *domain.ItemMaster {
	return &domain.ItemMaster{ItemCode: "X", PickDifficulty: "1", Active: true}
}

func TestNormalizeUnitType(t *testing.T) {
	cases := map[string]string{
		"":             "item",
		"units":        "item",
		"Unit":         "item",
		"PCS":          "item",
		"vpack":        "virtual_pack",
		"pieces":       "virtual_pack",
		"VIRTUAL PACK": "virtual_pack",
		"CS":           "case",
		"Box":          "box",
		"pallet":       "pallet",
	}
	for raw, want := range cases {
		if got := NormalizeUnitType(raw); got != want {
			t.Errorf("NormalizeUnitType(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestPickMonotonicInQuantity(t *testing.T) {
	params := domain.DefaultParams()
	item := plainItem()

	prev := -1.0
	for qty := 1; qty <= 20; qty++ {
		l := line("X", "10-01-A02", "MAIN", "10", qty)
		got := EstimatePickSeconds(l, item, params, false)
		if got < prev {
			t.Fatalf("pick seconds decreased at qty %d: %v < %v", qty, got, prev)
		}
		prev = got
	}
}

func TestPickBaseAndPerUnit(t *testing.T) {
	params := domain.DefaultParams()
	item := plainItem()

	l := line("X", "10-01-A02", "MAIN", "10", 3)
	got := EstimatePickSeconds(l, item, params, false)

	// base 6 + 2 extra units at 1.1 + level A 0 + difficulty 1 at 0
	almostEqual(t, got, 6+2*1.1, "item qty 3")
}

func TestPickZeroQuantityTreatedAsOne(t *testing.T) {
	params := domain.DefaultParams()
	item := plainItem()

	zero := EstimatePickSeconds(line("X", "10-01-A02", "MAIN", "10", 0), item, params, false)
	one := EstimatePickSeconds(line("X", "10-01-A02", "MAIN", "10", 1), item, params, false)
	almostEqual(t, zero, one, "qty 0 vs qty 1")
}

func TestPickLevelPenalty(t *testing.T) {
	params := domain.DefaultParams()
	item := plainItem()

	ground := EstimatePickSeconds(line("X", "10-01-A02", "MAIN", "10", 1), item, params, false)
	high := EstimatePickSeconds(line("X", "10-01-D02", "MAIN", "10", 1), item, params, false)
	almostEqual(t, high-ground, params.Pick.LevelSeconds["D"], "level D penalty")
}

func TestPickLadderRule(t *testing.T) {
	params := domain.DefaultParams()
	item := plainItem()

	// Default rules ladder corridors 11 and 13 on level C.
	plain := EstimatePickSeconds(line("X", "12-01-C02", "MAIN", "12", 1), item, params, false)
	ladder := EstimatePickSeconds(line("X", "11-01-C02", "MAIN", "11", 1), item, params, false)
	almostEqual(t, ladder-plain, 15, "ladder corridor penalty")
}

func TestPickMissingItemMasterDefaults(t *testing.T) {
	params := domain.DefaultParams()

	// No item row: difficulty defaults to rating 2, no handling penalties.
	got := EstimatePickSeconds(line("X", "10-01-A02", "MAIN", "10", 1), nil, params, true)
	almostEqual(t, got, 6+params.Pick.DifficultySeconds["2"], "nil item master")
}

func TestPickHandlingPenalties(t *testing.T) {
	params := domain.DefaultParams()
	l := line("X", "10-01-A02", "MAIN", "10", 1)
	base := EstimatePickSeconds(l, plainItem(), params, false)

	fragile := plainItem()
	fragile.Fragility = "yes"
	almostEqual(t, EstimatePickSeconds(l, fragile, params, false)-base, 6, "fragility yes")

	semi := plainItem()
	semi.Fragility = "semi"
	almostEqual(t, EstimatePickSeconds(l, semi, params, false)-base, 3, "fragility semi")

	spill := plainItem()
	spill.SpillRisk = "1"
	almostEqual(t, EstimatePickSeconds(l, spill, params, false)-base, 5, "spill risk truthy")

	pressure := plainItem()
	pressure.PressureSensitivity = "HIGH"
	almostEqual(t, EstimatePickSeconds(l, pressure, params, false)-base, 4, "pressure high")
}

func TestPickHeatSensitiveOnlyInSummer(t *testing.T) {
	params := domain.DefaultParams()
	l := line("X", "10-01-A02", "MAIN", "10", 1)

	item := plainItem()
	item.TemperatureSensitivity = "heat_sensitive"

	winter := EstimatePickSeconds(l, item, params, false)
	summer := EstimatePickSeconds(l, item, params, true)

	almostEqual(t, winter, EstimatePickSeconds(l, plainItem(), params, false), "no penalty off-season")
	almostEqual(t, summer-winter, params.Pick.HandlingSeconds["heat_sensitive_summer"], "summer penalty")
}

func TestDisplayQtyExpandsVirtualPacks(t *testing.T) {
	item := plainItem()
	item.PiecesPerUnit = 24

	vpack := line("X", "10-01-A02", "MAIN", "10", 2)
	vpack.UnitType = "vpack"
	if got := DisplayQty(vpack, item); got != 48 {
		t.Fatalf("vpack display qty = %d, want 48", got)
	}

	pack := line("X", "10-01-A02", "MAIN", "10", 2)
	pack.UnitType = "pack"
	if got := DisplayQty(pack, item); got != 2 {
		t.Fatalf("pack display qty = %d, want 2", got)
	}
}

func TestPickUnknownUnitTypeFallsBackToItem(t *testing.T) {
	params := domain.DefaultParams()
	item := plainItem()

	known := line("X", "10-01-A02", "MAIN", "10", 1)
	unknown := line("X", "10-01-A02", "MAIN", "10", 1)
	unknown.UnitType = "pallet"

	almostEqual(t,
		EstimatePickSeconds(unknown, item, params, false),
		EstimatePickSeconds(known, item, params, false),
		"unconfigured unit type uses the item entry",
	)
}
