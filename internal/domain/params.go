package domain

// Params is the estimator cost model. It is loaded once per estimation call
// and treated as immutable input. Every lookup has a safe default so a missing
// key never aborts an estimation; only a wholly absent Params is a hard error.
type Params struct {
	Version  string         `json:"version"`
	Location LocationParams `json:"location"`
	Overhead OverheadParams `json:"overhead"`
	Travel   TravelParams   `json:"travel"`
	Pick     PickParams     `json:"pick"`
	Pack     PackParams     `json:"pack"`
}

// LocationParams controls warehouse location parsing and floor layout.
type LocationParams struct {
	// Regex must expose named groups corridor, bay, level and pos.
	Regex          string   `json:"regex"`
	UpperCorridors []string `json:"upper_corridors"`
}

// OverheadParams is the fixed per-order start/end cost.
type OverheadParams struct {
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
}

// TravelParams is the per-step walking cost model.
type TravelParams struct {
	SecAlignPerStop      float64  `json:"sec_align_per_stop"`
	SecAlignPerMove      float64  `json:"sec_align_per_move"`
	SecPerCorridorChange float64  `json:"sec_per_corridor_change"`
	SecPerCorridorStep   float64  `json:"sec_per_corridor_step"`
	SecPerBayStep        float64  `json:"sec_per_bay_step"`
	SecPerPosStep        float64  `json:"sec_per_pos_step"`
	SecStairsUp          float64  `json:"sec_stairs_up"`
	SecStairsDown        float64  `json:"sec_stairs_down"`
	UpperWalkMultiplier  float64  `json:"upper_walk_multiplier"`
	ZoneSwitchSeconds    float64  `json:"zone_switch_seconds"`
	ZonePriority         []string `json:"zone_priority"`
}

// PickParams is the per-line touch-time cost model.
type PickParams struct {
	SecAlignScanPerLine float64            `json:"sec_align_scan_per_line"`
	BaseByUnitType      map[string]float64 `json:"base_by_unit_type"`
	PerQtyByUnitType    map[string]float64 `json:"per_qty_by_unit_type"`
	LevelSeconds        map[string]float64 `json:"level_seconds"`
	DifficultySeconds   map[string]float64 `json:"difficulty_seconds"`
	HandlingSeconds     map[string]float64 `json:"handling_seconds"`
	LadderRules         []LadderRule       `json:"ladder_rules"`
}

// LadderRule adds extra seconds when a pick happens at one of the listed
// corridors on one of the listed levels (locations that need a ladder).
type LadderRule struct {
	Corridors     []string `json:"corridors"`
	Levels        []string `json:"levels"`
	LadderSeconds float64  `json:"ladder_seconds"`
}

// PackParams is the invoice-level packing cost model.
type PackParams struct {
	BaseSeconds         float64 `json:"base_seconds"`
	PerLineSeconds      float64 `json:"per_line_seconds"`
	SpecialGroupSeconds float64 `json:"special_group_seconds"`
}

// DefaultLocationRegex parses locations like "10-01-A02".
const DefaultLocationRegex = `^(?P<corridor>\d{2})-(?P<bay>\d{2})-(?P<level>[A-Z])(?P<pos>\d{2})$`

// DefaultZonePriority orders zones for the walking route when no explicit
// priority is configured. Unknown zones sort after all named zones.
var DefaultZonePriority = []string{"CROSS_SHIPPING", "SENSITIVE", "MAIN", "SNACKS"}

// DefaultParams is the documented v1 cost model, used when no parameter set
// has been stored yet.
func DefaultParams() *Params {
	return &Params{
		Version: "v1",
		Location: LocationParams{
			Regex:          DefaultLocationRegex,
			UpperCorridors: []string{"70", "80", "90"},
		},
		Overhead: OverheadParams{
			StartSeconds: 45,
			EndSeconds:   45,
		},
		Travel: TravelParams{
			SecAlignPerStop:      2,
			SecAlignPerMove:      2,
			SecPerCorridorChange: 14,
			SecPerCorridorStep:   4,
			SecPerBayStep:        2.5,
			SecPerPosStep:        0.6,
			SecStairsUp:          25,
			SecStairsDown:        20,
			UpperWalkMultiplier:  1.05,
			ZoneSwitchSeconds:    4,
			ZonePriority:         append([]string(nil), DefaultZonePriority...),
		},
		Pick: PickParams{
			SecAlignScanPerLine: 0,
			BaseByUnitType: map[string]float64{
				"item":         6,
				"pack":         8,
				"box":          10,
				"case":         13,
				"virtual_pack": 6,
			},
			PerQtyByUnitType: map[string]float64{
				"item":         1.1,
				"pack":         1.6,
				"box":          2.0,
				"case":         3.0,
				"virtual_pack": 1.1,
			},
			LevelSeconds: map[string]float64{
				"A": 0,
				"B": 2,
				"C": 12,
				"D": 14,
			},
			DifficultySeconds: map[string]float64{
				"1": 0,
				"2": 2,
				"3": 6,
				"4": 12,
				"5": 20,
			},
			HandlingSeconds: map[string]float64{
				"fragility_yes":         6,
				"fragility_semi":        3,
				"spill_true":            5,
				"pressure_high":         4,
				"heat_sensitive_summer": 8,
			},
			LadderRules: []LadderRule{
				{Corridors: []string{"11", "13"}, Levels: []string{"C"}, LadderSeconds: 15},
			},
		},
		Pack: PackParams{
			BaseSeconds:         45,
			PerLineSeconds:      3,
			SpecialGroupSeconds: 20,
		},
	}
}

// Normalize backfills parameters a stored payload may lack.
//
// Older payloads carry only sec_align_per_stop; the per-move key was split out
// later, so a missing per-move value inherits the legacy per-stop value.
// The location regex and zone priority always get usable defaults.
func (p *Params) Normalize() {
	if p.Location.Regex == "" {
		p.Location.Regex = DefaultLocationRegex
	}
	if p.Travel.SecAlignPerMove == 0 {
		p.Travel.SecAlignPerMove = p.Travel.SecAlignPerStop
	}
	if len(p.Travel.ZonePriority) == 0 {
		p.Travel.ZonePriority = append([]string(nil), DefaultZonePriority...)
	}
	if p.Travel.UpperWalkMultiplier == 0 {
		p.Travel.UpperWalkMultiplier = 1.0
	}
}
