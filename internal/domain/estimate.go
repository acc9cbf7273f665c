package domain

// TravelDebug breaks a travel estimate down into its contributing step counts.
type TravelDebug struct {
	Stops           int     `json:"stops"`
	ZoneSwitches    int     `json:"zone_switches"`
	CorridorChanges int     `json:"corridor_changes"`
	BaySteps        int     `json:"bay_steps"`
	PosSteps        int     `json:"pos_steps"`
	StairsSeconds   float64 `json:"stairs_seconds"`
}

// PackDebug records which special-handling groups drove the packing estimate.
type PackDebug struct {
	Lines         int      `json:"lines"`
	SpecialGroups []string `json:"special_groups"`
}

// LineEstimate is the per-line share of an estimate. WalkSeconds is the travel
// allocated to the first line at each stop; subsequent lines at the same stop
// carry zero walk time.
type LineEstimate struct {
	LineID      int64   `json:"line_id"`
	ItemCode    string  `json:"item_code"`
	Location    string  `json:"location"`
	Qty         int     `json:"qty"`
	UnitType    string  `json:"unit_type"`
	PickSeconds float64 `json:"pick_seconds"`
	WalkSeconds float64 `json:"walk_seconds"`
}

// TotalSeconds returns pick plus allocated walk time for the line.
func (l LineEstimate) TotalSeconds() float64 { return l.PickSeconds + l.WalkSeconds }

// Minutes returns the line total in minutes, the unit used for persistence.
func (l LineEstimate) Minutes() float64 { return l.TotalSeconds() / 60.0 }

// Estimate is the complete result of one estimation run. It is never mutated
// after construction and is safe to serialize directly.
type Estimate struct {
	InvoiceNo       string         `json:"invoice_no"`
	TotalSeconds    float64        `json:"total_seconds"`
	TotalMinutes    float64        `json:"total_minutes"`
	OverheadSeconds float64        `json:"overhead_seconds"`
	TravelSeconds   float64        `json:"travel_seconds"`
	PickSeconds     float64        `json:"pick_seconds"`
	PackSeconds     float64        `json:"pack_seconds"`
	Lines           []LineEstimate `json:"lines"`
	OrderedStops    []Stop         `json:"ordered_stops"`
	Travel          TravelDebug    `json:"travel_debug"`
	Pack            PackDebug      `json:"pack_debug"`
	SummerMode      bool           `json:"summer_mode"`
	ParamsVersion   string         `json:"params_version"`
}
