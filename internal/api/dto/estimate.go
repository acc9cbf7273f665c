package dto

type EstimateRequest struct {
	InvoiceNo string `json:"invoice_no"`
	Persist   bool   `json:"persist"`
	Reason    string `json:"reason"`
}

type StopResponse struct {
	Zone     string `json:"zone"`
	Corridor string `json:"corridor"`
	Bay      *int   `json:"bay"`
	Level    string `json:"level"`
	Pos      *int   `json:"pos"`
	Location string `json:"location"`
}

type LineEstimateResponse struct {
	LineID       int64   `json:"line_id"`
	ItemCode     string  `json:"item_code"`
	Location     string  `json:"location"`
	Qty          int     `json:"qty"`
	UnitType     string  `json:"unit_type"`
	PickSeconds  float64 `json:"pick_seconds"`
	WalkSeconds  float64 `json:"walk_seconds"`
	TotalMinutes float64 `json:"total_minutes"`
}

type TravelDebugResponse struct {
	Stops           int     `json:"stops"`
	ZoneSwitches    int     `json:"zone_switches"`
	CorridorChanges int     `json:"corridor_changes"`
	BaySteps        int     `json:"bay_steps"`
	PosSteps        int     `json:"pos_steps"`
	StairsSeconds   float64 `json:"stairs_seconds"`
}

type EstimateResponse struct {
	InvoiceNo       string                 `json:"invoice_no"`
	TotalSeconds    float64                `json:"total_seconds"`
	TotalMinutes    float64                `json:"total_minutes"`
	OverheadSeconds float64                `json:"overhead_seconds"`
	TravelSeconds   float64                `json:"travel_seconds"`
	PickSeconds     float64                `json:"pick_seconds"`
	PackSeconds     float64                `json:"pack_seconds"`
	SummerMode      bool                   `json:"summer_mode"`
	ParamsVersion   string                 `json:"params_version"`
	Travel          TravelDebugResponse    `json:"travel_debug"`
	SpecialGroups   []string               `json:"special_groups"`
	Stops           []StopResponse         `json:"ordered_stops"`
	Lines           []LineEstimateResponse `json:"lines"`
	RunID           *int64                 `json:"run_id,omitempty"`
}
