package domain

// OrderLine is one item to pick on an invoice. Immutable for the duration of
// one estimation; ExpMinutes is populated by the persistence layer afterwards.
type OrderLine struct {
	LineID    int64
	InvoiceNo string
	ItemCode  string
	Qty       int
	UnitType  string
	Location  string
	Zone      string
	// Corridor is the raw corridor field used when Location cannot be parsed.
	Corridor   string
	ExpMinutes *float64
}

// ItemMaster carries the warehouse attributes of an item. A line whose item
// code has no master row is estimated with zero-valued attributes instead of
// failing.
type ItemMaster struct {
	ItemCode string
	UnitType string
	// PickDifficulty is a rating "1".."5"; blank means unrated.
	PickDifficulty string
	// Fragility is "yes", "semi" or blank.
	Fragility string
	// SpillRisk accepts several encodings ("true", "1", "yes", "y").
	SpillRisk string
	// PressureSensitivity is "high" or blank.
	PressureSensitivity string
	// TemperatureSensitivity is "heat_sensitive" or blank.
	TemperatureSensitivity string
	// PiecesPerUnit expands virtual-pack quantities into picked pieces.
	PiecesPerUnit int
	Active        bool
}
