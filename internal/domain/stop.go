package domain

// ParsedLocation is the decomposition of a warehouse location string such as
// "10-01-A02". All fields are nullable: a string that does not match the
// configured regex parses to an all-null value rather than an error.
type ParsedLocation struct {
	Corridor string
	Bay      *int
	Level    string
	Pos      *int
}

// Stop is a unique physical warehouse location visited during picking.
// Identity is the (zone, corridor, bay, level, pos) tuple; multiple order
// lines may collapse into one Stop.
type Stop struct {
	Zone     string
	Corridor string
	Bay      *int
	Level    string
	Pos      *int
	// Location is the raw string of the first line seen at this stop.
	Location string
}

// Key returns the identity tuple of the stop. Unknown bay/pos are folded to
// -1 so they compare equal across lines.
func (s Stop) Key() StopKey {
	k := StopKey{Zone: s.Zone, Corridor: s.Corridor, Bay: -1, Level: s.Level, Pos: -1}
	if s.Bay != nil {
		k.Bay = *s.Bay
	}
	if s.Pos != nil {
		k.Pos = *s.Pos
	}
	return k
}

// StopKey is the comparable identity of a Stop.
type StopKey struct {
	Zone     string
	Corridor string
	Bay      int
	Level    string
	Pos      int
}
