package services

import (
	"pick-time-service/internal/domain"
	"regexp"
	"strconv"
	"strings"
)

// safeInt converts dirty numeric input ("04", " 4 ", "4.0") to an int,
// returning def on any failure instead of propagating an error.
func safeInt(v string, def int) int {
	s := strings.TrimSpace(v)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return def
}

// safeIntPtr is safeInt with a null default, for optional location fields.
func safeIntPtr(v string) *int {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ParseLocation decomposes a warehouse location string like "10-01-A02" into
// corridor, bay, level and position using the configured regex.
//
// Dirty data never aborts an estimation: an empty string, an invalid regex or
// a non-matching location yields a ParsedLocation whose corridor falls back to
// the line's raw corridor field and whose other fields are null.
func ParseLocation(location, corridorFallback string, params *domain.Params) domain.ParsedLocation {
	fallback := domain.ParsedLocation{Corridor: strings.TrimSpace(corridorFallback)}

	// Normalize "31-04-E 02" style input before matching.
	clean := strings.ToUpper(strings.Join(strings.Fields(location), ""))
	if clean == "" {
		return fallback
	}

	rxSrc := params.Location.Regex
	if rxSrc == "" {
		return fallback
	}
	rx, err := regexp.Compile(rxSrc)
	if err != nil {
		return fallback
	}

	m := rx.FindStringSubmatch(clean)
	if m == nil {
		return fallback
	}

	parsed := domain.ParsedLocation{Corridor: fallback.Corridor}
	for i, name := range rx.SubexpNames() {
		if i == 0 || i >= len(m) {
			continue
		}
		switch name {
		case "corridor":
			if m[i] != "" {
				parsed.Corridor = m[i]
			}
		case "bay":
			parsed.Bay = safeIntPtr(m[i])
		case "level":
			parsed.Level = m[i]
		case "pos":
			parsed.Pos = safeIntPtr(m[i])
		}
	}
	return parsed
}
