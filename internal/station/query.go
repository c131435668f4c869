package station

import (
	"math"
	"strconv"
	"strings"
)

// Listing limits.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ListFilter carries the raw query-string inputs for a station listing.
// Every field is optional; empty fields contribute no filter clause.
type ListFilter struct {
	Query   string
	Service string
	Fuel    string
	Near    string
	Limit   string
}

// Criteria is the store-facing form of a ListFilter. Clauses are combined
// with AND; alternatives within a clause (name vs address, the two legacy
// fuel columns) are the only ORs.
type Criteria struct {
	// Query is matched as a case-insensitive substring of name or address.
	Query string

	// Service holds the lowercase raw spellings that satisfy the service
	// filter; a station matches when any stored service label is in the set.
	Service []string

	// Fuel holds the lowercase raw spellings that satisfy the fuel filter,
	// checked against both the legacy fuel column and its replacement.
	Fuel []string

	// Near, when set, switches the lookup to a proximity query: the clauses
	// above pre-filter, results sort ascending by distance from the point,
	// and each result carries its distance in meters.
	Near *GeoPoint

	Limit int
}

// BuildCriteria validates and defaults a ListFilter. It never fails: a
// malformed limit falls back to the default and a malformed near is dropped,
// turning the proximity query back into a plain filtered lookup.
func BuildCriteria(f ListFilter) Criteria {
	c := Criteria{Limit: clampLimit(f.Limit)}

	if q := strings.TrimSpace(f.Query); q != "" {
		c.Query = q
	}
	if f.Service != "" {
		c.Service = ServiceMatchSet(f.Service)
	}
	if f.Fuel != "" {
		c.Fuel = FuelMatchSet(f.Fuel)
	}
	c.Near = ParseNear(f.Near)

	return c
}

// clampLimit parses a limit string into [1, MaxLimit]. Only a leading
// integer is read, so "12abc" is 12 and "7.9" is 7; input with no leading
// digits and "0" both fall back to DefaultLimit. Zero has always meant
// "unset" here and callers depend on that.
func clampLimit(s string) int {
	n, ok := leadingInt(strings.TrimSpace(s))
	if !ok || n == 0 {
		n = DefaultLimit
	}
	if n > MaxLimit {
		n = MaxLimit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// leadingInt reads an optionally signed integer prefix. Accumulation
// saturates just past MaxLimit; clampLimit caps the value anyway.
func leadingInt(s string) (int, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n <= MaxLimit {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, false
	}

	if neg {
		n = -n
	}
	return n, true
}

// ParseNear parses a "lat,lng" pair. The parameter is latitude-first, the
// reverse of the stored [lng, lat] order. Returns nil for anything that does
// not parse as two finite numbers; extra comma-separated parts are ignored.
func ParseNear(s string) *GeoPoint {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return nil
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return nil
	}

	return &GeoPoint{Lat: lat, Lng: lng}
}
