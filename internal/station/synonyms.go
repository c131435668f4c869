package station

import "strings"

// The stored vocabulary for services and fuels is inconsistent ("Charging",
// "charging", "z shop", "Store"). Two static tables map each canonical
// display label to the lowercase raw spellings treated as equivalent. They
// serve both directions: filter label -> set of raw spellings to match, and
// raw stored label -> canonical display label.

var serviceSynonyms = map[string][]string{
	"Car wash":     {"car wash", "carwash"},
	"EV charging":  {"ev charging", "charging"},
	"LPG":          {"lpg"},
	"Trailer hire": {"trailer hire", "trailer-hire", "trailerhire"},
	"Food":         {"food"},
	"Shop":         {"shop", "store", "convenience", "mini mart", "minimart", "z shop"},
	"Restroom":     {"restroom", "toilet", "toilets", "washroom", "bathroom", "wc"},
}

var fuelSynonyms = map[string][]string{
	"EV":     {"ev", "ev charging", "electric", "ev-charging"},
	"Diesel": {"diesel"},
	"91":     {"91"},
	"95":     {"95"},
	"98":     {"98"},
}

var (
	serviceCanonical = invert(serviceSynonyms)
	fuelCanonical    = invert(fuelSynonyms)
)

func invert(table map[string][]string) map[string]string {
	out := make(map[string]string)
	for canonical, raws := range table {
		for _, raw := range raws {
			out[raw] = canonical
		}
	}
	return out
}

// ServiceMatchSet returns the lowercase raw spellings that satisfy the given
// service filter label. Labels outside the table match themselves only.
func ServiceMatchSet(label string) []string {
	if set, ok := serviceSynonyms[label]; ok {
		return set
	}
	return []string{strings.ToLower(label)}
}

// FuelMatchSet returns the lowercase raw spellings that satisfy the given
// fuel filter label. The label itself is matched case-insensitively against
// the table; labels outside it match themselves only.
func FuelMatchSet(label string) []string {
	t := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := fuelCanonical[t]; ok {
		return fuelSynonyms[canonical]
	}
	return []string{t}
}

// CanonicalService maps a raw stored service label to its canonical display
// form. Unrecognized labels pass through unchanged; that fallback is
// deliberate, the table is not a complete vocabulary.
func CanonicalService(raw string) string {
	if canonical, ok := serviceCanonical[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}

// CanonicalFuel maps a raw stored fuel label to its canonical display form.
// Unrecognized labels pass through unchanged.
func CanonicalFuel(raw string) string {
	if canonical, ok := fuelCanonical[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return raw
}
