package models

// Station is the client-facing view of a stored station record. Service and
// fuel labels are canonical display forms; lat/lng are flattened from the
// stored coordinates and omitted when a record has no usable location.
type Station struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Hours    string   `json:"hours"`
	Services []string `json:"services"`
	Fuels    []string `json:"fuels"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`

	// DistanceKm is present only on proximity query results.
	DistanceKm *float64 `json:"distanceKm,omitempty"`

	// Prices maps canonical fuel labels to current pump prices per litre.
	// Present only on the detail endpoint and only when a price feed is
	// configured.
	Prices map[string]float64 `json:"prices,omitempty"`
}
