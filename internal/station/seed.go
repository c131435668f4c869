package station

import (
	"time"

	"github.com/google/uuid"
)

// SeedStations returns the fixed seed set. Labels are kept in their raw
// stored spellings on purpose: the shaping and filtering paths are expected
// to handle this vocabulary, so the seed exercises it.
func SeedStations(now time.Time) []*Station {
	seed := []*Station{
		{
			Name:          "Z Energy Ponsonby",
			Address:       "182 Richmond Road, Ponsonby, Auckland 1021",
			IsOpen24Hours: true,
			Services:      []string{"Charging", "Food", "Restroom", "Shop"},
			FuelTypes:     []string{"91", "95", "98", "Diesel", "EV"},
			Location:      &GeoPoint{Lat: -36.8589, Lng: 174.7367},
		},
		{
			Name:          "Z Energy Grafton",
			Address:       "76 Grafton Road, Grafton, Auckland 1010",
			IsOpen24Hours: false,
			Services:      []string{"Food", "Restroom", "Shop"},
			FuelTypes:     []string{"91", "95", "Diesel"},
			Location:      &GeoPoint{Lat: -36.8641, Lng: 174.7685},
		},
		{
			Name:          "Z Energy Albany",
			Address:       "55 Corinthian Drive, Albany, Auckland 0632",
			IsOpen24Hours: true,
			Services:      []string{"Charging", "Restroom", "Shop", "Car Wash"},
			FuelTypes:     []string{"91", "95", "98", "EV"},
			Location:      &GeoPoint{Lat: -36.7282, Lng: 174.7093},
		},
		{
			Name:          "Z Energy Botany",
			Address:       "277 Ti Rakau Drive, Botany Downs, Auckland 2013",
			IsOpen24Hours: false,
			Services:      []string{"Restroom", "Shop"},
			FuelTypes:     []string{"95", "98", "Diesel", "EV"},
			Location:      &GeoPoint{Lat: -36.9338, Lng: 174.9139},
		},
		{
			Name:          "Z Energy Sylvia Park",
			Address:       "286 Mt Wellington Highway, Mt Wellington, Auckland 1060",
			IsOpen24Hours: true,
			Services:      []string{"Charging", "Food", "Restroom", "Shop", "Car Wash"},
			FuelTypes:     []string{"91", "98", "Diesel", "EV"},
			Location:      &GeoPoint{Lat: -36.9167, Lng: 174.8439},
		},
	}

	for _, st := range seed {
		st.ID = NewStationID()
		st.CreatedAt = now
		st.UpdatedAt = now
	}
	return seed
}

// NewStationID returns a fresh opaque station identifier.
func NewStationID() string {
	return "stn_" + uuid.New().String()[:22]
}
