package station_test

import (
	"testing"

	"github.com/stationfinder/stationfinder/internal/station"
)

func TestCanonicalService_Synonyms(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"car wash", "Car wash"},
		{"Car Wash", "Car wash"},
		{"carwash", "Car wash"},
		{"charging", "EV charging"},
		{"Charging", "EV charging"},
		{"ev charging", "EV charging"},
		{"lpg", "LPG"},
		{"LPG", "LPG"},
		{"trailer hire", "Trailer hire"},
		{"trailer-hire", "Trailer hire"},
		{"trailerhire", "Trailer hire"},
		{"food", "Food"},
		{"shop", "Shop"},
		{"Store", "Shop"},
		{"convenience", "Shop"},
		{"mini mart", "Shop"},
		{"minimart", "Shop"},
		{"z shop", "Shop"},
		{"restroom", "Restroom"},
		{"toilet", "Restroom"},
		{"Toilets", "Restroom"},
		{"washroom", "Restroom"},
		{"bathroom", "Restroom"},
		{"WC", "Restroom"},
	}

	for _, tt := range tests {
		if got := station.CanonicalService(tt.raw); got != tt.want {
			t.Errorf("CanonicalService(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCanonicalService_UnknownIsIdentity(t *testing.T) {
	for _, raw := range []string{"Barista coffee", "air", "Tyre Shop", ""} {
		if got := station.CanonicalService(raw); got != raw {
			t.Errorf("CanonicalService(%q) = %q, want identity", raw, got)
		}
	}
}

func TestCanonicalFuel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ev", "EV"},
		{"Ev", "EV"},
		{"EV Charging", "EV"},
		{"electric", "EV"},
		{"ev-charging", "EV"},
		{"Diesel", "Diesel"},
		{"diesel", "Diesel"},
		{"DIESEL", "Diesel"},
		{"91", "91"},
		{"95", "95"},
		{"98", "98"},
		{" 91 ", "91"},
		{"100", "100"},
		{"AdBlue", "AdBlue"},
	}

	for _, tt := range tests {
		if got := station.CanonicalFuel(tt.raw); got != tt.want {
			t.Errorf("CanonicalFuel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestServiceMatchSet(t *testing.T) {
	set := station.ServiceMatchSet("EV charging")
	want := map[string]bool{"ev charging": true, "charging": true}
	if len(set) != len(want) {
		t.Fatalf("ServiceMatchSet(EV charging) = %v, want %v", set, want)
	}
	for _, s := range set {
		if !want[s] {
			t.Errorf("unexpected spelling %q in match set", s)
		}
	}
}

func TestServiceMatchSet_UnknownMatchesItself(t *testing.T) {
	set := station.ServiceMatchSet("Barista Coffee")
	if len(set) != 1 || set[0] != "barista coffee" {
		t.Errorf("ServiceMatchSet(unknown) = %v, want lowercase identity", set)
	}
}

func TestFuelMatchSet(t *testing.T) {
	tests := []struct {
		label string
		want  []string
	}{
		{"EV", []string{"ev", "ev charging", "electric", "ev-charging"}},
		{"ev", []string{"ev", "ev charging", "electric", "ev-charging"}},
		{"electric", []string{"ev", "ev charging", "electric", "ev-charging"}},
		{"Diesel", []string{"diesel"}},
		{"91", []string{"91"}},
		{"jetfuel", []string{"jetfuel"}},
	}

	for _, tt := range tests {
		got := station.FuelMatchSet(tt.label)
		if len(got) != len(tt.want) {
			t.Errorf("FuelMatchSet(%q) = %v, want %v", tt.label, got, tt.want)
			continue
		}
		seen := make(map[string]bool, len(got))
		for _, s := range got {
			seen[s] = true
		}
		for _, s := range tt.want {
			if !seen[s] {
				t.Errorf("FuelMatchSet(%q) missing %q", tt.label, s)
			}
		}
	}
}
