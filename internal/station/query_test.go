package station_test

import (
	"testing"

	"github.com/stationfinder/stationfinder/internal/station"
)

func TestBuildCriteria_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		want  int
	}{
		{"absent", "", 50},
		{"non-numeric", "abc", 50},
		{"zero falls back", "0", 50},
		{"plain", "7", 7},
		{"over cap", "9999", 200},
		{"at cap", "200", 200},
		{"negative clamps up", "-5", 1},
		{"whitespace", " 25 ", 25},
		{"numeric prefix wins", "12abc", 12},
		{"decimal truncates", "7.9", 7},
		{"explicit plus sign", "+3", 3},
		{"all zeros fall back", "000", 50},
		{"sign without digits", "+", 50},
		{"huge saturates at cap", "99999999999999999999", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := station.BuildCriteria(station.ListFilter{Limit: tt.limit})
			if c.Limit != tt.want {
				t.Errorf("limit %q: got %d, want %d", tt.limit, c.Limit, tt.want)
			}
		})
	}
}

func TestBuildCriteria_EmptyFiltersContributeNoClause(t *testing.T) {
	c := station.BuildCriteria(station.ListFilter{})

	if c.Query != "" {
		t.Errorf("expected no query clause, got %q", c.Query)
	}
	if c.Service != nil {
		t.Errorf("expected no service clause, got %v", c.Service)
	}
	if c.Fuel != nil {
		t.Errorf("expected no fuel clause, got %v", c.Fuel)
	}
	if c.Near != nil {
		t.Errorf("expected no proximity point, got %v", c.Near)
	}
}

func TestBuildCriteria_WhitespaceQueryIsDropped(t *testing.T) {
	c := station.BuildCriteria(station.ListFilter{Query: "   "})
	if c.Query != "" {
		t.Errorf("expected whitespace query to be dropped, got %q", c.Query)
	}
}

func TestBuildCriteria_FilterClauses(t *testing.T) {
	c := station.BuildCriteria(station.ListFilter{
		Query:   " Ponsonby ",
		Service: "EV charging",
		Fuel:    "EV",
	})

	if c.Query != "Ponsonby" {
		t.Errorf("query = %q, want trimmed %q", c.Query, "Ponsonby")
	}
	if len(c.Service) == 0 {
		t.Error("expected service match set to be populated")
	}
	if len(c.Fuel) == 0 {
		t.Error("expected fuel match set to be populated")
	}
}

func TestParseNear(t *testing.T) {
	tests := []struct {
		name    string
		near    string
		wantLat float64
		wantLng float64
		wantNil bool
	}{
		{"empty", "", 0, 0, true},
		{"valid", "-36.8485,174.7633", -36.8485, 174.7633, false},
		{"spaces", " -36.8485 , 174.7633 ", -36.8485, 174.7633, false},
		{"not a number", "not-a-number,174", 0, 0, true},
		{"second not a number", "-36.8,xyz", 0, 0, true},
		{"single value", "-36.8", 0, 0, true},
		{"extra parts ignored", "1,2,3", 1, 2, false},
		{"empty parts", ",", 0, 0, true},
		{"empty latitude", ",174", 0, 0, true},
		{"empty longitude", "-36.8,", 0, 0, true},
		{"infinity", "Inf,174", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := station.ParseNear(tt.near)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseNear(%q) = %v, want nil", tt.near, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseNear(%q) = nil, want point", tt.near)
			}
			if got.Lat != tt.wantLat || got.Lng != tt.wantLng {
				t.Errorf("ParseNear(%q) = (%v, %v), want (%v, %v)",
					tt.near, got.Lat, got.Lng, tt.wantLat, tt.wantLng)
			}
		})
	}
}

func TestBuildCriteria_MalformedNearIsDropped(t *testing.T) {
	withNear := station.BuildCriteria(station.ListFilter{Fuel: "EV", Near: "not-a-number,174"})
	without := station.BuildCriteria(station.ListFilter{Fuel: "EV"})

	if withNear.Near != nil {
		t.Fatal("expected malformed near to be dropped")
	}
	if withNear.Limit != without.Limit || len(withNear.Fuel) != len(without.Fuel) {
		t.Error("malformed near should leave the rest of the criteria untouched")
	}
}
