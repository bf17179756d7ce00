package fixture_test

import (
	"math"
	"testing"

	"github.com/bbakernoaa/ESMFIO/internal/fixture"
)

func fieldByName(t *testing.T, name string) fixture.Field {
	t.Helper()
	for _, f := range fixture.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no field named %s", name)
	return fixture.Field{}
}

func TestFieldMetadata(t *testing.T) {
	tests := []struct {
		name, units, longName string
	}{
		{"air_temperature", "K", "Air Temperature"},
		{"eastward_wind", "m s-1", "Eastward Wind"},
		{"northward_wind", "m s-1", "Northward Wind"},
	}
	if len(fixture.Fields) != len(tests) {
		t.Fatalf("got %d fields, want %d", len(fixture.Fields), len(tests))
	}
	for i, tc := range tests {
		f := fixture.Fields[i]
		if f.Name != tc.name || f.Units != tc.units || f.LongName != tc.longName {
			t.Errorf("field %d = (%q, %q, %q), want (%q, %q, %q)",
				i, f.Name, f.Units, f.LongName, tc.name, tc.units, tc.longName)
		}
	}
}

// The patterns apply trigonometric functions to the raw degree
// values. At the origin the trig terms collapse to the additive
// constants; the corner values follow from sin(90 rad) and
// cos(180 rad).
func TestFieldPatterns(t *testing.T) {
	tests := []struct {
		field    string
		lon, lat float64
		want     float64
	}{
		{"air_temperature", 0, 0, 280},
		{"eastward_wind", 0, 0, 5},
		{"northward_wind", 0, 0, 2},
		{"air_temperature", -180, -90, 290.70043},
		{"eastward_wind", -180, -90, 6.60506},
		{"northward_wind", -180, -90, 1.28205},
	}
	for _, tc := range tests {
		f := fieldByName(t, tc.field)
		got := f.Eval(tc.lon, tc.lat)
		if math.Abs(got-tc.want) > 1e-3 {
			t.Errorf("%s(%v, %v) = %v, want %v", tc.field, tc.lon, tc.lat, got, tc.want)
		}
	}
}

func TestSynthesizeShapeAndScale(t *testing.T) {
	g, err := fixture.NewGrid(4, 3, 2)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	f := fieldByName(t, "air_temperature")
	unscaled := f.Synthesize(g, 1)
	scaled := f.Synthesize(g, 2.5)

	wantShape := []int{2, 4, 3}
	for d, n := range wantShape {
		if unscaled.Shape[d] != n {
			t.Fatalf("shape[%d] = %d, want %d", d, unscaled.Shape[d], n)
		}
	}
	for ti := 0; ti < 2; ti++ {
		for i := 0; i < 4; i++ {
			for j := 0; j < 3; j++ {
				v := unscaled.Get(ti, i, j)
				// The pattern does not reference the time index.
				if v0 := unscaled.Get(0, i, j); v != v0 {
					t.Errorf("value varies with time at (%d,%d): %v vs %v", i, j, v, v0)
				}
				if s := scaled.Get(ti, i, j); math.Abs(s-2.5*v) > 1e-9 {
					t.Errorf("scaled value at (%d,%d,%d) = %v, want %v", ti, i, j, s, 2.5*v)
				}
			}
		}
	}
}
