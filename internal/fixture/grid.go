// Package fixture synthesizes small NetCDF datasets with analytic
// temperature and wind fields. The datasets serve as input and
// expected-output fixtures for I/O comparison testing of the ESMF_IO
// NUOPC component.
package fixture

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// TimeUnits is the epoch label attached to the time coordinate.
const TimeUnits = "hours since 2000-01-01 00:00:00"

// Grid holds the coordinate arrays defining the sample locations of a
// fixture dataset: longitudes spanning [-180, 180], latitudes spanning
// [-90, 90], and hourly time offsets starting at zero.
type Grid struct {
	Lons  []float32
	Lats  []float32
	Times []float64
}

// NewGrid builds a rectilinear grid with nx evenly spaced longitudes,
// ny evenly spaced latitudes and timeSteps hourly offsets. Axis
// endpoints are included; a single-sample axis degenerates to its
// lower bound.
func NewGrid(nx, ny, timeSteps int) (*Grid, error) {
	if nx < 1 || ny < 1 || timeSteps < 1 {
		return nil, fmt.Errorf("fixture: grid sizes must be positive, got nx=%d ny=%d timeSteps=%d",
			nx, ny, timeSteps)
	}
	g := &Grid{
		Lons:  linspace32(-180, 180, nx),
		Lats:  linspace32(-90, 90, ny),
		Times: make([]float64, timeSteps),
	}
	for t := range g.Times {
		g.Times[t] = float64(t)
	}
	return g, nil
}

// linspace32 returns n evenly spaced samples over [lo, hi] inclusive,
// computed at float64 precision and narrowed to float32 for storage.
// floats.Span requires at least two points, so n == 1 yields lo.
func linspace32(lo, hi float64, n int) []float32 {
	buf := make([]float64, n)
	if n == 1 {
		buf[0] = lo
	} else {
		floats.Span(buf, lo, hi)
	}
	out := make([]float32, n)
	for i, v := range buf {
		out[i] = float32(v)
	}
	return out
}
