package fixture

import (
	"math"

	"github.com/ctessum/sparse"
)

// Field describes one synthetic variable: its NetCDF name, metadata,
// and the analytic pattern evaluated at each grid point.
//
// The pattern takes the raw coordinate values in degrees. The
// reference datasets the ESMF_IO component is validated against were
// produced this way, so it is preserved exactly even though the
// resulting fields are not physically meaningful.
type Field struct {
	Name     string
	Units    string
	LongName string
	Eval     func(lon, lat float64) float64
}

// Fields lists the three variables present in every fixture dataset,
// in the order they are written.
var Fields = []Field{
	{
		Name:     "air_temperature",
		Units:    "K",
		LongName: "Air Temperature",
		Eval: func(lon, lat float64) float64 {
			return 280.0 + 20.0*math.Sin(lat)*math.Cos(lon)
		},
	},
	{
		Name:     "eastward_wind",
		Units:    "m s-1",
		LongName: "Eastward Wind",
		Eval: func(lon, lat float64) float64 {
			return 5.0 + 3.0*math.Sin(lat)*math.Cos(lon)
		},
	},
	{
		Name:     "northward_wind",
		Units:    "m s-1",
		LongName: "Northward Wind",
		Eval: func(lon, lat float64) float64 {
			return 2.0 + 2.0*math.Cos(lat)*math.Sin(lon)
		},
	},
}

// Synthesize evaluates f over every point of g, multiplied by scale.
// The result is shaped (time, lon, lat); the pattern does not vary
// with the time index.
func (f Field) Synthesize(g *Grid, scale float64) *sparse.DenseArray {
	data := sparse.ZerosDense(len(g.Times), len(g.Lons), len(g.Lats))
	for t := range g.Times {
		for i, lon := range g.Lons {
			for j, lat := range g.Lats {
				data.Set(scale*f.Eval(float64(lon), float64(lat)), t, i, j)
			}
		}
	}
	return data
}
