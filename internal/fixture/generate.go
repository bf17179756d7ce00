package fixture

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// Generate creates the NetCDF fixture file at path: a lon/lat/time
// grid at the requested resolution plus the three analytic fields,
// each multiplied by scale. An existing file at path is truncated.
// The file is synced before Generate returns; a failure mid-write may
// leave a truncated file behind.
func Generate(path string, nx, ny, timeSteps int, scale float64) error {
	g, err := NewGrid(nx, ny, timeSteps)
	if err != nil {
		return err
	}

	h := cdf.NewHeader(
		[]string{"time", "lon", "lat"},
		[]int{timeSteps, nx, ny})
	h.AddVariable("lon", []string{"lon"}, []float32{0})
	h.AddVariable("lat", []string{"lat"}, []float32{0})
	h.AddVariable("time", []string{"time"}, []float64{0})
	h.AddAttribute("time", "units", TimeUnits)
	for _, f := range Fields {
		h.AddVariable(f.Name, []string{"time", "lon", "lat"}, []float32{0})
		h.AddAttribute(f.Name, "units", f.Units)
		h.AddAttribute(f.Name, "long_name", f.LongName)
	}
	h.Define()

	ff, err := os.Create(path)
	if err != nil {
		return err
	}
	defer ff.Close()

	f, err := cdf.Create(ff, h) // writes the header to ff
	if err != nil {
		return fmt.Errorf("fixture: creating %s: %v", path, err)
	}
	if err := writeCoord(f, "lon", g.Lons); err != nil {
		return err
	}
	if err := writeCoord(f, "lat", g.Lats); err != nil {
		return err
	}
	if err := writeCoord(f, "time", g.Times); err != nil {
		return err
	}
	for _, fld := range Fields {
		if err := writeDense(f, fld.Name, fld.Synthesize(g, scale)); err != nil {
			return err
		}
	}
	if err := cdf.UpdateNumRecs(ff); err != nil {
		return fmt.Errorf("fixture: updating record count in %s: %v", path, err)
	}
	return ff.Sync()
}

// writeCoord writes a 1-D coordinate variable in full.
func writeCoord[T float32 | float64](f *cdf.File, name string, vals []T) error {
	w := f.Writer(name, []int{0}, []int{len(vals)})
	if _, err := w.Write(vals); err != nil {
		return fmt.Errorf("fixture: writing coordinate %s: %v", name, err)
	}
	return nil
}

// writeDense writes a dense array to the named variable, narrowing the
// float64 elements to the float32 storage type.
func writeDense(f *cdf.File, name string, data *sparse.DenseArray) error {
	data32 := make([]float32, len(data.Elements))
	for i, e := range data.Elements {
		data32[i] = float32(e)
	}
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(data32); err != nil {
		return fmt.Errorf("fixture: writing variable %s: %v", name, err)
	}
	return nil
}
