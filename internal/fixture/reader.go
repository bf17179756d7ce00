package fixture

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// Dataset provides read access to a generated fixture file.
type Dataset struct {
	nc    api.Group
	lons  []float32
	lats  []float32
	times []float64
}

// OpenDataset opens the NetCDF fixture at path and loads its
// coordinate arrays.
func OpenDataset(path string) (*Dataset, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, err
	}
	d := &Dataset{nc: nc}
	d.lons, err = coordValues[float32](nc, "lon")
	if err != nil {
		nc.Close()
		return nil, err
	}
	d.lats, err = coordValues[float32](nc, "lat")
	if err != nil {
		nc.Close()
		return nil, err
	}
	d.times, err = coordValues[float64](nc, "time")
	if err != nil {
		nc.Close()
		return nil, err
	}
	return d, nil
}

func coordValues[T float32 | float64](nc api.Group, name string) ([]T, error) {
	vg, err := nc.GetVarGetter(name)
	if err != nil {
		return nil, err
	}
	v, err := vg.Values()
	if err != nil {
		return nil, err
	}
	vals, ok := v.([]T)
	if !ok {
		return nil, fmt.Errorf("fixture: coordinate %s has unexpected type %T", name, v)
	}
	return vals, nil
}

// Close closes the dataset.
func (d *Dataset) Close() {
	d.nc.Close()
}

// Lons returns the longitude coordinate array.
func (d *Dataset) Lons() []float32 { return d.lons }

// Lats returns the latitude coordinate array.
func (d *Dataset) Lats() []float32 { return d.lats }

// Times returns the time coordinate array, in hours since the epoch
// named by the time variable's units attribute.
func (d *Dataset) Times() []float64 { return d.times }

// Field returns the full (time, lon, lat) value cube for the named
// variable. Fixture files are small by construction, so no slicing is
// offered.
func (d *Dataset) Field(name string) ([][][]float32, error) {
	vg, err := d.nc.GetVarGetter(name)
	if err != nil {
		return nil, err
	}
	v, err := vg.Values()
	if err != nil {
		return nil, err
	}
	vals, ok := v.([][][]float32)
	if !ok {
		return nil, fmt.Errorf("fixture: variable %s has unexpected type %T", name, v)
	}
	return vals, nil
}

// Attr returns a string attribute of the named variable.
func (d *Dataset) Attr(varName, attr string) (string, error) {
	vg, err := d.nc.GetVarGetter(varName)
	if err != nil {
		return "", err
	}
	v, has := vg.Attributes().Get(attr)
	if !has {
		return "", fmt.Errorf("fixture: variable %s has no attribute %s", varName, attr)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("fixture: attribute %s of %s has unexpected type %T", attr, varName, v)
	}
	return s, nil
}

// Summary returns the summary information about the dataset suitable
// for logging.
func (d *Dataset) Summary() []any {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	return []any{
		"dims", []string{"time", "lon", "lat"},
		"fields", names,
		"timeCnt", len(d.times),
		"lonCnt", len(d.lons),
		"latCnt", len(d.lats),
	}
}
