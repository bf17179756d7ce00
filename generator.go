// Command ESMFIO generates the NetCDF fixtures used for input/output
// comparison testing of the ESMF_IO NUOPC component: an input file
// with analytic temperature and wind fields and an expected-output
// file holding the same fields multiplied by a uniform scale factor.
//
// Running it with no flags writes tests/data/input_test.nc and
// tests/data/expected_output.nc on a 20x20 grid with one time step.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bbakernoaa/ESMFIO/internal/fixture"
)

var (
	dataDir   = flag.String("dataDir", "tests/data", "directory the fixture files are written to")
	nx        = flag.Int("nx", 20, "number of longitude samples")
	ny        = flag.Int("ny", 20, "number of latitude samples")
	timeSteps = flag.Int("timeSteps", 1, "number of hourly time steps")
	scale     = flag.Float64("scale", 2.0, "scale factor applied to the expected-output fields")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		logger.Error("Could not create data directory", "dir", *dataDir, "err", err)
		os.Exit(1)
	}

	input := filepath.Join(*dataDir, "input_test.nc")
	if err := fixture.Generate(input, *nx, *ny, *timeSteps, 1.0); err != nil {
		logger.Error("Could not generate input fixture", "file", input, "err", err)
		os.Exit(1)
	}
	logger.Info("Created test input data file", "file", input)

	expected := filepath.Join(*dataDir, "expected_output.nc")
	if err := fixture.Generate(expected, *nx, *ny, *timeSteps, *scale); err != nil {
		logger.Error("Could not generate expected output fixture", "file", expected, "err", err)
		os.Exit(1)
	}
	logger.Info("Created test output data file", "file", expected, "scale", *scale)

	d, err := fixture.OpenDataset(input)
	if err != nil {
		logger.Error("Could not read back input fixture", "file", input, "err", err)
		os.Exit(1)
	}
	defer d.Close()
	logger.Info("Fixture summary", d.Summary()...)
}
