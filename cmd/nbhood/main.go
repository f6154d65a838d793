// Package main provides the nbhood CLI: neighbourhood-smooth one variable
// of a NetCDF file and write the result to a new file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.metgrid.io/nbhood-api/internal/adapter/store"
	netcdfstore "go.metgrid.io/nbhood-api/internal/adapter/store/netcdf"
	"go.metgrid.io/nbhood-api/internal/nbhood"
)

func main() {
	inPath := flag.String("in", "", "Input NetCDF file")
	outPath := flag.String("out", "", "Output NetCDF file")
	varName := flag.String("var", "", "Variable to process")
	radiusKm := flag.Float64("radius-km", 0, "Neighbourhood radius in kilometres")
	unweighted := flag.Bool("unweighted", false, "Use the flat kernel instead of the distance-weighted one")
	flag.Parse()

	if *inPath == "" || *outPath == "" || *varName == "" || *radiusKm == 0 {
		fmt.Fprintln(os.Stderr, "usage: nbhood -in forecast.nc -out smoothed.nc -var precipitation_amount -radius-km 6.3 [-unweighted]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Cast to interface.
	var cubes store.CubeStore = netcdfstore.NewStore()

	cube, err := cubes.Load(*inPath, *varName)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *inPath, err)
	}
	log.Printf("Loaded %s: shape %v", *varName, cube.Shape())

	result, err := nbhood.Process(cube, nbhood.Config{
		RadiusKm:       *radiusKm,
		UnweightedMode: *unweighted,
	})
	if err != nil {
		log.Fatalf("Neighbourhood processing failed: %v", err)
	}

	if err := cubes.Save(*outPath, result); err != nil {
		log.Fatalf("Failed to save %s: %v", *outPath, err)
	}
	log.Printf("Wrote %s", *outPath)
}
