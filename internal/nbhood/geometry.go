// Package nbhood implements neighbourhood processing: spatial smoothing of
// a gridded field by weighted or unweighted averaging of the cells within a
// physical radius, applied independently to every 2D slice of the cube.
package nbhood

import (
	"fmt"
	"math"

	"go.metgrid.io/nbhood-api/internal/domain"
	"go.metgrid.io/nbhood-api/internal/units"
)

// GridSpacing derives the grid cell spacing along x and y in metres from
// the cube's projected horizontal coordinates.
//
// Geographic (latitude/longitude) grids are rejected: angular degrees do
// not convert to a physical distance without a local scale factor, so a
// radius in kilometres cannot be mapped onto them.
func GridSpacing(c *domain.Cube) (dx, dy float64, err error) {
	xCoord, _, okX := c.Coord(domain.CoordProjectionX)
	yCoord, _, okY := c.Coord(domain.CoordProjectionY)
	if !okX || !okY {
		return 0, 0, fmt.Errorf("%w: Invalid grid: projection_x/y coords required",
			domain.ErrConfiguration)
	}
	dx, err = coordSpacingMetres(xCoord)
	if err != nil {
		return 0, 0, err
	}
	dy, err = coordSpacingMetres(yCoord)
	if err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}

func coordSpacingMetres(co *domain.Coord) (float64, error) {
	if units.IsAngular(co.Units) {
		return 0, fmt.Errorf("%w: Invalid grid: projection_x/y coords required",
			domain.ErrConfiguration)
	}
	if !co.EquallySpaced() {
		return 0, fmt.Errorf("%w: coordinate %s is not equally spaced",
			domain.ErrConfiguration, co.Name)
	}
	step, err := co.Spacing()
	if err != nil {
		return 0, err
	}
	m, err := units.ToMetres(step, co.Units)
	if err != nil {
		return 0, fmt.Errorf("%w: coordinate %s: %v", domain.ErrConfiguration, co.Name, err)
	}
	return math.Abs(m), nil
}
