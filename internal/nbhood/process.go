package nbhood

import (
	"fmt"

	"go.metgrid.io/nbhood-api/internal/domain"
)

// Config selects the neighbourhood to apply. It is plain data: Process is
// stateless and nothing is cached between calls, because the cell ranges
// and kernel depend on the spacing of each input grid.
type Config struct {
	// RadiusKm is the neighbourhood radius in kilometres.
	RadiusKm float64

	// UnweightedMode selects the flat (uniform) kernel instead of the
	// distance-weighted one.
	UnweightedMode bool
}

// Process returns a copy of the cube whose data has been replaced by the
// neighbourhood average of each cell. The input cube is never mutated and
// no partial output is produced: every validation failure aborts before
// any data is written.
//
// Cells beyond the grid edge are treated as copies of the nearest
// in-bounds edge cell. This replication policy overweights edge and
// corner values; it is kept as-is for compatibility with existing
// output.
//
// If the cube carries a validity mask the correlation ignores it: masked
// cells are averaged into their neighbours as if valid, and the mask is
// not propagated to the result.
func Process(c *domain.Cube, cfg Config) (*domain.Cube, error) {
	if err := c.CheckShape(); err != nil {
		return nil, err
	}
	if c.HasCoord(domain.CoordRealization) {
		return nil, fmt.Errorf("%w: Does not operate across realizations",
			domain.ErrDimensionality)
	}
	if c.HasNaN() {
		return nil, fmt.Errorf("%w: NaN detected in input cube data",
			domain.ErrDataValidity)
	}
	if err := requireTrailingSpatialDims(c); err != nil {
		return nil, err
	}

	dx, dy, err := GridSpacing(c)
	if err != nil {
		return nil, err
	}
	cellsX, cellsY, err := RadiusToCells(cfg.RadiusKm, dx, dy)
	if err != nil {
		return nil, err
	}
	kernel, err := BuildKernel(cellsX, cellsY, !cfg.UnweightedMode)
	if err != nil {
		return nil, err
	}

	ny, nx, err := c.SpatialShape()
	if err != nil {
		return nil, err
	}

	out := c.Copy()
	out.Mask = nil
	for k := 0; k < c.LeadingSize(); k++ {
		correlate2D(out.Slice2D(k), c.Slice2D(k), ny, nx, kernel)
	}
	return out, nil
}

// requireTrailingSpatialDims checks that the horizontal axes are the
// trailing two dimensions, the layout every upstream grid uses and the
// one Slice2D depends on.
func requireTrailingSpatialDims(c *domain.Cube) error {
	_, xDim, okX := c.Coord(domain.CoordProjectionX)
	_, yDim, okY := c.Coord(domain.CoordProjectionY)
	if !okX || !okY {
		// GridSpacing reports the missing-coordinate error.
		return nil
	}
	if xDim != c.NDim()-1 || yDim != c.NDim()-2 {
		return fmt.Errorf("%w: projection_x/y coords must be the trailing dimensions",
			domain.ErrDimensionality)
	}
	return nil
}

// correlate2D writes into dst the sliding-window weighted average of src
// under the kernel, extending the grid beyond its edges by replicating
// the nearest in-bounds cell. With replication every kernel slot is
// filled, so the windowed weight total equals the full kernel sum and the
// division normalises each window identically.
func correlate2D(dst, src []float64, ny, nx int, k *Kernel) {
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			var acc float64
			for ky := -k.CellsY; ky <= k.CellsY; ky++ {
				sy := clamp(y+ky, 0, ny-1)
				row := sy * nx
				for kx := -k.CellsX; kx <= k.CellsX; kx++ {
					sx := clamp(x+kx, 0, nx-1)
					acc += k.Weights.At(ky+k.CellsY, kx+k.CellsX) * src[row+sx]
				}
			}
			dst[y*nx+x] = acc / k.Sum
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
