// Package blend collapses a cube dimension into a weighted mean, blending
// for example several forecast cycles or model runs into one field.
package blend

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"go.metgrid.io/nbhood-api/internal/domain"
)

// Config names the coordinate to collapse and optionally how to weight and
// relabel it.
type Config struct {
	// Coord is the name of the dimension coordinate to blend across.
	Coord string

	// Weights holds one weight per point of the collapsed coordinate.
	// Nil means equal weighting.
	Weights []float64

	// AdjustPoint, when set, derives the collapsed coordinate's single
	// remaining point from the original points; a cycle-averaging caller
	// would pick the midpoint. The default keeps the unweighted mean.
	AdjustPoint func(points []float64) float64
}

// Collapse returns a cube in which the named dimension has been reduced to
// length one, each output cell holding the weighted mean of the input
// cells along that dimension. Shape and coordinate order are otherwise
// preserved.
func Collapse(c *domain.Cube, cfg Config) (*domain.Cube, error) {
	if err := c.CheckShape(); err != nil {
		return nil, err
	}
	coord, dim, ok := c.Coord(cfg.Coord)
	if !ok {
		return nil, fmt.Errorf("%w: coordinate %s is not a dimension of the cube",
			domain.ErrConfiguration, cfg.Coord)
	}
	n := len(coord.Points)
	if cfg.Weights != nil && len(cfg.Weights) != n {
		return nil, fmt.Errorf("%w: weights length %d does not match coordinate %s length %d",
			domain.ErrConfiguration, len(cfg.Weights), cfg.Coord, n)
	}

	shape := c.Shape()
	// Row-major strides: outer is the product of lengths after dim,
	// and consecutive points along dim are stride apart.
	stride := 1
	for _, s := range shape[dim+1:] {
		stride *= s
	}
	outer := 1
	for _, s := range shape[:dim] {
		outer *= s
	}

	out := c.Copy()
	out.Mask = nil
	out.Dims[dim].Points = []float64{collapsedPoint(coord.Points, cfg.AdjustPoint)}
	out.Data = make([]float64, outer*stride)

	vals := make([]float64, n)
	for o := 0; o < outer; o++ {
		base := o * n * stride
		for s := 0; s < stride; s++ {
			for i := 0; i < n; i++ {
				vals[i] = c.Data[base+i*stride+s]
			}
			out.Data[o*stride+s] = stat.Mean(vals, cfg.Weights)
		}
	}
	return out, nil
}

func collapsedPoint(points []float64, adjust func([]float64) float64) float64 {
	if adjust != nil {
		return adjust(points)
	}
	return stat.Mean(points, nil)
}
