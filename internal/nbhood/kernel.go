package nbhood

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"go.metgrid.io/nbhood-api/internal/domain"
)

// Kernel is the 2D weight matrix applied by the sliding-window
// correlation. Weights has (2*CellsY+1) rows and (2*CellsX+1) columns,
// centred on the target cell, and is symmetric about its centre.
type Kernel struct {
	Weights *mat.Dense
	CellsX  int
	CellsY  int

	// Sum is the total weight, the divisor that turns the correlation
	// into an average.
	Sum float64
}

// BuildKernel constructs the weighting kernel for the given cell ranges.
//
// The weighted kernel decays quadratically with squared radial offset:
// weight(i, j) = 1 - (i² + j²)/(cellsX·cellsY), zeroed beyond the circle
// i² + j² > cellsX·cellsY, so the centre weight is exactly 1 and the
// edge-of-kernel weight approaches but does not reach zero for ranges
// of two cells or more.
//
// The flat kernel is 1 inside the ellipse (i/cellsY)² + (j/cellsX)² <= 1
// and 0 outside.
func BuildKernel(cellsX, cellsY int, weighted bool) (*Kernel, error) {
	if cellsX < 0 || cellsY < 0 {
		return nil, fmt.Errorf("%w: negative dimensions are not allowed", domain.ErrShape)
	}
	rows := 2*cellsY + 1
	cols := 2*cellsX + 1
	w := mat.NewDense(rows, cols, nil)
	norm := float64(cellsX * cellsY)
	for r := 0; r < rows; r++ {
		i := float64(r - cellsY)
		for col := 0; col < cols; col++ {
			j := float64(col - cellsX)
			var v float64
			switch {
			case i == 0 && j == 0:
				// Centre weight is always exactly 1.
				v = 1
			case weighted:
				if r2 := i*i + j*j; norm > 0 && r2 <= norm {
					v = 1 - r2/norm
				}
			default:
				ey := i / float64(cellsY)
				ex := j / float64(cellsX)
				if ex*ex+ey*ey <= 1 {
					v = 1
				}
			}
			w.Set(r, col, v)
		}
	}
	return &Kernel{Weights: w, CellsX: cellsX, CellsY: cellsY, Sum: mat.Sum(w)}, nil
}
