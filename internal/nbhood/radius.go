package nbhood

import (
	"fmt"
	"math"

	"go.metgrid.io/nbhood-api/internal/domain"
)

// MaxRadiusInGridCells caps the cell extent a radius may convert to.
// A kernel wider than this is bigger than any sensible domain and is a
// sign of mistyped radius units.
const MaxRadiusInGridCells = 500

// RadiusToCells converts a radius in kilometres to an integer cell count
// along each horizontal axis, given the cell spacing in metres.
//
// A negative radius yields negative cell counts; these are deliberately
// passed through so that kernel construction reports the impossible shape.
func RadiusToCells(radiusKm, dx, dy float64) (cellsX, cellsY int, err error) {
	cellsX = int(math.Round(radiusKm * 1000.0 / dx))
	cellsY = int(math.Round(radiusKm * 1000.0 / dy))
	if cellsX == 0 || cellsY == 0 {
		return 0, 0, fmt.Errorf("%w: radius of %v km gives zero cell extent",
			domain.ErrConfiguration, radiusKm)
	}
	if cellsX > MaxRadiusInGridCells || cellsY > MaxRadiusInGridCells {
		return 0, 0, fmt.Errorf("%w: radius of %v km exceeds maximum grid cell extent",
			domain.ErrConfiguration, radiusKm)
	}
	return cellsX, cellsY, nil
}
