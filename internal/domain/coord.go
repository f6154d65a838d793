package domain

import "fmt"

// Standard coordinate names. These follow the CF conventions used by the
// upstream forecast grids: projected grids carry projection_x/y
// coordinates in length units, geographic grids carry latitude/longitude
// in degrees.
const (
	CoordProjectionX = "projection_x_coordinate"
	CoordProjectionY = "projection_y_coordinate"
	CoordLatitude    = "latitude"
	CoordLongitude   = "longitude"
	CoordTime        = "time"
	CoordRealization = "realization"
)

// Coord is a dimension coordinate: a named, monotonic, equally spaced axis
// with a physical unit and an optional coordinate reference system tag
// (e.g. "OSGB" for the UK national grid).
type Coord struct {
	Name   string
	Units  string
	System string
	Points []float64
}

// Copy returns a deep copy of the coordinate.
func (co Coord) Copy() Coord {
	out := co
	out.Points = make([]float64, len(co.Points))
	copy(out.Points, co.Points)
	return out
}

// Spacing returns the difference between the first two consecutive points.
// Coordinates are assumed regular; EquallySpaced checks that assumption.
func (co Coord) Spacing() (float64, error) {
	if len(co.Points) < 2 {
		return 0, fmt.Errorf("%w: coordinate %s needs at least two points to derive spacing",
			ErrConfiguration, co.Name)
	}
	return co.Points[1] - co.Points[0], nil
}

// EquallySpaced reports whether consecutive points differ by a constant
// step, within a small relative tolerance.
func (co Coord) EquallySpaced() bool {
	if len(co.Points) < 3 {
		return true
	}
	step := co.Points[1] - co.Points[0]
	tol := 1e-5 * abs(step)
	for i := 2; i < len(co.Points); i++ {
		if abs(co.Points[i]-co.Points[i-1]-step) > tol {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
