// Package domain defines the gridded-data model shared by the
// post-processing plugins: cubes, their coordinate axes and the error
// kinds surfaced by grid validation.
package domain

import (
	"fmt"
	"math"
)

// Cube is a multi-dimensional gridded field with one dimension coordinate
// per axis. Data is stored flat in row-major order, so the last coordinate
// varies fastest. The horizontal axes, when present, are the trailing two
// dimensions (y then x); any leading axes (time, realization) are iterated
// slice by slice by the processing plugins.
type Cube struct {
	Name  string
	Units string
	Dims  []Coord
	Data  []float64

	// Mask marks cells considered invalid by the producer. It is carried
	// alongside the data but the neighbourhood correlation ignores it
	// (see nbhood.Process). Nil when the field is unmasked.
	Mask []bool
}

// NewCube builds a cube and checks that the data length matches the
// product of the coordinate lengths.
func NewCube(name, units string, dims []Coord, data []float64) (*Cube, error) {
	c := &Cube{Name: name, Units: units, Dims: dims, Data: data}
	if err := c.CheckShape(); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckShape verifies that the flat data array agrees with the coordinate
// lengths and that the optional mask, when set, covers every cell.
func (c *Cube) CheckShape() error {
	n := 1
	for _, d := range c.Dims {
		n *= len(d.Points)
	}
	if n != len(c.Data) {
		return fmt.Errorf("%w: data length %d does not match coordinate shape %v",
			ErrShape, len(c.Data), c.Shape())
	}
	if c.Mask != nil && len(c.Mask) != len(c.Data) {
		return fmt.Errorf("%w: mask length %d does not match data length %d",
			ErrShape, len(c.Mask), len(c.Data))
	}
	return nil
}

// Shape returns the length of each dimension in order.
func (c *Cube) Shape() []int {
	shape := make([]int, len(c.Dims))
	for i, d := range c.Dims {
		shape[i] = len(d.Points)
	}
	return shape
}

// NDim returns the number of dimensions.
func (c *Cube) NDim() int { return len(c.Dims) }

// Coord returns the dimension coordinate with the given name and its axis
// index. The boolean reports whether it was found.
func (c *Cube) Coord(name string) (*Coord, int, bool) {
	for i := range c.Dims {
		if c.Dims[i].Name == name {
			return &c.Dims[i], i, true
		}
	}
	return nil, -1, false
}

// HasCoord reports whether a dimension coordinate with the name exists.
func (c *Cube) HasCoord(name string) bool {
	_, _, ok := c.Coord(name)
	return ok
}

// SpatialShape returns the sizes of the trailing two (y, x) dimensions.
func (c *Cube) SpatialShape() (ny, nx int, err error) {
	if len(c.Dims) < 2 {
		return 0, 0, fmt.Errorf("%w: cube needs at least two dimensions, has %d",
			ErrDimensionality, len(c.Dims))
	}
	ny = len(c.Dims[len(c.Dims)-2].Points)
	nx = len(c.Dims[len(c.Dims)-1].Points)
	return ny, nx, nil
}

// LeadingSize returns the number of 2D spatial slices, i.e. the product of
// all dimension lengths ahead of the trailing two.
func (c *Cube) LeadingSize() int {
	n := 1
	for _, d := range c.Dims[:max(0, len(c.Dims)-2)] {
		n *= len(d.Points)
	}
	return n
}

// Slice2D returns the k-th spatial slice of the data as a sub-slice of the
// flat array. The caller must not assume it is a copy.
func (c *Cube) Slice2D(k int) []float64 {
	ny, nx, err := c.SpatialShape()
	if err != nil {
		return nil
	}
	plane := ny * nx
	return c.Data[k*plane : (k+1)*plane]
}

// HasNaN reports whether any data value is NaN.
func (c *Cube) HasNaN() bool {
	for _, v := range c.Data {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Copy returns a deep copy of the cube.
func (c *Cube) Copy() *Cube {
	out := &Cube{
		Name:  c.Name,
		Units: c.Units,
		Dims:  make([]Coord, len(c.Dims)),
		Data:  make([]float64, len(c.Data)),
	}
	for i, d := range c.Dims {
		out.Dims[i] = d.Copy()
	}
	copy(out.Data, c.Data)
	if c.Mask != nil {
		out.Mask = make([]bool, len(c.Mask))
		copy(out.Mask, c.Mask)
	}
	return out
}
