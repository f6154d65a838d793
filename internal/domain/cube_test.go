package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testCube(t *testing.T) *Cube {
	t.Helper()
	dims := []Coord{
		{Name: CoordTime, Units: "hours since 1970-01-01 00:00:00", Points: []float64{0, 1}},
		{Name: CoordProjectionY, Units: "m", System: "OSGB", Points: []float64{0, 2000, 4000}},
		{Name: CoordProjectionX, Units: "m", System: "OSGB", Points: []float64{0, 2000, 4000, 6000}},
	}
	data := make([]float64, 2*3*4)
	for i := range data {
		data[i] = float64(i)
	}
	c, err := NewCube("air_temperature", "K", dims, data)
	if err != nil {
		t.Fatalf("NewCube failed: %v", err)
	}
	return c
}

func TestNewCubeShapeMismatch(t *testing.T) {
	dims := []Coord{
		{Name: CoordProjectionY, Units: "m", Points: []float64{0, 2000}},
		{Name: CoordProjectionX, Units: "m", Points: []float64{0, 2000}},
	}
	_, err := NewCube("t", "K", dims, make([]float64, 5))
	if err == nil {
		t.Fatal("expected shape error, got nil")
	}
}

func TestCubeShape(t *testing.T) {
	c := testCube(t)
	got := c.Shape()
	want := []int{2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Shape mismatch (-want +got):\n%s", diff)
	}
}

func TestCubeCoordLookup(t *testing.T) {
	c := testCube(t)

	co, dim, ok := c.Coord(CoordProjectionX)
	if !ok {
		t.Fatal("projection_x_coordinate not found")
	}
	if dim != 2 {
		t.Errorf("expected axis 2, got %d", dim)
	}
	if co.Units != "m" {
		t.Errorf("expected units m, got %s", co.Units)
	}

	if _, _, ok := c.Coord(CoordRealization); ok {
		t.Error("unexpected realization coordinate")
	}
	if c.HasCoord(CoordRealization) {
		t.Error("HasCoord reported a missing coordinate")
	}
}

func TestCubeSlice2D(t *testing.T) {
	c := testCube(t)
	if c.LeadingSize() != 2 {
		t.Fatalf("expected 2 leading slices, got %d", c.LeadingSize())
	}

	second := c.Slice2D(1)
	if len(second) != 12 {
		t.Fatalf("expected 12 cells per slice, got %d", len(second))
	}
	if second[0] != 12 {
		t.Errorf("expected slice 1 to start at value 12, got %v", second[0])
	}
}

func TestCubeHasNaN(t *testing.T) {
	c := testCube(t)
	if c.HasNaN() {
		t.Error("clean cube reported NaN")
	}
	c.Data[5] = math.NaN()
	if !c.HasNaN() {
		t.Error("NaN not detected")
	}
}

func TestCubeCopyIsDeep(t *testing.T) {
	c := testCube(t)
	c.Mask = make([]bool, len(c.Data))
	c.Mask[3] = true

	dup := c.Copy()
	dup.Data[0] = -1
	dup.Dims[1].Points[0] = -1
	dup.Mask[0] = true

	if c.Data[0] == -1 {
		t.Error("data not deep-copied")
	}
	if c.Dims[1].Points[0] == -1 {
		t.Error("coordinate points not deep-copied")
	}
	if c.Mask[0] {
		t.Error("mask not deep-copied")
	}
	if !dup.Mask[3] {
		t.Error("mask contents not carried to the copy")
	}
}

func TestCoordSpacing(t *testing.T) {
	co := Coord{Name: CoordProjectionX, Units: "m", Points: []float64{0, 2000, 4000}}
	step, err := co.Spacing()
	if err != nil {
		t.Fatalf("Spacing failed: %v", err)
	}
	if step != 2000 {
		t.Errorf("expected spacing 2000, got %v", step)
	}

	short := Coord{Name: CoordProjectionX, Units: "m", Points: []float64{0}}
	if _, err := short.Spacing(); err == nil {
		t.Error("expected error for single-point coordinate")
	}
}

func TestCoordEquallySpaced(t *testing.T) {
	even := Coord{Points: []float64{0, 2, 4, 6}}
	if !even.EquallySpaced() {
		t.Error("even coordinate reported as uneven")
	}

	uneven := Coord{Points: []float64{0, 2, 4, 7}}
	if uneven.EquallySpaced() {
		t.Error("uneven coordinate reported as even")
	}

	descending := Coord{Points: []float64{6, 4, 2, 0}}
	if !descending.EquallySpaced() {
		t.Error("descending coordinate reported as uneven")
	}
}
