package netcdf

import (
	"path/filepath"
	"testing"

	"go.metgrid.io/nbhood-api/internal/domain"
)

func sampleCube(t *testing.T) *domain.Cube {
	t.Helper()
	dims := []domain.Coord{
		{Name: domain.CoordTime, Units: "hours since 1970-01-01 00:00:00", Points: []float64{0, 1}},
		{Name: domain.CoordProjectionY, Units: "m", Points: []float64{0, 2000, 4000}},
		{Name: domain.CoordProjectionX, Units: "m", Points: []float64{0, 2000, 4000}},
	}
	data := make([]float64, 2*3*3)
	for i := range data {
		data[i] = float64(i) / 10
	}
	c, err := domain.NewCube("precipitation_amount", "kg m^-2 s^-1", dims, data)
	if err != nil {
		t.Fatalf("NewCube failed: %v", err)
	}
	return c
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.nc")
	store := NewStore()
	cube := sampleCube(t)

	if err := store.Save(path, cube); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(path, "precipitation_amount")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Units != cube.Units {
		t.Errorf("units mismatch: got %q, want %q", loaded.Units, cube.Units)
	}
	if len(loaded.Dims) != 3 {
		t.Fatalf("expected 3 dimensions, got %d", len(loaded.Dims))
	}
	for i, d := range loaded.Dims {
		if d.Name != cube.Dims[i].Name {
			t.Errorf("dimension %d: got %q, want %q", i, d.Name, cube.Dims[i].Name)
		}
		if d.Units != cube.Dims[i].Units {
			t.Errorf("dimension %d units: got %q, want %q", i, d.Units, cube.Dims[i].Units)
		}
	}
	if len(loaded.Data) != len(cube.Data) {
		t.Fatalf("data length mismatch: got %d, want %d", len(loaded.Data), len(cube.Data))
	}
	for i := range cube.Data {
		if loaded.Data[i] != cube.Data[i] {
			t.Errorf("data[%d]: got %v, want %v", i, loaded.Data[i], cube.Data[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore()
	if _, err := store.Load(filepath.Join(t.TempDir(), "absent.nc"), "x"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMissingVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.nc")
	store := NewStore()
	if err := store.Save(path, sampleCube(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := store.Load(path, "no_such_variable"); err == nil {
		t.Error("expected error for missing variable")
	}
}
