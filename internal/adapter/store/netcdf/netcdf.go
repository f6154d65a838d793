// Package netcdf reads and writes cubes as NetCDF files with CF-style
// coordinate variables.
package netcdf

import (
	"fmt"
	"strings"

	"github.com/fhs/go-netcdf/netcdf"

	"go.metgrid.io/nbhood-api/internal/domain"
)

// Coordinate variable name patterns tried per axis, most specific first.
var (
	xNames    = []string{domain.CoordProjectionX, "x"}
	yNames    = []string{domain.CoordProjectionY, "y"}
	latNames  = []string{domain.CoordLatitude, "lat"}
	lonNames  = []string{domain.CoordLongitude, "lon"}
	timeNames = []string{domain.CoordTime, "t"}
)

// Store loads and saves cubes from NetCDF files.
type Store struct{}

// NewStore creates a new NetCDF cube store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the named variable and its dimension coordinates into a cube.
// The variable may carry leading non-spatial dimensions; every dimension
// must have a matching coordinate variable.
func (s *Store) Load(path, varName string) (*domain.Cube, error) {
	nc, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	v, err := nc.Var(varName)
	if err != nil {
		return nil, fmt.Errorf("variable %s not found in %s: %w", varName, path, err)
	}

	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions of %s: %w", varName, err)
	}

	coords := make([]domain.Coord, len(dims))
	total := 1
	for i, d := range dims {
		name, err := d.Name()
		if err != nil {
			return nil, fmt.Errorf("failed to get dimension name: %w", err)
		}
		length, err := d.Len()
		if err != nil {
			return nil, fmt.Errorf("failed to get length of dimension %s: %w", name, err)
		}
		co, err := loadCoord(nc, name, int(length))
		if err != nil {
			return nil, err
		}
		coords[i] = co
		total *= int(length)
	}

	data, err := readFloat64s(v, total)
	if err != nil {
		return nil, fmt.Errorf("failed to read data for %s: %w", varName, err)
	}

	cube, err := domain.NewCube(varName, attrString(v, "units"), coords, data)
	if err != nil {
		return nil, err
	}
	return cube, nil
}

// Save writes the cube as a new NetCDF file, one coordinate variable per
// dimension plus the data variable, all as doubles.
func (s *Store) Save(path string, c *domain.Cube) error {
	if err := c.CheckShape(); err != nil {
		return err
	}
	nc, err := netcdf.CreateFile(path, netcdf.CLOBBER)
	if err != nil {
		return fmt.Errorf("failed to create NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	dims := make([]netcdf.Dim, len(c.Dims))
	for i, co := range c.Dims {
		dim, err := nc.AddDim(co.Name, uint64(len(co.Points)))
		if err != nil {
			return fmt.Errorf("failed to add dimension %s: %w", co.Name, err)
		}
		dims[i] = dim
	}

	coordVars := make([]netcdf.Var, len(c.Dims))
	for i, co := range c.Dims {
		cv, err := nc.AddVar(co.Name, netcdf.DOUBLE, []netcdf.Dim{dims[i]})
		if err != nil {
			return fmt.Errorf("failed to add coordinate variable %s: %w", co.Name, err)
		}
		if co.Units != "" {
			if err := cv.Attr("units").WriteBytes([]byte(co.Units)); err != nil {
				return fmt.Errorf("failed to write units of %s: %w", co.Name, err)
			}
		}
		coordVars[i] = cv
	}

	name := c.Name
	if name == "" {
		name = "data"
	}
	dv, err := nc.AddVar(name, netcdf.DOUBLE, dims)
	if err != nil {
		return fmt.Errorf("failed to add data variable %s: %w", name, err)
	}
	if c.Units != "" {
		if err := dv.Attr("units").WriteBytes([]byte(c.Units)); err != nil {
			return fmt.Errorf("failed to write units of %s: %w", name, err)
		}
	}
	if err := nc.EndDef(); err != nil {
		return fmt.Errorf("failed to end define mode: %w", err)
	}

	for i, co := range c.Dims {
		if err := coordVars[i].WriteFloat64s(co.Points); err != nil {
			return fmt.Errorf("failed to write coordinate %s: %w", co.Name, err)
		}
	}
	if err := dv.WriteFloat64s(c.Data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return nil
}

// loadCoord reads the coordinate variable for a dimension, normalising
// aliased names (x, lat, t) onto the canonical coordinate names.
func loadCoord(nc netcdf.Dataset, dimName string, length int) (domain.Coord, error) {
	canonical, candidates := canonicalCoord(dimName)
	for _, name := range candidates {
		v, err := nc.Var(name)
		if err != nil {
			continue
		}
		points, err := readFloat64s(v, length)
		if err != nil {
			return domain.Coord{}, fmt.Errorf("failed to read coordinate %s: %w", name, err)
		}
		return domain.Coord{
			Name:   canonical,
			Units:  attrString(v, "units"),
			System: attrString(v, "grid_mapping_name"),
			Points: points,
		}, nil
	}
	return domain.Coord{}, fmt.Errorf("coordinate variable for dimension %s not found", dimName)
}

// canonicalCoord maps a dimension name to its canonical coordinate name
// and the variable names worth trying for it.
func canonicalCoord(dimName string) (string, []string) {
	lower := strings.ToLower(dimName)
	for canonical, names := range map[string][]string{
		domain.CoordProjectionX: xNames,
		domain.CoordProjectionY: yNames,
		domain.CoordLatitude:    latNames,
		domain.CoordLongitude:   lonNames,
		domain.CoordTime:        timeNames,
	} {
		for _, n := range names {
			if lower == n {
				return canonical, append([]string{dimName}, names...)
			}
		}
	}
	return dimName, []string{dimName}
}

// attrString reads a character attribute, returning "" when absent.
func attrString(v netcdf.Var, name string) string {
	a := v.Attr(name)
	n, err := a.Len()
	if err != nil || n == 0 {
		return ""
	}
	buf := make([]byte, n)
	if err := a.ReadBytes(buf); err != nil {
		return ""
	}
	return strings.TrimRight(string(buf), "\x00")
}

// readFloat64s reads a variable of any supported numeric type as float64.
func readFloat64s(v netcdf.Var, n int) ([]float64, error) {
	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get var type: %w", err)
	}
	switch t {
	case netcdf.DOUBLE:
		data := make([]float64, n)
		if err := v.ReadFloat64s(data); err != nil {
			return nil, err
		}
		return data, nil
	case netcdf.FLOAT:
		tmp := make([]float32, n)
		if err := v.ReadFloat32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, n)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	case netcdf.INT:
		tmp := make([]int32, n)
		if err := v.ReadInt32s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, n)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	case netcdf.SHORT:
		tmp := make([]int16, n)
		if err := v.ReadInt16s(tmp); err != nil {
			return nil, err
		}
		out := make([]float64, n)
		for i, val := range tmp {
			out[i] = float64(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported var type: %v", t)
	}
}
