package store

import "go.metgrid.io/nbhood-api/internal/domain"

// CubeStore is the interface for reading and writing gridded cubes
type CubeStore interface {
	// Load reads the named variable and its coordinates into a cube
	Load(path, varName string) (*domain.Cube, error)

	// Save writes the cube, one coordinate variable per dimension
	Save(path string, c *domain.Cube) error
}
