// Package usecase validates API requests and orchestrates the
// post-processing plugins over the cube data model.
package usecase

import (
	"fmt"
	"time"

	"go.metgrid.io/nbhood-api/internal/blend"
	"go.metgrid.io/nbhood-api/internal/domain"
	"go.metgrid.io/nbhood-api/internal/nbhood"
	"go.metgrid.io/nbhood-api/internal/observability"
)

// CoordPayload is the wire form of a dimension coordinate.
type CoordPayload struct {
	Name   string    `json:"name"`
	Units  string    `json:"units,omitempty"`
	System string    `json:"system,omitempty"`
	Points []float64 `json:"points"`
}

// CubePayload is the wire form of a cube: coordinate axes in dimension
// order plus the flat row-major data array.
type CubePayload struct {
	Name   string         `json:"name"`
	Units  string         `json:"units,omitempty"`
	Coords []CoordPayload `json:"coords"`
	Data   []float64      `json:"data"`
	Mask   []bool         `json:"mask,omitempty"`
}

// ProcessRequest asks for neighbourhood smoothing of a cube.
type ProcessRequest struct {
	Cube           CubePayload `json:"cube"`
	RadiusKm       float64     `json:"radius_km"`
	UnweightedMode bool        `json:"unweighted_mode"`
}

// BlendRequest asks for a weighted collapse of one cube dimension.
type BlendRequest struct {
	Cube    CubePayload `json:"cube"`
	Coord   string      `json:"coord"`
	Weights []float64   `json:"weights,omitempty"`
}

// Validate checks the parts of the request the engine cannot diagnose
// precisely itself. Radius semantics (zero extent, maximum extent) are
// left to the engine so its specific messages surface unchanged.
func (r *ProcessRequest) Validate() error {
	if err := validateCubePayload(&r.Cube); err != nil {
		return err
	}
	if r.RadiusKm == 0 {
		return fmt.Errorf("radius_km is required")
	}
	return nil
}

// Validate checks the blend request.
func (r *BlendRequest) Validate() error {
	if err := validateCubePayload(&r.Cube); err != nil {
		return err
	}
	if r.Coord == "" {
		return fmt.Errorf("coord is required")
	}
	return nil
}

func validateCubePayload(p *CubePayload) error {
	if len(p.Coords) < 2 {
		return fmt.Errorf("cube must have at least 2 coordinate axes, got %d", len(p.Coords))
	}
	if len(p.Data) == 0 {
		return fmt.Errorf("cube data must not be empty")
	}
	for _, co := range p.Coords {
		if co.Name == "" {
			return fmt.Errorf("every coordinate must be named")
		}
		if len(co.Points) == 0 {
			return fmt.Errorf("coordinate %s has no points", co.Name)
		}
	}
	return nil
}

// PostProcessUseCase executes post-processing operations and records
// their outcomes.
type PostProcessUseCase struct {
	metrics *observability.Metrics
}

// NewPostProcessUseCase creates a new post-processing use case.
func NewPostProcessUseCase(metrics *observability.Metrics) *PostProcessUseCase {
	return &PostProcessUseCase{metrics: metrics}
}

// ProcessNeighbourhood validates the request and applies neighbourhood
// smoothing.
func (u *PostProcessUseCase) ProcessNeighbourhood(req ProcessRequest) (*CubePayload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := ToCube(&req.Cube)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := nbhood.Process(c, nbhood.Config{
		RadiusKm:       req.RadiusKm,
		UnweightedMode: req.UnweightedMode,
	})
	u.observe("nbhood", start, err)
	if err != nil {
		return nil, err
	}
	return FromCube(result), nil
}

// Blend validates the request and collapses the named dimension.
func (u *PostProcessUseCase) Blend(req BlendRequest) (*CubePayload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := ToCube(&req.Cube)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := blend.Collapse(c, blend.Config{Coord: req.Coord, Weights: req.Weights})
	u.observe("blend", start, err)
	if err != nil {
		return nil, err
	}
	return FromCube(result), nil
}

func (u *PostProcessUseCase) observe(op string, start time.Time, err error) {
	if u.metrics == nil {
		return
	}
	u.metrics.Observe(op, time.Since(start), err)
}

// ToCube converts the wire form into the domain model, checking shape
// consistency.
func ToCube(p *CubePayload) (*domain.Cube, error) {
	dims := make([]domain.Coord, len(p.Coords))
	for i, co := range p.Coords {
		dims[i] = domain.Coord{
			Name:   co.Name,
			Units:  co.Units,
			System: co.System,
			Points: co.Points,
		}
	}
	c, err := domain.NewCube(p.Name, p.Units, dims, p.Data)
	if err != nil {
		return nil, err
	}
	if p.Mask != nil {
		c.Mask = p.Mask
		if err := c.CheckShape(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FromCube converts a domain cube back to the wire form.
func FromCube(c *domain.Cube) *CubePayload {
	coords := make([]CoordPayload, len(c.Dims))
	for i, d := range c.Dims {
		coords[i] = CoordPayload{
			Name:   d.Name,
			Units:  d.Units,
			System: d.System,
			Points: d.Points,
		}
	}
	return &CubePayload{
		Name:   c.Name,
		Units:  c.Units,
		Coords: coords,
		Data:   c.Data,
		Mask:   c.Mask,
	}
}
