package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.metgrid.io/nbhood-api/internal/domain"
	"go.metgrid.io/nbhood-api/internal/observability"
)

func onesCubePayload(n int) CubePayload {
	points := func(step float64) []float64 {
		p := make([]float64, n)
		for i := range p {
			p[i] = float64(i) * step
		}
		return p
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 1
	}
	return CubePayload{
		Name:  "precipitation_amount",
		Units: "kg m^-2 s^-1",
		Coords: []CoordPayload{
			{Name: domain.CoordProjectionY, Units: "m", System: "OSGB", Points: points(2000)},
			{Name: domain.CoordProjectionX, Units: "m", System: "OSGB", Points: points(2000)},
		},
		Data: data,
	}
}

func TestProcessRequestValidate(t *testing.T) {
	req := ProcessRequest{Cube: onesCubePayload(16), RadiusKm: 6.3}
	assert.NoError(t, req.Validate())
}

func TestProcessRequestValidateMissingRadius(t *testing.T) {
	req := ProcessRequest{Cube: onesCubePayload(16)}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radius_km is required")
}

func TestProcessRequestValidateBadCube(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*CubePayload)
		want string
	}{
		{
			name: "too few axes",
			mut:  func(p *CubePayload) { p.Coords = p.Coords[:1] },
			want: "at least 2 coordinate axes",
		},
		{
			name: "empty data",
			mut:  func(p *CubePayload) { p.Data = nil },
			want: "data must not be empty",
		},
		{
			name: "unnamed coordinate",
			mut:  func(p *CubePayload) { p.Coords[0].Name = "" },
			want: "must be named",
		},
		{
			name: "empty coordinate",
			mut:  func(p *CubePayload) { p.Coords[1].Points = nil },
			want: "has no points",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := onesCubePayload(16)
			tc.mut(&payload)
			req := ProcessRequest{Cube: payload, RadiusKm: 6.3}
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestProcessNeighbourhoodRoundTrip(t *testing.T) {
	uc := NewPostProcessUseCase(observability.NewUnregisteredMetrics())
	payload := onesCubePayload(16)
	payload.Data[7*16+7] = 0

	result, err := uc.ProcessNeighbourhood(ProcessRequest{Cube: payload, RadiusKm: 6.3})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Data, 16*16)
	assert.Len(t, result.Coords, 2)
	assert.InDelta(t, 0.928, result.Data[7*16+7], 1e-6)
	assert.InDelta(t, 1.0, result.Data[0], 1e-12)
}

func TestProcessNeighbourhoodEngineErrorSurfaces(t *testing.T) {
	uc := NewPostProcessUseCase(nil)

	_, err := uc.ProcessNeighbourhood(ProcessRequest{Cube: onesCubePayload(16), RadiusKm: 0.005})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "gives zero cell extent")
}

func TestProcessNeighbourhoodShapeMismatch(t *testing.T) {
	uc := NewPostProcessUseCase(nil)
	payload := onesCubePayload(16)
	payload.Data = payload.Data[:100]

	_, err := uc.ProcessNeighbourhood(ProcessRequest{Cube: payload, RadiusKm: 6.3})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShape)
}

func TestBlendRoundTrip(t *testing.T) {
	uc := NewPostProcessUseCase(observability.NewUnregisteredMetrics())
	payload := CubePayload{
		Name: "precipitation_amount",
		Coords: []CoordPayload{
			{Name: domain.CoordTime, Points: []float64{0, 1}},
			{Name: domain.CoordProjectionY, Units: "m", Points: []float64{0, 2000}},
			{Name: domain.CoordProjectionX, Units: "m", Points: []float64{0, 2000}},
		},
		Data: []float64{1, 1, 1, 1, 3, 3, 3, 3},
	}

	result, err := uc.Blend(BlendRequest{Cube: payload, Coord: domain.CoordTime})
	require.NoError(t, err)
	require.Len(t, result.Data, 4)
	for i, v := range result.Data {
		assert.InDelta(t, 2.0, v, 1e-12, "cell %d", i)
	}
}

func TestBlendMissingCoordName(t *testing.T) {
	uc := NewPostProcessUseCase(nil)

	_, err := uc.Blend(BlendRequest{Cube: onesCubePayload(4)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coord is required")
}
