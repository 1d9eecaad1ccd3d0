package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psv/model"
)

// The API 2000 / API 520 switch is inclusive to API 2000 at exactly 15 psig.
func TestSelectMethod_Boundary(t *testing.T) {
	method, limit := SelectMethod(15.000)
	assert.Equal(t, model.MethodAPI2000, method)
	assert.Equal(t, 9.14, limit)

	method, limit = SelectMethod(15.001)
	assert.Equal(t, model.MethodAPI520, method)
	assert.Equal(t, 7.62, limit)
}

func TestHeatLoadAPI2000_Bands(t *testing.T) {
	cases := []struct {
		name string
		area float64
		barg float64
		want float64
	}{
		{"linear band", 10, 0.5, 63150 * 10},
		{"zero area", 0, 0.5, 0},
		{"first boundary goes to second band", 18.6, 0.5, 224200 * math.Pow(18.6, 0.566)},
		{"second band", 50, 0.5, 224200 * math.Pow(50, 0.566)},
		{"second boundary goes to third band", 93, 0.5, 630400 * math.Pow(93, 0.338)},
		{"third band", 150, 0.5, 630400 * math.Pow(150, 0.338)},
		{"large area with pressure", 300, 0.5, 43200 * math.Pow(300, 0.82)},
		{"pressure split is inclusive to the exponent row", 300, 0.07, 43200 * math.Pow(300, 0.82)},
		{"large area near-atmospheric", 300, 0.05, 4129700},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, HeatLoadAPI2000(tc.area, tc.barg), 1e-6)
		})
	}
}

func TestHeatLoadAPI520(t *testing.T) {
	assert.InDelta(t, 70900*math.Pow(40, 0.82), HeatLoadAPI520(40, false), 1e-6)
	assert.InDelta(t, 43200*math.Pow(40, 0.82), HeatLoadAPI520(40, true), 1e-6)
	assert.Equal(t, 0.0, HeatLoadAPI520(0, false))
}

func TestHeatLoad_Dispatch(t *testing.T) {
	assert.Equal(t, HeatLoadAPI2000(10, 0.5), HeatLoad(model.MethodAPI2000, 10, 0.5, true))
	assert.Equal(t, HeatLoadAPI520(10, true), HeatLoad(model.MethodAPI520, 10, 0.5, true))
}

func TestEvaporationRate(t *testing.T) {
	rate, err := EvaporationRate(1e6, 2.5e5)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rate, 1e-12)

	rate, err = EvaporationRate(0, 2.5e5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)

	_, err = EvaporationRate(1e6, 0)
	var propErr *InvalidFluidPropertyError
	require.True(t, errors.As(err, &propErr))
	assert.Equal(t, "hvap_j_per_kg", propErr.Name)
}
