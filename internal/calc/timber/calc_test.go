package timber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Run("C24 capacities", func(t *testing.T) {
		res, err := Calculate(Input{Grade: "C24", BreadthMM: 200, DepthMM: 400})
		require.NoError(t, err)
		// Z = 200*400^2/6, Mc = 7.5*Z/1e6
		assert.InDelta(t, 5_333_333.3, res.SectionModulusMM3, 1)
		assert.InDelta(t, 40.0, res.MomentCapacityKNM, 0.01)
		// (2/3) * 0.71 * 200 * 400 / 1e3
		assert.InDelta(t, 37.87, res.ShearCapacityKN, 0.01)
	})

	t.Run("hardwood grade", func(t *testing.T) {
		res, err := Calculate(Input{Grade: "D40", BreadthMM: 200, DepthMM: 400})
		require.NoError(t, err)
		assert.InDelta(t, 12.5, res.BendingMPa, 0.001)
		assert.Greater(t, res.MomentCapacityKNM, 40.0)
	})

	t.Run("condition factor divides capacities", func(t *testing.T) {
		res, err := Calculate(Input{Grade: "C24", BreadthMM: 200, DepthMM: 400, ConditionFactor: 2})
		require.NoError(t, err)
		assert.InDelta(t, 20.0, res.MomentCapacityKNM, 0.01)
	})

	t.Run("deflection check with span and UDL", func(t *testing.T) {
		res, err := Calculate(Input{Grade: "C24", BreadthMM: 200, DepthMM: 400, SpanM: 5, UDLKNM: 10})
		require.NoError(t, err)
		// 5wL^4/384EI with I = 200*400^3/12 and E = 10800 MPa.
		assert.InDelta(t, 7.06, res.DeflectionMM, 0.01)
		// span/250 default limit
		assert.InDelta(t, 20.0, res.DeflectionLimitMM, 0.001)
		assert.True(t, res.OKDeflection)
	})

	t.Run("deflection over the limit flagged", func(t *testing.T) {
		res, err := Calculate(Input{Grade: "C24", BreadthMM: 200, DepthMM: 400, SpanM: 10, UDLKNM: 10})
		require.NoError(t, err)
		assert.Greater(t, res.DeflectionMM, res.DeflectionLimitMM)
		assert.False(t, res.OKDeflection)
	})

	t.Run("no deflection inputs skips the check", func(t *testing.T) {
		res, err := Calculate(Input{Grade: "C24", BreadthMM: 200, DepthMM: 400})
		require.NoError(t, err)
		assert.Zero(t, res.DeflectionMM)
		assert.True(t, res.OKDeflection)
	})

	t.Run("unknown grade rejected", func(t *testing.T) {
		_, err := Calculate(Input{Grade: "C30", BreadthMM: 200, DepthMM: 400})
		assert.Error(t, err)
	})

	t.Run("invalid dimensions rejected", func(t *testing.T) {
		_, err := Calculate(Input{Grade: "C24", BreadthMM: 0, DepthMM: 400})
		assert.Error(t, err)
	})
}
