package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuick(t *testing.T) {
	t.Run("HA estimate", func(t *testing.T) {
		res, err := Calculate(Input{Loading: TypeHA, Method: MethodQuick, SpanM: 10, Unfactored: true})
		require.NoError(t, err)
		assert.InDelta(t, 40.0, res.LiveMomentKNM, 0.001) // 0.4 * 10^2
		assert.InDelta(t, 6.0, res.LiveShearKN, 0.001)    // 0.6 * 10
		assert.InDelta(t, 40.0, res.AppliedMomentKNM, 0.001)
		assert.Equal(t, "nominal", res.FactorSet)
	})

	t.Run("HB estimate", func(t *testing.T) {
		res, err := Calculate(Input{Loading: TypeHB, Method: MethodQuick, SpanM: 10, Unfactored: true})
		require.NoError(t, err)
		assert.InDelta(t, 60.0, res.LiveMomentKNM, 0.001) // 0.6 * 10^2
		assert.InDelta(t, 8.0, res.LiveShearKN, 0.001)    // 0.8 * 10
	})

	t.Run("unknown loading contributes nothing", func(t *testing.T) {
		res, err := Calculate(Input{Loading: "", SpanM: 10, DeadUDLKNM: 2, Unfactored: true})
		require.NoError(t, err)
		assert.Zero(t, res.LiveMomentKNM)
		assert.InDelta(t, 25.0, res.AppliedMomentKNM, 0.001) // dead only
	})
}

func TestCalculateDetailed(t *testing.T) {
	t.Run("BD37 HA lane load", func(t *testing.T) {
		res, err := Calculate(Input{Loading: TypeHA, Method: MethodDetailed, SpanM: 20, Unfactored: true})
		require.NoError(t, err)
		// w = 336*(1/20)^0.67 = 45.15 kN/m; M = wL^2/8 + 120*L/4
		assert.InDelta(t, 2857.5, res.LiveMomentKNM, 1.0)
		// V = wL/2 + 120
		assert.InDelta(t, 571.5, res.LiveShearKN, 0.5)
	})

	t.Run("long span switches UDL expression", func(t *testing.T) {
		short := haLaneUDL(50)
		long := haLaneUDL(51)
		assert.Greater(t, short, 0.0)
		assert.Greater(t, long, 0.0)
		assert.Greater(t, short, long)
	})

	t.Run("detailed HB runs the axle envelope", func(t *testing.T) {
		res, err := Calculate(Input{Loading: TypeHB, Method: MethodDetailed, SpanM: 10, HBUnits: 1, Unfactored: true})
		require.NoError(t, err)
		assert.InDelta(t, 41.4, res.LiveMomentKNM, 0.1)
		assert.InDelta(t, 20.8, res.LiveShearKN, 0.1)
	})

	t.Run("detailed HB needs units", func(t *testing.T) {
		_, err := Calculate(Input{Loading: TypeHB, Method: MethodDetailed, SpanM: 10})
		assert.Error(t, err)
	})
}

func TestPartialFactors(t *testing.T) {
	t.Run("dead and surfacing factored separately", func(t *testing.T) {
		res, err := Calculate(Input{
			Loading:         TypeHA,
			Method:          MethodQuick,
			SpanM:           10,
			DeadUDLKNM:      2,
			SurfacingUDLKNM: 1,
			DeadMaterial:    "steel",
		})
		require.NoError(t, err)
		// 1.05*2*12.5 + 1.75*1*12.5 + 1.5*40
		assert.InDelta(t, 108.125, res.AppliedMomentKNM, 0.001)
		assert.InDelta(t, 60.0, res.LiveFactoredKNM, 0.001)
		assert.InDelta(t, 37.5, res.DeadMomentKNM, 0.001)
		assert.Equal(t, "BS5400 ULS", res.FactorSet)
	})

	t.Run("concrete dead factor", func(t *testing.T) {
		gD, gS, gL, _ := factors(false, "concrete", TypeHA)
		assert.InDelta(t, 1.15, gD, 0.001)
		assert.InDelta(t, 1.75, gS, 0.001)
		assert.InDelta(t, 1.5, gL, 0.001)
	})

	t.Run("HB live factor", func(t *testing.T) {
		_, _, gL, _ := factors(false, "steel", TypeHB)
		assert.InDelta(t, 1.3, gL, 0.001)
	})
}

func TestCalculateInvalidSpan(t *testing.T) {
	_, err := Calculate(Input{Loading: TypeHA, SpanM: 0})
	require.Error(t, err)
}
