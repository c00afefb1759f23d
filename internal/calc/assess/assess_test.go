package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steelForm() Input {
	return Input{
		Material:          "Steel",
		SpanM:             10,
		LoadingType:       "HA",
		SteelGrade:        "S275",
		FlangeWidthMM:     300,
		FlangeThicknessMM: 20,
		WebThicknessMM:    12,
		BeamDepthMM:       600,
		ConditionFactor:   1,
	}
}

func TestCalculate(t *testing.T) {
	t.Run("steel girder passes HA", func(t *testing.T) {
		res, err := Calculate(steelForm())
		require.NoError(t, err)

		assert.InDelta(t, 1215.72, res.MomentCapacityKNM, 0.01)
		assert.InDelta(t, 1143.15, res.ShearCapacityKN, 0.05)
		// Quick HA with the 1.5 live factor: 1.5*0.4*10^2 and 1.5*0.6*10.
		assert.InDelta(t, 60.0, res.AppliedMomentKNM, 0.01)
		assert.InDelta(t, 9.0, res.AppliedShearKN, 0.01)
		assert.Equal(t, "Pass", res.PassFail)
		assert.InDelta(t, 0.05, res.MomentUtilisation, 0.005)
		// Reserve on live loading: min(1215.72/60, 1143.15/9).
		assert.InDelta(t, 20.26, res.CapacityFactor, 0.01)
	})

	t.Run("unfactored matches the original estimates", func(t *testing.T) {
		in := steelForm()
		in.Unfactored = true
		res, err := Calculate(in)
		require.NoError(t, err)
		assert.InDelta(t, 40.0, res.AppliedMomentKNM, 0.01)
		assert.InDelta(t, 6.0, res.AppliedShearKN, 0.01)
	})

	t.Run("concrete section", func(t *testing.T) {
		res, err := Calculate(Input{
			Material:         "Concrete",
			SpanM:            10,
			LoadingType:      "HA",
			ConcreteGrade:    "C32/40",
			BeamWidthMM:      1000,
			EffectiveDepthMM: 500,
		})
		require.NoError(t, err)
		assert.InDelta(t, 1248.0, res.MomentCapacityKNM, 0.01)
		assert.Equal(t, "Pass", res.PassFail)
	})

	t.Run("undersized timber fails", func(t *testing.T) {
		res, err := Calculate(Input{
			Material:        "Timber",
			SpanM:           20,
			LoadingType:     "HA",
			TimberGrade:     "C16",
			TimberBreadthMM: 100,
			TimberDepthMM:   200,
		})
		require.NoError(t, err)
		assert.Equal(t, "Fail", res.PassFail)
		assert.Zero(t, res.CapacityFactor)
	})

	t.Run("detailed HB loading", func(t *testing.T) {
		in := steelForm()
		in.LoadingType = "HB"
		in.Method = "detailed"
		in.HBUnits = 30
		res, err := Calculate(in)
		require.NoError(t, err)
		// Envelope of 41.4 kNm per unit scaled by 30 units and the
		// 1.3 HB live factor.
		assert.InDelta(t, 1614.8, res.AppliedMomentKNM, 5)
		assert.Equal(t, "Fail", res.PassFail)
	})

	t.Run("dead load reduces the capacity factor", func(t *testing.T) {
		withDead := steelForm()
		withDead.DeadUDLKNM = 20
		res, err := Calculate(withDead)
		require.NoError(t, err)
		base, err := Calculate(steelForm())
		require.NoError(t, err)
		assert.Less(t, res.CapacityFactor, base.CapacityFactor)
	})

	t.Run("unknown material rejected", func(t *testing.T) {
		in := steelForm()
		in.Material = "Masonry"
		_, err := Calculate(in)
		assert.Error(t, err)
	})

	t.Run("invalid span rejected", func(t *testing.T) {
		in := steelForm()
		in.SpanM = 0
		_, err := Calculate(in)
		assert.Error(t, err)
	})
}
