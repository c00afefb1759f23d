package concrete

import (
	"fmt"
	"math"
)

// Reinforcement yield strength for standard UK bar steel.
const fykMPa = 500.0

type Input struct {
	Grade            string  `json:"grade"` // C32/40 or C40/50
	BeamWidthMM      float64 `json:"beam_width_mm"`
	EffectiveDepthMM float64 `json:"effective_depth_mm"`
	RebarSizeMM      float64 `json:"rebar_size_mm"`
	RebarSpacingMM   float64 `json:"rebar_spacing_mm"`
	ConditionFactor  float64 `json:"condition_factor"`
}

type Result struct {
	FckMPa            float64 `json:"fck_mpa"`
	SteelAreaMM2PerM  float64 `json:"steel_area_mm2_per_m"`
	MomentCapacityKNM float64 `json:"moment_capacity_knm"`
	ShearCapacityKN   float64 `json:"shear_capacity_kn"`
	SteelGoverns      bool    `json:"steel_governs"`
	Notes             string  `json:"notes"`
}

func strength(grade string) float64 {
	if grade == "C40/50" {
		return 40
	}
	return 32
}

// Calculate checks a rectangular reinforced-concrete section. The
// concrete-limited moment 0.156*fck*b*d^2 is compared against the
// tension-steel-limited moment when bar size and spacing are given, and
// the lower of the two governs.
func Calculate(in Input) (Result, error) {
	if in.BeamWidthMM <= 0 || in.EffectiveDepthMM <= 0 {
		return Result{}, fmt.Errorf("invalid section dimensions")
	}
	if in.ConditionFactor <= 0 {
		in.ConditionFactor = 1
	}

	fck := strength(in.Grade)
	b := in.BeamWidthMM
	d := in.EffectiveDepthMM

	momentConcrete := 0.156 * fck * b * d * d / 1e6

	var As float64
	moment := momentConcrete
	steelGoverns := false
	if in.RebarSizeMM > 0 && in.RebarSpacingMM > 0 {
		As = (1000.0 / in.RebarSpacingMM) * math.Pi * (in.RebarSizeMM / 2) * (in.RebarSizeMM / 2)
		// Lever arm capped at 0.95d for the steel-limited moment.
		momentSteel := 0.87 * fykMPa * As * 0.95 * d / 1e6
		if momentSteel < moment {
			moment = momentSteel
			steelGoverns = true
		}
	}

	shear := 0.6 * fck * b * d / 1e3

	return Result{
		FckMPa:            fck,
		SteelAreaMM2PerM:  As,
		MomentCapacityKNM: moment / in.ConditionFactor,
		ShearCapacityKN:   shear / in.ConditionFactor,
		SteelGoverns:      steelGoverns,
		Notes:             "Rectangular RC section, concrete and tension-steel limited flexure.",
	}, nil
}
