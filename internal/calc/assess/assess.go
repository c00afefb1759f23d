// Package assess runs a full beam assessment: material capacity against
// applied dead plus live load effects, with a pass/fail verdict.
package assess

import (
	"fmt"
	"math"

	"github.com/Davidson1997/bridge-calculator/internal/calc/concrete"
	"github.com/Davidson1997/bridge-calculator/internal/calc/loading"
	"github.com/Davidson1997/bridge-calculator/internal/calc/steel"
	"github.com/Davidson1997/bridge-calculator/internal/calc/timber"
)

// Input carries the flattened assessment form. Field names follow the
// submission form, so unrelated material blocks may be left zero.
type Input struct {
	Material    string  `json:"material"`     // Steel, Concrete or Timber
	SpanM       float64 `json:"span_length"`  // m
	LoadingType string  `json:"loading_type"` // HA or HB
	Method      string  `json:"method"`       // quick (default) or detailed

	// Steel girder fields, mm.
	SteelGrade        string  `json:"steel_grade"`
	FlangeWidthMM     float64 `json:"flange_width"`
	FlangeThicknessMM float64 `json:"flange_thickness"`
	WebThicknessMM    float64 `json:"web_thickness"`
	BeamDepthMM       float64 `json:"beam_depth"`
	EffectiveLengthM  float64 `json:"effective_length"`
	RadiusGyrationMM  float64 `json:"radius_gyration"`

	// Concrete section fields, mm.
	ConcreteGrade    string  `json:"concrete_grade"`
	BeamWidthMM      float64 `json:"beam_width"`
	EffectiveDepthMM float64 `json:"effective_depth"`
	RebarSizeMM      float64 `json:"rebar_size"`
	RebarSpacingMM   float64 `json:"rebar_spacing"`

	// Timber section fields, mm.
	TimberGrade     string  `json:"timber_grade"`
	TimberBreadthMM float64 `json:"timber_breadth"`
	TimberDepthMM   float64 `json:"timber_depth"`

	ConditionFactor float64 `json:"condition_factor"`

	// Loading fields.
	HBUnits         float64 `json:"hb_units"`
	DeadUDLKNM      float64 `json:"dead_udl"`
	SurfacingUDLKNM float64 `json:"surfacing_udl"`
	Unfactored      bool    `json:"unfactored"`
	VehicleStepM    float64 `json:"vehicle_step_m"`
}

// Result keeps the key names the original result sheet used.
type Result struct {
	MomentCapacityKNM float64 `json:"moment_capacity_kNm"`
	ShearCapacityKN   float64 `json:"shear_capacity_kN"`
	AppliedMomentKNM  float64 `json:"applied_moment_kNm"`
	AppliedShearKN    float64 `json:"applied_shear_kN"`
	MomentUtilisation float64 `json:"moment_utilisation"`
	ShearUtilisation  float64 `json:"shear_utilisation"`
	CapacityFactor    float64 `json:"capacity_factor"`
	PassFail          string  `json:"pass_fail"`
	Notes             string  `json:"notes"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Calculate dispatches on material and loading type and combines the
// two checks. Capacity strictly greater than the applied effect passes,
// equal fails.
func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 {
		return Result{}, fmt.Errorf("invalid span")
	}

	var momentCap, shearCap float64
	var notes string

	switch in.Material {
	case "Steel":
		res, err := steel.Calculate(steel.Input{
			Grade:             in.SteelGrade,
			FlangeWidthMM:     in.FlangeWidthMM,
			FlangeThicknessMM: in.FlangeThicknessMM,
			WebThicknessMM:    in.WebThicknessMM,
			BeamDepthMM:       in.BeamDepthMM,
			EffectiveLengthM:  in.EffectiveLengthM,
			RadiusGyrationMM:  in.RadiusGyrationMM,
			ConditionFactor:   in.ConditionFactor,
		})
		if err != nil {
			return Result{}, err
		}
		momentCap, shearCap, notes = res.MomentCapacityKNM, res.ShearCapacityKN, res.Notes
	case "Concrete":
		res, err := concrete.Calculate(concrete.Input{
			Grade:            in.ConcreteGrade,
			BeamWidthMM:      in.BeamWidthMM,
			EffectiveDepthMM: in.EffectiveDepthMM,
			RebarSizeMM:      in.RebarSizeMM,
			RebarSpacingMM:   in.RebarSpacingMM,
			ConditionFactor:  in.ConditionFactor,
		})
		if err != nil {
			return Result{}, err
		}
		momentCap, shearCap, notes = res.MomentCapacityKNM, res.ShearCapacityKN, res.Notes
	case "Timber":
		res, err := timber.Calculate(timber.Input{
			Grade:           in.TimberGrade,
			BreadthMM:       in.TimberBreadthMM,
			DepthMM:         in.TimberDepthMM,
			ConditionFactor: in.ConditionFactor,
		})
		if err != nil {
			return Result{}, err
		}
		momentCap, shearCap, notes = res.MomentCapacityKNM, res.ShearCapacityKN, res.Notes
	default:
		return Result{}, fmt.Errorf("unknown material %q", in.Material)
	}

	deadMaterial := "steel"
	if in.Material == "Concrete" {
		deadMaterial = "concrete"
	}
	loads, err := loading.Calculate(loading.Input{
		Loading:         loading.Type(in.LoadingType),
		Method:          loading.Method(in.Method),
		SpanM:           in.SpanM,
		HBUnits:         in.HBUnits,
		DeadUDLKNM:      in.DeadUDLKNM,
		SurfacingUDLKNM: in.SurfacingUDLKNM,
		DeadMaterial:    deadMaterial,
		Unfactored:      in.Unfactored,
		VehicleStepM:    in.VehicleStepM,
	})
	if err != nil {
		return Result{}, err
	}

	verdict := "Fail"
	if momentCap > loads.AppliedMomentKNM && shearCap > loads.AppliedShearKN {
		verdict = "Pass"
	}

	// Live-load capacity factor: the multiple of the assessed live
	// loading the section can carry once factored dead load is taken
	// off. Meaningful only when there is live loading.
	capFactor := 0.0
	if loads.LiveFactoredKNM > 0 && loads.LiveFactoredKN > 0 {
		deadM := loads.AppliedMomentKNM - loads.LiveFactoredKNM
		deadV := loads.AppliedShearKN - loads.LiveFactoredKN
		capFactor = math.Min(
			(momentCap-deadM)/loads.LiveFactoredKNM,
			(shearCap-deadV)/loads.LiveFactoredKN,
		)
		if capFactor < 0 {
			capFactor = 0
		}
	}

	out := Result{
		MomentCapacityKNM: round2(momentCap),
		ShearCapacityKN:   round2(shearCap),
		AppliedMomentKNM:  round2(loads.AppliedMomentKNM),
		AppliedShearKN:    round2(loads.AppliedShearKN),
		CapacityFactor:    round2(capFactor),
		PassFail:          verdict,
		Notes:             notes + " " + loads.Notes,
	}
	if momentCap > 0 {
		out.MomentUtilisation = round2(loads.AppliedMomentKNM / momentCap)
	}
	if shearCap > 0 {
		out.ShearUtilisation = round2(loads.AppliedShearKN / shearCap)
	}
	return out, nil
}
