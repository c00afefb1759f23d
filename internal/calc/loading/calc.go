// Package loading evaluates the applied moment and shear on a simply
// supported span from dead load plus HA or HB live loading.
package loading

import (
	"fmt"
	"math"

	"github.com/Davidson1997/bridge-calculator/internal/calc/vehicle"
)

type Type string

const (
	TypeHA Type = "HA"
	TypeHB Type = "HB"
)

type Method string

const (
	// MethodQuick uses the flat per-span estimates the original
	// assessment sheets carried.
	MethodQuick Method = "quick"
	// MethodDetailed uses the BD 37/01 HA lane load or the full HB
	// axle-train envelope.
	MethodDetailed Method = "detailed"
)

// Knife-edge load accompanying the HA lane UDL, kN.
const haKELKN = 120.0

type Input struct {
	Loading         Type    `json:"loading_type"`
	Method          Method  `json:"method"`
	SpanM           float64 `json:"span_m"`
	HBUnits         float64 `json:"hb_units"`
	DeadUDLKNM      float64 `json:"dead_udl_kn_m"`
	SurfacingUDLKNM float64 `json:"surfacing_udl_kn_m"`
	DeadMaterial    string  `json:"dead_material"` // steel or concrete
	Unfactored      bool    `json:"unfactored"`
	VehicleStepM    float64 `json:"vehicle_step_m"`
}

type Result struct {
	LiveMomentKNM    float64 `json:"live_moment_knm"`
	LiveShearKN      float64 `json:"live_shear_kn"`
	DeadMomentKNM    float64 `json:"dead_moment_knm"`
	DeadShearKN      float64 `json:"dead_shear_kn"`
	AppliedMomentKNM float64 `json:"applied_moment_knm"`
	AppliedShearKN   float64 `json:"applied_shear_kn"`
	LiveFactoredKNM  float64 `json:"live_factored_knm"`
	LiveFactoredKN   float64 `json:"live_factored_kn"`
	FactorSet        string  `json:"factor_set"`
	Notes            string  `json:"notes"`
}

// factors returns the partial load factors applied to dead, surfacing
// and live effects. BS 5400 series values; the unfactored set is used
// when nominal effects are wanted.
func factors(unfactored bool, deadMaterial string, loading Type) (gDead, gSurf, gLive float64, name string) {
	if unfactored {
		return 1.0, 1.0, 1.0, "nominal"
	}
	gDead = 1.05
	if deadMaterial == "concrete" {
		gDead = 1.15
	}
	gLive = 1.5
	if loading == TypeHB {
		gLive = 1.3
	}
	return gDead, 1.75, gLive, "BS5400 ULS"
}

// haLaneUDL returns the BD 37/01 nominal HA lane load in kN/m.
func haLaneUDL(spanM float64) float64 {
	if spanM <= 50 {
		return 336.0 * math.Pow(1.0/spanM, 0.67)
	}
	return 36.0 * math.Pow(1.0/spanM, 0.1)
}

func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 {
		return Result{}, fmt.Errorf("invalid span")
	}

	L := in.SpanM
	var liveM, liveV float64
	notes := ""

	switch {
	case in.Loading == TypeHA && in.Method != MethodDetailed:
		liveM = 0.4 * L * L
		liveV = 0.6 * L
		notes = "HA quick estimate."
	case in.Loading == TypeHB && in.Method != MethodDetailed:
		liveM = 0.6 * L * L
		liveV = 0.8 * L
		notes = "HB quick estimate."
	case in.Loading == TypeHA:
		w := haLaneUDL(L)
		liveM = w*L*L/8.0 + haKELKN*L/4.0
		liveV = w*L/2.0 + haKELKN
		notes = "BD 37/01 HA lane UDL with knife-edge load."
	case in.Loading == TypeHB:
		if in.HBUnits <= 0 {
			return Result{}, fmt.Errorf("HB units required for detailed HB loading")
		}
		env, err := vehicle.Calculate(vehicle.Input{
			SpanM: L,
			Units: in.HBUnits,
			StepM: in.VehicleStepM,
		})
		if err != nil {
			return Result{}, err
		}
		liveM = env.MaxMomentKNM
		liveV = env.MaxShearKN
		notes = "HB axle-train envelope."
	default:
		// Unknown loading contributes nothing, as the original form did.
		notes = "No live loading."
	}

	deadUDL := in.DeadUDLKNM + in.SurfacingUDLKNM
	deadM := deadUDL * L * L / 8.0
	deadV := deadUDL * L / 2.0

	gDead, gSurf, gLive, name := factors(in.Unfactored, in.DeadMaterial, in.Loading)
	appliedM := gDead*in.DeadUDLKNM*L*L/8.0 + gSurf*in.SurfacingUDLKNM*L*L/8.0 + gLive*liveM
	appliedV := gDead*in.DeadUDLKNM*L/2.0 + gSurf*in.SurfacingUDLKNM*L/2.0 + gLive*liveV

	return Result{
		LiveMomentKNM:    liveM,
		LiveShearKN:      liveV,
		DeadMomentKNM:    deadM,
		DeadShearKN:      deadV,
		AppliedMomentKNM: appliedM,
		AppliedShearKN:   appliedV,
		LiveFactoredKNM:  gLive * liveM,
		LiveFactoredKN:   gLive * liveV,
		FactorSet:        name,
		Notes:            notes,
	}, nil
}
