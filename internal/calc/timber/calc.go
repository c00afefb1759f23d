package timber

import (
	"fmt"

	"github.com/Davidson1997/bridge-calculator/internal/calc/section"
)

// Grade stresses in N/mm2 for the strength classes the assessment forms
// accept. Softwoods C16/C24, hardwood D40.
type gradeProps struct {
	BendingMPa float64
	ShearMPa   float64
	EMeanMPa   float64
}

var grades = map[string]gradeProps{
	"C16": {BendingMPa: 5.3, ShearMPa: 0.67, EMeanMPa: 8800},
	"C24": {BendingMPa: 7.5, ShearMPa: 0.71, EMeanMPa: 10800},
	"D40": {BendingMPa: 12.5, ShearMPa: 2.0, EMeanMPa: 12500},
}

type Input struct {
	Grade           string  `json:"grade"`
	BreadthMM       float64 `json:"breadth_mm"`
	DepthMM         float64 `json:"depth_mm"`
	ConditionFactor float64 `json:"condition_factor"`

	// Optional serviceability check: midspan deflection under a UDL,
	// against span/limit ratio.
	SpanM                float64 `json:"span_m"`
	UDLKNM               float64 `json:"udl_kn_m"`
	DeflectionLimitRatio float64 `json:"deflection_limit_ratio"`
}

type Result struct {
	BendingMPa        float64 `json:"bending_mpa"`
	ShearMPa          float64 `json:"shear_mpa"`
	SectionModulusMM3 float64 `json:"section_modulus_mm3"`
	MomentCapacityKNM float64 `json:"moment_capacity_knm"`
	ShearCapacityKN   float64 `json:"shear_capacity_kn"`
	DeflectionMM      float64 `json:"deflection_mm"`
	DeflectionLimitMM float64 `json:"deflection_limit_mm"`
	OKDeflection      bool    `json:"ok_deflection"`
	Notes             string  `json:"notes"`
}

// Calculate checks a solid rectangular timber beam: elastic bending on
// b*h^2/6 and the 2/3 parabolic shear distribution. When a span and UDL
// are supplied the midspan deflection 5wL^4/384EI is checked against
// span over the limit ratio.
func Calculate(in Input) (Result, error) {
	if in.BreadthMM <= 0 || in.DepthMM <= 0 {
		return Result{}, fmt.Errorf("invalid section dimensions")
	}
	props, ok := grades[in.Grade]
	if !ok {
		return Result{}, fmt.Errorf("unknown timber grade %q", in.Grade)
	}
	if in.ConditionFactor <= 0 {
		in.ConditionFactor = 1
	}
	if in.DeflectionLimitRatio <= 0 {
		in.DeflectionLimitRatio = 250
	}

	Z := section.RectangleZ(in.BreadthMM, in.DepthMM)
	moment := props.BendingMPa * Z / 1e6 / in.ConditionFactor
	shear := (2.0 / 3.0) * props.ShearMPa * in.BreadthMM * in.DepthMM / 1e3 / in.ConditionFactor

	res := Result{
		BendingMPa:        props.BendingMPa,
		ShearMPa:          props.ShearMPa,
		SectionModulusMM3: Z,
		MomentCapacityKNM: moment,
		ShearCapacityKN:   shear,
		OKDeflection:      true,
		Notes:             "Solid rectangular timber beam, grade bending and shear stresses.",
	}

	if in.SpanM > 0 && in.UDLKNM > 0 {
		I := section.RectangleI(in.BreadthMM, in.DepthMM)
		wNmm := in.UDLKNM // 1 kN/m = 1 N/mm
		Lmm := in.SpanM * 1000.0
		defl := 5.0 * wNmm * Lmm * Lmm * Lmm * Lmm / (384.0 * props.EMeanMPa * I)
		res.DeflectionMM = defl
		res.DeflectionLimitMM = Lmm / in.DeflectionLimitRatio
		res.OKDeflection = defl <= res.DeflectionLimitMM
	}

	return res, nil
}
