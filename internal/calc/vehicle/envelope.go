// Package vehicle finds the worst placement of an HB axle train on a
// simply supported span by scanning discretized positions.
package vehicle

import "fmt"

// An HB unit is 10 kN per axle on a four-axle vehicle.
const AxleKNPerUnit = 10.0

// Outer axle pairs are 1.8 m apart; the inner spacing varies.
const outerSpacingM = 1.8

// DefaultStepM is the scan increment along the span.
const DefaultStepM = 0.05

// Inner-axle spacings the vehicle may adopt.
var innerSpacingsM = []float64{6, 11, 16, 21, 26}

type Input struct {
	SpanM         float64 `json:"span_m"`
	Units         float64 `json:"hb_units"`
	InnerSpacingM float64 `json:"inner_spacing_m"` // 0 scans every standard spacing
	StepM         float64 `json:"step_m"`          // 0 uses DefaultStepM
}

type Result struct {
	MaxMomentKNM      float64 `json:"max_moment_knm"`
	MomentPositionM   float64 `json:"moment_position_m"`
	MaxShearKN        float64 `json:"max_shear_kn"`
	GoverningSpacingM float64 `json:"governing_spacing_m"`
	PositionsScanned  int     `json:"positions_scanned"`
	Notes             string  `json:"notes"`
}

// Calculate steps the axle train along the span and records the bending
// moment under every on-span axle and the larger end reaction. Axles
// that are off the span at a given position carry nothing, so partial
// trains on short spans are handled by the same loop.
func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 {
		return Result{}, fmt.Errorf("invalid span")
	}
	if in.Units <= 0 {
		return Result{}, fmt.Errorf("invalid HB units")
	}
	step := in.StepM
	if step <= 0 {
		step = DefaultStepM
	}

	spacings := innerSpacingsM
	if in.InnerSpacingM > 0 {
		spacings = []float64{in.InnerSpacingM}
	}

	axle := in.Units * AxleKNPerUnit
	L := in.SpanM

	res := Result{Notes: "Discretized HB axle train envelope on a simply supported span."}
	for _, inner := range spacings {
		offsets := [4]float64{0, outerSpacingM, outerSpacingM + inner, 2*outerSpacingM + inner}
		trainLen := offsets[3]

		steps := int((L+trainLen)/step) + 1
		for i := 0; i <= steps; i++ {
			x0 := -trainLen + float64(i)*step
			if x0 > L {
				break
			}
			res.PositionsScanned++

			// Positions of the axles currently on the span.
			var xs [4]float64
			n := 0
			for _, off := range offsets {
				x := x0 + off
				if x >= 0 && x <= L {
					xs[n] = x
					n++
				}
			}
			if n == 0 {
				continue
			}

			var ra float64
			for j := 0; j < n; j++ {
				ra += axle * (L - xs[j]) / L
			}
			rb := axle*float64(n) - ra

			shear := ra
			if rb > shear {
				shear = rb
			}
			if shear > res.MaxShearKN {
				res.MaxShearKN = shear
			}

			// Peak moment occurs under an axle.
			for j := 0; j < n; j++ {
				m := ra * xs[j]
				for k := 0; k < j; k++ {
					m -= axle * (xs[j] - xs[k])
				}
				if m > res.MaxMomentKNM {
					res.MaxMomentKNM = m
					res.MomentPositionM = xs[j]
					res.GoverningSpacingM = inner
				}
			}
		}
	}
	return res, nil
}
