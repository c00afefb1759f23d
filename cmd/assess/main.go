// Command assess runs a single beam assessment from the terminal and
// prints the JSON result, without starting the server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Davidson1997/bridge-calculator/internal/calc/assess"
	"github.com/Davidson1997/bridge-calculator/internal/calc/vehicle"
)

func main() {
	root := &cobra.Command{
		Use:   "assess",
		Short: "Bridge beam capacity assessment",
	}
	root.AddCommand(steelCmd(), concreteCmd(), timberCmd(), vehicleCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func commonFlags(cmd *cobra.Command, in *assess.Input) {
	cmd.Flags().Float64Var(&in.SpanM, "span", 0, "span length (m)")
	cmd.Flags().StringVar(&in.LoadingType, "loading", "HA", "loading type (HA or HB)")
	cmd.Flags().StringVar(&in.Method, "method", "quick", "loading method (quick or detailed)")
	cmd.Flags().Float64Var(&in.ConditionFactor, "condition-factor", 1, "condition factor")
	cmd.Flags().Float64Var(&in.HBUnits, "hb-units", 0, "HB units for detailed HB loading")
	cmd.Flags().Float64Var(&in.DeadUDLKNM, "dead-udl", 0, "dead load UDL (kN/m)")
	cmd.Flags().Float64Var(&in.SurfacingUDLKNM, "surfacing-udl", 0, "surfacing UDL (kN/m)")
}

func run(in assess.Input) error {
	res, err := assess.Calculate(in)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func steelCmd() *cobra.Command {
	in := assess.Input{Material: "Steel"}
	cmd := &cobra.Command{
		Use:   "steel",
		Short: "Assess a steel I-girder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in)
		},
	}
	commonFlags(cmd, &in)
	cmd.Flags().StringVar(&in.SteelGrade, "grade", "S275", "steel grade (S275 or S355)")
	cmd.Flags().Float64Var(&in.FlangeWidthMM, "flange-width", 0, "flange width (mm)")
	cmd.Flags().Float64Var(&in.FlangeThicknessMM, "flange-thickness", 0, "flange thickness (mm)")
	cmd.Flags().Float64Var(&in.WebThicknessMM, "web-thickness", 0, "web thickness (mm)")
	cmd.Flags().Float64Var(&in.BeamDepthMM, "depth", 0, "beam depth (mm)")
	cmd.Flags().Float64Var(&in.EffectiveLengthM, "effective-length", 0, "effective length (m)")
	cmd.Flags().Float64Var(&in.RadiusGyrationMM, "radius-gyration", 0, "minor-axis radius of gyration (mm)")
	return cmd
}

func concreteCmd() *cobra.Command {
	in := assess.Input{Material: "Concrete"}
	cmd := &cobra.Command{
		Use:   "concrete",
		Short: "Assess a reinforced-concrete beam",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in)
		},
	}
	commonFlags(cmd, &in)
	cmd.Flags().StringVar(&in.ConcreteGrade, "grade", "C32/40", "concrete grade (C32/40 or C40/50)")
	cmd.Flags().Float64Var(&in.BeamWidthMM, "width", 0, "beam width (mm)")
	cmd.Flags().Float64Var(&in.EffectiveDepthMM, "effective-depth", 0, "effective depth (mm)")
	cmd.Flags().Float64Var(&in.RebarSizeMM, "rebar-size", 0, "rebar diameter (mm)")
	cmd.Flags().Float64Var(&in.RebarSpacingMM, "rebar-spacing", 0, "rebar spacing (mm)")
	return cmd
}

func timberCmd() *cobra.Command {
	in := assess.Input{Material: "Timber"}
	cmd := &cobra.Command{
		Use:   "timber",
		Short: "Assess a timber beam",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in)
		},
	}
	commonFlags(cmd, &in)
	cmd.Flags().StringVar(&in.TimberGrade, "grade", "C24", "timber grade (C16, C24 or D40)")
	cmd.Flags().Float64Var(&in.TimberBreadthMM, "breadth", 0, "breadth (mm)")
	cmd.Flags().Float64Var(&in.TimberDepthMM, "depth", 0, "depth (mm)")
	return cmd
}

func vehicleCmd() *cobra.Command {
	var in vehicle.Input
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Worst-case HB vehicle placement on a span",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := vehicle.Calculate(in)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	cmd.Flags().Float64Var(&in.SpanM, "span", 0, "span length (m)")
	cmd.Flags().Float64Var(&in.Units, "units", 0, "HB units")
	cmd.Flags().Float64Var(&in.InnerSpacingM, "inner-spacing", 0, "inner axle spacing (m), 0 scans all")
	cmd.Flags().Float64Var(&in.StepM, "step", 0, "scan step (m)")
	return cmd
}
