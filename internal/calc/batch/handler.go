package batch

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/Davidson1997/bridge-calculator/internal/calc/assess"
)

const maxUploadSize = 10 << 20 // 10MB

type Handler struct{}

// Import accepts an xlsx upload with one assessment per row and returns
// the computed results as JSON. Rows that fail to parse are skipped.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var items []assess.Input
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, input)
	}

	results, err := Calculate(r.Context(), items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{Count: len(results), Results: results})
}

// Export takes a JSON list of assessments and returns an xlsx workbook
// with one result row per item.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	results, err := Calculate(r.Context(), input.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{
		"material", "loading_type", "span_m",
		"moment_capacity_kNm", "shear_capacity_kN",
		"applied_moment_kNm", "applied_shear_kN",
		"capacity_factor", "pass_fail",
	}
	for col, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for row, res := range results {
		values := []interface{}{
			input.Items[row].Material,
			input.Items[row].LoadingType,
			input.Items[row].SpanM,
			res.MomentCapacityKNM,
			res.ShearCapacityKN,
			res.AppliedMomentKNM,
			res.AppliedShearKN,
			res.CapacityFactor,
			res.PassFail,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"assessments.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

// Row layout: material, grade, loading_type, span_m, flange_width,
// flange_thickness, web_thickness, beam_depth, beam_width,
// effective_depth, rebar_size, rebar_spacing, condition_factor,
// hb_units, dead_udl, surfacing_udl. Trailing columns may be omitted.
// For timber rows, beam_width and beam_depth carry breadth and depth.
func parseRow(row []string) (assess.Input, error) {
	if len(row) < 4 {
		return assess.Input{}, fmt.Errorf("bad row")
	}
	span, err := toFloat(row[3])
	if err != nil {
		return assess.Input{}, err
	}

	in := assess.Input{
		Material:    row[0],
		LoadingType: row[2],
		SpanM:       span,
	}
	switch in.Material {
	case "Steel":
		in.SteelGrade = row[1]
	case "Concrete":
		in.ConcreteGrade = row[1]
	case "Timber":
		in.TimberGrade = row[1]
	}

	fields := []*float64{
		&in.FlangeWidthMM, &in.FlangeThicknessMM, &in.WebThicknessMM,
		&in.BeamDepthMM, &in.BeamWidthMM, &in.EffectiveDepthMM,
		&in.RebarSizeMM, &in.RebarSpacingMM, &in.ConditionFactor,
		&in.HBUnits, &in.DeadUDLKNM, &in.SurfacingUDLKNM,
	}
	for i, dst := range fields {
		col := i + 4
		if col >= len(row) || row[col] == "" {
			continue
		}
		v, err := toFloat(row[col])
		if err != nil {
			return assess.Input{}, err
		}
		*dst = v
	}
	if in.Material == "Timber" {
		in.TimberBreadthMM = in.BeamWidthMM
		in.TimberDepthMM = in.BeamDepthMM
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
