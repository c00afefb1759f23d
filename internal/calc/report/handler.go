package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"

	"github.com/Davidson1997/bridge-calculator/internal/calc/assess"
)

type Input struct {
	Project    string       `json:"project"`
	BridgeName string       `json:"bridge_name"`
	Author     string       `json:"author"`
	Title      string       `json:"title"`
	Notes      string       `json:"notes"`
	Assessment assess.Input `json:"assessment"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Bridge Beam Assessment"
	}

	res, err := assess.Calculate(input.Assessment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Structure: %s", input.BridgeName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Assessed by: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Reference: %s", uuid.NewString()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Material: %s    Span: %.2f m    Loading: %s",
		input.Assessment.Material, input.Assessment.SpanM, input.Assessment.LoadingType))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Condition factor: %.2f", conditionFactor(input.Assessment)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Moment capacity: %.2f kNm    Applied moment: %.2f kNm",
		res.MomentCapacityKNM, res.AppliedMomentKNM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Shear capacity: %.2f kN    Applied shear: %.2f kN",
		res.ShearCapacityKN, res.AppliedShearKN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Live-load capacity factor: %.2f", res.CapacityFactor))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Verdict: %s", res.PassFail))
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"assessment.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func conditionFactor(in assess.Input) float64 {
	if in.ConditionFactor <= 0 {
		return 1
	}
	return in.ConditionFactor
}
