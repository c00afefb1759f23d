package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Davidson1997/bridge-calculator/internal/calc/assess"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Pages serves the single-page calculator form and its submit handler.
type Pages struct {
	Log          *zap.Logger
	VehicleStepM float64
}

type pageData struct {
	Input  assess.Input
	Result *assess.Result
	Error  string
}

func (p *Pages) Index(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, pageData{})
}

// Calculate parses the submitted form and re-renders the page with the
// result block filled in. Missing numeric fields default to zero and
// the condition factor to one, as the original form did.
func (p *Pages) Calculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	in := assess.Input{
		Material:    r.FormValue("material"),
		LoadingType: r.FormValue("loading_type"),
		Method:      r.FormValue("method"),
		SpanM:       formFloat(r, "span_length", 0),

		SteelGrade:        r.FormValue("steel_grade"),
		FlangeWidthMM:     formFloat(r, "flange_width", 0),
		FlangeThicknessMM: formFloat(r, "flange_thickness", 0),
		WebThicknessMM:    formFloat(r, "web_thickness", 0),
		BeamDepthMM:       formFloat(r, "beam_depth", 0),
		EffectiveLengthM:  formFloat(r, "effective_length", 0),
		RadiusGyrationMM:  formFloat(r, "radius_gyration", 0),

		ConcreteGrade:    r.FormValue("concrete_grade"),
		BeamWidthMM:      formFloat(r, "beam_width", 0),
		EffectiveDepthMM: formFloat(r, "effective_depth", 0),
		RebarSizeMM:      formFloat(r, "rebar_size", 0),
		RebarSpacingMM:   formFloat(r, "rebar_spacing", 0),

		TimberGrade:     r.FormValue("timber_grade"),
		TimberBreadthMM: formFloat(r, "timber_breadth", 0),
		TimberDepthMM:   formFloat(r, "timber_depth", 0),

		ConditionFactor: formFloat(r, "condition_factor", 1),

		HBUnits:         formFloat(r, "hb_units", 0),
		DeadUDLKNM:      formFloat(r, "dead_udl", 0),
		SurfacingUDLKNM: formFloat(r, "surfacing_udl", 0),
		VehicleStepM:    p.VehicleStepM,
	}

	res, err := assess.Calculate(in)
	if err != nil {
		p.Log.Warn("assessment rejected", zap.Error(err))
		p.render(w, http.StatusBadRequest, pageData{Input: in, Error: err.Error()})
		return
	}
	p.render(w, http.StatusOK, pageData{Input: in, Result: &res})
}

func (p *Pages) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTmpl.Execute(w, data); err != nil {
		p.Log.Error("template render", zap.Error(err))
	}
}

func formFloat(r *http.Request, name string, fallback float64) float64 {
	s := r.FormValue(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
