package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davidson1997/bridge-calculator/internal/calc/assess"
)

func reportInput() Input {
	return Input{
		Project:    "A12 overbridge",
		BridgeName: "Span 2",
		Author:     "DG",
		Assessment: assess.Input{
			Material:          "Steel",
			SpanM:             10,
			LoadingType:       "HA",
			SteelGrade:        "S275",
			FlangeWidthMM:     300,
			FlangeThicknessMM: 20,
			WebThicknessMM:    12,
			BeamDepthMM:       600,
		},
	}
}

func TestGenerate(t *testing.T) {
	h := &Handler{}

	t.Run("returns a PDF attachment", func(t *testing.T) {
		payload, err := json.Marshal(reportInput())
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		h.Generate(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")), "body should be a PDF document")
	})

	t.Run("rejects a bad payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		h.Generate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a failing assessment", func(t *testing.T) {
		in := reportInput()
		in.Assessment.Material = "Masonry"
		payload, err := json.Marshal(in)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		h.Generate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
