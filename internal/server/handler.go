package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/alexiusacademia/gocfs/internal/effective"
	"github.com/alexiusacademia/gocfs/internal/en1993"
	"github.com/alexiusacademia/gocfs/internal/report"
	"github.com/alexiusacademia/gocfs/internal/section"
	"github.com/alexiusacademia/gocfs/internal/version"
	"github.com/gorilla/mux"
)

// maxBody limits the size of a section payload
const maxBody = 1 << 20

// Handler serves the section calculations over JSON
type Handler struct{}

// GrossResponse is the body of POST /api/gross
type GrossResponse struct {
	Section    section.LippedChannel    `json:"section"`
	Centerline section.Centerline       `json:"centerline"`
	Gross      *section.GrossProperties `json:"gross"`
	Warnings   []effective.Warning      `json:"warnings,omitempty"`
}

// EffectiveResponse is the body of POST /api/effective
type EffectiveResponse struct {
	Section section.LippedChannel `json:"section"`
	Results []*effective.Result   `json:"results"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": version.Version})
}

func (h *Handler) Gross(w http.ResponseWriter, r *http.Request) {
	a, ok := analysis(w, r)
	if !ok {
		return
	}
	writeJSON(w, GrossResponse{
		Section:    a.Section(),
		Centerline: a.Centerline(),
		Gross:      a.Gross(),
		Warnings:   a.Warnings(),
	})
}

func (h *Handler) Effective(w http.ResponseWriter, r *http.Request) {
	a, ok := analysis(w, r)
	if !ok {
		return
	}
	results, err := a.EvaluateAll()
	if err != nil {
		calculationError(w, err)
		return
	}
	writeJSON(w, EffectiveResponse{Section: a.Section(), Results: results})
}

func (h *Handler) EffectiveMode(w http.ResponseWriter, r *http.Request) {
	m, err := effective.ParseMode(mux.Vars(r)["mode"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	a, ok := analysis(w, r)
	if !ok {
		return
	}
	res, err := a.Evaluate(m)
	if err != nil {
		calculationError(w, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	item, ok := evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename(item.Name, ".pdf")))
	if err := report.WritePDF(w, item, report.PDFOptions{}); err != nil {
		log.Printf("pdf report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

func (h *Handler) ReportXLSX(w http.ResponseWriter, r *http.Request) {
	item, ok := evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename(item.Name, ".xlsx")))
	if err := report.WriteXLSX(w, item); err != nil {
		log.Printf("xlsx report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

// decode reads a section from the request body
func decode(w http.ResponseWriter, r *http.Request) (*section.LippedChannel, bool) {
	var s section.LippedChannel
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return nil, false
	}
	return &s, true
}

func analysis(w http.ResponseWriter, r *http.Request) (*effective.Analysis, bool) {
	s, ok := decode(w, r)
	if !ok {
		return nil, false
	}
	a, err := effective.NewAnalysis(s)
	if err != nil {
		calculationError(w, err)
		return nil, false
	}
	return a, true
}

func evaluate(w http.ResponseWriter, r *http.Request) (report.Item, bool) {
	s, ok := decode(w, r)
	if !ok {
		return report.Item{}, false
	}
	item := report.Evaluate(s)
	if item.Err != nil {
		calculationError(w, item.Err)
		return item, false
	}
	if item.Name == "" {
		item.Name = "section"
	}
	return item, true
}

// calculationError maps invalid sections to 422 and anything else to 500
func calculationError(w http.ResponseWriter, err error) {
	if errors.Is(err, en1993.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	log.Printf("calculation error: %v", err)
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func filename(name, ext string) string {
	out := make([]rune, 0, len(name))
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out) + ext
}
