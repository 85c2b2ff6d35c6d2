package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"notulen/internal/core"
	"notulen/internal/log"
	"notulen/internal/render"
)

// handleIndex renders the dashboard shell. The charts themselves load as
// <img> tags pointing at the SVG endpoints.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		s.logger.Error("Templates not loaded", log.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	minYear, maxYear, ok := s.dataset.Years()
	years := make([]int, 0)
	if ok {
		for y := minYear; y <= maxYear; y++ {
			years = append(years, y)
		}
	}
	selected := minYear
	if y, err := parseYear(r); err == nil {
		selected = y
	}

	data := struct {
		Years    []int
		Selected int
		Rows     int
		Unique   int
		Skipped  int
	}{
		Years:    years,
		Selected: selected,
		Rows:     len(s.dataset.Dates),
		Unique:   len(s.dataset.Unique),
		Skipped:  s.dataset.SkippedTotal(),
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("Index template execution failed", log.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleHeatmap serves the per-year calendar strip. Counting here uses the
// deduplicated dates: a day is either met on or not, multiplicity shows
// only through the annotation-free opacity overlay of repeated years.
func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		http.Error(w, "missing or invalid year parameter", http.StatusBadRequest)
		return
	}

	key := heatmapCacheKey(year)
	if svg, found := s.svgCache.Get(key); found {
		writeSVG(w, svg)
		return
	}

	days, err := s.annotations.ListColoredDays(r.Context())
	if err != nil {
		s.logger.Error("Colored days list failed", log.FieldError, err, log.FieldYear, year)
		http.Error(w, "annotation store unavailable", http.StatusInternalServerError)
		return
	}
	colors := core.ColorTableForYear(year, days)
	counts := core.CountByDayOfYear(s.dataset.Unique, &core.YearRange{Min: year, Max: year})

	var buf bytes.Buffer
	render.YearHeatmap(&buf, year, colors, counts, s.layout)
	s.svgCache.Set(key, buf.Bytes())
	writeSVG(w, buf.Bytes())
}

// handleYearChart serves the meetings-per-year bar chart. Duplicates
// count: two rows on the same day are two meetings here.
func (s *Server) handleYearChart(w http.ResponseWriter, r *http.Request) {
	s.serveChart(w, "chart:years", func(buf *bytes.Buffer) {
		render.YearBars(buf, core.CountByYear(s.dataset.Dates), s.layout)
	})
}

func (s *Server) handleMonthChart(w http.ResponseWriter, r *http.Request) {
	s.serveChart(w, "chart:months", func(buf *bytes.Buffer) {
		render.MonthBars(buf, core.CountByMonth(s.dataset.Dates), s.layout)
	})
}

// handleDayChart serves the cross-year day-of-year strip. An explicit
// from/to query pair overrides the configured year filter.
func (s *Server) handleDayChart(w http.ResponseWriter, r *http.Request) {
	filter, err := parseYearRange(r, s.dayFilter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := "chart:days"
	if filter != nil {
		key = fmt.Sprintf("chart:days:%d-%d", filter.Min, filter.Max)
	}
	s.serveChart(w, key, func(buf *bytes.Buffer) {
		render.DayOfYearStrip(buf, core.CountByDayOfYear(s.dataset.Dates, filter), s.layout)
	})
}

// serveChart answers from the SVG cache, rendering on miss.
func (s *Server) serveChart(w http.ResponseWriter, key string, draw func(*bytes.Buffer)) {
	if svg, found := s.svgCache.Get(key); found {
		writeSVG(w, svg)
		return
	}
	var buf bytes.Buffer
	draw(&buf)
	s.svgCache.Set(key, buf.Bytes())
	writeSVG(w, buf.Bytes())
}

// handleFrequency exposes the aggregation tables as JSON for anything
// that wants the numbers without the pixels.
func (s *Server) handleFrequency(w http.ResponseWriter, r *http.Request) {
	by := r.URL.Query().Get("by")

	var table core.FrequencyTable
	switch by {
	case "year":
		table = core.CountByYear(s.dataset.Dates)
	case "month":
		table = core.CountByMonth(s.dataset.Dates)
	case "day":
		filter, err := parseYearRange(r, s.dayFilter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		table = core.CountByDayOfYear(s.dataset.Dates, filter)
	default:
		http.Error(w, "by parameter must be one of year, month, day", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	resp := struct {
		By     string             `json:"by"`
		Counts core.FrequencyTable `json:"counts"`
	}{By: by, Counts: table}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Frequency encode failed", log.FieldError, err)
	}
}

// handleColoredDay stores one annotation and invalidates the cached
// heatmap of its year.
func (s *Server) handleColoredDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.Error("Parse form error", log.FieldError, err)
		BadRequestError("invalid request format").Write(w)
		return
	}

	dateStr := sanitizeInput(r.Form.Get("date"))
	color := sanitizeInput(r.Form.Get("color"))

	d, err := parseISODate(dateStr)
	if err != nil {
		UnprocessableEntityError("date must be a valid YYYY-MM-DD date").Write(w)
		return
	}
	if !validColor(color) {
		UnprocessableEntityError("color must be a #rrggbb hex value").Write(w)
		return
	}

	cd := core.ColoredDay{Date: d, Color: color}
	if err := s.annotations.PutColoredDay(r.Context(), cd); err != nil {
		s.logger.Error("Colored day store failed", log.FieldError, err, log.FieldISODate, d.ISO())
		InternalServerError("could not store colored day").Write(w)
		return
	}
	s.svgCache.Delete(heatmapCacheKey(d.Year))
	s.logger.Info("Colored day stored", log.FieldISODate, d.ISO(), "color", color)

	NewHTMXResponse().
		TriggerDayColored(d.Year).
		BodyHTML(`<div class="success">Colored ` + template.HTMLEscapeString(d.ISO()) + `</div>`).
		Write(w)
}

func heatmapCacheKey(year int) string {
	return "heatmap:" + strconv.Itoa(year)
}

func writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(svg)
}
