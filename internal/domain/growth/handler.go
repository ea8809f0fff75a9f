package growth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth/who"
	"child-growth-tracker/internal/middleware"
	"child-growth-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Provider is what the handlers need from the growth side. Satisfied by
// *Service and by the sync layer.
type Provider interface {
	AddRecord(ctx context.Context, childID string, in AddRecordInput) (Record, error)
	Records(ctx context.Context, childID string) ([]Record, error)
	Stats(ctx context.Context, childID string) (Stats, error)
	Chart(ctx context.Context, childID string) (Chart, error)
}

func RegisterRoutes(r chi.Router, svc Provider, childSource ChildSource) {
	r.Route("/growth/{childID}", func(gr chi.Router) {
		gr.Get("/growth-records", listRecordsHandler(svc, childSource))
		gr.Post("/growth-records", addRecordHandler(svc, childSource))
		gr.Get("/growth-stats", statsHandler(svc, childSource))
		gr.Get("/growth-chart", chartHandler(svc, childSource))
	})
}

// addRecordRequest is the body for recording a measurement. Age and Z-score
// are never part of the request; the server derives them.
type addRecordRequest struct {
	Date              string   `json:"date"` // ISO date (2006-01-02)
	Height            float64  `json:"height"`
	Weight            float64  `json:"weight"`
	HeadCircumference *float64 `json:"headCircumference"`
}

// recordResponse is a growth record as returned by the API. The Z-score is
// rounded to two decimals for display; stored values keep full precision.
type recordResponse struct {
	ID                string     `json:"id"`
	ChildID           string     `json:"childId"`
	Date              string     `json:"date"`
	Height            float64    `json:"height"`
	Weight            float64    `json:"weight"`
	HeadCircumference *float64   `json:"headCircumference,omitempty"`
	AgeInMonths       int        `json:"ageInMonths"`
	HeightZScore      *float64   `json:"heightZScore"`
	HeightStatus      who.Status `json:"heightStatus"`
	HeightStatusLabel string     `json:"heightStatusLabel"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// statsResponse mirrors Stats with Z-score fields rounded for display.
type statsResponse struct {
	Stats
}

type chartResponse struct {
	Records []recordResponse `json:"records"`
	Curves  []who.Curve      `json:"whoCurves"`
}

// listRecordsHandler godoc
// @Summary List growth records
// @Description Returns the child's measurement history, oldest first. Parents may only read their own children.
// @Tags growth
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param childID path string true "Child ID"
// @Success 200 {array} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /growth/{childID}/growth-records [get]
func listRecordsHandler(svc Provider, childSource ChildSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		childID, ok := authorizeRead(w, r, childSource)
		if !ok {
			return
		}

		records, err := svc.Records(r.Context(), childID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponses(records))
	}
}

// addRecordHandler godoc
// @Summary Record a measurement
// @Description Appends a measurement to the child's history. Staff roles only. Age in months and height-for-age Z-score are derived server-side; a Z-score outside the WHO table range is returned as null with status unknown.
// @Tags growth
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param childID path string true "Child ID"
// @Param payload body addRecordRequest true "Measurement; date as ISO date"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /growth/{childID}/growth-records [post]
func addRecordHandler(svc Provider, childSource ChildSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !auth.IsStaff(claims.Role) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		childID := chi.URLParam(r, "childID")
		if _, err := childSource.GetByID(r.Context(), childID); err != nil {
			http.Error(w, "child not found", http.StatusNotFound)
			return
		}

		var req addRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := children.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "date must be an ISO date", http.StatusBadRequest)
			return
		}

		rec, err := svc.AddRecord(r.Context(), childID, AddRecordInput{
			Date:              date,
			Height:            req.Height,
			Weight:            req.Weight,
			HeadCircumference: req.HeadCircumference,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// statsHandler godoc
// @Summary Growth statistics
// @Description Aggregates count/avg/min/max over the child's history. An empty history returns the zero-sentinel aggregate, not an error.
// @Tags growth
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param childID path string true "Child ID"
// @Success 200 {object} statsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /growth/{childID}/growth-stats [get]
func statsHandler(svc Provider, childSource ChildSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		childID, ok := authorizeRead(w, r, childSource)
		if !ok {
			return
		}

		st, err := svc.Stats(r.Context(), childID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toStatsResponse(st))
	}
}

// chartHandler godoc
// @Summary Growth chart data
// @Description Returns the child's record series plus the WHO reference bands for plotting.
// @Tags growth
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param childID path string true "Child ID"
// @Success 200 {object} chartResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /growth/{childID}/growth-chart [get]
func chartHandler(svc Provider, childSource ChildSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		childID, ok := authorizeRead(w, r, childSource)
		if !ok {
			return
		}

		chart, err := svc.Chart(r.Context(), childID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, chartResponse{
			Records: toRecordResponses(chart.Records),
			Curves:  chart.Curves,
		})
	}
}

// authorizeRead resolves the child and enforces read access: staff roles see
// everything, parents only their own children.
func authorizeRead(w http.ResponseWriter, r *http.Request, childSource ChildSource) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	childID := chi.URLParam(r, "childID")
	child, err := childSource.GetByID(r.Context(), childID)
	if err != nil {
		http.Error(w, "child not found", http.StatusNotFound)
		return "", false
	}

	if !auth.IsStaff(claims.Role) && child.ParentUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}

	return childID, true
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrChildNotFound):
		http.Error(w, "child not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toRecordResponse(rec Record) recordResponse {
	out := recordResponse{
		ID:                rec.ID,
		ChildID:           rec.ChildID,
		Date:              rec.Date.Format("2006-01-02"),
		Height:            rec.Height,
		Weight:            rec.Weight,
		HeadCircumference: rec.HeadCircumference,
		AgeInMonths:       rec.AgeInMonths,
		HeightStatus:      rec.HeightStatus,
		HeightStatusLabel: rec.HeightStatus.Label(who.HeightForAge),
		CreatedAt:         rec.CreatedAt,
	}
	if rec.HeightZScore != nil {
		rounded := who.Round2(*rec.HeightZScore)
		out.HeightZScore = &rounded
	}
	return out
}

func toRecordResponses(records []Record) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

func toStatsResponse(st Stats) statsResponse {
	st.AvgHeightZScore = who.Round2(st.AvgHeightZScore)
	st.MinHeightZScore = who.Round2(st.MinHeightZScore)
	st.MaxHeightZScore = who.Round2(st.MaxHeightZScore)
	return statsResponse{Stats: st}
}

// writeJSON is duplicated across module handlers on purpose; see the
// children handler.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
