package children

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"child-growth-tracker/internal/middleware"
	"child-growth-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Provider is what the handlers need from the children side. Satisfied by
// *Service (direct storage) and by the sync layer (remote with local
// fallback) so routes never care where the data came from.
type Provider interface {
	Create(ctx context.Context, in CreateInput) (Child, error)
	GetByID(ctx context.Context, id string) (Child, error)
	List(ctx context.Context) ([]Child, error)
	ListByParent(ctx context.Context, parentUserID string) ([]Child, error)
	ValidateNIK(ctx context.Context, nik string) (NIKValidation, error)
}

func RegisterRoutes(r chi.Router, svc Provider) {
	r.Get("/children", listChildrenHandler(svc))
	r.Post("/admin/add-child", addChildHandler(svc))
	r.Get("/admin/validate-nik/{nik}", validateNIKHandler(svc))
}

// addChildRequest is the body for registering a child.
type addChildRequest struct {
	Name   string `json:"name"`
	DOB    string `json:"dob"` // ISO date (2006-01-02)
	NIK    string `json:"nik"`
	Gender string `json:"gender" enums:"male,female"`
	UserID string `json:"userId"`
}

// childResponse is a registered child as returned by the API.
type childResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"`
	NIK       string    `json:"nik"`
	Gender    Sex       `json:"gender"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// listChildrenHandler godoc
// @Summary List children
// @Description Lists registered children. Parents see only their own children; staff roles see all of them.
// @Tags children
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} childResponse
// @Failure 401 {string} string "unauthorized"
// @Router /children [get]
func listChildrenHandler(svc Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			items []Child
			err   error
		)
		if auth.IsStaff(claims.Role) {
			items, err = svc.List(r.Context())
		} else {
			items, err = svc.ListByParent(r.Context(), claims.UserID)
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]childResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toChildResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addChildHandler godoc
// @Summary Register a child
// @Description Registers a new child. Staff roles only. NIK must be 16 numeric digits and not registered yet.
// @Tags children
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body addChildRequest true "Child data; dob as ISO date"
// @Success 201 {object} childResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 409 {string} string "nik already registered"
// @Router /admin/add-child [post]
func addChildHandler(svc Provider) http.HandlerFunc {
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

		var req addChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		dob, err := ParseDate(req.DOB)
		if err != nil {
			http.Error(w, "dob must be an ISO date", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			BirthDate:    dob,
			Sex:          Sex(strings.ToLower(strings.TrimSpace(req.Gender))),
			NIK:          req.NIK,
			ParentUserID: req.UserID,
		})
		if err != nil {
			if errors.Is(err, ErrNIKTaken) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toChildResponse(c))
	}
}

// validateNIKHandler godoc
// @Summary Check NIK availability
// @Description Answers whether a NIK can still be used. Malformed NIKs are rejected locally without any upstream call.
// @Tags children
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param nik path string true "16-digit NIK"
// @Success 200 {object} NIKValidation
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /admin/validate-nik/{nik} [get]
func validateNIKHandler(svc Provider) http.HandlerFunc {
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

		v, err := svc.ValidateNIK(r.Context(), chi.URLParam(r, "nik"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// ParseDate parses an ISO date, accepting a full RFC3339 timestamp as well
// (clients send both).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toChildResponse(c Child) childResponse {
	return childResponse{
		ID:        c.ID,
		Name:      c.Name,
		DOB:       c.BirthDate.Format("2006-01-02"),
		NIK:       c.NIK,
		Gender:    c.Sex,
		UserID:    c.ParentUserID,
		CreatedAt: c.CreatedAt,
	}
}

// writeJSON is duplicated across module handlers on purpose; extracting a
// shared helper can wait until a third module needs it.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
