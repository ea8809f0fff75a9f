package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"child-growth-tracker/internal/router"
)

func TestHTTP_EndToEnd_GrowthTracking(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	staffID := "staff-1"
	parentID := "parent-1"
	otherParentID := "parent-2"

	// 1) Staff registers a child for parent-1
	childID := addChild(t, ts.URL, staffID, map[string]any{
		"name":   "Budi",
		"dob":    "2023-06-10",
		"nik":    "3174012345678901",
		"gender": "male",
		"userId": parentID,
	})

	// 2) Parent cannot register children
	{
		st, _ := doReq(t, ts.URL, "POST", "/admin/add-child", parentID, "", map[string]any{
			"name":   "Nope",
			"dob":    "2023-06-10",
			"nik":    "3174019999999999",
			"gender": "male",
			"userId": parentID,
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 add child by parent, got %d", st)
		}
	}

	// 3) Unauthenticated list is rejected
	{
		st, _ := doReq(t, ts.URL, "GET", "/children", "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
	}

	// 4) Owning parent sees the child; another parent does not
	{
		st, body := doReq(t, ts.URL, "GET", "/children", parentID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list children, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 child for owner, got %d", len(items))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/children", otherParentID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list children, got %d", st)
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("expected no children for other parent, got %d", len(items))
		}
	}

	// 5) Duplicate NIK is a conflict
	{
		st, _ := doReq(t, ts.URL, "POST", "/admin/add-child", staffID, "staff", map[string]any{
			"name":   "Dup",
			"dob":    "2023-06-10",
			"nik":    "3174012345678901",
			"gender": "male",
			"userId": parentID,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate NIK, got %d", st)
		}
	}

	// 6) NIK availability check
	{
		st, body := doReq(t, ts.URL, "GET", "/admin/validate-nik/3174012345678901", staffID, "staff", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 validate nik, got %d", st)
		}
		var v struct {
			Available bool `json:"available"`
		}
		_ = json.Unmarshal(body, &v)
		if v.Available {
			t.Fatalf("expected registered NIK unavailable")
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/admin/validate-nik/abc", staffID, "staff", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 validate malformed nik, got %d", st)
		}
		var v struct {
			Available bool `json:"available"`
		}
		_ = json.Unmarshal(body, &v)
		if v.Available {
			t.Fatalf("expected malformed NIK unavailable")
		}
	}

	// 7) Staff records a measurement; annotations come back derived
	{
		st, body := doReq(t, ts.URL, "POST", "/growth/"+childID+"/growth-records", staffID, "staff", map[string]any{
			"date":   "2024-06-20",
			"height": 75.0,
			"weight": 9.1,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add record, got %d body=%s", st, string(body))
		}
		var rec struct {
			AgeInMonths  int      `json:"ageInMonths"`
			HeightZScore *float64 `json:"heightZScore"`
			HeightStatus string   `json:"heightStatus"`
		}
		_ = json.Unmarshal(body, &rec)
		if rec.AgeInMonths != 12 {
			t.Fatalf("expected age 12 months, got %d", rec.AgeInMonths)
		}
		if rec.HeightZScore == nil || *rec.HeightZScore != -0.29 {
			t.Fatalf("expected display z -0.29, got %+v", rec.HeightZScore)
		}
		if rec.HeightStatus != "normal" {
			t.Fatalf("expected normal, got %s", rec.HeightStatus)
		}
	}

	// 8) Parent cannot record measurements
	{
		st, _ := doReq(t, ts.URL, "POST", "/growth/"+childID+"/growth-records", parentID, "", map[string]any{
			"date":   "2024-06-21",
			"height": 75.1,
			"weight": 9.2,
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 add record by parent, got %d", st)
		}
	}

	// 9) Owning parent reads history; other parent is forbidden
	{
		st, body := doReq(t, ts.URL, "GET", "/growth/"+childID+"/growth-records", parentID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list records by owner, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/growth/"+childID+"/growth-records", otherParentID, "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 list records by other parent, got %d", st)
		}
	}

	// 10) Stats over the single record
	{
		st, body := doReq(t, ts.URL, "GET", "/growth/"+childID+"/growth-stats", parentID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		var stats struct {
			Count     int     `json:"count"`
			AvgHeight float64 `json:"avgHeight"`
			MinDate   string  `json:"minDate"`
		}
		_ = json.Unmarshal(body, &stats)
		if stats.Count != 1 || stats.AvgHeight != 75.0 {
			t.Fatalf("unexpected stats %+v", stats)
		}
		if stats.MinDate != "2024-06-20" {
			t.Fatalf("unexpected min date %q", stats.MinDate)
		}
	}

	// 11) Chart carries records plus both indicators' reference bands
	{
		st, body := doReq(t, ts.URL, "GET", "/growth/"+childID+"/growth-chart", parentID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 chart, got %d body=%s", st, string(body))
		}
		var chart struct {
			Records []map[string]any `json:"records"`
			Curves  []map[string]any `json:"whoCurves"`
		}
		_ = json.Unmarshal(body, &chart)
		if len(chart.Records) != 1 {
			t.Fatalf("expected 1 record in chart, got %d", len(chart.Records))
		}
		if len(chart.Curves) != 14 {
			t.Fatalf("expected 14 reference bands, got %d", len(chart.Curves))
		}
	}

	// 12) Unknown child is a 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/growth/nope/growth-records", staffID, "staff", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown child, got %d", st)
		}
	}
}

func TestHTTP_BasePath_PrefixesAPIRoutes(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{BasePath: "/api/v1"}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/api/v1/children", "parent-1", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 under base path, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/children", "parent-1", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 off base path, got %d", st)
	}

	// Health stays at the root.
	st, _ = doReq(t, ts.URL, "GET", "/health", "", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_AddRecord_RejectsBadDate(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	childID := addChild(t, ts.URL, "staff-1", map[string]any{
		"name":   "Budi",
		"dob":    "2023-06-10",
		"nik":    "3174012345678901",
		"gender": "male",
		"userId": "parent-1",
	})

	st, _ := doReq(t, ts.URL, "POST", "/growth/"+childID+"/growth-records", "staff-1", "staff", map[string]any{
		"date":   "not-a-date",
		"height": 75.0,
		"weight": 9.1,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad date, got %d", st)
	}
}

func addChild(t *testing.T, baseURL, staffID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/admin/add-child", staffID, "staff", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add child, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("add child: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, debugRole string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	if debugRole != "" {
		req.Header.Set("X-Debug-Role", debugRole)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
