package growthapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/ports/upstream"
)

func TestClient_FetchChildren_ParsesPayload(t *testing.T) {
	var gotAPIKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/children" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotAPIKey = r.Header.Get("X-Api-Key")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":        "c1",
				"name":      "Budi",
				"dob":       "2023-06-10",
				"nik":       "3174012345678901",
				"gender":    "male",
				"userId":    "parent-1",
				"createdAt": time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			},
		})
	}))
	defer ts.Close()

	client, err := NewClient(Config{BaseURL: ts.URL, APIKey: "key-1"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	items, err := client.FetchChildren(context.Background())
	if err != nil {
		t.Fatalf("FetchChildren error: %v", err)
	}
	if gotAPIKey != "key-1" {
		t.Fatalf("expected api key forwarded, got %q", gotAPIKey)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 child, got %d", len(items))
	}
	c := items[0]
	if c.ID != "c1" || c.Sex != children.SexMale || c.ParentUserID != "parent-1" {
		t.Fatalf("unexpected child %+v", c)
	}
	if !c.BirthDate.Equal(time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected dob %v", c.BirthDate)
	}
}

func TestClient_NonOKStatus_IsRemoteError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = client.FetchRecords(context.Background(), "c1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !upstream.IsRemote(err) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
}

func TestClient_ConnectionRefused_IsRemoteError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	client, err := NewClient(Config{BaseURL: ts.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = client.FetchChildren(context.Background())
	if !upstream.IsRemote(err) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
}

func TestClient_BadDate_IsRemoteError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "c1", "dob": "garbage"},
		})
	}))
	defer ts.Close()

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = client.FetchChildren(context.Background())
	if !upstream.IsRemote(err) {
		t.Fatalf("expected RemoteError for contract violation, got %v", err)
	}
}
