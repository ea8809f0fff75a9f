// Package growthapi is the HTTP adapter for the remote growth backend,
// implementing the upstream port over the shared JSON http client.
package growthapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth"
	"child-growth-tracker/internal/domain/growth/who"
	"child-growth-tracker/internal/platform/httpclient"
	"child-growth-tracker/internal/ports/upstream"
)

type Config struct {
	BaseURL string

	// APIKey is forwarded on every request when set.
	APIKey       string
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: header,
	}, nil
}

// childPayload mirrors the remote child shape.
type childPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"`
	NIK       string    `json:"nik"`
	Gender    string    `json:"gender"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// recordPayload mirrors the remote growth record shape. The remote computes
// age and Z-score itself; we take them as-is so both paths carry identical
// semantics.
type recordPayload struct {
	ID                string    `json:"id"`
	ChildID           string    `json:"childId"`
	Date              string    `json:"date"`
	Height            float64   `json:"height"`
	Weight            float64   `json:"weight"`
	HeadCircumference *float64  `json:"headCircumference"`
	AgeInMonths       int       `json:"ageInMonths"`
	HeightZScore      *float64  `json:"heightZScore"`
	HeightStatus      string    `json:"heightStatus"`
	CreatedAt         time.Time `json:"createdAt"`
}

type chartPayload struct {
	Records []recordPayload `json:"records"`
	Curves  []who.Curve     `json:"whoCurves"`
}

func (c *Client) FetchChildren(ctx context.Context) ([]children.Child, error) {
	var out []childPayload
	if err := c.do(ctx, http.MethodGet, "/children", nil, &out); err != nil {
		return nil, err
	}
	return c.toChildren("fetch children", out)
}

func (c *Client) CreateChild(ctx context.Context, in children.CreateInput) (children.Child, error) {
	body := map[string]string{
		"name":   in.Name,
		"dob":    in.BirthDate.Format("2006-01-02"),
		"nik":    in.NIK,
		"gender": string(in.Sex),
		"userId": in.ParentUserID,
	}

	var out childPayload
	if err := c.do(ctx, http.MethodPost, "/admin/add-child", body, &out); err != nil {
		return children.Child{}, err
	}
	return c.toChild("create child", out)
}

func (c *Client) ValidateNIK(ctx context.Context, nik string) (children.NIKValidation, error) {
	var out children.NIKValidation
	path := "/admin/validate-nik/" + url.PathEscape(nik)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return children.NIKValidation{}, err
	}
	return out, nil
}

func (c *Client) FetchRecords(ctx context.Context, childID string) ([]growth.Record, error) {
	var out []recordPayload
	if err := c.do(ctx, http.MethodGet, recordsPath(childID), nil, &out); err != nil {
		return nil, err
	}
	return c.toRecords("fetch records", out)
}

func (c *Client) CreateRecord(ctx context.Context, childID string, in growth.AddRecordInput) (growth.Record, error) {
	body := map[string]any{
		"date":   in.Date.Format("2006-01-02"),
		"height": in.Height,
		"weight": in.Weight,
	}
	if in.HeadCircumference != nil {
		body["headCircumference"] = *in.HeadCircumference
	}

	var out recordPayload
	if err := c.do(ctx, http.MethodPost, recordsPath(childID), body, &out); err != nil {
		return growth.Record{}, err
	}
	return c.toRecord("create record", out)
}

func (c *Client) FetchStats(ctx context.Context, childID string) (growth.Stats, error) {
	var out growth.Stats
	path := "/growth/" + url.PathEscape(childID) + "/growth-stats"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return growth.Stats{}, err
	}
	return out, nil
}

func (c *Client) FetchChart(ctx context.Context, childID string) (growth.Chart, error) {
	var out chartPayload
	path := "/growth/" + url.PathEscape(childID) + "/growth-chart"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return growth.Chart{}, err
	}

	records, err := c.toRecords("fetch chart", out.Records)
	if err != nil {
		return growth.Chart{}, err
	}
	return growth.Chart{Records: records, Curves: out.Curves}, nil
}

// do wraps every transport failure, including non-2xx statuses and contract
// violations, as a RemoteError so the sync layer can decide fallback.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{c.apiKeyHeader: c.apiKey}
	}

	if err := c.http.DoJSON(ctx, method, path, headers, in, out); err != nil {
		return &upstream.RemoteError{Op: method + " " + path, Err: err}
	}
	return nil
}

func recordsPath(childID string) string {
	return "/growth/" + url.PathEscape(childID) + "/growth-records"
}

func (c *Client) toChild(op string, p childPayload) (children.Child, error) {
	dob, err := children.ParseDate(p.DOB)
	if err != nil {
		return children.Child{}, &upstream.RemoteError{Op: op, Err: fmt.Errorf("bad dob %q", p.DOB)}
	}
	return children.Child{
		ID:           p.ID,
		Name:         p.Name,
		BirthDate:    dob,
		Sex:          children.Sex(p.Gender),
		NIK:          p.NIK,
		ParentUserID: p.UserID,
		CreatedAt:    p.CreatedAt,
	}, nil
}

func (c *Client) toChildren(op string, payloads []childPayload) ([]children.Child, error) {
	out := make([]children.Child, 0, len(payloads))
	for _, p := range payloads {
		child, err := c.toChild(op, p)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func (c *Client) toRecord(op string, p recordPayload) (growth.Record, error) {
	date, err := children.ParseDate(p.Date)
	if err != nil {
		return growth.Record{}, &upstream.RemoteError{Op: op, Err: fmt.Errorf("bad date %q", p.Date)}
	}
	return growth.Record{
		ID:                p.ID,
		ChildID:           p.ChildID,
		Date:              date,
		Height:            p.Height,
		Weight:            p.Weight,
		HeadCircumference: p.HeadCircumference,
		AgeInMonths:       p.AgeInMonths,
		HeightZScore:      p.HeightZScore,
		HeightStatus:      who.Status(p.HeightStatus),
		CreatedAt:         p.CreatedAt,
	}, nil
}

func (c *Client) toRecords(op string, payloads []recordPayload) ([]growth.Record, error) {
	out := make([]growth.Record, 0, len(payloads))
	for _, p := range payloads {
		rec, err := c.toRecord(op, p)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
