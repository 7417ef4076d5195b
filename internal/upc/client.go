// Package upc looks products up by their barcode, preferring the
// marketplace's own catalog and falling back to a UPC database.
package upc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"lister-backend/internal/model"
)

// ErrNotFound means no database knows the code.
var ErrNotFound = errors.New("upc: product not found")

// ErrRateLimited means the UPC database refused the call for quota reasons.
var ErrRateLimited = errors.New("upc: rate limit exceeded")

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Client queries a upcitemdb-compatible lookup endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a UPC database client. The endpoint comes from
// UPCDB_BASE_URL.
func NewClient() *Client {
	return &Client{
		baseURL: getenv("UPCDB_BASE_URL", "https://api.upcitemdb.com/prod/trial/lookup"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type lookupResponse struct {
	Items []lookupItem `json:"items"`
}

type lookupItem struct {
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	Brand                 string   `json:"brand"`
	Category              string   `json:"category"`
	UPC                   string   `json:"upc"`
	EAN                   string   `json:"ean"`
	Model                 string   `json:"model"`
	Color                 string   `json:"color"`
	Size                  string   `json:"size"`
	Dimension             string   `json:"dimension"`
	Weight                string   `json:"weight"`
	Images                []string `json:"images"`
	LowestRecordedPrice   float64  `json:"lowest_recorded_price"`
	HighestRecordedPrice  float64  `json:"highest_recorded_price"`
}

// Lookup resolves one code to a product record. An unknown code yields
// ErrNotFound, quota exhaustion ErrRateLimited.
func (c *Client) Lookup(ctx context.Context, code string) (*model.Product, error) {
	u := c.baseURL + "?upc=" + url.QueryEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("upc: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upc: lookup: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("upc: lookup: status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("upc: lookup: decode: %w", err)
	}
	if len(body.Items) == 0 {
		return nil, ErrNotFound
	}

	item := body.Items[0]
	return &model.Product{
		Title:        item.Title,
		Description:  item.Description,
		Brand:        item.Brand,
		Category:     item.Category,
		UPC:          item.UPC,
		EAN:          item.EAN,
		Model:        item.Model,
		Color:        item.Color,
		Size:         item.Size,
		Dimension:    item.Dimension,
		Weight:       item.Weight,
		Images:       item.Images,
		LowestPrice:  item.LowestRecordedPrice,
		HighestPrice: item.HighestRecordedPrice,
		Source:       "upcitemdb",
	}, nil
}
