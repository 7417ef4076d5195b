// Package template serves the per-category listing HTML templates and
// fills them with product data.
package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound means no template exists for the category.
var ErrNotFound = errors.New("template: not found")

const cacheTTL = time.Hour

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// templateFiles maps a listing category to its template file on the
// template host.
var templateFiles = map[string]string{
	"art":           "art-ebay-template.html",
	"auto":          "auto-ebay-template.html",
	"clothing":      "clothing-ebay-template.html",
	"collectibles":  "collectibles-ebay-template.html",
	"digital":       "digital-ebay-template.html",
	"electronics":   "electronics-ebay-template.html",
	"funko":         "funko-ebay-template.html",
	"funko-return":  "funko-return-ebay-template.html",
	"health-beauty": "health-beauty-ebay-template.html",
	"home-goods":    "home-goods-ebay-template.html",
	"jewelry":       "jewelry-ebay-template.html",
	"lawn":          "lawn-ebay-template.html",
	"pets":          "pets-ebay-template.html",
	"stamps-coins":  "stamps-coins-ebay-template.html",
	"supplements":   "supliments-ebay-template.html",
	"toys":          "toys-ebay-template.html",
	"vintage":       "vintage-ebay-template.html",
}

// Service fetches templates from the template host with a Redis cache in
// front.
type Service struct {
	baseURL    string
	httpClient *http.Client
	rdb        *redis.Client
}

// NewService creates a template service. rdb may be nil to disable the
// cache.
func NewService(rdb *redis.Client) *Service {
	return &Service{
		baseURL: getenv("TEMPLATE_BASE_URL", "https://ebay.by1.net/templates"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		rdb: rdb,
	}
}

// List returns every known template category, sorted.
func (s *Service) List() []string {
	categories := make([]string, 0, len(templateFiles))
	for category := range templateFiles {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Get returns the raw HTML template for a category, from cache when
// possible. An unknown category yields ErrNotFound.
func (s *Service) Get(ctx context.Context, category string) (string, error) {
	file, ok := templateFiles[category]
	if !ok {
		return "", ErrNotFound
	}

	cacheKey := "template:" + category
	if s.rdb != nil {
		if html, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil && html != "" {
			return html, nil
		}
	}

	u := s.baseURL + "/" + file
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("template: build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("template: fetch %s: %w", category, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("template: fetch %s: status %d", category, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("template: read %s: %w", category, err)
	}

	html := string(data)
	if s.rdb != nil {
		_ = s.rdb.Set(ctx, cacheKey, html, cacheTTL).Err()
	}
	return html, nil
}
