package ebay

import (
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when the marketplace has no record for the
// requested item or product identifier.
var ErrNotFound = errors.New("ebay: not found")

const (
	productionURL = "https://api.ebay.com"
	sandboxURL    = "https://api.sandbox.ebay.com"

	// App tokens from the client-credentials grant live for two hours;
	// the cache TTL stays safely under that.
	tokenCacheKey = "ebay:oauth:token"
	tokenCacheTTL = 100 * time.Minute
	treeCacheTTL  = 24 * time.Hour
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Config holds the credentials and endpoints for one eBay application.
type Config struct {
	AppID   string
	CertID  string
	BaseURL string
	AuthURL string
}

// ConfigFromEnv builds a Config from EBAY_* environment variables.
func ConfigFromEnv() Config {
	base := productionURL
	if strings.EqualFold(getenv("EBAY_USE_SANDBOX", "true"), "true") {
		base = sandboxURL
	}
	return Config{
		AppID:   os.Getenv("EBAY_APP_ID"),
		CertID:  os.Getenv("EBAY_CERT_ID"),
		BaseURL: base,
		AuthURL: base,
	}
}

// Client talks to the eBay OAuth, Taxonomy and Browse APIs.
type Client struct {
	cfg        Config
	httpClient *http.Client
	rdb        *redis.Client
}

// NewClient creates an eBay client. rdb may be nil, in which case every
// call performs a live credential exchange and tree lookup.
func NewClient(cfg Config, rdb *redis.Client) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rdb: rdb,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// GetOAuthToken returns a bearer token from the client-credentials grant.
// Tokens are cached in Redis for slightly less than their lifetime; a cache
// miss or Redis error falls through to a live exchange.
func (c *Client) GetOAuthToken(ctx context.Context) (string, error) {
	if c.rdb != nil {
		// redis/go-redis/v9: Get returns redis.Nil on a missing key.
		if tok, err := c.rdb.Get(ctx, tokenCacheKey).Result(); err == nil && tok != "" {
			return tok, nil
		}
	}

	form := url.Values{
		"grant_type": {"client_credentials"},
		"scope":      {"https://api.ebay.com/oauth/api_scope"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.AuthURL+"/identity/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	creds := base64.StdEncoding.EncodeToString([]byte(c.cfg.AppID + ":" + c.cfg.CertID))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange: status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("token exchange: decode: %w", err)
	}

	if c.rdb != nil {
		// Best effort; the token is still usable if the cache write fails.
		_ = c.rdb.Set(ctx, tokenCacheKey, tr.AccessToken, tokenCacheTTL).Err()
	}
	return tr.AccessToken, nil
}

// GetCategoryTreeID resolves the default category tree for a marketplace.
// Tree ids change rarely, so they are cached per marketplace.
func (c *Client) GetCategoryTreeID(ctx context.Context, marketplaceID string) (string, error) {
	cacheKey := "ebay:tree:" + marketplaceID
	if c.rdb != nil {
		if id, err := c.rdb.Get(ctx, cacheKey).Result(); err == nil && id != "" {
			return id, nil
		}
	}

	token, err := c.GetOAuthToken(ctx)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/commerce/taxonomy/v1/get_default_category_tree_id?marketplace_id=%s",
		c.cfg.BaseURL, url.QueryEscape(marketplaceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build tree request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", marketplaceID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("category tree lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("category tree lookup: status %d", resp.StatusCode)
	}

	var body struct {
		CategoryTreeID string `json:"categoryTreeId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("category tree lookup: decode: %w", err)
	}

	if c.rdb != nil {
		_ = c.rdb.Set(ctx, cacheKey, body.CategoryTreeID, treeCacheTTL).Err()
	}
	return body.CategoryTreeID, nil
}

// FetchItemAspects downloads the full aspect dump for a category tree.
// The payload is served gzip-compressed; setting Accept-Encoding manually
// disables Go's transparent decompression, so the body is decompressed here
// before parsing.
func (c *Client) FetchItemAspects(ctx context.Context, treeID string) (*AspectsPayload, error) {
	token, err := c.GetOAuthToken(ctx)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/commerce/taxonomy/v1/category_tree/%s/fetch_item_aspects",
		c.cfg.BaseURL, url.PathEscape(treeID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build aspects request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch item aspects: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch item aspects: status %d", resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("fetch item aspects: gunzip: %w", err)
		}
		defer gr.Close()
		reader = gr
	}

	var payload AspectsPayload
	if err := json.NewDecoder(reader).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fetch item aspects: decode: %w", err)
	}
	return &payload, nil
}

func (c *Client) browseGet(ctx context.Context, path string, marketplaceID string, out any) error {
	token, err := c.GetOAuthToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build browse request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if marketplaceID != "" {
		req.Header.Set("X-EBAY-C-MARKETPLACE-ID", marketplaceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("browse call: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("browse call: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("browse call: decode: %w", err)
	}
	return nil
}

func parsePrice(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}
