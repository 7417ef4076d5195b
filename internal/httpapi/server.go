// Package httpapi is the HTTP boundary of the listing backend.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"lister-backend/internal/model"
	"lister-backend/internal/upc"
)

// go-playground/validator/v10: struct validator for request bodies.
var validate = validator.New()

// defaultMarketplace is assumed when the caller does not name one.
const defaultMarketplace = "EBAY_US"

// AspectCatalog serves per-category aspect data.
type AspectCatalog interface {
	FetchItemAspects(ctx context.Context, categoryID, marketplaceID string) (*model.AspectSet, error)
	AspectValues(ctx context.Context, categoryID, aspectName, marketplaceID string) ([]string, error)
}

// Resolver runs the item-specifics suggestion pipeline.
type Resolver interface {
	ResolveAll(ctx context.Context, categoryID, marketplaceID string, pctx model.ProductContext) (map[string]string, error)
	ResolveOne(ctx context.Context, aspectName, categoryID, marketplaceID string, pctx model.ProductContext) (string, error)
}

// Scanner runs UPC scans.
type Scanner interface {
	Scan(ctx context.Context, code string, quantity int) (*upc.ScanResult, error)
	BatchScan(ctx context.Context, items []model.ScanRequest) model.BatchScanResult
	Lookup(ctx context.Context, code string) (*model.Product, error)
}

// ScanHistory is the recent-scan read side.
type ScanHistory interface {
	RecentScans(ctx context.Context, limit int) ([]model.ScanEvent, error)
}

// ImageAnnotator runs image understanding.
type ImageAnnotator interface {
	Annotate(ctx context.Context, image []byte) (*model.VisionResult, error)
}

// MarketSearcher returns comparable-listing data for a query.
type MarketSearcher interface {
	SearchMarketData(ctx context.Context, query string) (*model.MarketData, error)
}

// TemplateStore serves listing templates.
type TemplateStore interface {
	List() []string
	Get(ctx context.Context, category string) (string, error)
}

// ListingOptimizer produces optimized listing sections.
type ListingOptimizer interface {
	Optimize(ctx context.Context, product model.ProductContext, topListing *model.ItemDetails) (map[string]string, error)
}

// ListingAPI fetches existing listings for Sell Similar.
type ListingAPI interface {
	GetItemDetails(ctx context.Context, itemID string) (*model.ItemDetails, error)
}

// Server holds every service behind the routes.
type Server struct {
	Catalog   AspectCatalog
	Resolver  Resolver
	Scanner   Scanner
	History   ScanHistory
	Vision    ImageAnnotator
	Market    MarketSearcher
	Templates TemplateStore
	Optimizer ListingOptimizer
	Listings  ListingAPI
}

// RegisterRoutes wires every endpoint.
// gorilla/mux: method-based routing with URL pattern matching.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/categories/{category_id}/aspects", s.aspectsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/categories/{category_id}/aspects/{aspect_name}/values", s.aspectValuesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/ai/item-specifics", s.resolveAllHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/ai/item-specifics/{aspect_name}", s.resolveOneHandler).Methods(http.MethodPost)

	r.HandleFunc("/api/upc/scan", s.scanHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/upc/batch", s.batchScanHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/upc/recent", s.recentScansHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/upc/{upc}", s.lookupHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/vision/analyze", s.analyzeHandler).Methods(http.MethodPost)

	r.HandleFunc("/api/templates", s.templatesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/templates/{category}", s.templateHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/templates/{category}/fill", s.fillTemplateHandler).Methods(http.MethodPost)

	r.HandleFunc("/api/listing/optimize", s.optimizeHandler).Methods(http.MethodPost)
	r.HandleFunc("/api/listings/{item_id}", s.listingHandler).Methods(http.MethodGet)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeAndValidate parses a JSON body and checks its validator tags.
// It writes the 400 itself and reports whether the handler should go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	// go-playground/validator/v10: Struct validates required fields and
	// format rules declared on the DTO.
	if err := validate.Struct(dst); err != nil {
		http.Error(w, "validation failed: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func marketplaceID(r *http.Request) string {
	if id := r.URL.Query().Get("marketplace_id"); id != "" {
		return id
	}
	return defaultMarketplace
}
