package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"lister-backend/internal/model"
	"lister-backend/internal/upc"
)

// scanHandler resolves one barcode to a product record plus market data.
func (s *Server) scanHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ScanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.Scanner.Scan(r.Context(), req.UPC, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, upc.ErrNotFound):
			http.Error(w, "product not found in any database", http.StatusNotFound)
		case errors.Is(err, upc.ErrRateLimited):
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		default:
			log.Printf("scan %s: %v", req.UPC, err)
			http.Error(w, "scan failed", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// batchScanHandler processes codes sequentially; the response always lists
// every outcome, successes and failures alike.
func (s *Server) batchScanHandler(w http.ResponseWriter, r *http.Request) {
	var req model.BatchScanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.Scanner.BatchScan(r.Context(), req.Items))
}

// lookupHandler returns the raw product record for one code.
func (s *Server) lookupHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["upc"]

	product, err := s.Scanner.Lookup(r.Context(), code)
	if err != nil {
		if errors.Is(err, upc.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Printf("lookup %s: %v", code, err)
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// recentScansHandler serves the Redis-projected scan history.
func (s *Server) recentScansHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	scans, err := s.History.RecentScans(r.Context(), limit)
	if err != nil {
		log.Printf("recent scans: %v", err)
		http.Error(w, "scan history unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, scans)
}
