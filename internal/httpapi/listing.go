package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"lister-backend/internal/ebay"
	"lister-backend/internal/model"
)

// optimizeHandler rewrites product data into polished listing sections.
// When a listing id is supplied, that listing's specifics seed the prompt.
func (s *Server) optimizeHandler(w http.ResponseWriter, r *http.Request) {
	var req model.OptimizeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var topListing *model.ItemDetails
	if req.ListingID != "" {
		details, err := s.Listings.GetItemDetails(r.Context(), req.ListingID)
		if err != nil {
			// The optimizer still works without the comparable listing.
			log.Printf("optimize: listing %s unavailable: %v", req.ListingID, err)
		} else {
			topListing = details
		}
	}

	sections, err := s.Optimizer.Optimize(r.Context(), req.ProductData, topListing)
	if err != nil {
		log.Printf("optimize: %v", err)
		http.Error(w, "optimization failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"optimized_listing": sections,
	})
}

// listingHandler returns the full record of an existing listing for the
// Sell Similar flow.
func (s *Server) listingHandler(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]

	details, err := s.Listings.GetItemDetails(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, ebay.ErrNotFound) {
			http.Error(w, "listing not found", http.StatusNotFound)
			return
		}
		log.Printf("listing %s: %v", itemID, err)
		http.Error(w, "listing lookup failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, details)
}
