package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"lister-backend/internal/model"
	"lister-backend/internal/suggest"
	"lister-backend/internal/taxonomy"
)

// aspectsHandler returns the bucketed aspect catalog for a category.
func (s *Server) aspectsHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["category_id"]

	set, err := s.Catalog.FetchItemAspects(r.Context(), categoryID, marketplaceID(r))
	if err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			http.Error(w, "category aspects not found", http.StatusNotFound)
			return
		}
		log.Printf("aspects: fetch %s: %v", categoryID, err)
		http.Error(w, "aspect catalog unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// aspectValuesHandler returns the suggested values for one aspect.
func (s *Server) aspectValuesHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	values, err := s.Catalog.AspectValues(r.Context(), vars["category_id"], vars["aspect_name"], marketplaceID(r))
	if err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			http.Error(w, "category aspects not found", http.StatusNotFound)
			return
		}
		log.Printf("aspects: values %s/%s: %v", vars["category_id"], vars["aspect_name"], err)
		http.Error(w, "aspect catalog unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// resolveAllHandler suggests validated values for every aspect of the
// category. Aspects without a surviving candidate are simply absent.
func (s *Server) resolveAllHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ResolveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.MarketplaceID == "" {
		req.MarketplaceID = defaultMarketplace
	}

	resolved, err := s.Resolver.ResolveAll(r.Context(), req.CategoryID, req.MarketplaceID, req.Context)
	if err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			http.Error(w, "category aspects not found", http.StatusNotFound)
			return
		}
		log.Printf("resolve: category %s: %v", req.CategoryID, err)
		http.Error(w, "resolution failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

// resolveOneHandler suggests a validated value for one named aspect.
func (s *Server) resolveOneHandler(w http.ResponseWriter, r *http.Request) {
	aspectName := mux.Vars(r)["aspect_name"]

	var req model.ResolveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.MarketplaceID == "" {
		req.MarketplaceID = defaultMarketplace
	}

	value, err := s.Resolver.ResolveOne(r.Context(), aspectName, req.CategoryID, req.MarketplaceID, req.Context)
	if err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) || errors.Is(err, suggest.ErrAspectNotFound) {
			http.Error(w, "aspect not found", http.StatusNotFound)
			return
		}
		log.Printf("resolve: aspect %s: %v", aspectName, err)
		http.Error(w, "resolution failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{aspectName: value})
}
