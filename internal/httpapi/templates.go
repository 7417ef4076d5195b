package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"lister-backend/internal/model"
	"lister-backend/internal/template"
)

// templatesHandler lists the known template categories.
func (s *Server) templatesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Templates.List())
}

// templateHandler returns the raw HTML template for a category.
func (s *Server) templateHandler(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	html, err := s.Templates.Get(r.Context(), category)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			http.Error(w, "template not found for category: "+category, http.StatusNotFound)
			return
		}
		log.Printf("template: get %s: %v", category, err)
		http.Error(w, "template unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"template": html})
}

// fillTemplateHandler substitutes product data into a category template.
func (s *Server) fillTemplateHandler(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	var req model.TemplateFillRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	html, err := s.Templates.Get(r.Context(), category)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			http.Error(w, "template not found for category: "+category, http.StatusNotFound)
			return
		}
		log.Printf("template: get %s: %v", category, err)
		http.Error(w, "template unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"html": template.Fill(html, req)})
}
