package httpapi

import (
	"io"
	"log"
	"net/http"
	"strings"

	"lister-backend/internal/model"
	"lister-backend/internal/vision"
)

// maxImageBytes caps uploaded product photos at 10MB.
const maxImageBytes = 10 << 20

type analyzeResponse struct {
	ProductDetails model.ProductDetails `json:"product_details"`
	MarketData     *model.MarketData    `json:"market_data,omitempty"`
	SuggestedTitle string               `json:"suggested_title"`
	SuggestedPrice float64              `json:"suggested_price,omitempty"`
}

// analyzeHandler accepts a multipart product photo, annotates it, and
// combines the detected details with market data into a listing starting
// point.
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		http.Error(w, "failed to read image", http.StatusBadRequest)
		return
	}

	result, err := s.Vision.Annotate(r.Context(), contents)
	if err != nil {
		log.Printf("vision: annotate: %v", err)
		http.Error(w, "image analysis failed", http.StatusInternalServerError)
		return
	}

	details := vision.ExtractProductDetails(result)

	resp := analyzeResponse{
		ProductDetails: details,
		SuggestedTitle: suggestedTitle(details),
	}

	// Market data is best effort; the analysis is still useful without it.
	if details.MainObject != "" {
		if md, mdErr := s.Market.SearchMarketData(r.Context(), details.MainObject); mdErr == nil {
			resp.MarketData = md
			resp.SuggestedPrice = md.PriceStats.Median
		} else {
			log.Printf("vision: market data for %q: %v", details.MainObject, mdErr)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func suggestedTitle(details model.ProductDetails) string {
	parts := []string{}
	if details.MainObject != "" {
		parts = append(parts, details.MainObject)
	}
	attrs := details.Attributes
	if len(attrs) > 3 {
		attrs = attrs[:3]
	}
	parts = append(parts, attrs...)
	return strings.Join(parts, " ")
}
