package model

// ResolveRequest is the body of POST /api/ai/item-specifics and
// POST /api/ai/item-specifics/{aspect_name}.
type ResolveRequest struct {
	CategoryID    string         `json:"category_id" validate:"required"`
	MarketplaceID string         `json:"marketplace_id"`
	Context       ProductContext `json:"context" validate:"required"`
}

// ScanRequest is the body of POST /api/upc/scan.
type ScanRequest struct {
	UPC      string `json:"upc" validate:"required,numeric,min=8,max=14"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

// BatchScanRequest is the body of POST /api/upc/batch.
type BatchScanRequest struct {
	Items []ScanRequest `json:"items" validate:"required,min=1,dive"`
}

// ScanError records one failed code in a batch scan. Each item's
// success/failure is independent; there is no rollback.
type ScanError struct {
	UPC   string `json:"upc"`
	Error string `json:"error"`
}

// BatchScanResult is the body of the batch scan response.
type BatchScanResult struct {
	Success  bool        `json:"success"`
	Products []Product   `json:"products"`
	Errors   []ScanError `json:"errors"`
}

// OptimizeRequest is the body of POST /api/listing/optimize.
type OptimizeRequest struct {
	ProductData ProductContext `json:"product_data" validate:"required"`
	ListingID   string         `json:"listing_id"`
}

// TemplateFillRequest is the body of POST /api/templates/{category}/fill.
type TemplateFillRequest struct {
	Title            string   `json:"title"`
	Condition        string   `json:"condition"`
	Description      string   `json:"description"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Features         []string `json:"features"`
	Images           []string `json:"images"`
	PopNumber        string   `json:"pop_number"`
	Series           string   `json:"series"`
	Character        string   `json:"character"`
	ExclusiveRelease string   `json:"exclusive_release"`
	BoxCondition     string   `json:"box_condition"`
	BoxDamage        []string `json:"box_damage"`
	YearReleased     string   `json:"year_released"`
	Vaulted          bool     `json:"vaulted"`
}

// ScanEvent is published to Kafka topic upc.scan.results after every scan
// attempt and consumed by the recent-scan projector.
type ScanEvent struct {
	UPC       string `json:"upc"`
	Title     string `json:"title,omitempty"`
	Source    string `json:"source,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}
