package model

// ProductContext carries everything the caller already knows about the
// product being listed. It is supplied wholly by the caller and never
// mutated by the suggestion pipeline.
type ProductContext struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UPC         string   `json:"upc"`
	Quantity    int      `json:"quantity"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Color       string   `json:"color"`
	Size        string   `json:"size"`
	Dimensions  string   `json:"dimensions"`
	Weight      string   `json:"weight"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	// AdditionalAttributes holds free-form attributes the caller collected
	// elsewhere (vision output, prior listings, manual entry).
	AdditionalAttributes map[string]string `json:"additional_attributes,omitempty"`
	// PreviousValues maps aspect names to values the seller accepted on
	// earlier listings of the same product line.
	PreviousValues map[string]string `json:"previous_values,omitempty"`
}

// Product is a normalized product record from a UPC database or
// marketplace lookup.
type Product struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	UPC          string   `json:"upc"`
	EAN          string   `json:"ean,omitempty"`
	Model        string   `json:"model,omitempty"`
	Color        string   `json:"color,omitempty"`
	Size         string   `json:"size,omitempty"`
	Dimension    string   `json:"dimension,omitempty"`
	Weight       string   `json:"weight,omitempty"`
	Images       []string `json:"images"`
	LowestPrice  float64  `json:"lowest_price,omitempty"`
	HighestPrice float64  `json:"highest_price,omitempty"`
	// Source names the database the record came from ("ebay", "upcitemdb").
	Source string `json:"source"`
}

// MarketData summarizes active-listing prices for a product query.
type MarketData struct {
	Query      string        `json:"query"`
	Listings   []MarketEntry `json:"listings"`
	PriceStats PriceStats    `json:"price_stats"`
}

// MarketEntry is one comparable active listing.
type MarketEntry struct {
	ItemID    string  `json:"item_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Condition string  `json:"condition,omitempty"`
}

// PriceStats are computed locally from the comparable listings.
type PriceStats struct {
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// ItemDetails is the full record of an existing listing, used by the
// Sell Similar flow to pre-populate a new one.
type ItemDetails struct {
	ItemID        string            `json:"item_id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	CategoryID    string            `json:"category_id"`
	ItemSpecifics map[string]string `json:"item_specifics"`
	Condition     string            `json:"condition"`
	Price         float64           `json:"price"`
	Quantity      int               `json:"quantity"`
	Pictures      []string          `json:"pictures"`
}

// VisionResult is the typed output of one image annotation call.
type VisionResult struct {
	Objects []VisionObject `json:"objects"`
	Labels  []VisionLabel  `json:"labels"`
	Text    []string       `json:"text"`
	Colors  []VisionColor  `json:"colors"`
}

// VisionObject is one localized object with its detection confidence.
type VisionObject struct {
	Name       string `json:"name"`
	Confidence float64 `json:"confidence"`
}

// VisionLabel is one image label with its detection confidence.
type VisionLabel struct {
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// VisionColor is one dominant color with its pixel share.
type VisionColor struct {
	Red           int     `json:"red"`
	Green         int     `json:"green"`
	Blue          int     `json:"blue"`
	Score         float64 `json:"score"`
	PixelFraction float64 `json:"pixel_fraction"`
}

// ProductDetails is the listing-oriented digest of a VisionResult.
type ProductDetails struct {
	MainObject     string   `json:"main_object"`
	Attributes     []string `json:"attributes"`
	DetectedText   []string `json:"detected_text"`
	DominantColors []string `json:"dominant_colors"`
}
