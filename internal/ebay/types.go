package ebay

// AspectsPayload is the decompressed fetch_item_aspects response. Only the
// fields the catalog classifier reads are modeled; everything else in the
// dump is ignored at the parse boundary.
type AspectsPayload struct {
	CategoryTreeID string            `json:"categoryTreeId"`
	CategoryAspects []CategoryAspects `json:"categoryAspects"`
}

// CategoryAspects pairs one category with its declared aspects.
type CategoryAspects struct {
	Category CategoryRef `json:"category"`
	Aspects  []RawAspect `json:"aspects"`
}

// CategoryRef identifies a category inside the tree.
type CategoryRef struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// RawAspect is one aspect exactly as the taxonomy API declares it.
type RawAspect struct {
	LocalizedAspectName string              `json:"localizedAspectName"`
	AspectValues        []RawAspectValue    `json:"aspectValues"`
	AspectConstraint    RawAspectConstraint `json:"aspectConstraint"`
	RelevanceIndicator  *RelevanceIndicator `json:"relevanceIndicator,omitempty"`
}

// RawAspectValue is one suggested or allowed value.
type RawAspectValue struct {
	LocalizedValue string `json:"localizedValue"`
}

// RawAspectConstraint carries the upstream constraint block. Absent optional
// fields stay at their zero values and are treated as "unset" downstream.
type RawAspectConstraint struct {
	AspectMode                 string `json:"aspectMode"`
	AspectDataType             string `json:"aspectDataType"`
	AspectFormat               string `json:"aspectFormat,omitempty"`
	AspectMaxLength            int    `json:"aspectMaxLength,omitempty"`
	ItemToAspectCardinality    string `json:"itemToAspectCardinality"`
	AspectEnabledForVariations bool   `json:"aspectEnabledForVariations"`
	AspectRequired             bool   `json:"aspectRequired"`
	ExpectedRequiredByDate     string `json:"expectedRequiredByDate,omitempty"`
}

// RelevanceIndicator carries search-volume hints for an aspect.
type RelevanceIndicator struct {
	SearchCount int `json:"searchCount"`
}

// Browse API shapes.

type itemSummarySearchResponse struct {
	Total         int           `json:"total"`
	ItemSummaries []itemSummary `json:"itemSummaries"`
}

type itemSummary struct {
	ItemID           string       `json:"itemId"`
	Title            string       `json:"title"`
	ShortDescription string       `json:"shortDescription"`
	Price            browsePrice  `json:"price"`
	Condition        string       `json:"condition"`
	Image            *browseImage `json:"image,omitempty"`
	AdditionalImages []browseImage `json:"additionalImages,omitempty"`
	Categories       []browseCategory `json:"categories,omitempty"`
	Brand            string       `json:"brand,omitempty"`
	GTIN             string       `json:"gtin,omitempty"`
}

type browsePrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type browseImage struct {
	ImageURL string `json:"imageUrl"`
}

type browseCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type browseItemResponse struct {
	ItemID                  string              `json:"itemId"`
	Title                   string              `json:"title"`
	Description             string              `json:"description"`
	CategoryID              string              `json:"categoryId"`
	Condition               string              `json:"condition"`
	Price                   browsePrice         `json:"price"`
	Image                   *browseImage        `json:"image,omitempty"`
	AdditionalImages        []browseImage       `json:"additionalImages,omitempty"`
	LocalizedAspects        []localizedAspect   `json:"localizedAspects,omitempty"`
	EstimatedAvailabilities []availabilityBlock `json:"estimatedAvailabilities,omitempty"`
}

type localizedAspect struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type availabilityBlock struct {
	EstimatedAvailableQuantity int `json:"estimatedAvailableQuantity"`
}
