package model

// Aspect mode constants from the marketplace taxonomy.
const (
	AspectModeFreeText      = "FREE_TEXT"
	AspectModeSelectionOnly = "SELECTION_ONLY"
)

// Aspect data types.
const (
	DataTypeString = "STRING"
	DataTypeNumber = "NUMBER"
	DataTypeDate   = "DATE"
)

// Cardinality of values an item may carry for one aspect.
const (
	CardinalitySingle = "SINGLE"
	CardinalityMulti  = "MULTI"
)

// Aspect is one marketplace-defined item specific (e.g. "Color") together
// with the constraints the marketplace declares for it.
type Aspect struct {
	Name             string   `json:"name"`
	Values           []string `json:"values"`
	Mode             string   `json:"mode"`
	DataType         string   `json:"data_type"`
	Format           string   `json:"format,omitempty"`
	MaxLength        int      `json:"max_length,omitempty"`
	Cardinality      string   `json:"cardinality"`
	VariationEnabled bool     `json:"variation_enabled"`
	Required         bool     `json:"required,omitempty"`
	// RequiredBy is set only for upcoming-required aspects and carries the
	// marketplace's expected-required-by date.
	RequiredBy  string `json:"required_by,omitempty"`
	SearchCount int    `json:"search_count,omitempty"`
}

// AspectSet is the full aspect catalog for one category on one marketplace,
// split into the three usage buckets. It is fetched per request and treated
// as immutable once returned.
type AspectSet struct {
	Required         []Aspect `json:"required"`
	Recommended      []Aspect `json:"recommended"`
	UpcomingRequired []Aspect `json:"upcoming_required"`
}

// All returns the aspects of every bucket as one ordered list,
// required first.
func (s *AspectSet) All() []Aspect {
	out := make([]Aspect, 0, len(s.Required)+len(s.Recommended)+len(s.UpcomingRequired))
	out = append(out, s.Required...)
	out = append(out, s.Recommended...)
	out = append(out, s.UpcomingRequired...)
	return out
}

// Empty reports whether no aspects are known for the category.
func (s *AspectSet) Empty() bool {
	return s == nil || len(s.Required)+len(s.Recommended)+len(s.UpcomingRequired) == 0
}

// Suggestion value sources, in attribution priority order.
const (
	SourceTitle          = "title"
	SourceDescription    = "description"
	SourcePreviousValues = "previous_values"
	SourceAIGenerated    = "ai_generated"
	SourceNone           = "none"
)

// Suggestion is one candidate aspect value with its confidence score and
// provenance. The caller decides whether to accept it; nothing is persisted.
type Suggestion struct {
	AspectName string  `json:"aspect_name"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}
