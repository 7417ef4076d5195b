// Package taxonomy exposes the per-category aspect catalog of a
// marketplace: which item specifics exist, which are required, and what
// constraints each one carries.
package taxonomy

import (
	"context"
	"errors"
	"fmt"

	"lister-backend/internal/ebay"
	"lister-backend/internal/model"
)

// ErrNotFound is returned when the category has no aspect catalog, either
// because the category id is unknown or the upstream dump is unavailable.
var ErrNotFound = errors.New("taxonomy: category aspects not found")

// marketplaceAPI is the slice of the eBay client the catalog needs.
type marketplaceAPI interface {
	GetCategoryTreeID(ctx context.Context, marketplaceID string) (string, error)
	FetchItemAspects(ctx context.Context, treeID string) (*ebay.AspectsPayload, error)
}

// Service fetches and classifies category aspects. The catalog is re-fetched
// on every call; only the credential and tree-id lookups underneath are
// cached.
type Service struct {
	api marketplaceAPI
}

// NewService creates a catalog service on top of the eBay client.
func NewService(api marketplaceAPI) *Service {
	return &Service{api: api}
}

// FetchItemAspects returns the aspect catalog for one category, bucketed
// into required, recommended and upcoming-required. An upstream failure or
// an unknown category yields ErrNotFound.
func (s *Service) FetchItemAspects(ctx context.Context, categoryID, marketplaceID string) (*model.AspectSet, error) {
	treeID, err := s.api.GetCategoryTreeID(ctx, marketplaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	payload, err := s.api.FetchItemAspects(ctx, treeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	set := classify(payload, categoryID)
	if set.Empty() {
		return nil, ErrNotFound
	}
	return set, nil
}

// AspectValues returns the ordered suggested/allowed values for one aspect
// of a category. An unknown aspect yields an empty list, not an error.
func (s *Service) AspectValues(ctx context.Context, categoryID, aspectName, marketplaceID string) ([]string, error) {
	set, err := s.FetchItemAspects(ctx, categoryID, marketplaceID)
	if err != nil {
		return nil, err
	}
	for _, a := range set.All() {
		if a.Name == aspectName {
			return a.Values, nil
		}
	}
	return []string{}, nil
}

// classify maps the raw dump to the bucketed AspectSet for one category.
// Required-now wins over an expected-required-by date; everything else is
// merely recommended.
func classify(payload *ebay.AspectsPayload, categoryID string) *model.AspectSet {
	set := &model.AspectSet{
		Required:         []model.Aspect{},
		Recommended:      []model.Aspect{},
		UpcomingRequired: []model.Aspect{},
	}
	for _, ca := range payload.CategoryAspects {
		if ca.Category.CategoryID != categoryID {
			continue
		}
		for _, raw := range ca.Aspects {
			aspect := mapAspect(raw)
			switch {
			case raw.AspectConstraint.AspectRequired:
				aspect.Required = true
				set.Required = append(set.Required, aspect)
			case raw.AspectConstraint.ExpectedRequiredByDate != "":
				aspect.RequiredBy = raw.AspectConstraint.ExpectedRequiredByDate
				set.UpcomingRequired = append(set.UpcomingRequired, aspect)
			default:
				set.Recommended = append(set.Recommended, aspect)
			}
		}
	}
	return set
}

func mapAspect(raw ebay.RawAspect) model.Aspect {
	values := make([]string, 0, len(raw.AspectValues))
	for _, v := range raw.AspectValues {
		values = append(values, v.LocalizedValue)
	}
	aspect := model.Aspect{
		Name:             raw.LocalizedAspectName,
		Values:           values,
		Mode:             raw.AspectConstraint.AspectMode,
		DataType:         raw.AspectConstraint.AspectDataType,
		Format:           raw.AspectConstraint.AspectFormat,
		MaxLength:        raw.AspectConstraint.AspectMaxLength,
		Cardinality:      raw.AspectConstraint.ItemToAspectCardinality,
		VariationEnabled: raw.AspectConstraint.AspectEnabledForVariations,
	}
	if raw.RelevanceIndicator != nil {
		aspect.SearchCount = raw.RelevanceIndicator.SearchCount
	}
	return aspect
}
