package suggest

import (
	"context"
	"errors"

	"lister-backend/internal/model"
)

// ErrAspectNotFound is returned by ResolveOne when the named aspect does
// not exist in any bucket of the category's catalog.
var ErrAspectNotFound = errors.New("suggest: aspect not found in category")

// AspectCatalog is the slice of the taxonomy service the resolver needs.
type AspectCatalog interface {
	FetchItemAspects(ctx context.Context, categoryID, marketplaceID string) (*model.AspectSet, error)
}

// Resolver composes the catalog, the suggestion engine and the validator
// into the end-to-end "suggest all item specifics" operation.
type Resolver struct {
	catalog AspectCatalog
	engine  *Engine
}

// NewResolver creates a Resolver.
func NewResolver(catalog AspectCatalog, engine *Engine) *Resolver {
	return &Resolver{catalog: catalog, engine: engine}
}

// ResolveAll suggests values for every aspect of a category and keeps only
// the candidates that validate against their aspect's constraints. Aspects
// with no candidate, or an invalid one, are absent from the result; the
// call itself fails only when the category's catalog is unavailable.
func (r *Resolver) ResolveAll(ctx context.Context, categoryID, marketplaceID string, pctx model.ProductContext) (map[string]string, error) {
	set, err := r.catalog.FetchItemAspects(ctx, categoryID, marketplaceID)
	if err != nil {
		return nil, err
	}

	aspects := set.All()
	suggestions := r.engine.SuggestMany(ctx, aspects, pctx)

	resolved := make(map[string]string)
	for _, aspect := range aspects {
		suggestion, ok := suggestions[aspect.Name]
		if !ok {
			continue
		}
		if ValidateAspectValue(suggestion.Value, aspect) {
			resolved[aspect.Name] = suggestion.Value
		}
	}
	return resolved, nil
}

// ResolveOne suggests a value for a single named aspect. An unknown aspect
// is an error; an invalid candidate is just an empty string.
func (r *Resolver) ResolveOne(ctx context.Context, aspectName, categoryID, marketplaceID string, pctx model.ProductContext) (string, error) {
	set, err := r.catalog.FetchItemAspects(ctx, categoryID, marketplaceID)
	if err != nil {
		return "", err
	}

	var target *model.Aspect
	for _, aspect := range set.All() {
		if aspect.Name == aspectName {
			a := aspect
			target = &a
			break
		}
	}
	if target == nil {
		return "", ErrAspectNotFound
	}

	value, _ := r.engine.SuggestValue(ctx, aspectName, pctx)
	if !ValidateAspectValue(value, *target) {
		return "", nil
	}
	return value, nil
}
