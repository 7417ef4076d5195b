package upc

import (
	"context"
	"errors"
	"log"
	"time"

	"lister-backend/internal/model"
)

// marketplaceLookup is the slice of the eBay client the scan flow needs.
type marketplaceLookup interface {
	FindByUPC(ctx context.Context, upc string) (*model.Product, error)
	SearchMarketData(ctx context.Context, query string) (*model.MarketData, error)
}

// databaseLookup is the UPC database fallback.
type databaseLookup interface {
	Lookup(ctx context.Context, code string) (*model.Product, error)
}

// eventPublisher records scan outcomes on the event stream.
type eventPublisher interface {
	PublishScanResult(ctx context.Context, evt model.ScanEvent) error
}

// ScanResult is the outcome of one successful scan.
type ScanResult struct {
	Product    model.Product     `json:"product"`
	MarketData *model.MarketData `json:"market_data,omitempty"`
	Quantity   int               `json:"quantity"`
}

// Service runs the scan flow: marketplace catalog first, UPC database as
// fallback, comparable-listing data attached when available.
type Service struct {
	marketplace marketplaceLookup
	database    databaseLookup
	events      eventPublisher
}

// NewService creates a scan service. events may be nil to disable the
// stream.
func NewService(marketplace marketplaceLookup, database databaseLookup, events eventPublisher) *Service {
	return &Service{marketplace: marketplace, database: database, events: events}
}

// Scan resolves one code. The marketplace catalog wins because it carries
// richer listing data; the UPC database is the fallback. Market data is
// best effort and never fails the scan.
func (s *Service) Scan(ctx context.Context, code string, quantity int) (*ScanResult, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.marketplace.FindByUPC(ctx, code)
	if err != nil {
		product, err = s.database.Lookup(ctx, code)
	}
	if err != nil {
		s.publish(ctx, model.ScanEvent{
			UPC:       code,
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRateLimited) {
			return nil, err
		}
		return nil, ErrNotFound
	}

	result := &ScanResult{Product: *product, Quantity: quantity}
	if md, mdErr := s.marketplace.SearchMarketData(ctx, product.Title); mdErr == nil {
		result.MarketData = md
	} else {
		log.Printf("upc: market data unavailable for %q: %v", code, mdErr)
	}

	s.publish(ctx, model.ScanEvent{
		UPC:       code,
		Title:     product.Title,
		Source:    product.Source,
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return result, nil
}

// BatchScan processes codes strictly sequentially, one round-trip at a
// time. Each item's success or failure is recorded independently; there is
// no fan-out and no rollback.
func (s *Service) BatchScan(ctx context.Context, items []model.ScanRequest) model.BatchScanResult {
	result := model.BatchScanResult{
		Products: []model.Product{},
		Errors:   []model.ScanError{},
	}
	for _, item := range items {
		scan, err := s.Scan(ctx, item.UPC, item.Quantity)
		if err != nil {
			result.Errors = append(result.Errors, model.ScanError{
				UPC:   item.UPC,
				Error: err.Error(),
			})
			continue
		}
		result.Products = append(result.Products, scan.Product)
	}
	result.Success = len(result.Errors) == 0
	return result
}

// Lookup returns the raw product record for one code, marketplace first.
func (s *Service) Lookup(ctx context.Context, code string) (*model.Product, error) {
	if product, err := s.marketplace.FindByUPC(ctx, code); err == nil {
		return product, nil
	}
	return s.database.Lookup(ctx, code)
}

func (s *Service) publish(ctx context.Context, evt model.ScanEvent) {
	if s.events == nil {
		return
	}
	// Fire-and-forget: the scan response never waits on the stream.
	if err := s.events.PublishScanResult(ctx, evt); err != nil {
		log.Printf("upc: publish scan event: %v", err)
	}
}
