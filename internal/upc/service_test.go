package upc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lister-backend/internal/ebay"
	"lister-backend/internal/model"
)

type stubMarketplace struct {
	product   *model.Product
	err       error
	market    *model.MarketData
	marketErr error
}

func (s *stubMarketplace) FindByUPC(context.Context, string) (*model.Product, error) {
	return s.product, s.err
}

func (s *stubMarketplace) SearchMarketData(context.Context, string) (*model.MarketData, error) {
	if s.marketErr != nil {
		return nil, s.marketErr
	}
	return s.market, nil
}

type stubDatabase struct {
	product *model.Product
	err     error
	calls   int
}

func (s *stubDatabase) Lookup(context.Context, string) (*model.Product, error) {
	s.calls++
	return s.product, s.err
}

type recordingPublisher struct {
	events []model.ScanEvent
}

func (r *recordingPublisher) PublishScanResult(_ context.Context, evt model.ScanEvent) error {
	r.events = append(r.events, evt)
	return nil
}

func TestScanPrefersMarketplace(t *testing.T) {
	mp := &stubMarketplace{
		product: &model.Product{Title: "Acme Widget", Source: "ebay"},
		market:  &model.MarketData{PriceStats: model.PriceStats{Median: 15}},
	}
	db := &stubDatabase{product: &model.Product{Title: "Widget", Source: "upcitemdb"}}
	pub := &recordingPublisher{}
	svc := NewService(mp, db, pub)

	result, err := svc.Scan(context.Background(), "012345678905", 0)
	require.NoError(t, err)
	assert.Equal(t, "ebay", result.Product.Source)
	assert.Equal(t, 0, db.calls)
	// Quantity below 1 normalizes to 1.
	assert.Equal(t, 1, result.Quantity)
	assert.Equal(t, 15.0, result.MarketData.PriceStats.Median)

	require.Len(t, pub.events, 1)
	assert.True(t, pub.events[0].Success)
	assert.Equal(t, "012345678905", pub.events[0].UPC)
}

func TestScanFallsBackToDatabase(t *testing.T) {
	mp := &stubMarketplace{err: ebay.ErrNotFound, marketErr: errors.New("browse down")}
	db := &stubDatabase{product: &model.Product{Title: "Widget", Source: "upcitemdb"}}
	svc := NewService(mp, db, nil)

	result, err := svc.Scan(context.Background(), "012345678905", 3)
	require.NoError(t, err)
	assert.Equal(t, "upcitemdb", result.Product.Source)
	assert.Equal(t, 1, db.calls)
	assert.Equal(t, 3, result.Quantity)
	// Market data is best effort.
	assert.Nil(t, result.MarketData)
}

func TestScanNotFoundAnywhere(t *testing.T) {
	mp := &stubMarketplace{err: ebay.ErrNotFound}
	db := &stubDatabase{err: ErrNotFound}
	pub := &recordingPublisher{}
	svc := NewService(mp, db, pub)

	_, err := svc.Scan(context.Background(), "000000000000", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	require.Len(t, pub.events, 1)
	assert.False(t, pub.events[0].Success)
	assert.NotEmpty(t, pub.events[0].Error)
}

func TestScanUnknownFailureNormalizesToNotFound(t *testing.T) {
	mp := &stubMarketplace{err: errors.New("tls handshake")}
	db := &stubDatabase{err: errors.New("dns failure")}
	svc := NewService(mp, db, nil)

	_, err := svc.Scan(context.Background(), "012345678905", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanRateLimitPropagates(t *testing.T) {
	mp := &stubMarketplace{err: ebay.ErrNotFound}
	db := &stubDatabase{err: ErrRateLimited}
	svc := NewService(mp, db, nil)

	_, err := svc.Scan(context.Background(), "012345678905", 1)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestBatchScanRecordsPerItemOutcomes(t *testing.T) {
	mp := &stubMarketplace{err: ebay.ErrNotFound}
	db := &stubDatabase{}
	svc := NewService(mp, db, nil)

	// The stub fails the second code only.
	calls := 0
	db.product = &model.Product{Title: "Widget"}
	dbWrap := lookupFunc(func(ctx context.Context, code string) (*model.Product, error) {
		calls++
		if code == "bad" {
			return nil, ErrNotFound
		}
		return db.product, nil
	})
	svc = NewService(mp, dbWrap, nil)

	result := svc.BatchScan(context.Background(), []model.ScanRequest{
		{UPC: "012345678905", Quantity: 1},
		{UPC: "bad", Quantity: 1},
		{UPC: "036000291452", Quantity: 2},
	})

	assert.False(t, result.Success)
	assert.Len(t, result.Products, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad", result.Errors[0].UPC)
	assert.Equal(t, 3, calls)
}

type lookupFunc func(ctx context.Context, code string) (*model.Product, error)

func (f lookupFunc) Lookup(ctx context.Context, code string) (*model.Product, error) {
	return f(ctx, code)
}
