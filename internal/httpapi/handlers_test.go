package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lister-backend/internal/model"
	"lister-backend/internal/suggest"
	"lister-backend/internal/taxonomy"
	"lister-backend/internal/upc"
)

type fakeCatalog struct {
	set *model.AspectSet
	err error
}

func (f *fakeCatalog) FetchItemAspects(context.Context, string, string) (*model.AspectSet, error) {
	return f.set, f.err
}

func (f *fakeCatalog) AspectValues(context.Context, string, string, string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"Acme", "Globex"}, nil
}

type fakeResolver struct {
	all map[string]string
	one string
	err error
}

func (f *fakeResolver) ResolveAll(context.Context, string, string, model.ProductContext) (map[string]string, error) {
	return f.all, f.err
}

func (f *fakeResolver) ResolveOne(context.Context, string, string, string, model.ProductContext) (string, error) {
	return f.one, f.err
}

type fakeScanner struct {
	result *upc.ScanResult
	batch  model.BatchScanResult
	err    error
}

func (f *fakeScanner) Scan(context.Context, string, int) (*upc.ScanResult, error) {
	return f.result, f.err
}

func (f *fakeScanner) BatchScan(context.Context, []model.ScanRequest) model.BatchScanResult {
	return f.batch
}

func (f *fakeScanner) Lookup(context.Context, string) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.result.Product, nil
}

func newRouter(s *Server) *mux.Router {
	r := mux.NewRouter()
	s.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newRouter(&Server{})
	rec := doJSON(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestAspectsHandler(t *testing.T) {
	set := &model.AspectSet{Required: []model.Aspect{{Name: "Brand", Required: true}}}
	r := newRouter(&Server{Catalog: &fakeCatalog{set: set}})

	rec := doJSON(t, r, http.MethodGet, "/api/categories/12345/aspects", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.AspectSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Brand", got.Required[0].Name)
}

func TestAspectsHandlerNotFound(t *testing.T) {
	r := newRouter(&Server{Catalog: &fakeCatalog{err: taxonomy.ErrNotFound}})
	rec := doJSON(t, r, http.MethodGet, "/api/categories/999/aspects", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveAllHandler(t *testing.T) {
	r := newRouter(&Server{Resolver: &fakeResolver{all: map[string]string{"Brand": "Acme"}}})

	rec := doJSON(t, r, http.MethodPost, "/api/ai/item-specifics",
		`{"category_id": "12345", "context": {"title": "Acme Widget"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Brand": "Acme"}`, rec.Body.String())
}

func TestResolveAllHandlerValidation(t *testing.T) {
	r := newRouter(&Server{Resolver: &fakeResolver{}})

	// Missing category_id fails validation before the resolver runs.
	rec := doJSON(t, r, http.MethodPost, "/api/ai/item-specifics",
		`{"context": {"title": "Widget"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/ai/item-specifics", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveOneHandler(t *testing.T) {
	r := newRouter(&Server{Resolver: &fakeResolver{one: "Red"}})

	rec := doJSON(t, r, http.MethodPost, "/api/ai/item-specifics/Color",
		`{"category_id": "12345", "context": {"title": "Red Widget"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Color": "Red"}`, rec.Body.String())
}

func TestResolveOneHandlerUnknownAspect(t *testing.T) {
	r := newRouter(&Server{Resolver: &fakeResolver{err: suggest.ErrAspectNotFound}})

	rec := doJSON(t, r, http.MethodPost, "/api/ai/item-specifics/Wingspan",
		`{"category_id": "12345", "context": {"title": "Widget"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScanHandler(t *testing.T) {
	scanner := &fakeScanner{result: &upc.ScanResult{
		Product:  model.Product{Title: "Acme Widget", Source: "ebay"},
		Quantity: 2,
	}}
	r := newRouter(&Server{Scanner: scanner})

	rec := doJSON(t, r, http.MethodPost, "/api/upc/scan",
		`{"upc": "012345678905", "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got upc.ScanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Acme Widget", got.Product.Title)
	assert.Equal(t, 2, got.Quantity)
}

func TestScanHandlerStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", upc.ErrNotFound, http.StatusNotFound},
		{"rate limited", upc.ErrRateLimited, http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&Server{Scanner: &fakeScanner{err: tt.err}})
			rec := doJSON(t, r, http.MethodPost, "/api/upc/scan", `{"upc": "012345678905"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestScanHandlerRejectsBadUPC(t *testing.T) {
	r := newRouter(&Server{Scanner: &fakeScanner{}})

	for _, body := range []string{
		`{"upc": "abc"}`,  // not numeric
		`{"upc": "1234"}`, // too short
		`{"quantity": 1}`, // missing
	} {
		rec := doJSON(t, r, http.MethodPost, "/api/upc/scan", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestBatchScanHandlerAlwaysOK(t *testing.T) {
	scanner := &fakeScanner{batch: model.BatchScanResult{
		Success:  false,
		Products: []model.Product{{Title: "Widget"}},
		Errors:   []model.ScanError{{UPC: "00000000", Error: "product not found"}},
	}}
	r := newRouter(&Server{Scanner: scanner})

	rec := doJSON(t, r, http.MethodPost, "/api/upc/batch",
		`{"items": [{"upc": "012345678905"}, {"upc": "00000000"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.BatchScanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Len(t, got.Errors, 1)
}

func TestBatchScanHandlerEmptyItems(t *testing.T) {
	r := newRouter(&Server{Scanner: &fakeScanner{}})
	rec := doJSON(t, r, http.MethodPost, "/api/upc/batch", `{"items": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeHistory struct {
	events []model.ScanEvent
	limit  int
}

func (f *fakeHistory) RecentScans(_ context.Context, limit int) ([]model.ScanEvent, error) {
	f.limit = limit
	return f.events, nil
}

func TestRecentScansHandler(t *testing.T) {
	history := &fakeHistory{events: []model.ScanEvent{{UPC: "012345678905", Success: true}}}
	r := newRouter(&Server{History: history})

	rec := doJSON(t, r, http.MethodGet, "/api/upc/recent?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, history.limit)

	// Bad limits fall back to the default.
	_ = doJSON(t, r, http.MethodGet, "/api/upc/recent?limit=junk", "")
	assert.Equal(t, 20, history.limit)
}
