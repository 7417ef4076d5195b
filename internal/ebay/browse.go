package ebay

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"lister-backend/internal/model"
)

// FindByUPC looks the product up by GTIN on the Browse API and maps the
// first hit to a normalized Product.
func (c *Client) FindByUPC(ctx context.Context, upc string) (*model.Product, error) {
	path := fmt.Sprintf("/buy/browse/v1/item_summary/search?gtin=%s&limit=1", url.QueryEscape(upc))
	var resp itemSummarySearchResponse
	if err := c.browseGet(ctx, path, "EBAY_US", &resp); err != nil {
		return nil, err
	}
	if len(resp.ItemSummaries) == 0 {
		return nil, ErrNotFound
	}

	s := resp.ItemSummaries[0]
	p := &model.Product{
		Title:       s.Title,
		Description: s.ShortDescription,
		Brand:       s.Brand,
		UPC:         upc,
		Source:      "ebay",
	}
	if len(s.Categories) > 0 {
		p.Category = s.Categories[0].CategoryName
	}
	if s.Image != nil {
		p.Images = append(p.Images, s.Image.ImageURL)
	}
	for _, img := range s.AdditionalImages {
		p.Images = append(p.Images, img.ImageURL)
	}
	return p, nil
}

// SearchMarketData returns comparable active listings for a query together
// with locally computed price statistics.
func (c *Client) SearchMarketData(ctx context.Context, query string) (*model.MarketData, error) {
	path := fmt.Sprintf("/buy/browse/v1/item_summary/search?q=%s&limit=20", url.QueryEscape(query))
	var resp itemSummarySearchResponse
	if err := c.browseGet(ctx, path, "EBAY_US", &resp); err != nil {
		return nil, err
	}

	md := &model.MarketData{Query: query}
	prices := make([]float64, 0, len(resp.ItemSummaries))
	for _, s := range resp.ItemSummaries {
		price := parsePrice(s.Price.Value)
		md.Listings = append(md.Listings, model.MarketEntry{
			ItemID:    s.ItemID,
			Title:     s.Title,
			Price:     price,
			Condition: s.Condition,
		})
		if price > 0 {
			prices = append(prices, price)
		}
	}
	md.PriceStats = priceStats(prices)
	return md, nil
}

// GetItemDetails fetches the full record of an existing listing for the
// Sell Similar flow.
func (c *Client) GetItemDetails(ctx context.Context, itemID string) (*model.ItemDetails, error) {
	path := "/buy/browse/v1/item/" + url.PathEscape(itemID)
	var resp browseItemResponse
	if err := c.browseGet(ctx, path, "EBAY_US", &resp); err != nil {
		return nil, err
	}

	details := &model.ItemDetails{
		ItemID:        resp.ItemID,
		Title:         resp.Title,
		Description:   resp.Description,
		CategoryID:    resp.CategoryID,
		Condition:     resp.Condition,
		Price:         parsePrice(resp.Price.Value),
		ItemSpecifics: make(map[string]string, len(resp.LocalizedAspects)),
	}
	for _, a := range resp.LocalizedAspects {
		details.ItemSpecifics[a.Name] = a.Value
	}
	if len(resp.EstimatedAvailabilities) > 0 {
		details.Quantity = resp.EstimatedAvailabilities[0].EstimatedAvailableQuantity
	}
	if resp.Image != nil {
		details.Pictures = append(details.Pictures, resp.Image.ImageURL)
	}
	for _, img := range resp.AdditionalImages {
		details.Pictures = append(details.Pictures, img.ImageURL)
	}
	return details, nil
}

func priceStats(prices []float64) model.PriceStats {
	if len(prices) == 0 {
		return model.PriceStats{}
	}
	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)
	var median float64
	n := len(sorted)
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return model.PriceStats{
		Min:    sorted[0],
		Median: median,
		Max:    sorted[n-1],
	}
}
