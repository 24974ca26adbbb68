package client

import (
	"context"
	"net/url"
	"strconv"

	"farmguru/models"
)

// GetMarketData fetches prices and the trading signal for one commodity at
// one mandi. The signal is passed through exactly as the backend reported
// it; see models.Signal.IsValid for callers who want boundary validation.
func (c *Client) GetMarketData(ctx context.Context, commodity, mandi string) (*models.MarketResponse, error) {
	q := url.Values{}
	q.Set("commodity", commodity)
	q.Set("mandi", mandi)

	var out models.MarketResponse
	if err := c.getJSON(ctx, "/api/market", q, msgMarketFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Commodities lists the commodities available for price queries.
func (c *Client) Commodities(ctx context.Context) (*models.CommodityList, error) {
	var out models.CommodityList
	if err := c.getJSON(ctx, "/api/market/commodities", nil, msgCommoditiesFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mandis lists known mandis, optionally filtered to one state.
func (c *Client) Mandis(ctx context.Context, state string) (*models.MandiList, error) {
	q := url.Values{}
	if state != "" {
		q.Set("state", state)
	}
	var out models.MandiList
	if err := c.getJSON(ctx, "/api/market/mandis", q, msgMandisFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarketAnalysis fetches the extended price analysis for a commodity.
// days <= 0 leaves the backend default (30) in place.
func (c *Client) MarketAnalysis(ctx context.Context, commodity string, days int) (*models.MarketAnalysis, error) {
	q := url.Values{}
	q.Set("commodity", commodity)
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	var out models.MarketAnalysis
	if err := c.getJSON(ctx, "/api/market/analysis", q, msgAnalysisFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
