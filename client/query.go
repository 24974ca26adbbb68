package client

import (
	"context"
	"net/url"
	"strconv"

	"farmguru/models"
)

// Query asks the assistant a natural-language question.
func (c *Client) Query(ctx context.Context, req models.QueryRequest) (*models.QueryResponse, error) {
	var out models.QueryResponse
	if err := c.postJSON(ctx, "/api/query", req, msgQueryFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryHistory fetches up to limit past queries. An empty userID returns
// history across users; limit <= 0 leaves the backend default in place.
func (c *Client) QueryHistory(ctx context.Context, userID string, limit int) (*models.QueryHistory, error) {
	q := url.Values{}
	if userID != "" {
		q.Set("user_id", userID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out models.QueryHistory
	if err := c.getJSON(ctx, "/api/query/history", q, msgHistoryFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
