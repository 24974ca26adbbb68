package client

import (
	"context"
	"net/url"
	"strconv"

	"farmguru/models"
)

// MatchPolicies matches a farmer profile against government schemes.
// TotalMatches is surfaced exactly as received, never recomputed locally.
func (c *Client) MatchPolicies(ctx context.Context, req models.PolicyMatchRequest) (*models.PolicyMatchResponse, error) {
	var out models.PolicyMatchResponse
	if err := c.postJSON(ctx, "/api/policy-match", req, msgPolicyFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Schemes fetches the scheme catalogue with optional state/crop filters.
// limit <= 0 leaves the backend default (20) in place.
func (c *Client) Schemes(ctx context.Context, state, crop string, limit int) (*models.SchemeList, error) {
	q := url.Values{}
	if state != "" {
		q.Set("state", state)
	}
	if crop != "" {
		q.Set("crop", crop)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out models.SchemeList
	if err := c.getJSON(ctx, "/api/policy/schemes", q, msgSchemesFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// States lists the states usable for scheme filtering.
func (c *Client) States(ctx context.Context) (*models.StateList, error) {
	var out models.StateList
	if err := c.getJSON(ctx, "/api/policy/states", nil, msgStatesFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
