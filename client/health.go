package client

import (
	"context"

	"farmguru/models"
)

// Health fetches the backend's self-reported health snapshot.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	var out models.HealthStatus
	if err := c.getJSON(ctx, "/api/health", nil, msgHealthFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
