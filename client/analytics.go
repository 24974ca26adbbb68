package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"farmguru/config"

	"go.uber.org/zap"
)

// piiFields are stripped from every analytics payload before it leaves
// the process.
var piiFields = [...]string{"email", "name", "phone", "address"}

// TrackEvent reports a usage event to the backend. It is best-effort by
// contract: every failure is logged and swallowed, never returned, so
// analytics can never block or fail the user action that produced it.
func (c *Client) TrackEvent(ctx context.Context, event string, payload map[string]any) {
	if config.AppConfig.AnalyticsDisabled {
		return
	}

	clean := make(map[string]any, len(payload))
	for k, v := range payload {
		clean[k] = v
	}
	for _, k := range piiFields {
		delete(clean, k)
	}

	body, err := json.Marshal(map[string]any{
		"event_name": event,
		"payload":    clean,
	})
	if err != nil {
		c.logger.Warn("analytics event dropped", zap.String("event", event), zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analytics", bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("analytics event dropped", zap.String("event", event), zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("analytics event dropped", zap.String("event", event), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("analytics event rejected",
			zap.String("event", event),
			zap.Int("status", resp.StatusCode))
	}
}
