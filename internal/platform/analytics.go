package platform

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/listener-admin/internal/domain"
)

// Analytics fetches the dashboard snapshot for a time range.
func (c *Client) Analytics(ctx context.Context, rng domain.TimeRange) (*domain.AnalyticsData, error) {
	vals := url.Values{}
	if rng != "" {
		vals.Set("range", string(rng))
	}
	var data domain.AnalyticsData
	if err := c.get(ctx, "/analytics", vals, &data, "analytics"); err != nil {
		return nil, err
	}
	return &data, nil
}

// ExportAnalytics downloads the analytics export blob (CSV or PDF) along
// with its content type.
func (c *Client) ExportAnalytics(ctx context.Context, rng domain.TimeRange, format string) ([]byte, string, error) {
	vals := url.Values{}
	if rng != "" {
		vals.Set("range", string(rng))
	}
	if format != "" {
		vals.Set("format", format)
	}
	return c.doRaw(ctx, http.MethodGet, "/analytics/export", vals, nil)
}
