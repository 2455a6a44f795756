package api

// Analytics retrieves per-post engagement metrics
func (c *Client) Analytics() ([]PostMetrics, error) {
	metrics, err := getJSON[[]PostMetrics](c, "/api/v1/posts/analytics")
	if err != nil {
		return nil, err
	}
	return *metrics, nil
}

// TwitterMetrics retrieves platform-specific follower and tweet metrics
func (c *Client) TwitterMetrics() (*TwitterMetricsResponse, error) {
	return getJSON[TwitterMetricsResponse](c, "/api/v1/twitter/metrics")
}
