package riskapi

import "github.com/tanmay/acuity/internal/store"

// NewClient builds the production client stack from configuration:
// caller → retry → logging → HTTP. A nil repo skips the logging layer.
func NewClient(cfg Config, eventRepo store.EventRepo) Client {
	var c Client = NewHTTPClient(cfg)
	if eventRepo != nil {
		c = WithLogging(c, eventRepo)
	}
	return WithRetry(c, cfg.Retry)
}
