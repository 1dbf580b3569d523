package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Limit <= 0 {
			return fmt.Errorf("rate_limit: limit must be > 0 (got %d)", c.RateLimit.Limit)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit: window must be > 0 (got %v)", c.RateLimit.Window)
		}
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	u, err := url.Parse(g.WebhookURL)
	if err != nil {
		return fmt.Errorf("webhook_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("webhook_url: unsupported scheme %q", u.Scheme)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	return nil
}

func (c *CacheConfig) validate() error {
	windows := map[string]interface{ Seconds() float64 }{
		"brand_tree_ttl": c.BrandTreeTTL,
		"angles_ttl":     c.AnglesTTL,
		"ideas_ttl":      c.IdeasTTL,
		"content_ttl":    c.ContentTTL,
	}
	for name, w := range windows {
		if w.Seconds() <= 0 {
			return fmt.Errorf("%s must be > 0", name)
		}
	}
	return nil
}
