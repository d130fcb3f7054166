// Package ai wraps the generative AI provider behind a small client
// interface. It is a boundary package: the structurer and scorer never import
// it, and every operation here degrades to an error rather than blocking the
// deterministic pipeline.
package ai

// ModelTier represents the capability level requested for a call
type ModelTier string

const (
	// TierLite is for simple tasks: classification, short summaries
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured analysis
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: full-document rewriting
	TierAdvanced ModelTier = "advanced"
)

// Config maps model tiers to provider model names
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard then
// lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return next
}
