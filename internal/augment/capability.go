// Package augment adapts the external natural-language generation capability
// used to enrich incidents with narrative summaries and recommendations. The
// capability is strictly best-effort: every failure path degrades to fixed
// fallback text in the caller, never to a pipeline abort.
package augment

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/zonewatch-systems/zonewatch/internal/config"
)

// ErrNotConfigured is returned by the no-op capability. Callers short-circuit
// to the fallback path without retrying.
var ErrNotConfigured = errors.New("augmentation capability not configured")

// Usage is the token telemetry of one successful external call.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// Capability is the external natural-language generation boundary. Complete
// sends a system role and a user prompt and returns the response as a JSON
// object, already stripped of any code-fence envelope, plus token usage.
type Capability interface {
	Complete(ctx context.Context, systemRole, prompt string) (json.RawMessage, Usage, error)
}

// NewCapability selects the concrete capability for the given configuration.
// Missing credentials select the no-op implementation so the deterministic
// core keeps working with the augmentation layer entirely disabled.
func NewCapability(cfg config.AugmentConfig) Capability {
	if cfg.APIKey == "" {
		return NoopCapability{}
	}
	return NewOpenAIClient(cfg)
}

// NoopCapability fails every call immediately with ErrNotConfigured.
type NoopCapability struct{}

func (NoopCapability) Complete(context.Context, string, string) (json.RawMessage, Usage, error) {
	return nil, Usage{}, ErrNotConfigured
}
