package aiassist

import (
	"context"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/safety"
)

const (
	// maxAttempts bounds how many times a judgment is requested before
	// giving up. Each attempt gets its own timeout.
	maxAttempts = 3

	attemptTimeout = 10 * time.Second
)

// Client wraps a Provider with the retry and per-attempt timeout budget and
// adapts judgments to safety verdicts. It satisfies safety.Assist.
type Client struct {
	provider Provider
	attempts int
	timeout  time.Duration
}

// NewClient wraps a provider with the default retry budget
func NewClient(p Provider) *Client {
	return &Client{
		provider: p,
		attempts: maxAttempts,
		timeout:  attemptTimeout,
	}
}

// Provider returns the backend name
func (c *Client) Provider() string {
	return c.provider.Name()
}

// Judge requests a safety judgment, retrying transient failures. A
// cancelled parent context stops the retry loop immediately.
func (c *Client) Judge(ctx context.Context, path string) (safety.Verdict, error) {
	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return safety.Verdict{}, err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		j, err := c.provider.Assess(attemptCtx, path)
		cancel()

		if err == nil {
			return safety.Verdict{
				Tier:   j.Tier,
				Reason: j.Reason,
				Source: safety.SourceAI,
			}, nil
		}
		lastErr = err
	}
	return safety.Verdict{}, fmt.Errorf("%s judgment failed after %d attempts: %w",
		c.provider.Name(), c.attempts, lastErr)
}
