package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// Adjudicator wraps a Provider with timeout handling and a disabled
// state. The engine holds one of these regardless of whether an oracle
// is configured; when disabled, Adjudicate reports ErrDisabled and the
// engine falls back to the deterministic verdict ladder.
type Adjudicator struct {
	provider Provider
	timeout  time.Duration
}

// ErrDisabled is returned when no adjudication provider is configured
var ErrDisabled = fmt.Errorf("adjudication is disabled")

// NewAdjudicator builds the adjudication layer from config. A nil
// provider (empty provider name) yields a disabled adjudicator, not an
// error.
func NewAdjudicator(config model.LLMConfig) (*Adjudicator, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Adjudicator{
		provider: provider,
		timeout:  timeout,
	}, nil
}

// NewAdjudicatorWithProvider wires an explicit provider, used by tests
func NewAdjudicatorWithProvider(provider Provider, timeout time.Duration) *Adjudicator {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Adjudicator{provider: provider, timeout: timeout}
}

// IsEnabled reports whether an oracle is configured
func (a *Adjudicator) IsEnabled() bool {
	return a != nil && a.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled
func (a *Adjudicator) ProviderName() string {
	if !a.IsEnabled() {
		return ""
	}
	return a.provider.Name()
}

// Adjudicate asks the oracle for a final judgement, bounded by the
// configured timeout.
func (a *Adjudicator) Adjudicate(ctx context.Context, req Request) (*Adjudication, error) {
	if !a.IsEnabled() {
		return nil, ErrDisabled
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	adjudication, err := a.provider.Adjudicate(ctxWithTimeout, req)
	if err != nil {
		return nil, fmt.Errorf("%s adjudication failed: %w", a.provider.Name(), err)
	}

	return adjudication, nil
}
