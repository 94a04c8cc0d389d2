package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingProvider records every request's model, latency, token usage and
// outcome.
type LoggingProvider struct {
	inner Provider
	log   zerolog.Logger
}

func WithLogging(p Provider, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, log: log.With().Str("component", "llm").Logger()}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := l.log.Debug()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev = ev.Str("model", l.inner.ModelID()).Dur("latency", time.Since(start))
	if req.Schema != nil {
		ev = ev.Str("schema", req.Schema.Name)
	}
	if resp != nil {
		ev = ev.Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens).
			Str("stop", resp.StopReason)
	}
	ev.Msg("llm request")

	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
