package observability

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"jan-server/services/application-settings-api/internal/config"
)

func TestSetupDisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := Setup(context.Background(), &config.Config{EnableTracing: true}, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestSetupEnabledInstallsProvider(t *testing.T) {
	cfg := &config.Config{
		ServiceName:     "application-settings-api",
		Environment:     "test",
		EnableTracing:   true,
		OTLPEndpoint:    "127.0.0.1:4318",
		TraceSampleRate: 1,
	}
	shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, shutdown(ctx))
}

func TestNewSampler(t *testing.T) {
	traceID := trace.TraceID{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	root := sdktrace.SamplingParameters{ParentContext: context.Background(), TraceID: traceID, Name: "GET /custom-labels"}

	sampledParent := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     trace.SpanID{0x01},
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	}))
	child := sdktrace.SamplingParameters{ParentContext: sampledParent, TraceID: traceID, Name: "GET /custom-labels"}

	cases := map[string]struct {
		ratio  float64
		params sdktrace.SamplingParameters
		want   sdktrace.SamplingDecision
	}{
		"root always":             {ratio: 1, params: root, want: sdktrace.RecordAndSample},
		"root above one":          {ratio: 5, params: root, want: sdktrace.RecordAndSample},
		"root never":              {ratio: 0, params: root, want: sdktrace.Drop},
		"root negative":           {ratio: -1, params: root, want: sdktrace.Drop},
		"sampled parent wins":     {ratio: 0, params: child, want: sdktrace.RecordAndSample},
		"sampled parent at ratio": {ratio: 0.5, params: child, want: sdktrace.RecordAndSample},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := newSampler(tc.ratio).ShouldSample(tc.params)
			assert.Equal(t, tc.want, got.Decision)
		})
	}
}
