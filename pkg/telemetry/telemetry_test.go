package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/abgdnv/crudapi/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), "crud", config.TelemetryConfig{})
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	var cfg config.TelemetryConfig
	cfg.Enabled = true
	cfg.Traces.OtlpHttp.Endpoint = "localhost:4318"
	cfg.Traces.OtlpHttp.Insecure = true
	cfg.Traces.OtlpHttp.Timeout = time.Second

	tp, err := NewTracerProvider(context.Background(), "crud", cfg)
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = tp.Shutdown(ctx)
}
