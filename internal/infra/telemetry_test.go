package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), TelemetryConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Enabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), TelemetryConfig{
		Enabled:       true,
		Endpoint:      "localhost:4318",
		Insecure:      true,
		ServiceName:   "happy-test",
		SamplingRatio: 1,
	}, zap.NewNop())
	require.NoError(t, err)

	// nothing was recorded, so shutdown has nothing to export
	assert.NoError(t, shutdown(context.Background()))
}
