package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WithoutCollector(t *testing.T) {
	shutdown, err := Setup(context.Background(), "loanlink-test", "")

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.NotNil(t, GetTracer())
}

func TestSetup_WithCollector(t *testing.T) {
	shutdown, err := Setup(context.Background(), "loanlink-test", "localhost:4318")

	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, span := GetTracer().Start(context.Background(), "test-span")
	span.End()

	// nothing listens on the endpoint; shutdown must still return
	_ = shutdown(context.Background())
}

func TestHandleConnectionError_LogsOnce(t *testing.T) {
	connectionMutex.Lock()
	connectionFailed = false
	connectionMutex.Unlock()

	handleConnectionError(assert.AnError)
	handleConnectionError(assert.AnError)

	connectionMutex.Lock()
	defer connectionMutex.Unlock()
	assert.True(t, connectionFailed)
}
