package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("before init", zap.String("k", "v"))
		InfoCtx(context.Background(), "before init")
		Error(errors.New("boom"))
		Error(nil)
		Debug("debug")
		Warn("warn")
	})
	assert.NotNil(t, Default())
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))
	assert.True(t, Default().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize(Config{Debug: false}))
	assert.False(t, Default().Core().Enabled(zap.DebugLevel))
	assert.True(t, Default().Core().Enabled(zap.InfoLevel))
}

func TestInitialize_ServiceName(t *testing.T) {
	require.NoError(t, Initialize(Config{Service: "trade-bridge"}))
	assert.Equal(t, "trade-bridge", Default().Name())

	require.NoError(t, Initialize(Config{}))
	assert.Empty(t, Default().Name())
}

func TestErrMessage(t *testing.T) {
	assert.Equal(t, "boom", errMessage(errors.New("boom")))
	assert.Equal(t, "error occurred", errMessage(nil))
}

func TestWorkflowHelpersWithoutContext(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))

	assert.Nil(t, GetWorkflowInfo(nil))
	assert.Equal(t, Default(), FromWorkflow(nil, nil))

	info := WorkflowInfo{WorkflowType: "ProcessTradeEvent", WorkflowID: "process-trade-1"}
	assert.NotNil(t, FromWorkflow(nil, &info))
	assert.NotPanics(t, func() {
		InfoWorkflow(info, "info")
		ErrorWorkflow(info, nil)
		WarnWorkflow(info, "warn")
		DebugWorkflow(info, "debug")
	})
}
