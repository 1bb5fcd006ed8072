package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(previous) })
	return &buf
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { _ = Setup("debug", "development") })

	require.NoError(t, Setup("warn", "production"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.False(t, IsDevelopment())

	assert.Error(t, Setup("verboso", "dev"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.True(t, IsDevelopment())
}

func TestWithFields_Development(t *testing.T) {
	require.NoError(t, Setup("debug", "development"))
	buf := captureOutput(t)

	L.WithFields(Fields{"country": "France", "user_agent": "curl"}).Info("filtrando")

	assert.Contains(t, buf.String(), "country=France")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFields_Production(t *testing.T) {
	require.NoError(t, Setup("debug", "production"))
	t.Cleanup(func() { _ = Setup("debug", "development") })
	buf := captureOutput(t)

	L.WithField("user_agent", "curl").Info("requisição")

	assert.Contains(t, buf.String(), "user_agent=curl")
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	require.NoError(t, Setup("debug", "development"))
	buf := captureOutput(t)
	ForContext(ctx).Info("com correlação")
	assert.Contains(t, buf.String(), "correlation_id="+id)
}
