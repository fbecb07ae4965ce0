package options

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLoggerRoundTrip(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ctx := WithLogger(context.Background(), logger)

	Logger(ctx).Debug("hello")
	require.Len(t, hook.Entries, 1)
	require.Equal(t, "hello", hook.LastEntry().Message)
}

func TestLoggerDefaultDiscards(t *testing.T) {
	require.NotNil(t, Logger(context.Background()))
	ctx := WithLogger(context.Background(), nil)
	require.NotNil(t, Logger(ctx))
}

func TestPreview(t *testing.T) {
	require.Equal(t, "abc", Preview("abc", 30))
	require.Equal(t, "ab", Preview("abc", 2))
	require.Equal(t, "", Preview("", 2))
}
