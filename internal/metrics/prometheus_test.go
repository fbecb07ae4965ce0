package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordDecode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordDecode("broadlink", OutcomeOK, 68)
	m.RecordDecode("broadlink", OutcomeOK, 4)
	m.RecordDecode("broadlink", "InvalidPayload", 0)
	m.RecordDecode("raw", "MalformedLiteral", 0)

	require.Equal(t, 2.0, testutil.ToFloat64(m.Decodes.WithLabelValues("broadlink", OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Decodes.WithLabelValues("broadlink", "InvalidPayload")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Decodes.WithLabelValues("raw", "MalformedLiteral")))
	require.Equal(t, 1, testutil.CollectAndCount(m.PulsesPerCmd))
}
