package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/litinoveweedle/SmartIR/internal/format"
	_ "github.com/litinoveweedle/SmartIR/internal/format/broadlink"
	_ "github.com/litinoveweedle/SmartIR/internal/format/literal"
)

func TestLookupOrder(t *testing.T) {
	require.Equal(t, []string{"raw", "broadlink"}, format.Names())
}

func TestLookup(t *testing.T) {
	cases := map[string]string{
		"[100,-200,300]":           "raw",
		"[]":                       "raw",
		"JgAHAAABACAADQUAAAAAAA==": "broadlink",
		"[100,-200":                "broadlink",
		"":                         "broadlink",
	}
	for raw, want := range cases {
		dec, err := format.Lookup(raw)
		require.NoError(t, err)
		require.Equal(t, want, dec.Name(), "command %q", raw)
	}
}
