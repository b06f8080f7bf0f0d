package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTo_Levels(t *testing.T) {
	var buf bytes.Buffer
	NewTo(&buf, "prod").Debug("hidden")
	require.Zero(t, buf.Len())

	NewTo(&buf, "dev").Debug("shown", "key", "items")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "items", rec["key"])
	require.Equal(t, "shopdesk", rec["service"])
}
