package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"movie-info-gateway/internal/normalize"
)

// decode parses a JSON object literal the same way the upstream client does.
func decode(t *testing.T, s string) normalize.Object {
	t.Helper()
	var o normalize.Object
	require.NoError(t, json.Unmarshal([]byte(s), &o))
	return o
}
