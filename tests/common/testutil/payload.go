//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a JSON payload before it is sent.
type Mutation func(m map[string]any)

// Payload round-trips v through JSON so tests can send what a browser would,
// then applies the mutations in order.
func Payload(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mutate := range muts {
		mutate(m)
	}
	return m
}

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

// Drop removes key, as a form field the page never sent.
func Drop(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}

// Null keeps key with an explicit JSON null, as the page sends unparseable
// seat counts.
func Null(key string) Mutation {
	return Set(key, nil)
}
