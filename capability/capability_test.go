package capability

import (
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolNotInstalled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	tool := Tool{Capability: "font introspection", Command: "no-such-tool-fontdiff-test"}
	_, err := tool.Run(context.Background(), "x.ttf", nil)
	var missing *MissingCapabilityError
	require.True(t, errors.As(err, &missing), "expected MissingCapabilityError, got %v", err)
	assert.Equal(t, "font introspection", missing.Capability)
	assert.Equal(t, "x.ttf", missing.Subject)
	assert.Contains(t, err.Error(), "x.ttf")
}

func TestToolOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	tool := Tool{Capability: "test", Command: "sh", Args: []string{"-c"}}
	out, err := tool.Run(context.Background(), "subject", nil, "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestToolStdin(t *testing.T) {
	tool := Tool{Capability: "test", Command: "cat"}
	out, err := tool.Run(context.Background(), "subject", []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestToolFailure(t *testing.T) {
	tool := Tool{Capability: "shaping", Command: "sh", Args: []string{"-c"}}
	_, err := tool.Run(context.Background(), "font.otf", nil, "echo broken >&2; exit 3")
	var missing *MissingCapabilityError
	require.True(t, errors.As(err, &missing))
	assert.Contains(t, err.Error(), "broken")
}
