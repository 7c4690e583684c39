package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryListKeepsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		registry.Register(Tool{Name: name})
	}

	listed := registry.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "c", listed[0].Name)
	assert.Equal(t, "a", listed[1].Name)
	assert.Equal(t, "b", listed[2].Name)
}

func TestRegistryRegisterOverwrites(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Tool{Name: "a", Description: "first"})
	registry.Register(Tool{Name: "a", Description: "second"})

	tool, ok := registry.Get("a")
	require.True(t, ok)
	assert.Equal(t, "second", tool.Description)
	assert.Len(t, registry.List(), 1)
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	_, ok := registry.Get("missing")
	assert.False(t, ok)
}

func TestDefaultToolSet(t *testing.T) {
	listed := Default.List()
	require.NotEmpty(t, listed)

	for _, tool := range listed {
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.Handler, tool.Name)
		assert.Equal(t, "object", tool.InputSchema["type"], tool.Name)
	}

	write, ok := Default.Get("create_time_entry")
	require.True(t, ok)
	assert.Contains(t, write.InputSchema["required"], "hours")
}
