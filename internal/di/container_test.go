package di

import (
	"context"
	"os"
	"testing"

	"billing-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_WiresBillingTools(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := NewContainer(context.Background(), Config{
		OpenRouterAPIKey: "test-key",
		TaskName:         "container test",
		LogLevel:         "error",
		VoiceLines:       entity.VoiceLines{V1: "Dad"},
		Quiet:            true,
	})
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Tools.Get(entity.ToolGetPDFText)
	assert.True(t, ok)
	_, ok = c.Tools.Get(entity.ToolSaveCSV)
	assert.True(t, ok)

	assert.NotNil(t, c.Artifacts)
	assert.NotNil(t, c.TaskExecutor)
	assert.Contains(t, c.SystemPrompt, `"Dad"`)
	assert.DirExists(t, "log")
}
