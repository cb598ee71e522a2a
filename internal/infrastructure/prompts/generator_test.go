package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTaskPrompt(t *testing.T) {
	prompt, err := GenerateTaskPrompt("summarize", `{"text": "breaking news"}`)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Task: summarize")
	assert.Contains(t, prompt, `{"text": "breaking news"}`)
}

func TestDefaultSystemPrompt_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(DefaultSystemPrompt))
}
