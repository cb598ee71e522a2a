package prompts

import (
	_ "embed"
)

//go:embed system.txt
var DefaultSystemPrompt string

//go:embed task.txt
var taskTemplate string
