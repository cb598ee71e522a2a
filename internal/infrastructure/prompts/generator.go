package prompts

import (
	"bytes"
	"text/template"
)

type TaskPromptData struct {
	TaskName string
	Payload  string
}

var taskTmpl = template.Must(template.New("task").Parse(taskTemplate))

// GenerateTaskPrompt renders the user message sent to the provider for one
// task. payload is the request payload already marshaled as JSON.
func GenerateTaskPrompt(taskName, payload string) (string, error) {
	var buf bytes.Buffer
	if err := taskTmpl.Execute(&buf, TaskPromptData{TaskName: taskName, Payload: payload}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
