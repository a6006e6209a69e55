package claude

import (
	"encoding/json"
	"fmt"
	"io"
)

// hookOutput is the envelope Claude Code expects on a hook's stdout.
type hookOutput struct {
	HookSpecificOutput hookSpecificOutput `json:"hookSpecificOutput"`
}

type hookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// WriteContext emits a PreToolUse hook response that injects text as
// additional context for the model, so a cached result reaches the
// session without re-running the tool.
func WriteContext(w io.Writer, text string) error {
	out := hookOutput{
		HookSpecificOutput: hookSpecificOutput{
			HookEventName:     "PreToolUse",
			AdditionalContext: text,
		},
	}
	if err := json.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("failed to write hook response: %w", err)
	}
	return nil
}
