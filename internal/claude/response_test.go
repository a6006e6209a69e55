package claude

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteContext(&buf, "cached: 3 handlers in internal/auth"); err != nil {
		t.Fatalf("WriteContext() error = %v", err)
	}

	var out struct {
		HookSpecificOutput struct {
			HookEventName     string `json:"hookEventName"`
			AdditionalContext string `json:"additionalContext"`
		} `json:"hookSpecificOutput"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.HookSpecificOutput.HookEventName != "PreToolUse" {
		t.Errorf("hookEventName = %q, want PreToolUse", out.HookSpecificOutput.HookEventName)
	}
	if !strings.Contains(out.HookSpecificOutput.AdditionalContext, "3 handlers") {
		t.Errorf("additionalContext = %q", out.HookSpecificOutput.AdditionalContext)
	}
}
