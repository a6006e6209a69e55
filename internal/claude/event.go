package claude

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/raphi011/recall/internal/config"
)

// Tool names recall knows how to cache.
const (
	ToolTask      = "Task"
	ToolWebFetch  = "WebFetch"
	ToolWebSearch = "WebSearch"
)

// Event is the JSON payload Claude Code pipes to hook commands on stdin.
// ToolResponse is only present on PostToolUse events.
type Event struct {
	SessionID     string          `json:"session_id"`
	CWD           string          `json:"cwd"`
	HookEventName string          `json:"hook_event_name"`
	ToolName      string          `json:"tool_name"`
	ToolInput     json.RawMessage `json:"tool_input"`
	ToolResponse  json.RawMessage `json:"tool_response"`
}

// ParseEvent decodes a hook event from r.
func ParseEvent(r io.Reader) (*Event, error) {
	var e Event
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("failed to parse hook event: %w", err)
	}
	if e.ToolName == "" {
		return nil, fmt.Errorf("hook event has no tool_name")
	}
	return &e, nil
}

// Request is the cache lookup derived from an event.
type Request struct {
	Cache string // cache instance name
	Query string // what the tool was asked to do
	Scope string // partition key (working dir or canonical URL)
}

// taskInput mirrors the Task tool's input fields we care about.
type taskInput struct {
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

// webFetchInput mirrors the WebFetch tool's input fields.
type webFetchInput struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// webSearchInput mirrors the WebSearch tool's input fields.
type webSearchInput struct {
	Query string `json:"query"`
}

// Request derives the cache request for the event's tool. Returns false
// for tools recall doesn't cache.
func (e *Event) Request() (Request, bool) {
	switch e.ToolName {
	case ToolTask:
		var in taskInput
		if err := json.Unmarshal(e.ToolInput, &in); err != nil {
			return Request{}, false
		}
		query := in.Prompt
		if query == "" {
			query = in.Description
		}
		if query == "" {
			return Request{}, false
		}
		return Request{Cache: config.CacheExploration, Query: query, Scope: e.CWD}, true

	case ToolWebFetch:
		var in webFetchInput
		if err := json.Unmarshal(e.ToolInput, &in); err != nil {
			return Request{}, false
		}
		if in.URL == "" {
			return Request{}, false
		}
		query := in.Prompt
		if query == "" {
			query = in.URL
		}
		return Request{Cache: config.CacheWebFetch, Query: query, Scope: CanonicalURL(in.URL)}, true

	case ToolWebSearch:
		var in webSearchInput
		if err := json.Unmarshal(e.ToolInput, &in); err != nil || in.Query == "" {
			return Request{}, false
		}
		// Search results aren't tied to a page, so they share one scope.
		return Request{Cache: config.CacheWebFetch, Query: in.Query, Scope: "search"}, true
	}

	return Request{}, false
}

// Summary extracts the textual result from a PostToolUse tool_response.
// Claude Code tools disagree on response shape, so several are tried.
func (e *Event) Summary() string {
	if len(e.ToolResponse) == 0 {
		return ""
	}

	// Plain string response.
	var s string
	if err := json.Unmarshal(e.ToolResponse, &s); err == nil {
		return strings.TrimSpace(s)
	}

	// Object with a known text field.
	var obj struct {
		Result  string `json:"result"`
		Output  string `json:"output"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(e.ToolResponse, &obj); err != nil {
		return ""
	}
	if obj.Result != "" {
		return strings.TrimSpace(obj.Result)
	}
	if obj.Output != "" {
		return strings.TrimSpace(obj.Output)
	}
	var b strings.Builder
	for _, c := range obj.Content {
		if c.Type == "text" && c.Text != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(c.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// CanonicalURL normalizes a URL for use as a scope: lowercased scheme
// and host, default ports and fragments stripped, trailing slash on the
// path removed. Unparseable URLs are returned as-is.
func CanonicalURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if (u.Scheme == "http" && strings.HasSuffix(u.Host, ":80")) ||
		(u.Scheme == "https" && strings.HasSuffix(u.Host, ":443")) {
		u.Host = u.Host[:strings.LastIndex(u.Host, ":")]
	}

	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}
