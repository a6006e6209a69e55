package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/claude"
	"github.com/raphi011/recall/internal/log"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hook",
		Short:   "Claude Code hook adapters",
		GroupID: GroupHook,
		Long: `Adapters for Claude Code tool hooks. Register them in settings.json:

  "hooks": {
    "PreToolUse": [{"matcher": "Task|WebFetch|WebSearch",
                    "hooks": [{"type": "command", "command": "recall hook pre-tool"}]}],
    "PostToolUse": [{"matcher": "Task|WebFetch|WebSearch",
                     "hooks": [{"type": "command", "command": "recall hook post-tool"}]}]
  }

pre-tool answers a matching tool call from cache by injecting the cached
summary as additional context; post-tool stores fresh results. Both read
the hook event JSON from stdin and exit 0 on any parse problem, so a
broken cache never blocks the session.`,
	}

	cmd.AddCommand(newHookPreToolCmd())
	cmd.AddCommand(newHookPostToolCmd())

	return cmd
}

func newHookPreToolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pre-tool",
		Short: "Answer a tool call from cache (PreToolUse)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			event, err := claude.ParseEvent(os.Stdin)
			if err != nil {
				logger.Debug("ignoring event", "err", err)
				return nil
			}

			req, ok := event.Request()
			if !ok {
				return nil
			}

			svc, err := newService(req.Cache)
			if err != nil {
				logger.Debug("ignoring event", "err", err)
				return nil
			}

			entry, hit := svc.Lookup(req.Query, req.Scope)
			if !hit {
				return nil
			}

			logger.Debug("answering from cache", "cache", req.Cache, "hits", entry.HitCount)
			return claude.WriteContext(os.Stdout, "Cached result for a similar request:\n\n"+entry.Summary)
		},
	}
}

func newHookPostToolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post-tool",
		Short: "Store a tool result in cache (PostToolUse)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			event, err := claude.ParseEvent(os.Stdin)
			if err != nil {
				logger.Debug("ignoring event", "err", err)
				return nil
			}

			req, ok := event.Request()
			if !ok {
				return nil
			}

			summary := event.Summary()
			if summary == "" {
				return nil
			}

			svc, err := newService(req.Cache)
			if err != nil {
				logger.Debug("ignoring event", "err", err)
				return nil
			}

			svc.Store(req.Query, req.Scope, summary)
			logger.Debug("stored tool result", "cache", req.Cache, "bytes", len(summary))
			return nil
		},
	}
}
