// Package claude adapts Claude Code hook events to cache lookups.
//
// Claude Code pipes a JSON event to hook commands on stdin. This package
// parses those events and derives the cache instance, query, and scope
// for the tool being invoked, so that `recall hook pre-tool` can answer
// from cache and `recall hook post-tool` can store fresh results.
package claude
