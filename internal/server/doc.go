// Package server implements the MCP (Model Context Protocol) server for the plate reader.
//
// This package provides a JSON-RPC 2.0 server that exposes plate reading through the
// MCP protocol, so MCP-compatible clients can read, correct and classify vehicle
// registration plates one image or one string at a time.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Logs must therefore go to stderr or a file.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image tools:
//   - plate_read: Detect and normalize the plates in an image
//   - plate_annotate: Same as plate_read, and write an annotated PNG
//
// Text tools:
//   - plate_correct: Apply misread corrections to a string
//   - plate_resolve_region: Map a plate prefix to its region
//   - plate_regions: List the region code table
//
// Engine:
//   - cache_clear: Drop one or all cached photos
//   - ocr_info: Detector backend and availability
//
// # Image Caching
//
// Decoded images are cached by path, so plate_read followed by
// plate_annotate on the same file decodes it once. The cache holds
// Options.CacheSize photos and drops the oldest beyond that; cache_clear
// empties it when files change on disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.Options{Detector: det, Logger: log})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal().Err(err).Msg("server stopped")
//	}
package server
