// This package exposes the abstractapi client as MCP tools.
//
// Abstract API issues a separate key per product, so the Registry
// keeps one client per logical service name ("email", "ip", ...) and
// resolves the key from ABSTRACT_<SERVICE>_API_KEY on first use. Tool
// handlers are thin: resolve the client, call the one method, log the
// failure at the boundary and pass it up unchanged.
package tools
