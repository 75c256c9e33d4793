// mcp-abstract exposes the Abstract API product suite through the
// Model Context Protocol.
//
// Abstract API ships a dozen small REST products: email, phone and VAT
// validation, IP geolocation, timezones, public holidays, exchange
// rates, company enrichment, web scraping and screenshots. Each one is
// a single GET with a per-product API key. This server wraps every
// product into an MCP tool so agents can call them directly.
//
// Tool itself is organized into 2 logical parts:
//
// Abstractapi
//
// abstractapi is the typed client. One method per product, one shared
// normalization layer which sorts responses into JSON documents or raw
// bytes by content type, and one structured error shape for every
// remote or transport failure.
//
// Tools
//
// tools maps client methods onto MCP tool definitions. It keeps a
// registry of one client per product because Abstract API issues a
// separate key for each, and serves the result over stdio or
// streamable HTTP with a /health probe.
package main
