// Package mcp exposes the icon library to Model Context Protocol clients.
//
// Every icon is published as a resource at icon://{set}/{id} with an
// image/svg+xml payload. A resource template accepts set and icon aliases,
// and tools look icons up, list sets, and pick deterministic defaults. The
// server runs over stdio or streamable HTTP.
package mcp
