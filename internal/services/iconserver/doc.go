// Package iconserver serves the persona icon library to remote callers.
//
// The service package resolves set and icon identifiers through the icon set
// manifest and returns domain errors. Transports (HTTP in transport/http, MCP
// in mcp) only translate requests and responses; app owns listener lifecycle.
package iconserver
