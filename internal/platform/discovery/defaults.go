// Package discovery centralizes the default listen addresses of the icon
// services.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceIconHTTP is the icon HTTP API identity.
	ServiceIconHTTP = "iconserver"
	// ServiceIconMCP is the icon MCP HTTP transport identity.
	ServiceIconMCP = "iconmcp"
)

// defaultHost keeps every default bind on loopback.
const defaultHost = "localhost"

var httpPorts = map[string]int{
	ServiceIconHTTP: 8090,
	ServiceIconMCP:  8091,
}

// DefaultHTTPAddr returns the default loopback HTTP address for a service, or
// "" for unknown services.
func DefaultHTTPAddr(service string) string {
	port, ok := httpPorts[strings.TrimSpace(service)]
	if !ok || port <= 0 {
		return ""
	}
	return defaultHost + ":" + strconv.Itoa(port)
}

// OrDefaultHTTPAddr returns value when set, otherwise the service convention.
func OrDefaultHTTPAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultHTTPAddr(service)
}
