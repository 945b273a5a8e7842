// Package http exposes the icon service over plain HTTP.
//
// Routes are registered on a net/http.ServeMux using method and wildcard
// patterns:
//
//	GET /icons                       set summaries
//	GET /icons/{set}                 set definitions
//	GET /icons/{set}/default         redirect to an entity's default icon
//	GET /icons/{set}/{id}.svg        icon payload
//	GET /icons/{set}/{id}.json       icon definition
//	GET /healthz                     liveness
//	GET /metrics                     Prometheus metrics
//
// Errors are rendered as JSON with a localized message chosen from the
// request's Accept-Language header.
package http
