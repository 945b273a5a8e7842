// Package metrics provides operational metrics collection.
//
// Counters are registered on the default Prometheus registry at package init
// and exposed through promhttp.Handler by the HTTP transport.
//
// # Metric Families
//
//   - persona_icons_lookups_total{set,result}: icon lookups by outcome
//   - persona_icons_default_picks_total{set}: deterministic default picks
//   - persona_icons_exported_files_total{kind}: files written by iconexport
//
// Label values are bounded: set is always a canonical set id or "unknown",
// result is one of the Result constants.
package metrics
