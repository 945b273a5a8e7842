package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels a lookup outcome.
type Result string

const (
	ResultHit        Result = "hit"
	ResultMiss       Result = "miss"
	ResultInvalid    Result = "invalid"
	ResultUnknownSet Result = "unknown_set"
)

const (
	// UnknownSetLabel replaces an empty set label.
	UnknownSetLabel = "unknown"

	ExportKindSVG     = "svg"
	ExportKindCatalog = "catalog"
	ExportKindDataURI = "datauri"
	ExportKindIndex   = "index"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persona_icons_lookups_total",
		Help: "Icon lookups by set and outcome",
	}, []string{"set", "result"}) // result=hit|miss|invalid|unknown_set

	defaultPicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persona_icons_default_picks_total",
		Help: "Deterministic default icon picks by set",
	}, []string{"set"})

	exportedFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "persona_icons_exported_files_total",
		Help: "Files written by the export tool by kind",
	}, []string{"kind"}) // kind=svg|catalog|datauri|index
)

// RecordLookup counts one icon lookup. An empty set is recorded as "unknown".
func RecordLookup(set string, result Result) {
	lookupsTotal.WithLabelValues(setLabel(set), string(result)).Inc()
}

// RecordDefaultPick counts one deterministic default pick.
func RecordDefaultPick(set string) {
	defaultPicksTotal.WithLabelValues(setLabel(set)).Inc()
}

// RecordExportedFile counts one exported file.
func RecordExportedFile(kind string) {
	exportedFilesTotal.WithLabelValues(kind).Inc()
}

func setLabel(set string) string {
	if set == "" {
		return UnknownSetLabel
	}
	return set
}
