// Package icons exposes the persona icon collections as immutable, embedded
// SVG payloads.
//
// Three collections ship with the library: the generic personality
// archetypes, the Green Ember character set, and the meta icons used as
// collection selector glyphs. Every payload is a self-contained SVG document
// on a 100x100 viewBox with its gradient and filter ids prefixed per icon, so
// any number of icons can be inlined into one page without id collisions.
//
// Payloads are returned byte-for-byte as authored. Callers embed them into a
// document, write them to a .svg file, or turn them into an image source with
// DataURI. Lookups of unknown identifiers fail with ErrNotFound; there is no
// fallback icon.
//
// Each icon also carries a Definition with its display name, a short
// description of the composition, and the Big Five trait annotation the
// artwork encodes (posture for extraversion, color temperature for
// agreeableness, line precision for conscientiousness, context for
// neuroticism, prop complexity for openness). The annotations are
// descriptive; nothing in this package scores or matches traits.
package icons
