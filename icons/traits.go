package icons

import (
	"strconv"
	"strings"
)

// Level is a Big Five domain level on a 1-5 scale. The zero value means the
// icon does not encode the domain.
type Level uint8

const (
	LevelUndefined Level = iota
	LevelVeryLow
	LevelLow
	LevelMedium
	LevelHigh
	LevelVeryHigh
)

// String returns the human-readable level name.
func (l Level) String() string {
	switch l {
	case LevelVeryLow:
		return "very low"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very high"
	default:
		return "undefined"
	}
}

// Valid reports whether l is undefined or on the 1-5 scale.
func (l Level) Valid() bool {
	return l <= LevelVeryHigh
}

// Traits is the Big Five annotation an icon encodes.
type Traits struct {
	Agreeableness     Level
	Conscientiousness Level
	Extraversion      Level
	Neuroticism       Level
	Openness          Level
}

// Defined reports whether every domain carries a level.
func (t Traits) Defined() bool {
	for _, level := range t.levels() {
		if level == LevelUndefined {
			return false
		}
	}
	return true
}

// String renders the annotation as "A4 C4 E3 N3 O4", or "-" when the icon
// does not encode traits.
func (t Traits) String() string {
	if !t.Defined() {
		return "-"
	}
	var builder strings.Builder
	for i, level := range t.levels() {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteByte("ACENO"[i])
		builder.WriteString(strconv.Itoa(int(level)))
	}
	return builder.String()
}

func (t Traits) levels() [5]Level {
	return [5]Level{t.Agreeableness, t.Conscientiousness, t.Extraversion, t.Neuroticism, t.Openness}
}

// scores builds a Traits value in the A C E N O order the artwork notes use.
func scores(a, c, e, n, o Level) Traits {
	return Traits{
		Agreeableness:     a,
		Conscientiousness: c,
		Extraversion:      e,
		Neuroticism:       n,
		Openness:          o,
	}
}
