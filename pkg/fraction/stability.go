package fraction

import "strings"

// StabilityLevel classifies how settled a fraction's API and behavior are.
// Levels are ordered from least to most settled.
type StabilityLevel int

const (
	StabilityDeprecated StabilityLevel = iota
	StabilityExperimental
	StabilityUnstable
	StabilityStable
	StabilityFrozen
	StabilityLocked
)

var stabilityNames = [...]string{
	StabilityDeprecated:   "deprecated",
	StabilityExperimental: "experimental",
	StabilityUnstable:     "unstable",
	StabilityStable:       "stable",
	StabilityFrozen:       "frozen",
	StabilityLocked:       "locked",
}

// ParseStability parses a stability level name, case-insensitively.
// Unrecognized or empty input yields [StabilityUnstable]; this never fails.
func ParseStability(s string) StabilityLevel {
	name := strings.ToLower(strings.TrimSpace(s))
	for level, n := range stabilityNames {
		if n == name {
			return StabilityLevel(level)
		}
	}
	return StabilityUnstable
}

// String returns the lowercase level name.
func (l StabilityLevel) String() string {
	if l < 0 || int(l) >= len(stabilityNames) {
		return "unstable"
	}
	return stabilityNames[l]
}

// Index returns the numeric position of the level, for consumers that sort
// or threshold by stability.
func (l StabilityLevel) Index() int {
	return int(l)
}
