package heuristics

import "errors"

// Style biases move ranking toward or away from risky play.
type Style int

const (
	StyleNeutral Style = iota
	StyleAggressive
	StyleConservative
)

func (s Style) String() string {
	switch s {
	case StyleAggressive:
		return "aggressive"
	case StyleConservative:
		return "conservative"
	}
	return "neutral"
}

// StyleFromString validates a style name against the three known values.
func StyleFromString(name string) (Style, error) {
	switch name {
	case "aggressive":
		return StyleAggressive, nil
	case "conservative":
		return StyleConservative, nil
	case "neutral":
		return StyleNeutral, nil
	}
	return StyleNeutral, errors.New("style " + name + " is not a valid choice")
}
