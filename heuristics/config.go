// Package heuristics holds the tunable weight vector and play style
// consumed by the move-ranking and search code. Every weight is
// independently optional; a nil field defers to the engine default.
package heuristics

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Engine default weights.
const (
	DefaultRevealBonus            = 5
	DefaultEmptyColumnBonus       = 2
	DefaultEarlyFoundationPenalty = -3
	DefaultKeepKingBonus          = 1
	DefaultDeadlockPenalty        = -10
	DefaultLongColumnBonus        = 3
	DefaultChainBonus             = 2
	DefaultAggressiveCoef         = 1
	DefaultConservativeCoef       = -1
	DefaultNeutralCoef            = 0
)

// Config is the ten-field optional weight vector. Unset (nil) and zero
// are distinct: nil means "use the engine default", zero disables the
// weight.
type Config struct {
	RevealBonus            *int `json:"reveal_bonus"`
	EmptyColumnBonus       *int `json:"empty_column_bonus"`
	EarlyFoundationPenalty *int `json:"early_foundation_penalty"`
	KeepKingBonus          *int `json:"keep_king_bonus"`
	DeadlockPenalty        *int `json:"deadlock_penalty"`
	LongColumnBonus        *int `json:"long_column_bonus"`
	ChainBonus             *int `json:"chain_bonus"`
	AggressiveCoef         *int `json:"aggressive_coef"`
	ConservativeCoef       *int `json:"conservative_coef"`
	NeutralCoef            *int `json:"neutral_coef"`
}

// FromJSON builds a Config from a flat weights document. Keys that are
// absent stay nil; keys outside the ten known names are ignored.
func FromJSON(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing weights document: %w", err)
	}
	return cfg, nil
}

// setters maps each known field name to a typed assignment. A table
// lookup, rather than reflection, is what rejects unknown names.
var setters = map[string]func(*Config, int){
	"reveal_bonus":             func(c *Config, v int) { c.RevealBonus = &v },
	"empty_column_bonus":       func(c *Config, v int) { c.EmptyColumnBonus = &v },
	"early_foundation_penalty": func(c *Config, v int) { c.EarlyFoundationPenalty = &v },
	"keep_king_bonus":          func(c *Config, v int) { c.KeepKingBonus = &v },
	"deadlock_penalty":         func(c *Config, v int) { c.DeadlockPenalty = &v },
	"long_column_bonus":        func(c *Config, v int) { c.LongColumnBonus = &v },
	"chain_bonus":              func(c *Config, v int) { c.ChainBonus = &v },
	"aggressive_coef":          func(c *Config, v int) { c.AggressiveCoef = &v },
	"conservative_coef":        func(c *Config, v int) { c.ConservativeCoef = &v },
	"neutral_coef":             func(c *Config, v int) { c.NeutralCoef = &v },
}

// Set overwrites a single field. Unknown field names and unparsable
// values return an error and leave the config untouched.
func (c *Config) Set(field, value string) error {
	setter, ok := setters[field]
	if !ok {
		return fmt.Errorf("unknown field: %s", field)
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("value %q is not an integer", value)
	}
	setter(c, v)
	return nil
}

// Fields returns the ten recognized field names.
func Fields() []string {
	return []string{
		"reveal_bonus", "empty_column_bonus", "early_foundation_penalty",
		"keep_king_bonus", "deadlock_penalty", "long_column_bonus",
		"chain_bonus", "aggressive_coef", "conservative_coef", "neutral_coef",
	}
}

// Weights is a fully resolved weight vector.
type Weights struct {
	RevealBonus            int
	EmptyColumnBonus       int
	EarlyFoundationPenalty int
	KeepKingBonus          int
	DeadlockPenalty        int
	LongColumnBonus        int
	ChainBonus             int
	AggressiveCoef         int
	ConservativeCoef       int
	NeutralCoef            int
}

func orDefault(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// Resolve replaces every unset field with its engine default. A nil
// receiver resolves to all defaults.
func (c *Config) Resolve() Weights {
	if c == nil {
		c = &Config{}
	}
	return Weights{
		RevealBonus:            orDefault(c.RevealBonus, DefaultRevealBonus),
		EmptyColumnBonus:       orDefault(c.EmptyColumnBonus, DefaultEmptyColumnBonus),
		EarlyFoundationPenalty: orDefault(c.EarlyFoundationPenalty, DefaultEarlyFoundationPenalty),
		KeepKingBonus:          orDefault(c.KeepKingBonus, DefaultKeepKingBonus),
		DeadlockPenalty:        orDefault(c.DeadlockPenalty, DefaultDeadlockPenalty),
		LongColumnBonus:        orDefault(c.LongColumnBonus, DefaultLongColumnBonus),
		ChainBonus:             orDefault(c.ChainBonus, DefaultChainBonus),
		AggressiveCoef:         orDefault(c.AggressiveCoef, DefaultAggressiveCoef),
		ConservativeCoef:       orDefault(c.ConservativeCoef, DefaultConservativeCoef),
		NeutralCoef:            orDefault(c.NeutralCoef, DefaultNeutralCoef),
	}
}

// StyleCoef returns the additive coefficient the given style
// contributes to every move score.
func (w Weights) StyleCoef(s Style) int {
	switch s {
	case StyleAggressive:
		return w.AggressiveCoef
	case StyleConservative:
		return w.ConservativeCoef
	default:
		return w.NeutralCoef
	}
}
