package strategy

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"dilemma/game"
)

// Spec describes one roster entry in the configuration file. Kind selects
// the strategy; the remaining fields apply only to the matching kind.
type Spec struct {
	Kind          string  `yaml:"kind"`           // constant|titfortat|threshold
	CooperateProb float64 `yaml:"cooperate_prob"` // constant
	Default       string  `yaml:"default"`        // titfortat: cooperate|defect
	Delay         int     `yaml:"delay"`          // titfortat
	Start         int     `yaml:"start"`          // threshold
	CoopThresh    float64 `yaml:"coop_thresh"`    // threshold
}

// Build constructs the roster described by specs. Stochastic strategies
// draw from rng. Roster order is preserved; it determines score matrix
// indexing and tie-breaking in the final ranking.
func Build(specs []Spec, rng *rand.Rand) ([]Strategy, error) {
	if len(specs) == 0 {
		return nil, errors.New("empty roster")
	}
	roster := make([]Strategy, 0, len(specs))
	for i, s := range specs {
		switch strings.ToLower(s.Kind) {
		case "constant":
			if s.CooperateProb < 0 || s.CooperateProb > 1 {
				return nil, errors.Errorf("strategy %d: cooperate_prob %v outside [0, 1]", i, s.CooperateProb)
			}
			roster = append(roster, NewConstant(s.CooperateProb, rng))
		case "titfortat":
			def, err := parseMove(s.Default)
			if err != nil {
				return nil, errors.Wrapf(err, "strategy %d", i)
			}
			if s.Delay < 1 {
				return nil, errors.Errorf("strategy %d: delay %d must be at least 1", i, s.Delay)
			}
			roster = append(roster, NewTitForTat(def, s.Delay))
		case "threshold":
			if s.Start < 0 {
				return nil, errors.Errorf("strategy %d: start %d must not be negative", i, s.Start)
			}
			if s.CoopThresh < 0 || s.CoopThresh > 1 {
				return nil, errors.Errorf("strategy %d: coop_thresh %v outside [0, 1]", i, s.CoopThresh)
			}
			roster = append(roster, NewThreshold(s.Start, s.CoopThresh))
		default:
			return nil, errors.Errorf("strategy %d: unknown kind %q", i, s.Kind)
		}
	}
	return roster, nil
}

func parseMove(s string) (game.Move, error) {
	switch strings.ToLower(s) {
	case "cooperate":
		return game.Cooperate, nil
	case "defect":
		return game.Defect, nil
	default:
		return game.Cooperate, errors.Errorf("unknown move %q", s)
	}
}

// DefaultSpecs is the reference roster: five constant cooperators of
// varying generosity, nice and nasty reciprocators with one- and two-turn
// lags, and four frequency-threshold graders.
func DefaultSpecs() []Spec {
	return []Spec{
		{Kind: "constant", CooperateProb: 0},
		{Kind: "constant", CooperateProb: 0.125},
		{Kind: "constant", CooperateProb: 0.25},
		{Kind: "constant", CooperateProb: 0.5},
		{Kind: "constant", CooperateProb: 1},
		{Kind: "titfortat", Default: "cooperate", Delay: 1},
		{Kind: "titfortat", Default: "cooperate", Delay: 2},
		{Kind: "titfortat", Default: "defect", Delay: 1},
		{Kind: "titfortat", Default: "defect", Delay: 2},
		{Kind: "threshold", Start: 10, CoopThresh: 0.5},
		{Kind: "threshold", Start: 10, CoopThresh: 0.7},
		{Kind: "threshold", Start: 20, CoopThresh: 0.5},
		{Kind: "threshold", Start: 20, CoopThresh: 0.7},
	}
}
