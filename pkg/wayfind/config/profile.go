package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Algorithm names accepted in a Profile.
const (
	AlgorithmBreadthFirst       = "breadth-first"
	AlgorithmDepthFirst         = "depth-first"
	AlgorithmDepthLimited       = "depth-limited"
	AlgorithmIterativeDeepening = "iterative-deepening"
	AlgorithmDijkstra           = "dijkstra"
	AlgorithmAStar              = "astar"
	AlgorithmAndOr              = "and-or"
)

// Sentinel errors for profile validation.
var (
	// ErrUnknownAlgorithm indicates a profile names no known algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidProfile indicates a profile field is out of range.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Profile is a declarative search-tuning document. It names the algorithm
// and its knobs so deployments can switch search strategies from a YAML
// file rather than a rebuild.
//
// Example:
//
//	algorithm: astar
//	max_expansions: 50000
//	heuristic_weight: 1.0
//	search_id: route-planner
type Profile struct {
	// Algorithm is one of the Algorithm* constants.
	Algorithm string `yaml:"algorithm" json:"algorithm"`

	// DepthLimit is the ceiling for depth-limited search. Ignored by the
	// other algorithms.
	DepthLimit int `yaml:"depth_limit" json:"depth_limit"`

	// MaxExpansions bounds a Run call. Zero means the library default.
	MaxExpansions int `yaml:"max_expansions" json:"max_expansions"`

	// HeuristicWeight scales the heuristic estimate for weighted A*.
	// Zero means 1.0 (unweighted); values above 1.0 trade optimality for
	// speed.
	HeuristicWeight float64 `yaml:"heuristic_weight" json:"heuristic_weight"`

	// SearchID overrides the generated search identifier. Empty means a
	// random UUID.
	SearchID string `yaml:"search_id" json:"search_id"`
}

// validAlgorithms is the set Validate accepts.
var validAlgorithms = map[string]struct{}{
	AlgorithmBreadthFirst:       {},
	AlgorithmDepthFirst:         {},
	AlgorithmDepthLimited:       {},
	AlgorithmIterativeDeepening: {},
	AlgorithmDijkstra:           {},
	AlgorithmAStar:              {},
	AlgorithmAndOr:              {},
}

// Validate checks the profile's fields for consistency.
func (p Profile) Validate() error {
	if _, ok := validAlgorithms[p.Algorithm]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, p.Algorithm)
	}
	if p.DepthLimit < 0 {
		return fmt.Errorf("%w: depth_limit %d is negative", ErrInvalidProfile, p.DepthLimit)
	}
	if p.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d is negative", ErrInvalidProfile, p.MaxExpansions)
	}
	if p.HeuristicWeight < 0 {
		return fmt.Errorf("%w: heuristic_weight %g is negative", ErrInvalidProfile, p.HeuristicWeight)
	}
	if p.HeuristicWeight != 0 && p.Algorithm != AlgorithmAStar {
		return fmt.Errorf("%w: heuristic_weight applies only to %s", ErrInvalidProfile, AlgorithmAStar)
	}
	return nil
}

// ProfileFromYAML parses and validates a profile from YAML data.
func ProfileFromYAML(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// ProfileFromFile loads and validates a profile from a YAML file.
func ProfileFromFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile file: %w", err)
	}
	return ProfileFromYAML(data)
}
