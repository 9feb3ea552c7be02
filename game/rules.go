package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules collects the numeric knobs of a game. Defaults reproduce the
// standard ruleset; a YAML file can override any subset for experiments.
type Rules struct {
	VictoryTarget  int `yaml:"victory_target"`
	HandLimit      int `yaml:"hand_limit"`
	LongestRoadMin int `yaml:"longest_road_min"`
	LargestArmyMin int `yaml:"largest_army_min"`

	SettlementStock int `yaml:"settlement_stock"`
	CityStock       int `yaml:"city_stock"`
	RoadStock       int `yaml:"road_stock"`

	MinPlayers int `yaml:"min_players"`
	MaxPlayers int `yaml:"max_players"`
}

// DefaultRules returns the standard ruleset.
func DefaultRules() Rules {
	return Rules{
		VictoryTarget:   10,
		HandLimit:       7,
		LongestRoadMin:  5,
		LargestArmyMin:  3,
		SettlementStock: 5,
		CityStock:       4,
		RoadStock:       15,
		MinPlayers:      2,
		MaxPlayers:      4,
	}
}

// LoadRules reads a YAML rules file, overlaying it on the defaults so a
// file needs to name only the knobs it changes.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("reading rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}

// Validate rejects rule sets the engine cannot run.
func (r Rules) Validate() error {
	if r.VictoryTarget < 3 {
		return fmt.Errorf("victory target %d too low", r.VictoryTarget)
	}
	if r.HandLimit < 1 {
		return fmt.Errorf("hand limit %d too low", r.HandLimit)
	}
	if r.LongestRoadMin < 1 || r.LargestArmyMin < 1 {
		return fmt.Errorf("bonus thresholds must be positive")
	}
	if r.SettlementStock < 2 {
		return fmt.Errorf("settlement stock %d cannot cover setup", r.SettlementStock)
	}
	if r.RoadStock < 2 {
		return fmt.Errorf("road stock %d cannot cover setup", r.RoadStock)
	}
	if r.CityStock < 0 {
		return fmt.Errorf("city stock %d negative", r.CityStock)
	}
	if r.MinPlayers < 2 || r.MaxPlayers < r.MinPlayers {
		return fmt.Errorf("player bounds %d..%d invalid", r.MinPlayers, r.MaxPlayers)
	}
	return nil
}
