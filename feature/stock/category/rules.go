package category

import (
	"fmt"

	"github.com/spf13/viper"
)

// Rules bundles the categorization configuration for both sources.
type Rules struct {
	// ReflexMapping maps a Reflex quality code to a category.
	ReflexMapping map[string]string `mapstructure:"reflex_mapping"`
	// M3Rules is the ordered warehouse rule list.
	M3Rules []M3Rule `mapstructure:"m3_rules"`
}

// LoadRules reads the categorization rules from a YAML file.
func LoadRules(path string) (*Rules, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var rules Rules
	if err := v.Unmarshal(&rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	for i, r := range rules.M3Rules {
		if r.Category == "" {
			return nil, fmt.Errorf("m3 rule %d has no category", i)
		}
		if len(r.DepotIn) == 0 {
			return nil, fmt.Errorf("m3 rule %d (%s) has an empty depot set", i, r.Category)
		}
	}

	return &rules, nil
}
