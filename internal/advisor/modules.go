package advisor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AdviceModule is one advice card of the catalog. Triggers lists scoring
// model names; the card is recommended when every trigger scores positive,
// and ScoringModel (when set) names the model providing the card's own score
// and extra data.
type AdviceModule struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	ScoringModel string   `yaml:"scoring_model"`
	Triggers     []string `yaml:"triggers"`
}

// LoadModules reads the advice-card catalog from a YAML file.
func LoadModules(path string) ([]*AdviceModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading modules file: %w", err)
	}

	var catalog struct {
		Modules []*AdviceModule `yaml:"modules"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing modules file %q: %w", path, err)
	}

	for i, module := range catalog.Modules {
		if module == nil || module.ID == "" {
			return nil, fmt.Errorf("module %d in %q has no id", i, path)
		}
	}

	return catalog.Modules, nil
}
