package advisor

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/spigell/job-advisor/internal/hydrate"
)

// Subject is everything the scoring engine knows about one evaluation
// target: the project, the user behind it and their experiment flags.
type Subject struct {
	Profile         UserProfile     `mapstructure:"profile" yaml:"profile"`
	Project         Project         `mapstructure:"project" yaml:"project"`
	FeaturesEnabled FeaturesEnabled `mapstructure:"features_enabled" yaml:"features_enabled"`
}

// LoadSubject reads a subject from a YAML file. A project without an id gets
// a generated one so that per-subject stable scoring has a seed.
func LoadSubject(path string) (*Subject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading subject file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing subject file %q: %w", path, err)
	}

	subject := &Subject{}
	merged, err := hydrate.Hydrate(raw, subject)
	if err != nil {
		return nil, fmt.Errorf("decoding subject file %q: %w", path, err)
	}
	if !merged {
		return nil, fmt.Errorf("subject file %q contains no usable data", path)
	}

	if subject.Project.ID == "" {
		subject.Project.ID = uuid.NewString()
	}

	return subject, nil
}
