package advisor

import (
	"os"
	"path/filepath"
	"testing"
)

const modulesYAML = `
modules:
  - id: use-network
    title: Use your network
    scoring_model: strategy-use-network
  - id: driving-license
    title: Get a driving license
    scoring_model: strategy-driving-license(car)
    triggers:
      - not-for-handicaped
`

func writeModulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing modules file: %v", err)
	}
	return path
}

func TestLoadModules(t *testing.T) {
	t.Parallel()

	modules, err := LoadModules(writeModulesFile(t, modulesYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].ID != "use-network" || modules[0].ScoringModel != "strategy-use-network" {
		t.Fatalf("unexpected first module: %+v", modules[0])
	}
	if len(modules[1].Triggers) != 1 || modules[1].Triggers[0] != "not-for-handicaped" {
		t.Fatalf("unexpected triggers: %+v", modules[1].Triggers)
	}
}

func TestLoadModulesRequiresID(t *testing.T) {
	t.Parallel()

	if _, err := LoadModules(writeModulesFile(t, "modules:\n  - title: No id\n")); err == nil {
		t.Fatalf("expected an error for a module without id")
	}
}
