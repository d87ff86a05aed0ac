// Package spec loads subdivision project files: the site polygon,
// optional exclusion polygon, and the engine configuration.
package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}

	return &project, nil
}

// LoadProject loads a project from a directory. It looks for site.yaml
// in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, "site.yaml"))
}
