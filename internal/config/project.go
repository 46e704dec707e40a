package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the optional per-project manifest name, read from
// the directory containing the entrypoint source file (spec §6's
// "external collaborators, touched only through named interfaces").
const ProjectFileName = "rei.yaml"

// Project is the subset of a rei.yaml manifest the CLI cares about: a
// short name for diagnostics and a strict flag that upgrades an
// unresolved top-level-looking variable reference from a deferred
// runtime lookup into a hard resolver error (wired into
// internal/resolver's Options.Strict by the caller).
type Project struct {
	Name   string `yaml:"name"`
	Strict bool   `yaml:"strict,omitempty"`
}

// LoadProject looks for rei.yaml next to entrypoint and parses it. A
// missing file is not an error — it returns a zero-value Project with
// Strict false, the permissive default.
func LoadProject(entrypoint string) (Project, error) {
	dir := filepath.Dir(entrypoint)
	path := filepath.Join(dir, ProjectFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Project{}, nil
		}
		return Project{}, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}
