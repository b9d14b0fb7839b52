package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "sqlsubstr.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "sqlsubstr.yml"

// dialectFile is the shape of a standalone dialect rule file.
type dialectFile struct {
	Dialects []DialectConfig `koanf:"dialects"`
}

// LoadDialectFile loads custom dialect rules from a YAML file with a
// top-level `dialects:` list.
func LoadDialectFile(path string) ([]DialectConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading dialect file %s: %w", path, err)
	}

	var f dialectFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("unable to decode dialect file %s: %w", path, err)
	}

	for i := range f.Dialects {
		ApplyDefaults(&f.Dialects[i])
		if err := f.Dialects[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return f.Dialects, nil
}

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing sqlsubstr.yaml or sqlsubstr.yml, at most maxLevels levels up.
// Returns empty string if not found.
func FindProjectRoot(startDir string, maxLevels int) string {
	dir := startDir
	for i := 0; i <= maxLevels; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
	return ""
}
