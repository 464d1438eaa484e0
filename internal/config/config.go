package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	InputDir   string           `yaml:"inputDir" json:"inputDir"`
	OutputDir  string           `yaml:"outputDir" json:"outputDir"`
	Document   DocumentConfig   `yaml:"document" json:"document"`
	Classifier ClassifierConfig `yaml:"classifier" json:"classifier"`
}

// DocumentConfig describes the expected document vocabulary.
type DocumentConfig struct {
	Namespace string `yaml:"namespace" json:"namespace"`
}

// ClassifierConfig declares the classification tables. Visualization kinds
// and recognized bindings are added here, not in code.
type ClassifierConfig struct {
	VisualizationSuffixes []string `yaml:"visualizationSuffixes" json:"visualizationSuffixes"`
	BindingFields         []string `yaml:"bindingFields" json:"bindingFields"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		InputDir:  DefaultInputDir,
		OutputDir: DefaultOutputDir,
		Document:  DocumentConfig{Namespace: DefaultNamespace},
		Classifier: ClassifierConfig{
			VisualizationSuffixes: DefaultVisualizationSuffixes(),
			BindingFields:         DefaultBindingFields(),
		},
	}
}

// LoadFile loads configuration from a file (YAML or JSON based on extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	// Merge loaded config with defaults
	c.merge(&loaded)

	return nil
}

// merge merges the loaded config into the current config.
func (c *Config) merge(loaded *Config) {
	if loaded.InputDir != "" {
		c.InputDir = loaded.InputDir
	}
	if loaded.OutputDir != "" {
		c.OutputDir = loaded.OutputDir
	}
	if loaded.Document.Namespace != "" {
		c.Document.Namespace = loaded.Document.Namespace
	}

	// Classifier lists replace the defaults wholesale so a config file can
	// also remove entries, not just add them.
	if loaded.Classifier.VisualizationSuffixes != nil {
		c.Classifier.VisualizationSuffixes = loaded.Classifier.VisualizationSuffixes
	}
	if loaded.Classifier.BindingFields != nil {
		c.Classifier.BindingFields = loaded.Classifier.BindingFields
	}
}
