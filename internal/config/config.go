package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/quantmind-br/grlibsrc/internal/domain"
)

// Config represents the application configuration
type Config struct {
	// Root is the project root; empty means the enclosing git work tree
	Root      string               `mapstructure:"root" yaml:"root"`
	Libraries []domain.LibrarySpec `mapstructure:"libraries" yaml:"libraries"`
	Techmap   TechmapConfig        `mapstructure:"techmap" yaml:"techmap"`
	Manifests ManifestConfig       `mapstructure:"manifests" yaml:"manifests"`
	Tool      ToolConfig           `mapstructure:"tool" yaml:"tool"`
	Output    OutputConfig         `mapstructure:"output" yaml:"output"`
	Logging   LoggingConfig        `mapstructure:"logging" yaml:"logging"`
}

// TechmapConfig names the technology mapping library and its implicit directory
type TechmapConfig struct {
	Library  string `mapstructure:"library" yaml:"library"`
	ExtraDir string `mapstructure:"extra_dir" yaml:"extra_dir"`
}

// ManifestConfig contains manifest file names
type ManifestConfig struct {
	Dirs       string `mapstructure:"dirs" yaml:"dirs"`
	Synthesis  string `mapstructure:"synthesis" yaml:"synthesis"`
	Simulation string `mapstructure:"simulation" yaml:"simulation"`
}

// ToolConfig points the simulator at its own configuration file
type ToolConfig struct {
	ConfigEnv  string `mapstructure:"config_env" yaml:"config_env"`
	ConfigFile string `mapstructure:"config_file" yaml:"config_file"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Format    string `mapstructure:"format" yaml:"format"`
	File      string `mapstructure:"file" yaml:"file"`
	Overwrite bool   `mapstructure:"overwrite" yaml:"overwrite"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, filling empty values with defaults
func (c *Config) Validate() error {
	if len(c.Libraries) == 0 {
		return domain.NewValidationError("libraries", "at least one library is required")
	}
	for i, lib := range c.Libraries {
		if strings.TrimSpace(lib.Name) == "" {
			return domain.NewValidationError(fmt.Sprintf("libraries[%d].name", i), "cannot be empty")
		}
		if lib.Path == "" {
			c.Libraries[i].Path = DefaultLibraryPath(lib.Name)
		}
	}

	if c.Techmap.Library == "" {
		c.Techmap.Library = DefaultTechmapLibrary
	}
	if c.Techmap.ExtraDir == "" {
		c.Techmap.ExtraDir = DefaultTechmapExtraDir
	}
	if c.Manifests.Dirs == "" {
		c.Manifests.Dirs = DefaultDirsManifest
	}
	if c.Manifests.Synthesis == "" {
		c.Manifests.Synthesis = DefaultSynthesisManifest
	}
	if c.Manifests.Simulation == "" {
		c.Manifests.Simulation = DefaultSimulationManifest
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	return nil
}

// ManifestKinds returns the per-directory manifests in processing order
func (c *Config) ManifestKinds() []string {
	return []string{c.Manifests.Synthesis, c.Manifests.Simulation}
}

// ParseLibrary parses a "name=path" or bare "name" library flag
func ParseLibrary(s string) (domain.LibrarySpec, error) {
	name, path, _ := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.LibrarySpec{}, domain.NewValidationError("library", fmt.Sprintf("missing name in %q", s))
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultLibraryPath(name)
	}
	return domain.LibrarySpec{Name: name, Path: path}, nil
}

// ParseLibraries parses a comma or whitespace separated list of library flags,
// e.g. "grlib,techmap=lib/techmap"
func ParseLibraries(s string) ([]domain.LibrarySpec, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	libs := make([]domain.LibrarySpec, 0, len(fields))
	for _, f := range fields {
		lib, err := ParseLibrary(f)
		if err != nil {
			return nil, err
		}
		libs = append(libs, lib)
	}
	return libs, nil
}
