package config

import (
	"os"
	"path"
	"path/filepath"

	"github.com/quantmind-br/grlibsrc/internal/domain"
)

// Default values
const (
	// Manifest defaults
	DefaultDirsManifest       = "dirs.txt"
	DefaultSynthesisManifest  = "vhdlsyn.txt"
	DefaultSimulationManifest = "vhdlsim.txt"

	// Technology mapping defaults
	DefaultTechmapLibrary  = "techmap"
	DefaultTechmapExtraDir = "maps"

	// Tool defaults
	DefaultToolConfigEnv  = "VUNIT_MODELSIM_INI"
	DefaultToolConfigFile = "bin/vunit_modelsim.ini"

	// Output defaults
	DefaultOutputFormat = "script-modelsim"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes environment overrides (GRLIBSRC_ROOT, ...)
	EnvPrefix = "GRLIBSRC"
)

// DefaultLibraries are resolved in this order
var DefaultLibraries = []domain.LibrarySpec{
	{Name: "grlib", Path: DefaultLibraryPath("grlib")},
	{Name: "techmap", Path: DefaultLibraryPath("techmap")},
	{Name: "staging", Path: DefaultLibraryPath("staging")},
}

// DefaultLibraryPath returns lib/<name>, relative to the project root
func DefaultLibraryPath(name string) string {
	return path.Join("lib", name)
}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".grlibsrc"
	}
	return filepath.Join(home, ".grlibsrc")
}

// ConfigFilePath returns the user config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "grlibsrc.yaml")
}

// Default returns the default configuration
func Default() *Config {
	libs := make([]domain.LibrarySpec, len(DefaultLibraries))
	copy(libs, DefaultLibraries)

	return &Config{
		Libraries: libs,
		Techmap: TechmapConfig{
			Library:  DefaultTechmapLibrary,
			ExtraDir: DefaultTechmapExtraDir,
		},
		Manifests: ManifestConfig{
			Dirs:       DefaultDirsManifest,
			Synthesis:  DefaultSynthesisManifest,
			Simulation: DefaultSimulationManifest,
		},
		Tool: ToolConfig{
			ConfigEnv:  DefaultToolConfigEnv,
			ConfigFile: DefaultToolConfigFile,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
