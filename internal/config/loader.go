package config

import (
	"errors"
	"os"
	"strings"

	"github.com/quantmind-br/grlibsrc/internal/domain"
	"github.com/spf13/viper"
)

// LoadFrom loads configuration through v, honoring any flags bound to it.
// An explicit cfgFile must exist; otherwise grlibsrc.yaml is looked up in
// the working directory and ConfigDir and may be absent.
func LoadFrom(v *viper.Viper, cfgFile string) (*Config, error) {
	cfg, _, err := load(v, cfgFile)
	return cfg, err
}

// LoadWithViper loads configuration into a fresh viper instance and returns it
func LoadWithViper(cfgFile string) (*Config, *viper.Viper, error) {
	return load(viper.New(), cfgFile)
}

func load(v *viper.Viper, cfgFile string) (*Config, *viper.Viper, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("grlibsrc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, nil, err
		}
	}

	// Environment variables (GRLIBSRC_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv cannot decode a list of structs; GRLIBSRC_LIBRARIES uses
	// the same name[=path] syntax as the --library flag
	if raw := strings.TrimSpace(os.Getenv(EnvPrefix + "_LIBRARIES")); raw != "" {
		libs, err := ParseLibraries(raw)
		if err != nil {
			return nil, nil, err
		}
		v.Set("libraries", libraryMaps(libs))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, v, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("root", "")

	v.SetDefault("libraries", libraryMaps(d.Libraries))

	v.SetDefault("techmap.library", d.Techmap.Library)
	v.SetDefault("techmap.extra_dir", d.Techmap.ExtraDir)

	v.SetDefault("manifests.dirs", d.Manifests.Dirs)
	v.SetDefault("manifests.synthesis", d.Manifests.Synthesis)
	v.SetDefault("manifests.simulation", d.Manifests.Simulation)

	v.SetDefault("tool.config_env", d.Tool.ConfigEnv)
	v.SetDefault("tool.config_file", d.Tool.ConfigFile)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.file", "")
	v.SetDefault("output.overwrite", false)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

func libraryMaps(libs []domain.LibrarySpec) []map[string]any {
	out := make([]map[string]any, 0, len(libs))
	for _, lib := range libs {
		out = append(out, map[string]any{"name": lib.Name, "path": lib.Path})
	}
	return out
}
