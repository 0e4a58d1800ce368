package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/grlibsrc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name:   "default config",
			modify: func(c *Config) {},
		},
		{
			name:    "no libraries",
			modify:  func(c *Config) { c.Libraries = nil },
			wantErr: true,
		},
		{
			name:    "blank library name",
			modify:  func(c *Config) { c.Libraries = []domain.LibrarySpec{{Name: "  ", Path: "x"}} },
			wantErr: true,
		},
		{
			name:   "empty library path defaults to lib/<name>",
			modify: func(c *Config) { c.Libraries = []domain.LibrarySpec{{Name: "gaisler"}} },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "lib/gaisler", c.Libraries[0].Path)
			},
		},
		{
			name: "empty names fall back to defaults",
			modify: func(c *Config) {
				c.Techmap = TechmapConfig{}
				c.Manifests = ManifestConfig{}
				c.Output.Format = ""
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultTechmapLibrary, c.Techmap.Library)
				assert.Equal(t, DefaultTechmapExtraDir, c.Techmap.ExtraDir)
				assert.Equal(t, DefaultDirsManifest, c.Manifests.Dirs)
				assert.Equal(t, []string{DefaultSynthesisManifest, DefaultSimulationManifest}, c.ManifestKinds())
				assert.Equal(t, DefaultOutputFormat, c.Output.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				var verr *domain.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// TestDefault tests default configuration
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "", cfg.Root)
	assert.Equal(t, []domain.LibrarySpec{
		{Name: "grlib", Path: "lib/grlib"},
		{Name: "techmap", Path: "lib/techmap"},
		{Name: "staging", Path: "lib/staging"},
	}, cfg.Libraries)
	assert.Equal(t, "techmap", cfg.Techmap.Library)
	assert.Equal(t, "maps", cfg.Techmap.ExtraDir)
	assert.Equal(t, "dirs.txt", cfg.Manifests.Dirs)
	assert.Equal(t, "vhdlsyn.txt", cfg.Manifests.Synthesis)
	assert.Equal(t, "vhdlsim.txt", cfg.Manifests.Simulation)
	assert.Equal(t, "VUNIT_MODELSIM_INI", cfg.Tool.ConfigEnv)
	assert.Equal(t, "bin/vunit_modelsim.ini", cfg.Tool.ConfigFile)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestDefault_DoesNotShareLibraries(t *testing.T) {
	cfg := Default()
	cfg.Libraries[0].Name = "changed"

	assert.Equal(t, "grlib", DefaultLibraries[0].Name)
}

func TestParseLibrary(t *testing.T) {
	lib, err := ParseLibrary("gaisler=lib/gaisler")
	require.NoError(t, err)
	assert.Equal(t, domain.LibrarySpec{Name: "gaisler", Path: "lib/gaisler"}, lib)

	lib, err = ParseLibrary("techmap")
	require.NoError(t, err)
	assert.Equal(t, domain.LibrarySpec{Name: "techmap", Path: "lib/techmap"}, lib)

	lib, err = ParseLibrary("eth=/opt/ip/eth=v2")
	require.NoError(t, err)
	assert.Equal(t, "/opt/ip/eth=v2", lib.Path)

	_, err = ParseLibrary("=lib/x")
	assert.Error(t, err)
}

func TestConfigFilePath(t *testing.T) {
	assert.Contains(t, ConfigFilePath(), ".grlibsrc")
	assert.Equal(t, "grlibsrc.yaml", filepath.Base(ConfigFilePath()))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadWithViper_MissingConfig(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, v, err := LoadWithViper("")

	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Len(t, cfg.Libraries, 3)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}

func TestLoadWithViper_ConfigInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	content := `
root: /src/grlib
libraries:
  - name: grlib
  - name: gaisler
    path: lib/gaisler
output:
  format: script-ghdl
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grlibsrc.yaml"), []byte(content), 0644))

	cfg, _, err := LoadWithViper("")

	require.NoError(t, err)
	assert.Equal(t, "/src/grlib", cfg.Root)
	assert.Equal(t, []domain.LibrarySpec{
		{Name: "grlib", Path: "lib/grlib"},
		{Name: "gaisler", Path: "lib/gaisler"},
	}, cfg.Libraries)
	assert.Equal(t, "script-ghdl", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "techmap", cfg.Techmap.Library)
}

func TestLoadWithViper_ExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("techmap:\n  extra_dir: mappings\n"), 0644))

	cfg, _, err := LoadWithViper(path)

	require.NoError(t, err)
	assert.Equal(t, "mappings", cfg.Techmap.ExtraDir)
	assert.Equal(t, "techmap", cfg.Techmap.Library)
}

func TestLoadWithViper_ExplicitFileMissing(t *testing.T) {
	cfg, _, err := LoadWithViper(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadWithViper_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grlibsrc.yaml"), []byte("invalid: yaml: content: ["), 0644))

	cfg, _, err := LoadWithViper("")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadWithViper_EnvironmentOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRLIBSRC_ROOT", "/env/grlib")
	t.Setenv("GRLIBSRC_OUTPUT_FORMAT", "json")

	cfg, _, err := LoadWithViper("")

	require.NoError(t, err)
	assert.Equal(t, "/env/grlib", cfg.Root)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestParseLibraries(t *testing.T) {
	libs, err := ParseLibraries("grlib, techmap=lib/techmap\tgaisler=/opt/gaisler")
	require.NoError(t, err)
	assert.Equal(t, []domain.LibrarySpec{
		{Name: "grlib", Path: "lib/grlib"},
		{Name: "techmap", Path: "lib/techmap"},
		{Name: "gaisler", Path: "/opt/gaisler"},
	}, libs)

	_, err = ParseLibraries("grlib,=lib/x")
	assert.Error(t, err)
}

func TestLoadWithViper_LibrariesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grlibsrc.yaml"), []byte("libraries:\n  - name: grlib\n"), 0644))
	t.Setenv("GRLIBSRC_LIBRARIES", "techmap,gaisler=ip/gaisler")

	cfg, _, err := LoadWithViper("")

	require.NoError(t, err)
	assert.Equal(t, []domain.LibrarySpec{
		{Name: "techmap", Path: "lib/techmap"},
		{Name: "gaisler", Path: "ip/gaisler"},
	}, cfg.Libraries)
}

func TestLoadWithViper_LibrariesFromEnvironmentInvalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRLIBSRC_LIBRARIES", "=lib/x")

	cfg, _, err := LoadWithViper("")

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Nil(t, cfg)
}
