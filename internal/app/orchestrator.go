package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/quantmind-br/grlibsrc/internal/config"
	"github.com/quantmind-br/grlibsrc/internal/domain"
	"github.com/quantmind-br/grlibsrc/internal/git"
	"github.com/quantmind-br/grlibsrc/internal/manifest"
	"github.com/quantmind-br/grlibsrc/internal/utils"
	"github.com/spf13/afero"
)

// Orchestrator resolves every configured library into one sink
type Orchestrator struct {
	config   *config.Config
	fs       afero.Fs
	resolver *manifest.Resolver
	logger   *utils.Logger
	root     string
	progress io.Writer
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config *config.Config
	// Fs is the filesystem manifests are read from (OS filesystem if nil)
	Fs afero.Fs
	// Logger overrides the logger built from Config.Logging
	Logger *utils.Logger
	// GitClient locates the project root when Config.Root is empty
	GitClient git.Client
	// WorkDir anchors a relative root and root detection (cwd if empty)
	WorkDir string
	// Progress receives a progress bar; nil disables it
	Progress io.Writer
	Verbose  bool
}

// LibraryResult summarizes one resolved library
type LibraryResult struct {
	Name  string
	Root  string
	Files int
}

// Result summarizes a run
type Result struct {
	Libraries []LibraryResult
	Duration  time.Duration
}

// Files returns the total number of registered files
func (r *Result) Files() int {
	n := 0
	for _, lib := range r.Libraries {
		n += lib.Files
	}
	return n
}

// NewOrchestrator creates a new orchestrator and determines the project root
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}

	gitClient := opts.GitClient
	if gitClient == nil {
		gitClient = git.NewClient()
	}

	root, err := findRoot(cfg.Root, workDir, gitClient)
	if err != nil {
		return nil, err
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	resolver := manifest.NewResolver(manifest.ResolverOptions{
		Fs:             fs,
		Logger:         logger,
		DirList:        cfg.Manifests.Dirs,
		Manifests:      cfg.ManifestKinds(),
		TechmapLibrary: cfg.Techmap.Library,
		TechmapDir:     cfg.Techmap.ExtraDir,
	})

	return &Orchestrator{
		config:   cfg,
		fs:       fs,
		resolver: resolver,
		logger:   logger,
		root:     root,
		progress: opts.Progress,
	}, nil
}

func findRoot(configured, workDir string, client git.Client) (string, error) {
	if configured != "" {
		return filepath.Clean(utils.ResolvePath(workDir, configured)), nil
	}
	root, err := client.WorkTreeRoot(workDir)
	if err != nil {
		return "", fmt.Errorf("%w: set root or run inside the project work tree: %v", domain.ErrRootNotFound, err)
	}
	return root, nil
}

// Root returns the project root
func (o *Orchestrator) Root() string {
	return o.root
}

// Libraries returns the configured libraries with paths resolved against the root
func (o *Orchestrator) Libraries() []domain.LibrarySpec {
	libs := make([]domain.LibrarySpec, len(o.config.Libraries))
	for i, lib := range o.config.Libraries {
		libs[i] = domain.LibrarySpec{Name: lib.Name, Path: utils.ResolvePath(o.root, lib.Path)}
	}
	return libs
}

// Environment returns the tool environment, e.g. VUNIT_MODELSIM_INI pointing
// at the simulator settings file under the root. It is handed to sinks
// explicitly and never applied to the process.
func (o *Orchestrator) Environment() map[string]string {
	tool := o.config.Tool
	if tool.ConfigEnv == "" || tool.ConfigFile == "" {
		return nil
	}
	return map[string]string{tool.ConfigEnv: utils.ResolvePath(o.root, tool.ConfigFile)}
}

// Run resolves the configured libraries in order into sink. When only is
// non-empty, just the named libraries are resolved, still in configured order.
// The first fatal library error stops the run.
func (o *Orchestrator) Run(ctx context.Context, sink domain.LibrarySink, only []string) (*Result, error) {
	start := time.Now()

	libs, err := o.selectLibraries(only)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Str("root", o.root).
		Int("libraries", len(libs)).
		Msg("Resolving libraries")

	var tick func(name string)
	if o.progress != nil {
		bar := utils.NewProgressBar(o.progress, len(libs), utils.DescResolving)
		defer bar.Finish()
		tick = func(name string) {
			bar.Describe(fmt.Sprintf("%s %s", utils.DescResolving, name))
			_ = bar.Add(1)
		}
	}

	result := &Result{}
	for _, lib := range libs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		regs, err := o.resolver.Resolve(lib.Name, lib.Path, sink)
		if err != nil {
			o.logger.Error().Err(err).Str("library", lib.Name).Msg("Library resolution failed")
			return result, err
		}
		result.Libraries = append(result.Libraries, LibraryResult{Name: lib.Name, Root: lib.Path, Files: len(regs)})

		if tick != nil {
			tick(lib.Name)
		}
	}

	result.Duration = time.Since(start)
	o.logger.Info().
		Int("files", result.Files()).
		Dur("duration", result.Duration).
		Msg("Resolution complete")

	return result, nil
}

func (o *Orchestrator) selectLibraries(only []string) ([]domain.LibrarySpec, error) {
	all := o.Libraries()
	if len(only) == 0 {
		return all, nil
	}

	known := make(map[string]bool, len(all))
	for _, lib := range all {
		known[lib.Name] = true
	}
	want := make(map[string]bool, len(only))
	for _, name := range only {
		if !known[name] {
			return nil, domain.NewValidationError("library", fmt.Sprintf("%q is not configured", name))
		}
		want[name] = true
	}

	var selected []domain.LibrarySpec
	for _, lib := range all {
		if want[lib.Name] {
			selected = append(selected, lib)
		}
	}
	return selected, nil
}
