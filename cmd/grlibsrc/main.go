package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/grlibsrc/internal/app"
	"github.com/quantmind-br/grlibsrc/internal/config"
	"github.com/quantmind-br/grlibsrc/internal/output"
	"github.com/quantmind-br/grlibsrc/internal/sink"
	"github.com/quantmind-br/grlibsrc/internal/utils"
	"github.com/quantmind-br/grlibsrc/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var errUnhealthy = errors.New("doctor found problems")

// cli holds the state shared by all commands of one invocation
type cli struct {
	v         *viper.Viper
	cfgFile   string
	verbose   bool
	libraries []string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "grlibsrc",
		Short: "Resolve GRLIB library sources for HDL simulators",
		Long: `grlibsrc reads the dirs.txt, vhdlsyn.txt and vhdlsim.txt manifests of
GRLIB-style VHDL libraries and emits the resolved source files, in
compile order, as a simulator script or a project description.

Running grlibsrc without a subcommand is the same as "grlibsrc resolve".`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.resolve(cmd, nil, "")
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ./grlibsrc.yaml or ~/.grlibsrc/grlibsrc.yaml)")
	flags.String("root", "", "Project root (default: enclosing git work tree)")
	flags.StringArrayVarP(&c.libraries, "library", "L", nil, "Library as name[=path], repeatable (replaces configured libraries)")
	flags.StringP("format", "f", config.DefaultOutputFormat, fmt.Sprintf("Output format: %v", sink.Formats))
	flags.StringP("output", "o", "", "Output file (default: stdout)")
	flags.Bool("force", false, "Overwrite an existing output file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	_ = c.v.BindPFlag("root", flags.Lookup("root"))
	_ = c.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = c.v.BindPFlag("output.file", flags.Lookup("output"))
	_ = c.v.BindPFlag("output.overwrite", flags.Lookup("force"))

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "resolve [library...]",
			Short: "Resolve libraries and write the configured output",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.resolve(cmd, args, "")
			},
		},
		&cobra.Command{
			Use:   "list [library...]",
			Short: "Print resolved files as: library revision path",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.resolve(cmd, args, sink.FormatList)
			},
		},
		&cobra.Command{
			Use:   "doctor",
			Short: "Check the project layout",
			Args:  cobra.NoArgs,
			RunE:  c.doctor,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get())
			},
		},
	)

	return rootCmd
}

func (c *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(c.v, c.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(c.libraries) > 0 {
		cfg.Libraries = cfg.Libraries[:0]
		for _, s := range c.libraries {
			lib, err := config.ParseLibrary(s)
			if err != nil {
				return nil, err
			}
			cfg.Libraries = append(cfg.Libraries, lib)
		}
	}
	return cfg, nil
}

func (c *cli) newOrchestrator(cfg *config.Config, stderr io.Writer, progress io.Writer) (*app.Orchestrator, error) {
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  stderr,
		Verbose: c.verbose,
	})

	return app.NewOrchestrator(app.OrchestratorOptions{
		Config:   cfg,
		Logger:   logger,
		Progress: progress,
		Verbose:  c.verbose,
	})
}

func (c *cli) resolve(cmd *cobra.Command, only []string, format string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Output.Format
	}

	var progress io.Writer
	if cfg.Output.File != "" {
		progress = cmd.ErrOrStderr()
	}
	orch, err := c.newOrchestrator(cfg, cmd.ErrOrStderr(), progress)
	if err != nil {
		return err
	}

	emitter, err := sink.New(sink.Options{Format: format, Env: orch.Environment()})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := orch.Run(ctx, emitter, only)
	if err != nil {
		return err
	}

	_, isScript := emitter.(*sink.Script)
	w := output.NewWriter(output.WriterOptions{
		Path:       cfg.Output.File,
		Force:      cfg.Output.Overwrite,
		Executable: isScript,
	})
	if err := w.Write(cmd.OutOrStdout(), emitter); err != nil {
		return err
	}

	if w.Path() != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d files from %d libraries to %s\n",
			result.Files(), len(result.Libraries), w.Path())
	}
	return nil
}

func (c *cli) doctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	orch, err := c.newOrchestrator(cfg, cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Checking project layout...")
	checks := orch.Check()
	for _, check := range checks {
		fmt.Fprintf(out, "  %s: %s (%s)\n", check.Name, check.Status, check.Detail)
	}

	fmt.Fprintln(out)
	if !app.Healthy(checks) {
		fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
		return errUnhealthy
	}
	fmt.Fprintln(out, "All critical checks passed!")
	return nil
}
