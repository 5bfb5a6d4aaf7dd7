package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"itertools/internal/config"
	"itertools/internal/logging"
	"itertools/value"
)

// app carries the state shared by every subcommand after flags and the
// config file are resolved.
type app struct {
	cfg    config.Config
	policy value.Policy
	logger *slog.Logger

	configPath string
	coercive   bool
	format     string
	logLevel   string
	sortOutput bool
	limit      int
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "setops",
		Short: "Multiset set operations over YAML and JSON lists",
		Long: `setops reads one list per FILE ("-" is stdin), combines the lists with a
multiset-aware set operation and writes the result as YAML or JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVar(&a.coercive, "coercive", false, "compare values with loose equality")
	pf.StringVar(&a.format, "format", "", "output format: yaml or json")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.sortOutput, "sort", false, "order results by canonical key")
	pf.IntVar(&a.limit, "limit", 0, "write at most this many results (0 = all)")

	root.AddCommand(a.setOpCommands()...)
	root.AddCommand(a.chainCmd(), a.zipCmd(), a.statsCmd())
	return root
}

// setup merges the config file with explicitly set flags and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("coercive") {
		cfg.Policy = value.Strict.String()
		if a.coercive {
			cfg.Policy = value.Coercive.String()
		}
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("sort") {
		cfg.SortOutput = a.sortOutput
	}
	if flags.Changed("limit") {
		cfg.Limit = a.limit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validate already accepted both.
	a.policy, _ = value.ParsePolicy(cfg.Policy)
	level, _ := logging.ParseLevel(cfg.LogLevel)
	a.logger = logging.New(logging.Config{
		Level:   level,
		Output:  cmd.ErrOrStderr(),
		Service: "setops",
	})
	a.cfg = cfg

	a.logger.Debug("configured",
		"command", cmd.Name(),
		"policy", a.policy,
		"format", cfg.Format,
		"config", a.configPath,
	)
	return nil
}
