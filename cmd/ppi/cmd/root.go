package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/ppinterpreter/foundation/core/error"
	mdwlog "github.com/msto63/ppinterpreter/foundation/core/log"
	"github.com/msto63/ppinterpreter/internal/config"
	"github.com/msto63/ppinterpreter/internal/lang"
	"github.com/msto63/ppinterpreter/internal/lang/parser"
	"github.com/msto63/ppinterpreter/internal/logging"
)

// Exit statuses
const (
	ExitOK     = 0
	ExitUsage  = 1
	ExitFile   = 2
	ExitSource = 3
	ExitConfig = 4
)

var errMissingFile = errors.New("missing source file")

// app carries the flags and the state shared by all commands of one run
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile   string
	verbose   bool
	logFormat string
	noColor   bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

// Execute runs ppi with the process arguments and returns the exit status
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return ExitOK
	}
	return a.report(cmd, err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ppi <file>",
		Short: "PP language front end",
		Long: `ppi checks programs written in PP, a small procedural language with
integer arithmetic, conditionals, loops and recursive functions.

Without a subcommand the file is parsed and a summary is printed.

Exit status:
  0  success
  1  usage error
  2  the source file cannot be read
  3  lexical or syntax error
  4  configuration error`,
		Args:              cobra.MaximumNArgs(1),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runParse,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default: $"+config.EnvConfigPath+" or ./ppi.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json, text or console")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.tokensCommand(),
		a.astCommand(),
		a.fmtCommand(),
		a.versionCommand(),
	)
	return root
}

// setup loads the configuration, applies the flags and builds the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if os.Getenv("NO_COLOR") != "" {
		a.noColor = true
	}

	var cfg *config.Config
	var err error
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.noColor {
		cfg.Log.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:    "ppi",
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  a.stderr,
		NoColor: cfg.Log.NoColor,
	})
	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"command": cmd.Name(),
		"source":  cfg.Source(),
	})
	return nil
}

func (a *app) parserOptions() parser.Options {
	return a.cfg.ParserOptions(a.logger)
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errMissingFile
	}
	path := args[0]

	ctx, err := lang.ParseFile(path, a.parserOptions())
	if err != nil {
		return err
	}

	s := newStyles(a.stdout, a.noColor)
	fmt.Fprintf(a.stdout, "%s %s: %s, %s\n",
		s.ok.Render("ok"), path,
		plural(ctx.Len(), "statement"), plural(len(ctx.Functions), "function"))
	return nil
}

// report prints err and maps it to an exit status
func (a *app) report(cmd *cobra.Command, err error) int {
	code := exitCode(err)
	s := newStyles(a.stderr, a.noColor)

	fmt.Fprintf(a.stderr, "%s %v\n", s.err.Render("error:"), err)
	if code == ExitUsage && cmd != nil {
		fmt.Fprint(a.stderr, cmd.UsageString())
	}

	if a.logger != nil {
		a.logger.LogError(err)
	}
	return code
}

func exitCode(err error) int {
	switch mdwerror.GetCode(err) {
	case mdwerror.CodeFileNotFound, mdwerror.CodeFileRead:
		return ExitFile
	case mdwerror.CodeLexical, mdwerror.CodeSyntax, mdwerror.CodeDuplicateFunction, mdwerror.CodeInputTooLarge:
		return ExitSource
	case mdwerror.CodeConfig, mdwerror.CodeInvalidConfig:
		return ExitConfig
	default:
		return ExitUsage
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
