// Package commands defines the logproc command and its report pipeline.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ccollicutt/logproc/pkg/analyzer"
	"github.com/ccollicutt/logproc/pkg/config"
	"github.com/ccollicutt/logproc/pkg/output"
	"github.com/ccollicutt/logproc/pkg/parser"
)

var (
	// ErrNoFilePath is returned when --file was not given.
	ErrNoFilePath = errors.New("log file path is required")

	// ErrNoLogEntries is returned when the log yielded no entries.
	ErrNoLogEntries = errors.New("no log entries found")
)

// ReportOptions holds command-line options for the report command.
type ReportOptions struct {
	File        string
	CountLevels bool
	List        []string
	Uptime      bool
	Config      string
	Help        bool
	Version     bool
}

const usageTemplate = `Usage: {{.UseLine}}
Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

`

// NewRootCommand creates the logproc command.
//
// Flags are parsed by the command itself rather than by cobra: parsing stops at
// the first unknown token, the error is reported, and the reports selected by
// the flags before it still run.
func NewRootCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "logproc --file <file_path> [options]",
		Short: "Summarize a structured log file",
		Long: `logproc reads a log file of lines in the form

  YYYY-MM-DD HH:MM:SS LEVEL message

and reports counts per level, listings by level and the system uptime
between the first startup and the first shutdown message.

Exit codes:
  0 - Reports ran (individual report errors are printed)
  1 - No log file given, the file could not be read, or it had no entries`,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}
	cmd.SetUsageTemplate(usageTemplate)

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&opts.File, "file", "", "Log `file` to read (- for stdin, .gz and .zst are decompressed)")
	switchVar(flags, &opts.CountLevels, "count-levels", "Count log messages by log level")
	flags.StringArrayVar(&opts.List, "list", nil, "List all messages with the specified log `level` (can be repeated)")
	switchVar(flags, &opts.Uptime, "uptime", "Calculate total system uptime")
	flags.StringVar(&opts.Config, "config", "", "YAML `file` overriding levels, markers and timestamp layout")
	switchVar(flags, &opts.Version, "version", "Print version information")
	switchVar(flags, &opts.Help, "help", "Display usage instructions")

	return cmd
}

// switchValue is a boolean flag that only turns on. An explicit value such as
// --uptime=false is rejected instead of being interpreted.
type switchValue struct {
	p *bool
}

func (v *switchValue) String() string {
	if v.p == nil {
		return "false"
	}
	return strconv.FormatBool(*v.p)
}

func (v *switchValue) Set(s string) error {
	if s != "true" {
		return errors.New("flag takes no value")
	}
	*v.p = true
	return nil
}

// Type reports "bool" so usage and GetBool treat it as a plain switch.
func (v *switchValue) Type() string {
	return "bool"
}

func switchVar(flags *pflag.FlagSet, p *bool, name, usage string) {
	f := flags.VarPF(&switchValue{p: p}, name, "", usage)
	f.NoOptDefVal = "true"
}

// parseArgs parses flags left to right. Values parsed before an error are kept.
func parseArgs(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.ArgsLenAtDash() >= 0 {
		return errors.New("unknown argument: --")
	}
	if rest := flags.Args(); len(rest) > 0 {
		return fmt.Errorf("unknown argument: %s", rest[0])
	}
	return nil
}

func printUsage(cmd *cobra.Command, w io.Writer) {
	fmt.Fprint(w, cmd.UsageString())
}

func runReport(cmd *cobra.Command, args []string, opts *ReportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	parseErr := parseArgs(cmd, args)

	if opts.Help {
		printUsage(cmd, stdout)
		return nil
	}
	if opts.Version {
		printVersion(stdout)
		return nil
	}

	// A bad argument is reported but does not stop the run.
	if parseErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", parseErr)
		printUsage(cmd, stdout)
	}

	if opts.File == "" {
		return ErrNoFilePath
	}

	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tsParser := parser.NewTimestampParser(cfg.TimestampLayout, cfg.Location())
	entries, err := parser.ReadFile(ctx, opts.File, tsParser, stderr)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w in %s", ErrNoLogEntries, opts.File)
	}

	a := analyzer.NewAnalyzer(
		analyzer.WithLevels(cfg.Levels),
		analyzer.WithMarkers(cfg.Markers.Startup, cfg.Markers.Shutdown),
	)
	formatter := output.NewTextFormatter(output.FormatOptions{Timestamps: tsParser})

	return runReports(ctx, a, formatter, entries, opts, stdout, stderr)
}

// runReports runs the selected reports in fixed order: counts, listings in
// the order given, uptime. Report errors are printed and skipped.
func runReports(ctx context.Context, a *analyzer.Analyzer, formatter *output.TextFormatter,
	entries []parser.Entry, opts *ReportOptions, stdout, stderr io.Writer) error {
	if opts.CountLevels {
		if err := formatter.FormatLevelCounts(ctx, a.CountLevels(entries), stdout); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	for _, level := range opts.List {
		listing, err := a.ListByLevel(entries, level)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			continue
		}
		if err := formatter.FormatListing(ctx, listing, stdout); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	if opts.Uptime {
		uptime, err := a.Uptime(entries)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return nil
		}
		warnUptime(uptime, stderr)
		if err := formatter.FormatUptime(ctx, uptime, stdout); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	return nil
}

// warnUptime flags results that are printed but probably meaningless.
func warnUptime(u *analyzer.Uptime, w io.Writer) {
	if !u.Start.Timestamp.Valid() {
		fmt.Fprintf(w, "Warning: startup log at %s:%d has an invalid timestamp\n", u.Start.Source, u.Start.LineNum)
	}
	if !u.ShutdownFound {
		fmt.Fprintln(w, "Warning: no shutdown log found, uptime is measured to the Unix epoch")
		return
	}
	if !u.End.Timestamp.Valid() {
		fmt.Fprintf(w, "Warning: shutdown log at %s:%d has an invalid timestamp\n", u.End.Source, u.End.LineNum)
	}
	if u.Negative() {
		fmt.Fprintln(w, "Warning: shutdown log precedes startup log")
	}
}
