package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dvlg/internal/config"
	"dvlg/internal/export"
	"dvlg/internal/journal"
	"dvlg/internal/logs"
	"dvlg/internal/scanner"
	"dvlg/internal/tui"
	"dvlg/internal/tui/shared"
	"dvlg/internal/tui/theme"
	"dvlg/internal/view"

	"github.com/spf13/cobra"
)

// Version is reported by --version
const Version = "0.3.0"

// UsageError marks a bad command line; Run answers it with the usage text.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

type options struct {
	html        bool
	markdown    bool
	interactive bool
	fuzzy       bool
	color       string
	logDir      string
	ext         string
}

// Run executes the CLI with the given arguments (without the program name)
// and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	ran := false
	cmd := newRootCmd(stdout, &ran)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	// Anything cobra rejects before RunE is a command-line problem.
	var usageErr *UsageError
	if !ran || errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr)
		return 1
	}

	logs.Logger.Printf("run failed: %v", err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCmd(stdout io.Writer, ran *bool) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "dvlg <filename> <filter> [tag]",
		Short:         "Filtered views of a dvlg plain-text journal",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          validateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			return run(stdout, args, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	flags := cmd.Flags()
	flags.BoolVar(&opts.html, "html", false, "Write the view as HTML")
	flags.BoolVar(&opts.markdown, "markdown", false, "Write the view as Markdown")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Browse the journal interactively")
	flags.BoolVar(&opts.fuzzy, "fuzzy", false, "Match note tags fuzzily instead of by substring")
	flags.StringVar(&opts.color, "color", "", "Color output: auto, always, never")
	flags.StringVar(&opts.logDir, "log-dir", "", "Directory for debug.log")
	flags.StringVar(&opts.ext, "ext", "", "Journal file extensions when <filename> is a directory (comma-separated)")
	cmd.MarkFlagsMutuallyExclusive("html", "markdown", "interactive")

	return cmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return &UsageError{Msg: fmt.Sprintf("expected 2 or 3 arguments, got %d", len(args))}
	}
	if _, err := view.ParseFilter(args[1]); err != nil {
		return &UsageError{Msg: err.Error()}
	}
	return nil
}

func run(stdout io.Writer, args []string, opts options) error {
	flags := config.CLIFlags{
		Color:      opts.color,
		LogDir:     opts.logDir,
		Extensions: config.ParseCommaSeparated(opts.ext),
	}
	if opts.fuzzy {
		flags.TagMatch = config.TagMatchFuzzy
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return &UsageError{Msg: err.Error()}
	}
	if err := logs.Initialize(cfg.LogDir); err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	theme.SetColorMode(cfg.Color)

	filter, _ := view.ParseFilter(args[1])
	tag := ""
	if len(args) == 3 {
		tag = args[2]
	}
	tagMatch := view.SubstringMatch
	if cfg.TagMatch == config.TagMatchFuzzy {
		tagMatch = view.FuzzyMatch
	}

	paths, err := scanner.FindJournals(args[0], cfg.Extensions)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}
	j, err := journal.LoadFiles(paths)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	if opts.interactive {
		return tui.Run(tui.NewAppModel(j, filter, tag, tagMatch))
	}

	lines := view.Render(j, view.Options{Filter: filter, Tag: tag, TagMatch: tagMatch})
	switch {
	case opts.html:
		return export.HTML(stdout, lines)
	case opts.markdown:
		_, err := io.WriteString(stdout, export.Markdown(lines))
		return err
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(stdout, shared.StyledLine(l)); err != nil {
			return err
		}
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `dvlg - views of a plain-text dvlg journal

Usage: dvlg [flags] <filename> <filter> [tag]

<filename> is a journal file, or a directory searched for journal files.

Filters:
  %s

  todo|doing|done|dropped  to-do items in that state
  til                      things learned (!)
  idea                     ideas ($)
  qts                      questions (?) and answers (?!)
  cal                      calendar events, ordered by their own date
  note                     notes (/tag), optionally only tags containing [tag]
  fmt                      everything, grouped

Flags:
  -i, --interactive      Browse the journal interactively
      --html             Write the view as HTML
      --markdown         Write the view as Markdown
      --fuzzy            Match note tags fuzzily
      --color <mode>     auto, always, never
      --ext <list>       Journal extensions for directories (default .dvlg)
      --log-dir <dir>    Write debug.log to dir
`, strings.Join(view.FilterNames(), " "))
}
