package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/codalotl/linediff/internal/chunk"
	"github.com/codalotl/linediff/internal/diff"
	"github.com/codalotl/linediff/internal/input"
	"github.com/codalotl/linediff/internal/linediff"
	qcli "github.com/codalotl/linediff/internal/q/cli"
	"github.com/codalotl/linediff/internal/q/termformat"
	"github.com/codalotl/linediff/internal/report"
	"github.com/codalotl/linediff/internal/simplelogger"
)

const warningPrefix = "warning: "

type rootFlags struct {
	sort       *bool
	lowercase  *bool
	separators *[]string
	algorithm  *string
	color      *string
	width      *int
	ascii      *bool
	format     *string

	file        *string
	line1       *string
	line2       *string
	outputFile1 *string
	outputFile2 *string

	version *bool
}

// newRootCommand returns the linediff command. stdout is the real output stream, used to decide on color and width.
func newRootCommand(stdout io.Writer) *qcli.Command {
	root := &qcli.Command{
		Name:  "linediff",
		Short: "Compare two lines chunk by chunk",
		Long: `linediff splits two lines of text into chunks on separator characters and prints a three-column table:
chunks only in the first line, chunks in both, and chunks only in the second line.

Lines come from --file (one file, two lines), --line1/--line2, file1/file2 (first line of each file), or an
interactive prompt, in that order of preference.

Defaults can be set in ~/.linediff/config.json, the nearest .linediff.json, or LINEDIFF_* environment variables.`,
		Usage: "[file1] [file2]",
		Example: `linediff --line1 "Hello World" --line2 "hello World"
linediff -l -o -s ",;" left.txt right.txt
linediff -f pair.txt -m left.out -n right.out
linediff --format html --line1 "a b" --line2 "a c" > diff.html`,
		Args: qcli.MaximumArgs(2),
	}

	fs := root.Flags()
	f := rootFlags{
		sort:        fs.Bool("sort", 'o', false, "Sort chunks before comparing"),
		lowercase:   fs.Bool("lowercase", 'l', false, "Lowercase both lines before splitting"),
		separators:  fs.StringSlice("separators", 's', []string{" "}, "Separator characters; every character counts. Newline always separates"),
		algorithm:   fs.Enum("algorithm", 'a', string(diff.AlgorithmMyers), algorithmNames(), "Diff algorithm"),
		color:       fs.Enum("color", 0, colorAuto, colorModes, "When to color the report"),
		width:       fs.Int("width", 'w', 0, "Report width in columns; 0 detects the terminal width"),
		ascii:       fs.Bool("ascii", 0, false, "Draw the table with ASCII characters"),
		format:      fs.Enum("format", 0, formatTable, formats, "Report format"),
		file:        fs.String("file", 'f', "", "File whose first two lines are compared"),
		line1:       fs.String("line1", 0, "", "First line, inline"),
		line2:       fs.String("line2", 0, "", "Second line, inline"),
		outputFile1: fs.String("output-file1", 'm', "", "Write the first line's preprocessed chunks here"),
		outputFile2: fs.String("output-file2", 'n', "", "Write the second line's preprocessed chunks here"),
		version:     fs.Bool("version", 0, false, "Print the version and exit"),
	}

	root.Run = func(c *qcli.Context) error {
		if *f.version {
			fmt.Fprintf(c.Out, "linediff %s\n", Version)
			return nil
		}

		cfg, err := resolveConfig(c, f)
		if err != nil {
			return err
		}

		opts := linediff.Options{
			Separators: chunk.ParseSeparators(cfg.Separators...),
			Sort:       cfg.Sort,
			Lowercase:  cfg.Lowercase,
			Algorithm:  diff.Algorithm(cfg.Algorithm),
		}
		if *f.outputFile1 != "" {
			opts.LeftOutput = linediff.FileSink{Path: *f.outputFile1}
		}
		if *f.outputFile2 != "" {
			opts.RightOutput = linediff.FileSink{Path: *f.outputFile2}
		}

		src := input.Source{File: *f.file}
		if c.FlagChanged("line1") {
			src.Line1 = f.line1
		}
		if c.FlagChanged("line2") {
			src.Line2 = f.line2
		}
		if len(c.Args) > 0 {
			src.File1 = c.Args[0]
		}
		if len(c.Args) > 1 {
			src.File2 = c.Args[1]
		}

		left, right, warnings, err := input.Resolve(src, &input.Prompter{In: c.In, Out: c.Out})
		if err != nil {
			simplelogger.Log("resolve input: %v", err)
			return qcli.ExitError{Code: 1, Err: err}
		}
		for _, w := range warnings {
			warn(c.Err, w)
		}

		cmp := linediff.Compare(left, right, opts)
		for _, err := range cmp.OutputErrors {
			warn(c.Err, err.Error())
		}

		switch cfg.Format {
		case formatMarkdown:
			return report.RenderMarkdown(c.Out, cmp.Report)
		case formatHTML:
			return report.RenderHTML(c.Out, cmp.Report)
		}

		renderOpts := report.RenderOptions{
			Width: cfg.Width,
			Color: useColor(cfg.Color, stdout),
			ASCII: cfg.ASCII,
		}
		if renderOpts.Width == 0 {
			renderOpts.Width = termformat.TerminalWidth(stdout)
		}
		return report.Render(c.Out, cmp.Report, renderOpts)
	}

	return root
}

// resolveConfig loads the config cascade, applies explicitly set flags on top, and validates the result. Errors in the cascade exit 1; bad flag values are usage errors.
func resolveConfig(c *qcli.Context, f rootFlags) (Config, error) {
	if *f.width < 0 {
		return Config{}, qcli.UsageErrorf("invalid value for -w/--width: must be >= 0 (got %d)", *f.width)
	}

	cfg, prov, err := loadConfig()
	if err != nil {
		return Config{}, qcli.ExitError{Code: 1, Err: err}
	}
	for _, key := range prov.Keys() {
		simplelogger.Log("config %s from %s", key, prov[key])
	}

	if c.FlagChanged("sort") {
		cfg.Sort = *f.sort
	}
	if c.FlagChanged("lowercase") {
		cfg.Lowercase = *f.lowercase
	}
	if c.FlagChanged("separators") {
		cfg.Separators = *f.separators
	}
	if c.FlagChanged("algorithm") {
		cfg.Algorithm = *f.algorithm
	}
	if c.FlagChanged("color") {
		cfg.Color = *f.color
	}
	if c.FlagChanged("width") {
		cfg.Width = *f.width
	}
	if c.FlagChanged("ascii") {
		cfg.ASCII = *f.ascii
	}
	if c.FlagChanged("format") {
		cfg.Format = *f.format
	}

	if err := validateConfig(&cfg); err != nil {
		return Config{}, qcli.ExitError{Code: 1, Err: err}
	}
	simplelogger.Log("resolved config: %+v", cfg)
	return cfg, nil
}

func algorithmNames() []string {
	names := make([]string, len(diff.Algorithms))
	for i, a := range diff.Algorithms {
		names[i] = string(a)
	}
	return names
}

// useColor resolves a color mode. In auto mode, color is used when stdout is a terminal and NO_COLOR is unset or empty.
func useColor(mode string, stdout io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termformat.IsTerminal(stdout)
}

func warn(w io.Writer, msg string) {
	simplelogger.Log("%s%s", warningPrefix, msg)
	fmt.Fprintf(w, "%s%s\n", warningPrefix, msg)
}
