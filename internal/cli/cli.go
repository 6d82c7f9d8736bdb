package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/badele/sortingtool/internal/analyzer"
	"github.com/badele/sortingtool/internal/exporter"
	"github.com/badele/sortingtool/internal/input"
	"github.com/badele/sortingtool/internal/types"
)

// Options holds the parsed command line.
type Options struct {
	DataType    string `name:"dataType" default:"long" help:"Element kind: long, word or line."`
	SortingType string `name:"sortingType" default:"natural" help:"Sorted output: natural or byCount."`
	InputFile   string `name:"inputFile" help:"Read from this file instead of standard input."`
	OutputFile  string `name:"outputFile" help:"Write the report to this file instead of standard output."`
	Stats       bool   `name:"stats" help:"Print statistics instead of the sorted data."`
	Format      string `name:"format" default:"text" enum:"text,json" help:"Report format: text or json."`
	Encoding    string `name:"encoding" default:"utf8" enum:"${encodings}" help:"Input encoding."`
	LogLevel    string `name:"logLevel" default:"warn" enum:"debug,info,warn,error" help:"Diagnostic log level."`
}

// Kind returns the element kind selected by -dataType.
func (o *Options) Kind() types.Kind {
	return analyzer.ParseKind(o.DataType)
}

// Mode returns the sorting mode selected by -sortingType.
func (o *Options) Mode() types.SortingType {
	return analyzer.ParseSortingType(o.SortingType)
}

// Parse processes command-line arguments. Warnings about skipped arguments
// go to stdout, help text to stdout and parse errors are returned as
// *ExitError. The boolean is true when the program should stop cleanly.
func Parse(args []string, stdout, stderr io.Writer) (*Options, bool, error) {
	normalized, err := normalizeArgs(args, stdout)
	if err != nil {
		return nil, false, err
	}

	opts := &Options{}
	exited := false
	parser, err := kong.New(opts,
		kong.Name("sortingtool"),
		kong.Description("Read numbers, words or lines and print them sorted, or print statistics about them.\nFlags may be written with one dash: -dataType word."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{"encodings": strings.Join(input.Encodings, ",")},
	)
	if err != nil {
		return nil, false, fmt.Errorf("error building parser: %w", err)
	}

	if _, err := parser.Parse(normalized); err != nil {
		if exited {
			return nil, true, nil
		}
		return nil, false, usageError(err.Error())
	}
	if exited {
		return nil, true, nil
	}

	slog.Debug("Arguments parsed.", "args", normalized)
	return opts, false, nil
}

// Execute runs one invocation and returns the process exit status. Like the
// other user-facing messages, the text of an *ExitError goes to stdout.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := Run(args, stdin, stdout, stderr)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stdout, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintf(stdout, "Error: %v\n", err)
	return 1
}

// Run executes one invocation: parse the arguments, collect the input and
// write the report.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, shouldExit, err := Parse(args, stdout, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	slog.SetDefault(newLogger(opts.LogLevel, stderr))
	slog.Debug("Options resolved.", "dataType", opts.Kind().String(), "sortingType", opts.Mode().String(), "stats", opts.Stats)

	src, err := input.Open(opts.InputFile, stdin)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("Error reading file: %v", err)}
	}
	defer src.Close()

	r, err := input.Decode(src, opts.Encoding)
	if err != nil {
		return usageError(err.Error())
	}

	if opts.InputFile == "" && input.IsTerminal(stdin) {
		fmt.Fprintln(stderr, "Reading standard input, end with Ctrl-D.")
	}

	a := analyzer.New(opts.Kind(), stdout)
	if err := a.Collect(r); err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	return writeReport(a, opts, stdout)
}

func writeReport(a types.Analyzer, opts *Options, stdout io.Writer) (err error) {
	out := stdout
	if opts.OutputFile != "" {
		f, createErr := os.Create(opts.OutputFile)
		if createErr != nil {
			return &ExitError{Code: 1, Message: fmt.Sprintf("Error creating output file: %v", createErr)}
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		out = f
	}

	if opts.Stats {
		err = exporter.WriteStats(out, a.Describe(), opts.Format)
	} else {
		err = exporter.WriteSorted(out, a.Render(opts.Mode()), opts.Format)
	}
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("Report written.", "outputFile", opts.OutputFile)
	return nil
}
