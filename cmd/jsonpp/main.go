// Command jsonpp reads JSON from files or stdin and writes it back
// pretty-printed, optionally colorized when stdout is a terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"pkt.systems/jsonpp"
)

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "^C")
		os.Exit(130)
	}()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	color       bool
	sortKeys    bool
	escapeSlash bool
	unwrap      bool
	compact     bool
	indent      string
	palette     string
	files       []string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, code, err := parseArgs(args, stdout, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return code
	}

	opts := jsonpp.Options{
		Indent:      cfg.indent,
		SortKeys:    cfg.sortKeys,
		EscapeSlash: cfg.escapeSlash,
		Unwrap:      cfg.unwrap,
		Color:       cfg.color,
		Palette:     cfg.palette,
	}

	for _, path := range cfg.files {
		in, closeIn, err := openInput(path, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "jsonpp: %v\n", err)
			return 1
		}
		err = render(stdout, in, cfg.compact, &opts)
		closeIn()
		if err != nil {
			if isBrokenPipe(err) {
				return 0
			}
			fmt.Fprintf(stderr, "jsonpp: %s: %v\n", inputName(path), err)
			return 1
		}
	}
	return 0
}

func render(w io.Writer, r io.Reader, compact bool, opts *jsonpp.Options) error {
	if compact {
		return jsonpp.CompactTo(w, r, opts)
	}
	return jsonpp.PrettyTo(w, r, opts)
}

func parseArgs(args []string, stdout, stderr io.Writer) (config, int, error) {
	flags := flag.NewFlagSet("jsonpp", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jsonpp [flags] [file ...]\n\nReads stdin when no files are given; \"-\" also means stdin.\n\n")
		flags.PrintDefaults()
	}

	color := flags.Bool("color", false, "force colorized output")
	noColor := flags.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	sortKeys := flags.Bool("sort-keys", false, "emit object keys in ascending order")
	escapeSlash := flags.Bool("escape-slash", false, "escape forward slashes as \\/")
	unwrap := flags.Bool("unwrap", false, "recursively decode JSON-looking strings")
	compact := flags.Bool("compact", false, "emit each document compacted on one line")
	indent := flags.String("indent", "\t", "indentation unit")
	spaces := flags.Int("spaces", 4, "indent with this many spaces")
	tabs := flags.Int("tabs", 1, "indent with this many tabs")
	palette := flags.String("palette", "default", "color palette: "+strings.Join(jsonpp.PaletteNames(), ", "))

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config{}, 0, err
		}
		return config{}, 2, err
	}

	cfg := config{
		sortKeys:    *sortKeys,
		escapeSlash: *escapeSlash,
		unwrap:      *unwrap,
		compact:     *compact,
		indent:      resolveIndent(flags, *indent, *spaces, *tabs),
		palette:     *palette,
		files:       flags.Args(),
	}
	if len(cfg.files) == 0 {
		cfg.files = []string{"-"}
	}

	cfg.color = stdoutIsTerminal(stdout)
	if *color {
		cfg.color = true
	}
	if *noColor {
		cfg.color = false
	}
	return cfg, 0, nil
}

// resolveIndent picks the indentation unit: an explicit --indent string
// wins, then --spaces, then --tabs, then the one-tab default.
func resolveIndent(flags *flag.FlagSet, indent string, spaces, tabs int) string {
	switch {
	case flags.Changed("indent"):
		return indent
	case flags.Changed("spaces"):
		return strings.Repeat(" ", max(spaces, 0))
	case flags.Changed("tabs"):
		return strings.Repeat("\t", max(tabs, 0))
	default:
		return "\t"
	}
}

func stdoutIsTerminal(stdout io.Writer) bool {
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func inputName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

// isBrokenPipe reports whether err is the expected failure mode of a
// downstream consumer exiting early, which warrants a quiet exit rather
// than an error message.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
