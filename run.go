package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/agentflare-ai/doxmd/comment"
	"github.com/agentflare-ai/doxmd/doxygen"
)

const stdinName = "-"

type options struct {
	strip      bool
	extract    bool
	fallback   bool
	outputPath string
	jobs       int
	configPath string
	noColor    bool
}

type cliApp struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	opts   options

	warnMu sync.Mutex
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdin, stdout, stderr)
	args := normalizeLegacyArgs(argv)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, inputs []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}
	if err := checkInputs(inputs); err != nil {
		return err
	}
	jobs := app.opts.jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([][]byte, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := app.readInput(name)
			if err != nil {
				return err
			}
			out, err := app.convert(displayName(name), string(src))
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return writeOutput(app.opts.outputPath, app.stdout, bytes.Join(results, nil))
}

func checkInputs(inputs []string) error {
	stdinCount := 0
	for _, name := range inputs {
		if name == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errors.New("stdin (-) can only be read once")
	}
	return nil
}

func displayName(name string) string {
	if name == stdinName {
		return "<stdin>"
	}
	return name
}

func (app *cliApp) readInput(name string) ([]byte, error) {
	if name == stdinName {
		if app.stdin == nil {
			return nil, nil
		}
		return io.ReadAll(app.stdin)
	}
	return os.ReadFile(name)
}

// convert renders one input. Non-empty results always end in a newline so
// several inputs concatenate cleanly.
func (app *cliApp) convert(name, src string) ([]byte, error) {
	var buf bytes.Buffer
	if app.opts.extract {
		blocks, err := comment.Extract(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for _, block := range blocks {
			where := fmt.Sprintf("%s:%d", name, block.Line)
			md, err := app.transform(where, block.Text)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(&buf, "## %s\n\n", blockHeading(where, block))
			if md != "" {
				buf.WriteString(md)
				buf.WriteString("\n\n")
			}
		}
		return buf.Bytes(), nil
	}

	text := src
	if app.opts.strip {
		text = comment.Strip(text)
	}
	md, err := app.transform(name, text)
	if err != nil {
		return nil, err
	}
	buf.WriteString(md)
	if md != "" && !strings.HasSuffix(md, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func blockHeading(where string, block comment.Block) string {
	if block.Decl == "" {
		return where
	}
	return "`" + block.Decl + "`"
}

// transform converts text, or with --fallback returns it unchanged after a
// warning when its attribute lists are malformed.
func (app *cliApp) transform(where, text string) (string, error) {
	md, err := doxygen.Transform(text)
	if err == nil {
		return md, nil
	}
	if app.opts.fallback && errors.Is(err, doxygen.ErrMalformedAttributeList) {
		app.warnf("%s: %v; keeping original text", where, err)
		return text, nil
	}
	return "", fmt.Errorf("%s: %w", where, err)
}

func (app *cliApp) warnf(format string, args ...any) {
	if app.stderr == nil {
		return
	}
	c := color.New(color.FgYellow)
	if app.opts.noColor {
		c.DisableColor()
	}
	app.warnMu.Lock()
	defer app.warnMu.Unlock()
	c.Fprint(app.stderr, "warning: ")
	fmt.Fprintf(app.stderr, format+"\n", args...)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var legacyLongFlagSet = map[string]struct{}{
	"strip":    {},
	"extract":  {},
	"fallback": {},
	"output":   {},
	"jobs":     {},
	"config":   {},
	"no-color": {},
}

// normalizeLegacyArgs rewrites single-dash long flags (-strip) into their
// double-dash form so both spellings work.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[1:], "=")
		if _, ok := legacyLongFlagSet[name]; ok {
			if hasValue {
				converted = append(converted, "--"+name+"="+value)
			} else {
				converted = append(converted, "--"+name)
			}
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
