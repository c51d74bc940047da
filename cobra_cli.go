package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
doxmd converts Doxygen-style documentation comments (@param, \li, @see, ...)
into Markdown, for binding generators that lift API docs out of C headers.

Inputs are files, or stdin when no file (or "-") is given. By default each
input is a bare comment body. With --strip the comment delimiters are removed
first, and with --extract every /** */, /*! */ and /// comment of a header is
converted under its own heading.

Defaults for --strip, --extract, --fallback and --jobs may be placed under a
[transform] table in doxmd.toml, searched upward from the working directory.
`

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "doxmd [flags] [file...]",
		Short:         "Convert Doxygen comments to Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.BoolVar(&app.opts.strip, "strip", false, "remove comment delimiters (/**, */, leading *, ///) before converting")
	flags.BoolVar(&app.opts.extract, "extract", false, "treat inputs as C headers and convert every documentation comment")
	flags.BoolVar(&app.opts.fallback, "fallback", false, "keep the original text of comments that fail to convert instead of failing")
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write output Markdown to file instead of stdout")
	flags.IntVarP(&app.opts.jobs, "jobs", "j", 1, "number of files converted concurrently")
	flags.StringVar(&app.opts.configPath, "config", "", "path to a doxmd.toml config file")
	flags.BoolVar(&app.opts.noColor, "no-color", false, "disable coloured warnings")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := applyConfig(&app.opts, cmd.Flags()); err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for doxmd.

The output should be evaluated by your shell. For example:

  # bash
  doxmd completion bash > /usr/local/etc/bash_completion.d/doxmd

  # zsh
  doxmd completion zsh > "${fpath[1]}/_doxmd"

  # fish
  doxmd completion fish | source

  # PowerShell
  doxmd completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  doxmd gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
