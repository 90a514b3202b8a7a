package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/handiism/define/internal/cli"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "define <word> [OPTIONS]",
		Short: "Look up words in the dictionary of your choice",
		// Options are parsed by cli.Parse.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return cli.Complete(args, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := cli.Parse(args)
			if errors.Is(err, cli.ErrHelpRequested) {
				return cmd.Help()
			}
			if err != nil {
				_ = cmd.Usage()
				return &exitError{code: exitFailed, err: err}
			}
			return a.run(cmd.Context(), req)
		},
	}

	// The root command prints the option table; the completion command
	// keeps cobra's own help.
	defaultHelp := cmd.HelpFunc()
	defaultUsage := cmd.UsageFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != c.Root() {
			defaultHelp(c, args)
			return
		}
		cli.WriteUsage(c.OutOrStdout())
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if c != c.Root() {
			return defaultUsage(c)
		}
		cli.WriteUsage(c.ErrOrStderr())
		return nil
	})
	return cmd
}

// execute runs the root command and maps its error to an exit code.
// Errors are printed here; nothing below prints them.
func execute(ctx context.Context, a *app, args []string) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	if errors.Is(err, context.Canceled) {
		return exitFailed
	}

	printError(a.stderr, err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailed
}

func printError(w io.Writer, err error) {
	r := newRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).Render("Error:")
	fmt.Fprintf(w, "%s %v\n", label, err)
}
