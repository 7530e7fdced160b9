package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/socialbook/internal/command"
)

func newListCmd() *cobra.Command {
	f := &bookFlags{}

	cmd := &cobra.Command{
		Use:   command.ListWord,
		Short: "List the people currently shown in SocialBook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(f, command.ListWord, cmd.OutOrStdout())
		},
	}
	f.register(cmd)
	return cmd
}

func newExecCmd() *cobra.Command {
	f := &bookFlags{}

	cmd := &cobra.Command{
		Use:   "exec <command>",
		Short: "Run one SocialBook command line against the address book",
		Long:  "Run one SocialBook command line against the address book.\n\nCommands:\n\n" + command.Usage(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(f, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
	f.register(cmd)
	return cmd
}

// runLine parses and executes a single interpreter command.
func runLine(f *bookFlags, line string, stdout io.Writer) error {
	verbose := f.logf()

	c, err := command.Parse(line)
	if err != nil {
		return exitError(3, "%v", err)
	}
	verbose("Parsed command: %s", strings.TrimSpace(line))

	if _, err := loadConfig(f, verbose); err != nil {
		return err
	}
	b, err := openBook(f, verbose)
	if err != nil {
		return err
	}

	res, err := c.Execute(b)
	if err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	_, err = fmt.Fprintln(stdout, res.Feedback)
	return err
}
