package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/socialbook/internal/command"
	"github.com/dshills/socialbook/internal/render"
)

type statisticsFlags struct {
	bookFlags
	format  string
	out     string
	noColor bool
}

func newStatisticsCmd() *cobra.Command {
	f := &statisticsFlags{}

	cmd := &cobra.Command{
		Use:   command.StatisticsWord,
		Short: "Display the overall statistics regarding all the people in SocialBook",
		Long:  command.StatisticsUsage,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatistics(f, cmd.OutOrStdout(), cmd.Flags().Changed("format"))
		},
	}

	f.register(cmd)
	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text, md, or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runStatistics(f *statisticsFlags, stdout io.Writer, formatSet bool) error {
	verbose := f.logf()

	cfg, err := loadConfig(&f.bookFlags, verbose)
	if err != nil {
		return err
	}
	if !formatSet && cfg.Format != "" {
		f.format = cfg.Format
	}

	b, err := openBook(&f.bookFlags, verbose)
	if err != nil {
		return err
	}

	stats := &command.Statistics{}
	if _, err := stats.Execute(b); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	color := f.out == "" && !f.noColor && !cfg.NoColor && isTerminal(stdout)
	output, err := render.Render(stats.Report(), strings.ToLower(f.format), color)
	if err != nil {
		return exitError(3, "%v", err)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, output)
	return err
}
