package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Heykeighley/annuity-tool-preview/internal/calculation"
	"github.com/Heykeighley/annuity-tool-preview/internal/config"
	"github.com/Heykeighley/annuity-tool-preview/internal/output"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "annuity-tool",
		Short: "Annuity contract projection and comparison engine",
	}

	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exampleCmd())
	rootCmd.AddCommand(formatsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func projectCmd() *cobra.Command {
	var (
		format  string
		outPath string
		mode    string
		trials  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "project [book.yaml]",
		Short: "Run the projection for a contract book and write a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			book, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			if mode != "" {
				book.Settings.Mode = config.NormalizeMode(mode)
			}
			if trials >= 0 {
				book.Settings.MonteCarloTrials = trials
			}
			if err := parser.ValidateConfiguration(book); err != nil {
				return err
			}

			engine := calculation.NewProjectionEngine()
			if verbose {
				engine.SetLogger(stderrLogger{})
			}

			results, err := engine.RunBook(cmd.Context(), book)
			if err != nil {
				return err
			}

			written, err := output.GenerateReport(results, format, outPath)
			if err != nil {
				return err
			}
			if format != "console" || outPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file path (default: timestamped file in the working directory)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "override return mode (fixed, random)")
	cmd.Flags().IntVarP(&trials, "trials", "t", -1, "override Monte Carlo trial count")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine progress to stderr")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [book.yaml]",
		Short: "Validate a contract book without running the projection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
}

func exampleCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example contract book to get started",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.NewInputParser().WriteExampleConfiguration(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example book written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "example_book.yaml", "where to write the example book")
	return cmd
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available report formats",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

// stderrLogger adapts the stdlib logger to the engine's Logger interface.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }
