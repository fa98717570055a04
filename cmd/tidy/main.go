package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/luomingzhi/robotframework/internal/config"
	"github.com/luomingzhi/robotframework/internal/version"
	"github.com/luomingzhi/robotframework/pkg/logger"
	"github.com/luomingzhi/robotframework/pkg/tidy"
)

var (
	inplace       bool
	recursive     bool
	format        string
	usePipes      bool
	spaceCount    string
	lineSeparator string
	noColor       bool
	verbosity     int

	log logger.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if noColor {
			color.NoColor = true
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tidy [options] inputfile [outputfile]",
	Short: "Test data clean-up tool",
	Long: `tidy -- test data clean-up tool
========================================

Tidy can be used to clean up and change the format of test data files.
It always writes consistent section headers, a consistent order for
settings, and a consistent amount of whitespace between sections and
cells.

The output is written to the standard output stream by default, but an
optional output file can be given as well. Files can also be modified
in place using --inplace or --recursive.

Usage:
  tidy [options] inputfile
  tidy [options] inputfile outputfile
  tidy --inplace [options] inputfile [more input files]
  tidy --recursive [options] directory

The input format is always determined from the extension of the input
file. When an output file is given, the output format comes from its
extension; with --inplace or --recursive the desired format can be set
with --format.

Examples:
  tidy messed_up_tests.robot cleaned_up_tests.robot
  tidy --inplace tests.robot
  tidy --format robot --recursive path/to/tests

All output files are written using UTF-8 encoding.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyEnvDefaults(cmd)

		log = logger.NewLogger(logger.Config{
			Verbosity: verbosity,
			Output:    os.Stderr,
		})

		if noColor {
			color.NoColor = true
		}
	},
	RunE: run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flag("full").Value.String() == "true" {
			fmt.Println(version.FullVersion())
		} else {
			fmt.Println(version.Version)
		}
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&inplace, "inplace", "i", false,
		"tidy given file(s) so that original file(s) are overwritten")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"process given directory recursively, modifying files in place")
	rootCmd.Flags().StringVarP(&format, "format", "f", "",
		"output file format: txt|robot (default: from file extension)")
	rootCmd.Flags().BoolVarP(&usePipes, "usepipes", "p", false,
		"use pipe ('|') as a cell separator in the plain text format")
	rootCmd.Flags().StringVarP(&spaceCount, "spacecount", "s", "",
		"number of spaces between cells in the plain text format (default 4)")
	rootCmd.Flags().StringVarP(&lineSeparator, "lineseparator", "l", "",
		"line separator to use in outputs: native|windows|unix")

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored error output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"verbose output (can be used multiple times)")

	versionCmd.Flags().BoolP("full", "", false, "show full version information")
	rootCmd.AddCommand(versionCmd)
}

// applyEnvDefaults fills flags the user did not set from the
// environment configuration.
func applyEnvDefaults(cmd *cobra.Command) {
	cfg := config.Load()

	root := cmd.Root()
	flags := root.Flags()

	if !flags.Changed("format") {
		format = cfg.Format
	}
	if !flags.Changed("usepipes") {
		usePipes = cfg.UsePipes
	}
	if !flags.Changed("spacecount") {
		spaceCount = cfg.SpaceCount
	}
	if !flags.Changed("lineseparator") {
		lineSeparator = cfg.LineSeparator
	}
	if !root.PersistentFlags().Changed("no-color") {
		noColor = cfg.NoColor
	}
	if !root.PersistentFlags().Changed("verbose") {
		verbosity = cfg.Verbose
	}
}

func run(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()

	validator := tidy.NewArgumentValidator(fs, log)
	mode, opts, err := validator.Validate(args, tidy.RawOptions{
		Recursive:     recursive,
		Inplace:       inplace,
		Format:        format,
		UsePipes:      usePipes,
		SpaceCount:    spaceCount,
		LineSeparator: lineSeparator,
	})
	if err != nil {
		return err
	}

	t := tidy.New(fs, log, opts)

	switch mode {
	case tidy.ModeRecursive:
		return t.Directory(args[0])
	case tidy.ModeInplace:
		return t.Inplace(args...)
	default:
		outpath := ""
		if len(args) == 2 {
			outpath = args[1]
		}
		out, err := t.File(args[0], outpath)
		if err != nil {
			return err
		}
		if out != nil {
			if _, err := os.Stdout.Write(out); err != nil {
				return fmt.Errorf("writing to stdout failed: %w", err)
			}
		}

		return nil
	}
}
