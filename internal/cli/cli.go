// Package cli provides the command-line interface for colmask.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/colmask/colmask-go/internal/anonymizer"
	"github.com/colmask/colmask-go/internal/config"
	"github.com/colmask/colmask-go/internal/mapstore"
	"github.com/colmask/colmask-go/internal/reader"
	"github.com/colmask/colmask-go/internal/textenc"
	"github.com/colmask/colmask-go/internal/writer"
)

var (
	// Colors for output
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "colmask [input-file [output-file]]",
	Short: "Anonymize column names in table definition files",
	Long: `colmask - column name anonymizer for table definitions

Replaces sensitive column names matching a regex pattern with generic
numbered placeholders (customer_name → column_1). The same original
name always maps to the same placeholder within a run, and distinct
names never share a placeholder.

Features:
  • Deterministic, collision-free renaming
  • Charset-aware input, including automatic detection
  • Transparent .gz/.bz2 input and .gz output compression
  • Rename map export to CSV
  • SQLite-backed rename map shared across runs`,
	Example: `  # Anonymize a table definition with the default pattern
  colmask schema.sql anonymized.sql

  # Custom pattern and prefix
  colmask -i schema.sql -o out.sql --column_name_pattern 'customer_\w+' --column_prefix col_

  # Latin-1 input, export the rename map for later reversal
  colmask -i legacy.sql -o out.sql --encoding latin1 --map-output map.csv

  # Share one numbering space across files and runs
  colmask -i a.sql,b.sql -o a_anon.sql,b_anon.sql --map-db renames.db`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCommand,
}

func init() {
	rootCmd.Flags().StringSliceP("input", "i", []string{}, "Input file(s), comma-separated; '-' reads stdin (default: stdin)")
	rootCmd.Flags().StringSliceP("output", "o", []string{}, "Output file(s), paired with inputs (default: stdout)")
	rootCmd.Flags().String("column_name_pattern", config.DefaultPattern, "Regex pattern identifying sensitive column names")
	rootCmd.Flags().String("column_prefix", anonymizer.DefaultPrefix, "Prefix for anonymized column names")
	rootCmd.Flags().String("encoding", textenc.Default, "Input file charset (IANA name), or 'auto' to detect")
	rootCmd.Flags().Bool("ignore-case", false, "Match case-insensitively; names differing only in case share a placeholder")
	rootCmd.Flags().String("map-output", "", "Write the rename map as CSV to this file ('-' for stdout)")
	rootCmd.Flags().String("map-db", "", "SQLite file persisting the rename map across runs")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}

	// Get flags
	inputFiles, _ := cmd.Flags().GetStringSlice("input")
	outputFiles, _ := cmd.Flags().GetStringSlice("output")
	pattern, _ := cmd.Flags().GetString("column_name_pattern")
	prefix, _ := cmd.Flags().GetString("column_prefix")
	encName, _ := cmd.Flags().GetString("encoding")
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
	mapOutput, _ := cmd.Flags().GetString("map-output")
	mapDB, _ := cmd.Flags().GetString("map-db")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	cfg.InputFiles = inputFiles
	cfg.OutputFiles = outputFiles
	cfg.Pattern = pattern
	cfg.Prefix = prefix
	cfg.Encoding = encName
	cfg.IgnoreCase = ignoreCase
	cfg.MapOutput = mapOutput
	cfg.MapDB = mapDB

	// Bare INPUT OUTPUT arguments, for compatibility with the classic
	// invocation style.
	if len(args) > 0 {
		if len(cfg.InputFiles) > 0 || len(cfg.OutputFiles) > 0 {
			return fmt.Errorf("positional files cannot be combined with --input/--output")
		}
		cfg.InputFiles = []string{args[0]}
		if len(args) == 2 {
			cfg.OutputFiles = []string{args[1]}
		}
	}
	if len(cfg.InputFiles) == 0 {
		cfg.InputFiles = []string{reader.Stdin}
	}

	// Validate inputs
	if err := cfg.Validate(); err != nil {
		return err
	}

	return run(cfg)
}

func run(cfg *config.Config) error {
	pattern, err := anonymizer.Compile(cfg.Pattern, cfg.IgnoreCase)
	if err != nil {
		return err
	}

	// One renamer per run: every input file in this invocation shares
	// a single numbering space.
	renamer := anonymizer.NewRenamer(cfg.Prefix, cfg.IgnoreCase)

	var store *mapstore.Store
	if cfg.MapDB != "" {
		store, err = mapstore.Open(cfg.MapDB)
		if err != nil {
			return err
		}
		defer store.Close()

		existing, err := store.Load()
		if err != nil {
			return err
		}
		renamer.Preload(existing)
		logrus.Debugf("loaded %d mappings from %s", len(existing), cfg.MapDB)
	}

	for i, inputFile := range cfg.InputFiles {
		outputFile := cfg.OutputFor(i)
		if outputFile == reader.Stdin {
			outputFile = ""
		}
		if err := anonymizeFile(inputFile, outputFile, pattern, renamer, cfg.Encoding); err != nil {
			return fmt.Errorf("failed to anonymize %s: %w", displayPath(inputFile), err)
		}
	}

	if store != nil {
		if err := store.Save(renamer.Mappings()); err != nil {
			return err
		}
		infoColor.Fprintf(os.Stderr, "Rename map saved to %s\n", cfg.MapDB)
	}

	if cfg.MapOutput != "" {
		if err := exportMap(cfg.MapOutput, renamer.Mappings()); err != nil {
			return fmt.Errorf("failed to export rename map: %w", err)
		}
		if cfg.MapOutput != reader.Stdin {
			successColor.Fprintf(os.Stderr, "✓ Rename map written to %s\n", cfg.MapOutput)
		}
	}

	return nil
}

// anonymizeFile reads one input, anonymizes it with the shared renamer,
// and writes the result in the input's charset.
func anonymizeFile(inputFile, outputFile string, pattern *anonymizer.Pattern, renamer *anonymizer.Renamer, encName string) error {
	in, err := reader.Open(inputFile)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	in.Close()
	if err != nil {
		return err
	}

	charset, err := textenc.Resolve(encName, data)
	if err != nil {
		return err
	}
	if !strings.EqualFold(charset, encName) {
		logrus.Debugf("using charset %s for %s", charset, displayPath(inputFile))
	}

	text, err := textenc.Decode(data, charset)
	if err != nil {
		return err
	}

	before := renamer.Len()
	anonymized, err := pattern.Anonymize(text, renamer)
	if err != nil {
		return err
	}

	encoded, err := textenc.Encode(anonymized, charset)
	if err != nil {
		return err
	}

	out, err := writer.Open(outputFile)
	if err != nil {
		return err
	}
	if _, err := out.Write(encoded); err != nil {
		if outputFile != "" {
			out.Close()
		}
		return err
	}
	if outputFile != "" {
		if err := out.Close(); err != nil {
			return err
		}
		successColor.Fprintf(os.Stderr, "✓ Anonymized %s → %s (%s new names)\n",
			displayPath(inputFile), outputFile, humanize.Comma(int64(renamer.Len()-before)))
	}

	return nil
}

func exportMap(path string, mappings []anonymizer.Mapping) error {
	if path == reader.Stdin {
		return mapstore.WriteCSV(os.Stdout, mappings)
	}

	out, err := writer.Open(path)
	if err != nil {
		return err
	}
	if err := mapstore.WriteCSV(out, mappings); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func displayPath(inputFile string) string {
	if inputFile == "" || inputFile == reader.Stdin {
		return "stdin"
	}
	return inputFile
}
