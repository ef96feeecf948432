// Package main provides the gffcat command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "gffcat",
		Short:   "Stream and inspect GFF/GTF annotation files",
		Long:    "gffcat parses GFF3 and GTF annotation files as a stream of records.",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Example: `  # Dump records as a tab-delimited table
  gffcat view gencode.v44.annotation.gtf.gz

  # Only exons on chromosome 12
  gffcat view --type exon --chrom chr12 annotation.gtf

  # Count records per feature type
  gffcat stats annotation.gff3

  # Per-gene transcript and exon summary
  gffcat genes annotation.gtf

  # Read from stdin
  zcat annotation.gtf.gz | gffcat view -`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			return initLogger()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newGenesCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.gffcat.yaml if present.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home directory, skip config
	}

	viper.SetConfigFile(filepath.Join(home, ".gffcat.yaml"))
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// initLogger builds the process logger. Errors always print; record-level
// diagnostics only with --verbose.
func initLogger() error {
	cfg := zap.NewProductionConfig()
	if verbose || viper.GetBool("verbose") {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l
	return nil
}

// openOutput returns the writer for -o/--output, or stdout when empty.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
