package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/gffcat/internal/gff"
	"github.com/inodb/gffcat/internal/output"
)

func newStatsCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Count records per feature type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runStats(path, outputFile string) error {
	parser, err := gff.NewParser(path)
	if err != nil {
		return err
	}
	defer parser.Close()

	counter := output.NewTypeCounter()
	for {
		r, err := parser.Next()
		if err != nil {
			return err
		}
		if r == nil {
			break
		}
		counter.Add(r)
	}

	out, closeOut, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	logger.Debug("stats complete", zap.Int("records", counter.Total()))

	return counter.WriteTo(out)
}
