package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/gffcat/internal/gff"
	"github.com/inodb/gffcat/internal/output"
)

func newViewCmd() *cobra.Command {
	var (
		typeFilter  string
		chromFilter string
		outputFile  string
	)

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Dump GFF/GTF records as a tab-delimited table",
		Long: `Stream records from a GFF3 or GTF file and print them as a
tab-delimited table, one record per line. Use '-' to read from stdin;
gzipped files are detected automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0], typeFilter, chromFilter, outputFile)
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "Only show records of this feature type")
	cmd.Flags().StringVarP(&chromFilter, "chrom", "c", "", "Only show records on this reference sequence")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runView(path, typeFilter, chromFilter, outputFile string) error {
	parser, err := gff.NewParser(path)
	if err != nil {
		return err
	}
	defer parser.Close()

	out, closeOut, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	tw := output.NewTabWriter(out)
	if err := tw.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var shown, seen int
	for {
		r, err := parser.Next()
		if err != nil {
			return err
		}
		if r == nil {
			break
		}
		seen++

		if typeFilter != "" && r.Type != typeFilter {
			continue
		}
		if chromFilter != "" && r.SeqID != chromFilter && r.NormalizeSeqID() != chromFilter {
			continue
		}

		if err := tw.Write(r); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		shown++
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	logger.Debug("view complete",
		zap.Int("records", seen),
		zap.Int("shown", shown),
		zap.Int("lines", parser.LineNumber()))

	return nil
}
