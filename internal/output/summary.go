// Package output provides record output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/inodb/gffcat/internal/feature"
	"github.com/inodb/gffcat/internal/gff"
)

// TypeCounter tallies records per feature type for the stats command.
type TypeCounter struct {
	counts map[string]int
	total  int
}

// NewTypeCounter creates an empty counter.
func NewTypeCounter() *TypeCounter {
	return &TypeCounter{counts: make(map[string]int)}
}

// Add counts a single record.
func (tc *TypeCounter) Add(r *gff.Record) {
	tc.counts[r.Type]++
	tc.total++
}

// Total returns the number of records counted.
func (tc *TypeCounter) Total() int {
	return tc.total
}

// WriteTo writes per-type counts in descending count order, ties broken
// alphabetically.
func (tc *TypeCounter) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	types := make([]string, 0, len(tc.counts))
	for t := range tc.counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if tc.counts[types[i]] != tc.counts[types[j]] {
			return tc.counts[types[i]] > tc.counts[types[j]]
		}
		return types[i] < types[j]
	})

	if _, err := fmt.Fprintf(bw, "#Type\tCount\n"); err != nil {
		return err
	}
	for _, t := range types {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", t, tc.counts[t]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "total\t%d\n", tc.total); err != nil {
		return err
	}

	return bw.Flush()
}

// GeneSummaryWriter writes one line per assembled gene for the genes command.
type GeneSummaryWriter struct {
	w *bufio.Writer
}

// NewGeneSummaryWriter creates a new gene summary writer.
func NewGeneSummaryWriter(w io.Writer) *GeneSummaryWriter {
	return &GeneSummaryWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (gw *GeneSummaryWriter) WriteHeader() error {
	_, err := gw.w.WriteString("#GeneID\tName\tSeqID\tStart\tEnd\tStrand\tTranscripts\tExons\n")
	return err
}

// Write writes the summary line for one top-level feature.
func (gw *GeneSummaryWriter) Write(f *feature.Feature) error {
	start, end := f.Extent()

	exons := len(f.Exons())
	for _, tx := range f.Transcripts() {
		exons += len(tx.Exons())
	}

	_, err := fmt.Fprintf(gw.w, "%s\t%s\t%s\t%d\t%d\t%s\t%d\t%d\n",
		orDot(f.GeneID()),
		orDot(f.Record.Attr("gene_name")),
		f.Record.SeqID,
		start,
		end,
		orDot(f.Record.Strand),
		len(f.Transcripts()),
		exons,
	)
	return err
}

// Flush flushes buffered output.
func (gw *GeneSummaryWriter) Flush() error {
	return gw.w.Flush()
}
