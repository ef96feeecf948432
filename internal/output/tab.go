// Package output provides record output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/inodb/gffcat/internal/gff"
)

// TabWriter writes parsed records in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#SeqID",
			"Source",
			"Type",
			"Start",
			"End",
			"Score",
			"Strand",
			"Frame",
			"Attributes",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single record.
func (tw *TabWriter) Write(r *gff.Record) error {
	_, err := fmt.Fprintf(tw.w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
		r.SeqID,
		r.Source,
		r.Type,
		r.Start,
		r.End,
		orDot(r.Score),
		orDot(r.Strand),
		orDot(r.Frame),
		formatAttributes(r.Attributes),
	)
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// formatAttributes renders the attribute map as key=value pairs in sorted
// key order, so output is deterministic.
func formatAttributes(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "."
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + attrs[k]
	}
	return strings.Join(pairs, ";")
}

func orDot(s string) string {
	if s == "" {
		return "."
	}
	return s
}
