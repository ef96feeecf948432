// Package gff provides GFF/GTF file parsing functionality.
package gff

// Record represents a single annotation line from a GFF/GTF file.
type Record struct {
	SeqID      string            // Reference sequence name (e.g., "chr12", "12")
	Source     string            // Annotation source/program (e.g., "HAVANA")
	Type       string            // Feature type (e.g., "gene", "exon")
	Start      int64             // 1-based start position (inclusive)
	End        int64             // 1-based end position (inclusive)
	Score      string            // Score column, often "."
	Strand     string            // "+", "-" or "."
	Frame      string            // Frame/phase column, often "."
	Attributes map[string]string // Column 9 key-value pairs
}

// Attr returns the value of the named attribute, or "" if absent.
func (r *Record) Attr(key string) string {
	return r.Attributes[key]
}

// GeneID returns the gene_id (GTF) or ID (GFF3) attribute, or "".
func (r *Record) GeneID() string {
	if id := r.Attributes["gene_id"]; id != "" {
		return id
	}
	return r.Attributes["ID"]
}

// TranscriptID returns the transcript_id attribute, or "".
func (r *Record) TranscriptID() string {
	return r.Attributes["transcript_id"]
}

// ExonID returns the exon_id attribute, or "".
func (r *Record) ExonID() string {
	return r.Attributes["exon_id"]
}

// Length returns the feature length in bases (1-based closed interval).
func (r *Record) Length() int64 {
	return r.End - r.Start + 1
}

// IsForwardStrand returns true if the record is on the forward strand.
func (r *Record) IsForwardStrand() bool {
	return r.Strand == "+"
}

// IsReverseStrand returns true if the record is on the reverse strand.
func (r *Record) IsReverseStrand() bool {
	return r.Strand == "-"
}

// Contains returns true if the given position is within the record boundaries.
func (r *Record) Contains(pos int64) bool {
	return pos >= r.Start && pos <= r.End
}

// NormalizeSeqID returns the reference sequence name without "chr" prefix.
func (r *Record) NormalizeSeqID() string {
	if len(r.SeqID) > 3 && r.SeqID[:3] == "chr" {
		return r.SeqID[3:]
	}
	return r.SeqID
}
