// Package feature groups flat GFF/GTF records into gene/transcript hierarchies.
package feature

import (
	"github.com/inodb/gffcat/internal/gff"
)

// Well-known feature types from the GFF/GTF type column.
const (
	TypeGene       = "gene"
	TypeTranscript = "transcript"
	TypeMRNA       = "mRNA" // GFF3 convention for transcripts
	TypeExon       = "exon"
	TypeCDS        = "CDS"
)

// Feature wraps a parsed record with its nested child features.
// Genes contain transcripts, exons and CDS records sharing their gene_id;
// transcripts contain exons and CDS records sharing their transcript_id.
type Feature struct {
	Record   *gff.Record
	Children []*Feature
}

// New creates a feature for a single record with no children.
func New(r *gff.Record) *Feature {
	return &Feature{Record: r}
}

// Type returns the record's feature type column.
func (f *Feature) Type() string {
	return f.Record.Type
}

// GeneID returns the identifier linking this feature to its gene, or "".
func (f *Feature) GeneID() string {
	return f.Record.GeneID()
}

// TranscriptID returns the identifier linking this feature to its transcript, or "".
func (f *Feature) TranscriptID() string {
	return f.Record.TranscriptID()
}

// IsGene returns true for gene records.
func (f *Feature) IsGene() bool {
	return f.Record.Type == TypeGene
}

// IsTranscript returns true for transcript (GTF) or mRNA (GFF3) records.
func (f *Feature) IsTranscript() bool {
	return f.Record.Type == TypeTranscript || f.Record.Type == TypeMRNA
}

// IsExon returns true for exon records.
func (f *Feature) IsExon() bool {
	return f.Record.Type == TypeExon
}

// IsCDS returns true for CDS records.
func (f *Feature) IsCDS() bool {
	return f.Record.Type == TypeCDS
}

// CanContain reports whether child may be nested under this feature.
// Identifiers must be present on both sides to match; records missing
// their linking attribute never nest.
func (f *Feature) CanContain(child *Feature) bool {
	switch {
	case f.IsGene():
		if !child.IsTranscript() && !child.IsExon() && !child.IsCDS() {
			return false
		}
		return f.GeneID() != "" && f.GeneID() == child.GeneID()
	case f.IsTranscript():
		if !child.IsExon() && !child.IsCDS() {
			return false
		}
		return f.TranscriptID() != "" && f.TranscriptID() == child.TranscriptID()
	default:
		// Exons and CDS are leaves
		return false
	}
}

// AddChild nests child under this feature.
func (f *Feature) AddChild(child *Feature) {
	f.Children = append(f.Children, child)
}

// Transcripts returns the direct transcript children.
func (f *Feature) Transcripts() []*Feature {
	return f.childrenWhere((*Feature).IsTranscript)
}

// Exons returns the direct exon children.
func (f *Feature) Exons() []*Feature {
	return f.childrenWhere((*Feature).IsExon)
}

// CDS returns the direct CDS children.
func (f *Feature) CDS() []*Feature {
	return f.childrenWhere((*Feature).IsCDS)
}

func (f *Feature) childrenWhere(pred func(*Feature) bool) []*Feature {
	var out []*Feature
	for _, c := range f.Children {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// Extent returns the feature's start and end coordinates (1-based, inclusive).
func (f *Feature) Extent() (int64, int64) {
	return f.Record.Start, f.Record.End
}
