// Package feature groups flat GFF/GTF records into gene/transcript hierarchies.
package feature

import (
	"go.uber.org/zap"

	"github.com/inodb/gffcat/internal/gff"
)

// Assembler consumes records from a parser and yields top-level features
// with their children attached. A top-level feature is yielded once a
// record arrives that cannot be nested under it, so input must list a
// feature's children after the feature itself (the usual GFF/GTF layout).
// Like the parser it wraps, an Assembler is single-pass and not safe for
// concurrent use.
type Assembler struct {
	parser *gff.Parser
	stack  []*Feature
	done   bool
	logger *zap.Logger
}

// NewAssembler creates an assembler reading from the given parser.
func NewAssembler(p *gff.Parser) *Assembler {
	return &Assembler{
		parser: p,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for warning messages about orphan records.
func (a *Assembler) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Next returns the next completed top-level feature.
// Returns nil, nil when the input is exhausted. Parse errors from the
// underlying parser propagate unchanged and end the iteration.
func (a *Assembler) Next() (*Feature, error) {
	if a.done {
		return nil, nil
	}

	for {
		rec, err := a.parser.Next()
		if err != nil {
			a.done = true
			return nil, err
		}
		if rec == nil {
			a.done = true
			return a.flush(), nil
		}

		f := New(rec)

		// Walk up the open hierarchy until an ancestor accepts the new
		// feature. If none does, the old root is complete and is yielded.
		var completed *Feature
		for len(a.stack) > 0 {
			top := a.stack[len(a.stack)-1]
			if top.CanContain(f) {
				top.AddChild(f)
				completed = nil
				break
			}
			completed = top
			a.stack = a.stack[:len(a.stack)-1]
		}

		if completed != nil && (f.IsExon() || f.IsCDS()) {
			a.logger.Warn("orphan record does not belong to the open feature",
				zap.String("type", f.Type()),
				zap.String("seqid", rec.SeqID),
				zap.Int64("start", rec.Start),
				zap.Int("line", a.parser.LineNumber()))
		}

		a.stack = append(a.stack, f)

		if completed != nil {
			return completed, nil
		}
	}
}

// flush returns the remaining root feature, if any.
func (a *Assembler) flush() *Feature {
	if len(a.stack) == 0 {
		return nil
	}
	root := a.stack[0]
	a.stack = nil
	return root
}
