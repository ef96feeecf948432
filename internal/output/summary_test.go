package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/gffcat/internal/feature"
	"github.com/inodb/gffcat/internal/gff"
)

func TestTypeCounter(t *testing.T) {
	tc := NewTypeCounter()
	for _, ftype := range []string{"exon", "exon", "gene", "CDS", "exon"} {
		tc.Add(&gff.Record{Type: ftype})
	}

	assert.Equal(t, 5, tc.Total())

	var sb strings.Builder
	require.NoError(t, tc.WriteTo(&sb))

	assert.Equal(t,
		"#Type\tCount\nexon\t3\nCDS\t1\ngene\t1\ntotal\t5\n",
		sb.String())
}

func TestGeneSummaryWriter(t *testing.T) {
	gene := feature.New(&gff.Record{
		SeqID:  "chr12",
		Type:   "gene",
		Start:  25205246,
		End:    25250929,
		Strand: "-",
		Attributes: map[string]string{
			"gene_id":   "ENSG00000133703",
			"gene_name": "KRAS",
		},
	})
	tx := feature.New(&gff.Record{
		Type:       "transcript",
		Attributes: map[string]string{"transcript_id": "T1"},
	})
	tx.AddChild(feature.New(&gff.Record{Type: "exon"}))
	tx.AddChild(feature.New(&gff.Record{Type: "exon"}))
	gene.AddChild(tx)

	var sb strings.Builder
	gw := NewGeneSummaryWriter(&sb)
	require.NoError(t, gw.WriteHeader())
	require.NoError(t, gw.Write(gene))
	require.NoError(t, gw.Flush())

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ENSG00000133703\tKRAS\tchr12\t25205246\t25250929\t-\t1\t2", lines[1])
}
