package gff

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAccessors(t *testing.T) {
	r := &Record{
		SeqID:  "chr12",
		Type:   "exon",
		Start:  100,
		End:    200,
		Strand: "+",
		Attributes: map[string]string{
			"gene_id":       "ENSG00000133703",
			"transcript_id": "ENST00000311936",
			"exon_id":       "ENSE00000936617",
		},
	}

	assert.Equal(t, "ENSG00000133703", r.GeneID())
	assert.Equal(t, "ENST00000311936", r.TranscriptID())
	assert.Equal(t, "ENSE00000936617", r.ExonID())
	assert.Equal(t, int64(101), r.Length())
	assert.True(t, r.IsForwardStrand())
	assert.False(t, r.IsReverseStrand())
	assert.True(t, r.Contains(150))
	assert.False(t, r.Contains(201))
	assert.Equal(t, "12", r.NormalizeSeqID())
}

func TestRecordGeneIDFallsBackToGFF3ID(t *testing.T) {
	r := &Record{Attributes: map[string]string{"ID": "gene1"}}
	assert.Equal(t, "gene1", r.GeneID())

	empty := &Record{Attributes: map[string]string{}}
	assert.Equal(t, "", empty.GeneID())
	assert.Equal(t, "", empty.TranscriptID())
}

const testGTF = `##description: test
chr1	havana	gene	100	500	.	+	.	gene_id "G1"; gene_name "A";
chr1	havana	exon	100	200	.	+	.	gene_id "G1"; exon_number "1";
`

func TestNewParserPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gtf")
	require.NoError(t, os.WriteFile(path, []byte(testGTF), 0o644))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	var count int
	for {
		r, err := p.Next()
		require.NoError(t, err)
		if r == nil {
			break
		}
		count++
	}
	assert.Equal(t, 2, count)
}

func TestNewParserGzippedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gtf.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(testGTF))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	r, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "gene", r.Type)
	assert.Equal(t, "G1", r.Attributes["gene_id"])
}

func TestNewParserEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gff")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	r, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestNewParserMissingFile(t *testing.T) {
	_, err := NewParser(filepath.Join(t.TempDir(), "nope.gff"))
	require.Error(t, err)
}
