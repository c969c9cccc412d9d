package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func cantilever(t *testing.T) Report {
	t.Helper()
	udl, err := load.NewUDL(10, 10, 10, true)
	require.NoError(t, err)
	ra, err := load.NewReaction(0, "fixed", "A")
	require.NoError(t, err)

	b, err := beam.New(20)
	require.NoError(t, err)
	a, err := b.Analyze([]load.Load{ra, udl})
	require.NoError(t, err)

	r := FromAnalysis(a, "Cantilever", 21)
	r.Combination = "Service"
	return r
}

func TestFromAnalysis(t *testing.T) {
	r := cantilever(t)

	require.Len(t, r.Reactions, 1)
	assert.Equal(t, ReactionRow{Label: "A", Support: "fixed", X: 0, Rx: 0, Ry: 100, M: 1500}, r.Reactions[0])
	assert.Len(t, r.Equations, 3)
	assert.GreaterOrEqual(t, len(r.Samples), 21)
	assert.InDelta(t, -1500, r.Samples[0].Moment, 1e-9)
	assert.InDelta(t, -1500, r.Peaks.MinMoment.Value, 1e-9)
	assert.NotEmpty(t, r.ShearTerms)
	assert.NotEmpty(t, r.MomentExpr)
}

func TestWriteWorkbook(t *testing.T) {
	r := cantilever(t)
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(r, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetReactions, SheetDiagram, SheetTerms}, f.GetSheetList())

	rows, err := f.GetRows(SheetReactions)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Cantilever"}, rows[0])
	assert.Equal(t, []string{"Label", "Support", "x (m)", "Rx (kN)", "Ry (kN)", "M (kNm)"}, rows[4])
	assert.Equal(t, []string{"A", "fixed", "0", "0", "100", "1500"}, rows[5])

	rows, err = f.GetRows(SheetDiagram)
	require.NoError(t, err)
	assert.Len(t, rows, len(r.Samples)+1)

	rows, err = f.GetRows(SheetTerms)
	require.NoError(t, err)
	assert.Len(t, rows, 1+len(r.ShearTerms)+len(r.MomentTerms)+3)
	assert.Equal(t, "V", rows[1][0])
}

func TestSaveWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "beam.xlsx")
	require.NoError(t, SaveWorkbook(cantilever(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(cantilever(t), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	path := filepath.Join(t.TempDir(), "report", "beam.pdf")
	require.NoError(t, SavePDF(Report{}, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
