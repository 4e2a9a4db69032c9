package boundary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureFP = "testdata/outlet_history.txt"

func writeTable(t *testing.T, rows string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "series.txt")
	require.NoError(t, os.WriteFile(fp, []byte(rows), 0644))
	return fp
}

func TestLoadTimeSeries(t *testing.T) {
	ts, err := loadTimeSeries(fixtureFP)
	require.NoError(t, err)
	assert.Len(t, ts.t, 5)
	assert.Equal(t, 0., ts.v[0])
	assert.Equal(t, -159., ts.v[4])
}

func TestLoadTimeSeriesFaults(t *testing.T) {
	for nam, rows := range map[string]string{
		"single row":    "0.0 1.0\n",
		"empty":         "\n\n",
		"non-monotonic": "0.0 1.0\n10.0 2.0\n10.0 3.0\n",
		"reversed":      "10.0 1.0\n0.0 2.0\n",
		"non-numeric":   "0.0 1.0\nten 2.0\n",
		"one column":    "0.0 1.0\n10.0\n",
	} {
		t.Run(nam, func(t *testing.T) {
			_, err := loadTimeSeries(writeTable(t, rows))
			assert.ErrorIs(t, err, ErrDataFormat)
		})
	}
	_, err := loadTimeSeries(filepath.Join(t.TempDir(), "no-such-file.txt"))
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestValueAt(t *testing.T) {
	ts, err := loadTimeSeries(fixtureFP)
	require.NoError(t, err)

	// flat clamp beyond the record, exact at sample boundaries
	assert.Equal(t, 0., ts.ValueAt(-500.))
	assert.Equal(t, 0., ts.ValueAt(0.))
	assert.Equal(t, -159., ts.ValueAt(4000.))
	assert.Equal(t, -159., ts.ValueAt(9999.))
	assert.Equal(t, -37.5, ts.ValueAt(2000.))

	// bracketing interpolation
	assert.Equal(t, -47.5, ts.ValueAt(2400.))
	assert.InDelta(t, -6.25, ts.ValueAt(500.), 1e-12)
}

func TestDeltaBetween(t *testing.T) {
	ts, err := loadTimeSeries(fixtureFP)
	require.NoError(t, err)
	assert.Equal(t, -47.5, ts.DeltaBetween(0., 2400.))
	assert.Equal(t, 47.5, ts.DeltaBetween(2400., 0.))
	assert.Equal(t, 0., ts.DeltaBetween(1200., 1200.))
}
