package synth

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHeader = "EventDate,CounterID,ClientIP,SearchEngineID,SearchPhrase,ResolutionWidth,Title,IsRefresh,DontCountHits"

func TestWriteCSVLineCounts(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"header only", 0},
		{"five records", 5},
		{"one thousand records", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rows, err := NewSeeded(testNow, 3).WriteCSV(&buf, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.n, rows)

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			assert.Len(t, lines, tt.n+1)
			assert.Equal(t, wantHeader, lines[0])
		})
	}
}

func TestWriteCSVFivePlusHeader(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewSeeded(testNow, 11).WriteCSV(&buf, 5)
	require.NoError(t, err)

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 6)
	assert.Equal(t, Header, recs[0])
	for _, rec := range recs[1:] {
		assert.Len(t, rec, 9)
	}
}

func TestWriteCSVRoundTripsRecords(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewSeeded(testNow, 8).WriteCSV(&buf, 50)
	require.NoError(t, err)

	want := NewSeeded(testNow, 8)
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	for _, got := range recs[1:] {
		assert.Equal(t, want.Next().Values(), got)
	}
}

func TestWriteCSVRejectsNegativeCount(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewSeeded(testNow, 1).WriteCSV(&buf, -1)

	assert.ErrorIs(t, err, ErrNegativeCount)
	assert.Zero(t, buf.Len())
}

var errDiskFull = errors.New("disk full")

// failingWriter accepts limit bytes, then fails every write.
type failingWriter struct {
	limit int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) > f.limit {
		n := f.limit
		f.limit = 0
		return n, errDiskFull
	}
	f.limit -= len(p)
	return len(p), nil
}

func TestWriteCSVPropagatesWriteError(t *testing.T) {
	_, err := NewSeeded(testNow, 1).WriteCSV(&failingWriter{limit: 100}, 10000)

	assert.ErrorIs(t, err, errDiskFull)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hits.csv")

	res, err := WriteFile(path, NewSeeded(testNow, 21), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rows)
	assert.Equal(t, path, res.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), res.Bytes)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, wantHeader, lines[0])
}

func TestWriteFileTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hits.csv")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x\n"), 500), 0644))

	_, err := WriteFile(path, NewSeeded(testNow, 4), 0)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantHeader+"\n", string(data))
}

func TestWriteFileSameSeedSameBytes(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")

	_, err := WriteFile(a, NewSeeded(testNow, 77), 200)
	require.NoError(t, err)
	_, err = WriteFile(b, NewSeeded(testNow, 77), 200)
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestWriteFileErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	t.Run("parent is a file", func(t *testing.T) {
		_, err := WriteFile(filepath.Join(blocker, "hits.csv"), NewSeeded(testNow, 1), 5)
		assert.Error(t, err)
	})

	t.Run("path is a directory", func(t *testing.T) {
		_, err := WriteFile(dir, NewSeeded(testNow, 1), 5)
		assert.Error(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := WriteFile("", NewSeeded(testNow, 1), 5)
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("negative count", func(t *testing.T) {
		path := filepath.Join(dir, "neg.csv")
		_, err := WriteFile(path, NewSeeded(testNow, 1), -3)
		assert.ErrorIs(t, err, ErrNegativeCount)
		assert.NoFileExists(t, path)
	})
}
