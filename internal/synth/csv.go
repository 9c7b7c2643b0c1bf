package synth

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteCSV writes the header followed by n records to w.
// Fields are quoted only when they need it, which is what the warehouse
// loader expects with FIELD_OPTIONALLY_ENCLOSED_BY = '"'.
func (s *Synthesizer) WriteCSV(w io.Writer, n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeCount
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	rows := 0
	for ; rows < n; rows++ {
		if err := cw.Write(s.Next().Values()); err != nil {
			return rows, fmt.Errorf("write record %d: %w", rows+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("flush csv: %w", err)
	}

	return rows, nil
}

// WriteFile creates (or truncates) path and writes n records into it.
// The file is closed on every return path; a close error is reported
// only when nothing failed before it.
func WriteFile(path string, s *Synthesizer, n int) (res Result, err error) {
	res.Path = path
	if path == "" {
		return res, ErrEmptyPath
	}
	if n < 0 {
		return res, ErrNegativeCount
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return res, fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	cw := &countingWriter{w: file}
	res.Rows, err = s.WriteCSV(cw, n)
	res.Bytes = cw.n
	if err != nil {
		return res, err
	}

	return res, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
