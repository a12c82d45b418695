package parser

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/pable/go-fb-metrics/internal/model"
)

// Open opens the table at path for reading, decompressing it according to
// its extension (.zst, .gz, .bz2). Open failures wrap model.ErrIO.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: zstd %s: %w", model.ErrIO, path, err)
		}
		return &stackedReader{Reader: dec, closers: []func() error{noErr(dec.Close), f.Close}}, nil
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: gzip %s: %w", model.ErrIO, path, err)
		}
		return &stackedReader{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case strings.HasSuffix(path, ".bz2"):
		return &stackedReader{Reader: bzip2.NewReader(f), closers: []func() error{f.Close}}, nil
	}
	return f, nil
}

// stackedReader closes a decompressor and its underlying file together.
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (s *stackedReader) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func noErr(f func()) func() error {
	return func() error { f(); return nil }
}

// ReadRows reads every row of the table at path. The first physical line is
// the header and is discarded unread, so a malformed header never fails the
// table. Rows may have any number of fields; callers check the widths they
// need. The returned line numbers are 1-based file lines. Malformed CSV
// (e.g. an unterminated quote) is reported as kind.
func ReadRows(path string, kind error) (rows [][]string, lines []int, err error) {
	rc, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	if _, err := br.ReadString('\n'); err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: read %s: %w", model.ErrIO, path, err)
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	// Line numbers from r are relative to the line after the header.
	const headerLines = 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, nil, &model.RowError{Kind: kind, Path: path, Line: pe.Line + headerLines, Column: -1, Err: pe.Err}
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: read %s: %w", model.ErrIO, path, err)
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line+headerLines)
	}
	return rows, lines, nil
}
