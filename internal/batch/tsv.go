package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Klingon-tech/airgap/pkg/types"
)

// newTSVReader returns a csv.Reader configured for two-column TSV.
func newTSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true
	return cr
}

// ReadRecords parses a headerless two-column TSV table of decimal index and
// value. Rows keep their input order and the index text is kept as written;
// duplicate indices are rejected. Errors name the input line.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := newTSVReader(r)
	var out []Record
	seen := make(map[uint64]int)

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: line %d: %v", types.ErrFormat, perr.Line, perr.Err)
			}
			return nil, fmt.Errorf("read table: %w", err)
		}
		line, _ := cr.FieldPos(0)

		idx, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: index %q is not a non-negative integer", types.ErrFormat, line, fields[0])
		}
		if prev, ok := seen[idx]; ok {
			return nil, fmt.Errorf("%w: line %d: index %d already used on line %d", types.ErrFormat, line, idx, prev)
		}
		seen[idx] = line
		out = append(out, Record{Index: idx, IndexText: fields[0], Value: fields[1]})
	}
	return out, nil
}

// WriteRecords writes records as "index\tvalue\n" lines.
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	row := make([]string, 2)
	for _, rec := range records {
		row[0] = rec.indexColumn()
		row[1] = rec.Value
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write index %d: %w", rec.Index, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
