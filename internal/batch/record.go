// Package batch runs the derivation pipeline over index ranges and tables of
// (index, value) records.
package batch

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Klingon-tech/airgap/pkg/types"
)

// Record is one output or input table row.
type Record struct {
	Index uint64
	// IndexText is the index column exactly as read from a table. When set
	// it is written back verbatim, so "007" stays "007".
	IndexText string
	Value     string
}

// indexColumn returns the text of the index column for r.
func (r Record) indexColumn() string {
	if r.IndexText != "" {
		return r.IndexText
	}
	return strconv.FormatUint(r.Index, 10)
}

// Range is the half-open index range [Start, Start+Count).
type Range struct {
	Start uint64
	Count uint64
}

// Validate rejects ranges whose last index does not fit in a uint64.
func (r Range) Validate() error {
	if r.Count > 0 && r.Start > math.MaxUint64-(r.Count-1) {
		return fmt.Errorf("%w: range start %d count %d overflows", types.ErrFormat, r.Start, r.Count)
	}
	if r.Count > math.MaxInt32 {
		return fmt.Errorf("%w: count %d is too large", types.ErrFormat, r.Count)
	}
	return nil
}

// Index returns the i-th index of the range.
func (r Range) Index(i int) uint64 {
	return r.Start + uint64(i)
}
