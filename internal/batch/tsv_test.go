package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Klingon-tech/airgap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecords(&buf, []Record{
		{Index: 5, Value: "a"},
		{Index: 6, Value: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "5\ta\n6\tb\n", buf.String())
}

func TestReadRecords(t *testing.T) {
	got, err := ReadRecords(strings.NewReader("3\tabc\n1\tdef\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Index: 3, IndexText: "3", Value: "abc"},
		{Index: 1, IndexText: "1", Value: "def"},
	}, got)

	got, err = ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	// No trailing newline on the last row.
	got, err = ReadRecords(strings.NewReader("0\tx"))
	require.NoError(t, err)
	assert.Equal(t, []Record{{Index: 0, IndexText: "0", Value: "x"}}, got)
}

func TestRecords_IndexTextRoundTrip(t *testing.T) {
	got, err := ReadRecords(strings.NewReader("007\ta\n10\tb\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(7), got[0].Index)
	assert.Equal(t, "007", got[0].IndexText)

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, got))
	assert.Equal(t, "007\ta\n10\tb\n", buf.String())
}

func TestReadRecords_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"one column", "0\n", "line 1"},
		{"three columns", "0\ta\tb\n", "line 1"},
		{"second row short", "0\ta\n1\n", "line 2"},
		{"negative index", "-1\ta\n", "line 1"},
		{"word index", "zero\ta\n", "line 1"},
		{"padded index", " 1\ta\n", "line 1"},
		{"duplicate", "4\ta\n4\tb\n", "line 2: index 4 already used on line 1"},
		{"duplicate after leading zeros", "4\ta\n004\tb\n", "line 2"},
		{"after blank lines", "0\ta\n\n\nx\tb\n", "line 4"},
		{"duplicate after blank line", "1\ta\n\n1\tb\n", "line 3: index 1 already used on line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.input))
			require.ErrorIs(t, err, types.ErrFormat)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
