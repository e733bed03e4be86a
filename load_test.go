package singlelink

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Valid(t *testing.T) {
	input := "count=3\n40 86 663\n43 747 938\n47 285 973\n"

	col, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, col.Len())

	want := []Point{
		{ID: 40, X: 86, Y: 663},
		{ID: 43, X: 747, Y: 938},
		{ID: 47, X: 285, Y: 973},
	}
	for i, p := range want {
		c := col.At(i)
		assert.Equal(t, 1, c.Size(), "cluster %d", i)
		assert.Equal(t, p, c.Point(0), "cluster %d", i)
	}
}

func TestLoad_Tolerances(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ids   []int
	}{
		{"zero count", "count=0\n", []int{}},
		{"no trailing newline", "count=1\n1 2 3", []int{1}},
		{"crlf", "count=2\r\n1 2 3\r\n2 3 4\r\n", []int{1, 2}},
		{"blank lines between records", "count=2\n\n1 2 3\n   \n2 3 4\n", []int{1, 2}},
		{"extra records ignored", "count=1\n1 2 3\n2 3 4\n", []int{1}},
		{"trailing garbage ignored", "count=1\n1 2 3\nnot a record\n", []int{1}},
		{"tabs and padding", "count=1\n\t 7\t0   1000 \n", []int{7}},
		{"decimal whole numbers", "count=1\n7 10.0 2e2\n", []int{7}},
		{"negative id", "count=1\n-4 1 1\n", []int{-4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := Load(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.ids, firstIDs(col))
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		line  int
	}{
		{"empty input", "", ErrHeader, 1},
		{"missing header", "1 2 3\n", ErrHeader, 1},
		{"misspelled header", "cnt=3\n", ErrHeader, 1},
		{"non-integer count", "count=three\n", ErrHeader, 1},
		{"negative count", "count=-1\n", ErrHeader, 1},
		{"too few fields", "count=1\n1 2\n", ErrRecord, 2},
		{"too many fields", "count=1\n1 2 3 4\n", ErrRecord, 2},
		{"non-integer id", "count=1\n1.5 2 3\n", ErrRecord, 2},
		{"non-numeric coordinate", "count=1\n1 x 3\n", ErrRecord, 2},
		{"nan coordinate", "count=1\n1 NaN 3\n", ErrRecord, 2},
		{"missing records", "count=3\n1 2 3\n2 3 4\n", ErrRecord, 4},
		{"fractional x", "count=1\n1 1000.5 3\n", ErrCoordinate, 2},
		{"fractional y", "count=2\n1 1 1\n2 3 0.25\n", ErrCoordinate, 3},
		{"x above range", "count=1\n1 1001 3\n", ErrCoordinate, 2},
		{"y below range", "count=1\n1 3 -1\n", ErrCoordinate, 2},
		{"duplicate id", "count=2\n5 1 1\n5 2 2\n", ErrDuplicateID, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, col)
			assert.ErrorIs(t, err, tt.kind)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.line, le.Line)
			assert.Contains(t, err.Error(), tt.kind.Error())
		})
	}
}

func TestLoad_KindsAreDistinct(t *testing.T) {
	_, err := Load(strings.NewReader("count=1\n1 1000.5 3\n"))
	require.Error(t, err)
	for _, other := range []error{ErrOpen, ErrHeader, ErrRecord, ErrDuplicateID} {
		assert.False(t, errors.Is(err, other), "coordinate failure also matches %v", other)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.txt")
	require.NoError(t, os.WriteFile(path, []byte("count=2\n0 0 0\n1 1 1\n"), 0o644))

	col, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, firstIDs(col))
}

func TestLoadFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	col, err := LoadFile(path)
	assert.Nil(t, col)
	assert.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
}

func TestLoadFile_ErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("count=1\n1 2000 3\n"), 0o644))

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrCoordinate)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2")
}
