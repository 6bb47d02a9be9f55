package plot

import (
	"slices"

	"github.com/gogpu/plot/annotations"
)

// ColumnDataSource holds named columns of equal length. Numeric columns
// feed glyph coordinates and sizes; string columns feed text fields such
// as label-set text.
//
// The first column set fixes the source length; later columns of a
// different length are rejected.
type ColumnDataSource struct {
	length  int
	numbers map[string][]float64
	strings map[string][]string
}

var _ annotations.DataSource = (*ColumnDataSource)(nil)

// NewColumnDataSource creates an empty source.
func NewColumnDataSource() *ColumnDataSource {
	return &ColumnDataSource{
		length:  -1,
		numbers: make(map[string][]float64),
		strings: make(map[string][]string),
	}
}

// SetColumn stores a numeric column under the given name, replacing any
// existing column of either kind with that name. The values are copied.
func (s *ColumnDataSource) SetColumn(name string, values []float64) error {
	if err := s.checkLength(name, len(values)); err != nil {
		return err
	}
	delete(s.strings, name)
	s.numbers[name] = slices.Clone(values)
	return nil
}

// SetStringColumn stores a string column under the given name, replacing
// any existing column of either kind with that name. The values are copied.
func (s *ColumnDataSource) SetStringColumn(name string, values []string) error {
	if err := s.checkLength(name, len(values)); err != nil {
		return err
	}
	delete(s.numbers, name)
	s.strings[name] = slices.Clone(values)
	return nil
}

// checkLength validates a new column's length against the source length,
// fixing the length on first use.
func (s *ColumnDataSource) checkLength(name string, n int) error {
	if s.length < 0 {
		s.length = n
		return nil
	}
	if n != s.length {
		return &ColumnLengthError{Column: name, Got: n, Want: s.length}
	}
	return nil
}

// Column returns the numeric column with the given name, or nil when no
// such column exists. The returned slice is owned by the source; callers
// must not modify it.
func (s *ColumnDataSource) Column(name string) []float64 {
	return s.numbers[name]
}

// StringColumn returns the string column with the given name, or nil when
// no such column exists. The returned slice is owned by the source;
// callers must not modify it.
func (s *ColumnDataSource) StringColumn(name string) []string {
	return s.strings[name]
}

// Length returns the number of rows, or 0 for an empty source.
func (s *ColumnDataSource) Length() int {
	if s.length < 0 {
		return 0
	}
	return s.length
}

// ColumnNames returns the names of all columns, numeric first, each group
// sorted for deterministic iteration.
func (s *ColumnDataSource) ColumnNames() []string {
	names := make([]string, 0, len(s.numbers)+len(s.strings))
	for name := range s.numbers {
		names = append(names, name)
	}
	slices.Sort(names)
	var strs []string
	for name := range s.strings {
		strs = append(strs, name)
	}
	slices.Sort(strs)
	return append(names, strs...)
}
