package plot

import (
	"errors"
	"testing"
)

func TestColumnDataSourceEmpty(t *testing.T) {
	s := NewColumnDataSource()
	if s.Length() != 0 {
		t.Errorf("Length() = %d, want 0", s.Length())
	}
	if s.Column("missing") != nil {
		t.Error("Column() for missing name should be nil")
	}
	if s.StringColumn("missing") != nil {
		t.Error("StringColumn() for missing name should be nil")
	}
}

func TestColumnDataSourceSetColumn(t *testing.T) {
	s := NewColumnDataSource()
	if err := s.SetColumn("x", []float64{1, 2, 3}); err != nil {
		t.Fatalf("SetColumn = %v", err)
	}
	if s.Length() != 3 {
		t.Errorf("Length() = %d, want 3", s.Length())
	}
	got := s.Column("x")
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Column(x) = %v, want [1 2 3]", got)
	}
}

func TestColumnDataSourceLengthMismatch(t *testing.T) {
	s := NewColumnDataSource()
	if err := s.SetColumn("x", []float64{1, 2, 3}); err != nil {
		t.Fatalf("SetColumn = %v", err)
	}

	err := s.SetColumn("y", []float64{1})
	if err == nil {
		t.Fatal("mismatched column length should fail")
	}
	var cle *ColumnLengthError
	if !errors.As(err, &cle) {
		t.Fatalf("error %v is not a *ColumnLengthError", err)
	}
	if cle.Column != "y" || cle.Got != 1 || cle.Want != 3 {
		t.Errorf("ColumnLengthError = %+v, want {y 1 3}", cle)
	}

	// String columns obey the same length rule.
	if err := s.SetStringColumn("t", []string{"a", "b"}); err == nil {
		t.Error("mismatched string column length should fail")
	}
	if err := s.SetStringColumn("t", []string{"a", "b", "c"}); err != nil {
		t.Errorf("matching string column rejected: %v", err)
	}
}

func TestColumnDataSourceValuesCopied(t *testing.T) {
	s := NewColumnDataSource()
	values := []float64{1, 2, 3}
	if err := s.SetColumn("x", values); err != nil {
		t.Fatal(err)
	}
	values[0] = 99
	if s.Column("x")[0] != 1 {
		t.Error("SetColumn should copy values, not alias the caller's slice")
	}
}

func TestColumnDataSourceReplaceSwitchesKind(t *testing.T) {
	s := NewColumnDataSource()
	if err := s.SetColumn("v", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStringColumn("v", []string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if s.Column("v") != nil {
		t.Error("numeric column should be gone after string replacement")
	}
	if got := s.StringColumn("v"); len(got) != 2 || got[0] != "a" {
		t.Errorf("StringColumn(v) = %v, want [a b]", got)
	}
}

func TestColumnDataSourceColumnNames(t *testing.T) {
	s := NewColumnDataSource()
	if err := s.SetColumn("y", []float64{1}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetColumn("x", []float64{1}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStringColumn("t", []string{"a"}); err != nil {
		t.Fatal(err)
	}

	got := s.ColumnNames()
	want := []string{"x", "y", "t"}
	if len(got) != len(want) {
		t.Fatalf("ColumnNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ColumnNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
