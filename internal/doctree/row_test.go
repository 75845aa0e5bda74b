package doctree

import "testing"

func TestRowPrint_Empty(t *testing.T) {
	r := NewRow()
	if got, want := r.Print(), "(row)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestRowPrint_Symbols(t *testing.T) {
	r := NewRow(NewSymbol("-"), NewSymbol("b"), NewSymbol("*"), NewSymbol("C"))
	want := `(row "-" "b" "*" "C")`
	if got := r.Print(); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestRowPrint_EscapesQuotesAndBackslashes(t *testing.T) {
	r := NewRow(NewSymbol(`"`), NewSymbol(`\`))
	want := `(row "\"" "\\")`
	if got := r.Print(); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestRowPrint_Container(t *testing.T) {
	num := NewRow(NewSymbol("a"))
	den := NewRow(NewSymbol("b"))
	frac := NewContainer(VariantFraction, NewGrid(1, 2, []Row{num, den}))
	r := NewRow(frac)
	want := `(row (fraction 1x2 (row "a") (row "b")))`
	if got := r.Print(); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestNode_Equal(t *testing.T) {
	a := NewSymbol("a")
	b := NewSymbol("a")
	c := NewSymbol("b")
	if !a.Equal(b) {
		t.Error("expected equal symbols to be Equal")
	}
	if a.Equal(c) {
		t.Error("expected different symbols to not be Equal")
	}
}

func TestNewContainer_PanicsOnWrongFixedSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched fixed-size grid")
		}
	}()
	NewContainer(VariantSup, NewGrid(1, 2, []Row{NewRow(), NewRow()}))
}
