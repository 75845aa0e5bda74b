package parser_test

import (
	"testing"

	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/parser"
	"github.com/inkwell/mathcore/internal/parser/collections"
)

func sym(s string) doctree.Node { return doctree.NewSymbol(s) }

func newParser() *parser.Parser {
	return parser.NewParser(collections.Default())
}

func TestParseRow_UnaryMinusBindsBeforeMultiply(t *testing.T) {
	row := doctree.NewRow(sym("-"), sym("b"), sym("*"), sym("C"))
	got := newParser().ParseRow(row).Print()
	want := `(Arithmetic::Multiply (Arithmetic::Subtract (BuiltIn::Operator "-") (Core::Variable "b")) (BuiltIn::Operator "*") (Core::Variable "C"))`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_FactorialBindsTighterThanAdd(t *testing.T) {
	row := doctree.NewRow(sym("c"), sym("+"), sym("a"), sym("!"))
	got := newParser().ParseRow(row).Print()
	want := `(Arithmetic::Add (Core::Variable "c") (BuiltIn::Operator "+") (Arithmetic::Factorial (Core::Variable "a") (BuiltIn::Operator "!")))`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_SubAttachesAsTrailingPostfix(t *testing.T) {
	body := doctree.NewRow(sym("1"))
	g := doctree.NewGrid(1, 1, []doctree.Row{body})
	sub := doctree.NewContainer(doctree.VariantSub, g)
	row := doctree.NewRow(sym("a"), sub)

	got := newParser().ParseRow(row).Print()
	want := `(BuiltIn::Sub (Core::Variable "a") (BuiltIn::Row 1x1 (Arithmetic::Number "1")))`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_RoundBracketsAndTuple(t *testing.T) {
	row := doctree.NewRow(
		sym("("), sym("a"), sym(","), sym("b"), sym(","), sym("c"), sym(")"),
	)
	got := newParser().ParseRow(row).Print()
	want := `(Core::RoundBrackets (BuiltIn::Operator "(") (Collection::Tuple (Collection::Tuple (Core::Variable "a") (BuiltIn::Operator ",") (Core::Variable "b")) (BuiltIn::Operator ",") (Core::Variable "c")) (BuiltIn::Operator ")"))`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_EmptyRowIsMissingToken(t *testing.T) {
	row := doctree.NewRow()
	got := newParser().ParseRow(row).Print()
	want := `(Error::MissingToken)`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_PowerIsRightAssociative(t *testing.T) {
	row := doctree.NewRow(sym("a"), sym("^"), sym("b"), sym("^"), sym("c"))
	got := newParser().ParseRow(row).Print()
	want := `(Arithmetic::Power (Core::Variable "a") (BuiltIn::Operator "^") (Arithmetic::Power (Core::Variable "b") (BuiltIn::Operator "^") (Core::Variable "c")))`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_FunctionApplication(t *testing.T) {
	row := doctree.NewRow(sym("f"), sym("("), sym("x"), sym(")"))
	got := newParser().ParseRow(row).Print()
	want := `(Function::Apply (Core::Variable "f") (BuiltIn::Operator "(") (Core::Variable "x") (BuiltIn::Operator ")"))`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_AdjacentAtomsGetMissingOperator(t *testing.T) {
	row := doctree.NewRow(sym("a"), sym("b"))
	got := newParser().ParseRow(row).Print()
	want := `(Error::MissingOperator (Core::Variable "a") (Core::Variable "b"))`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseRow_UnknownTokenIsWrapped(t *testing.T) {
	row := doctree.NewRow(sym("§"))
	got := newParser().ParseRow(row).Print()
	want := `(Error::UnknownToken "§")`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}
