package formula

import "testing"

func TestLiteralNegationIsInvolution(t *testing.T) {
	l := NewLiteral(5)
	if l.Not().Not() != l {
		t.Fatalf("Not(Not(l)) != l for %v", l)
	}
	if l.Not() == l {
		t.Fatalf("Not(l) == l for %v", l)
	}
}

func TestLiteralDimacsRoundTrip(t *testing.T) {
	cases := []int{1, -1, 42, -42}
	for _, d := range cases {
		l := FromDimacs(d)
		if got := l.Dimacs(); got != d {
			t.Errorf("FromDimacs(%d).Dimacs() = %d", d, got)
		}
	}
}

func TestLiteralVariableZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for variable 0")
		}
	}()
	NewLiteral(0)
}

func TestLiteralOrderingMatchesEncodedValue(t *testing.T) {
	pos := NewLiteral(3)
	neg := pos.Not()
	if !(pos < neg) {
		t.Fatalf("expected positive literal to sort before its negation")
	}
}
