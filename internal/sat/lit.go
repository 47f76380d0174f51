package sat

import "fmt"

// Lit is a literal in magnitude-sign representation. The zero-based variable
// index sits in the upper bits and the least significant bit holds the
// polarity (0 = positive, 1 = negative), so the complement is a single XOR
// and the two literals of a variable occupy adjacent array slots.
type Lit int

// NewLit returns the literal for the zero-based variable v, negated if neg.
func NewLit(v int, neg bool) Lit {
	if v < 0 {
		panic(fmt.Sprintf("negative variable index in NewLit call: %v", v))
	}
	if neg {
		return Lit(2*v + 1)
	}
	return Lit(2 * v)
}

// LitFromDimacs converts a signed one-based literal (the DIMACS convention
// used on the package boundary) into magnitude-sign form.
func LitFromDimacs(literal int64) Lit {
	if literal == 0 {
		panic("literal 0 is not representable")
	}
	if literal < 0 {
		return Lit(2*(-literal-1) + 1)
	}
	return Lit(2 * (literal - 1))
}

// Dimacs is the inverse of LitFromDimacs.
func (l Lit) Dimacs() int64 {
	if l.IsPos() {
		return int64(l.Var() + 1)
	}
	return -int64(l.Var() + 1)
}

// Not returns the complementary literal.
func (l Lit) Not() Lit {
	return l ^ 1
}

// Var returns the zero-based variable index of the literal.
func (l Lit) Var() int {
	return int(l >> 1)
}

// IsPos returns true if the literal is positive.
func (l Lit) IsPos() bool {
	return l&1 == 0
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", l.Dimacs())
}
