package core

// Epoch is a monotonically increasing timestamp stamped into the alpha/omega
// assignment arrays (see package assign). Comparing a slot against a fresh
// Epoch stands in for clearing it: nothing is ever zeroed.
type Epoch int64

// Lit is a raw signed DIMACS literal: a nonzero variable index, negated to
// mean the negative literal. Variable 0 never appears in well-formed input.
type Lit int

// Code is the dense, always-even-for-positive encoding of a Lit used to
// index the alpha/omega arrays: Code(v) = 2*|v| + (v<0). Complementing a
// Code is a single XOR, which is why the arrays are indexed by Code and not
// by Lit directly.
type Code int

// Encode maps a raw literal to its array index. It is a bijection on
// nonzero signed integers: Encode is injective and Complement is its own
// inverse, so no literal and its negation ever collide.
func Encode(l Lit) Code {
	v := int(l)
	if v < 0 {
		v = -v
	}
	c := 2 * v
	if l < 0 {
		c++
	}
	return Code(c)
}

// Decode recovers the raw literal that produced a Code.
func Decode(c Code) Lit {
	v := int(c) / 2
	if int(c)&1 != 0 {
		v = -v
	}
	return Lit(v)
}

// Complement returns the Code of the negated literal. code(x) is even iff x
// is positive, so flipping the low bit toggles sign without touching
// magnitude.
func Complement(c Code) Code {
	return c ^ 1
}
