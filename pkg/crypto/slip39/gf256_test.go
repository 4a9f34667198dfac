package slip39

import "testing"

func TestGF256FieldAxioms(t *testing.T) {
	for a := 0; a < 256; a++ {
		if gfAdd(byte(a), byte(a)) != 0 {
			t.Fatalf("a xor a != 0 for a=%d", a)
		}
	}

	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			if gfAdd(byte(a), byte(b)) != gfAdd(byte(b), byte(a)) {
				t.Fatalf("addition not commutative for a=%d b=%d", a, b)
			}
			if gfMul(byte(a), byte(b)) != gfMul(byte(b), byte(a)) {
				t.Fatalf("multiplication not commutative for a=%d b=%d", a, b)
			}
		}
	}

	for a := 0; a < 32; a++ {
		for b := 0; b < 32; b++ {
			for c := 0; c < 32; c++ {
				lhs := gfMul(byte(a), gfAdd(byte(b), byte(c)))
				rhs := gfAdd(gfMul(byte(a), byte(b)), gfMul(byte(a), byte(c)))
				if lhs != rhs {
					t.Fatalf("distributivity failed for a=%d b=%d c=%d", a, b, c)
				}
			}
		}
	}

	for a := 0; a < 32; a++ {
		for b := 0; b < 32; b++ {
			for c := 0; c < 32; c++ {
				lhs := gfMul(gfMul(byte(a), byte(b)), byte(c))
				rhs := gfMul(byte(a), gfMul(byte(b), byte(c)))
				if lhs != rhs {
					t.Fatalf("associativity failed for a=%d b=%d c=%d", a, b, c)
				}
			}
		}
	}
}

func TestGF256MulInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv, err := gfInv(byte(a))
		if err != nil {
			t.Fatalf("gfInv(%d) unexpected error: %v", a, err)
		}
		if gfMul(byte(a), inv) != 1 {
			t.Fatalf("a * a^-1 != 1 for a=%d", a)
		}
	}

	if _, err := gfInv(0); err == nil {
		t.Fatal("expected error inverting zero")
	}
}

func TestGF256DivRoundTrip(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 1; b < 256; b++ {
			q, err := gfDiv(byte(a), byte(b))
			if err != nil {
				t.Fatalf("gfDiv(%d,%d) unexpected error: %v", a, b, err)
			}
			if gfMul(q, byte(b)) != byte(a) {
				t.Fatalf("(a/b)*b != a for a=%d b=%d", a, b)
			}
		}
	}

	if _, err := gfDiv(5, 0); err == nil {
		t.Fatal("expected DivisionByZero error")
	}
}

func TestGF256GeneratorCyclesAllNonZeroElements(t *testing.T) {
	seen := make(map[byte]bool, 255)
	for i := 0; i < 255; i++ {
		v, err := gfPow(3, i)
		if err != nil {
			t.Fatalf("gfPow error: %v", err)
		}
		if v == 0 {
			t.Fatalf("generator power %d produced zero", i)
		}
		if seen[v] {
			t.Fatalf("generator power %d repeated value %d", i, v)
		}
		seen[v] = true
	}
	if len(seen) != 255 {
		t.Fatalf("generator visited %d distinct nonzero values, want 255", len(seen))
	}
}

func TestGF256PowEdgeCases(t *testing.T) {
	v, err := gfPow(7, 0)
	if err != nil || v != 1 {
		t.Fatalf("a^0 should be 1, got %d err=%v", v, err)
	}
	v, err = gfPow(0, 5)
	if err != nil || v != 0 {
		t.Fatalf("0^n (n>0) should be 0, got %d err=%v", v, err)
	}
	if _, err := gfPow(2, -1); err == nil {
		t.Fatal("expected NegativeExponent error")
	}
}
