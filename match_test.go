// SPDX-License-Identifier: GPL-2.0-only

package ringlz

import "testing"

func TestSelectTokenLiteralWhenNoMatch(t *testing.T) {
	w := primeWindow(t, []byte("xyz"), []byte("ab"))
	var scratch [windowSize]uint64
	tok, consumed := selectToken(w, scratch[:])
	if tok.backref {
		t.Fatalf("expected a literal, got a back-reference")
	}
	if tok.value != 'a' {
		t.Fatalf("literal value = %q, want 'a'", tok.value)
	}
	if consumed != 1 {
		t.Fatalf("consumed = %d, want 1", consumed)
	}
}

func TestSelectTokenBackReference(t *testing.T) {
	w := primeWindow(t, []byte("abcdef"), []byte("cde"))
	var scratch [windowSize]uint64
	tok, consumed := selectToken(w, scratch[:])
	if !tok.backref {
		t.Fatalf("expected a back-reference")
	}
	if consumed != 3 {
		t.Fatalf("consumed = %d, want 3", consumed)
	}
	// stored offset = dict.size - o - 1 = 6 - 2 - 1 = 3
	if tok.offset != 3 {
		t.Fatalf("stored offset = %d, want 3", tok.offset)
	}
	// stored length = l - 1 = 3 - 1 = 2
	if tok.length != 2 {
		t.Fatalf("stored length = %d, want 2", tok.length)
	}
}

// weakLengthTwoMatch is exercised directly with a crafted (o, l) pair
// rather than through a live KMP search, since forcing the search itself
// to land on exactly l==2 while also satisfying the lookahead-repeat
// clauses would require a contrived window anyway.
func TestWeakLengthTwoMatchRejectsRepeatingContinuation(t *testing.T) {
	// look = "ABAA": byte tl+2 repeats byte tl, and byte tl+3 repeats it
	// again, so a length-2 match here is not worth the two-byte encoding.
	w := primeWindow(t, []byte("ZZ"), []byte("ABAA"))
	if !weakLengthTwoMatch(w, 0, 2) {
		t.Fatalf("expected the repeating continuation to be rejected")
	}
}

func TestWeakLengthTwoMatchAcceptsNonRepeating(t *testing.T) {
	w := primeWindow(t, []byte("ZZ"), []byte("ABCD"))
	if weakLengthTwoMatch(w, 0, 2) {
		t.Fatalf("a non-repeating continuation must not be rejected")
	}
}

func TestWeakLengthTwoMatchIgnoredForShortLookahead(t *testing.T) {
	// look.size() == 3, not > 3, so the rule never engages regardless of
	// content.
	w := primeWindow(t, []byte("ZZ"), []byte("ABA"))
	if weakLengthTwoMatch(w, 0, 2) {
		t.Fatalf("rule must not engage when look.size() <= 3")
	}
}

func TestSelectTokenAcceptsStrongLengthTwoMatch(t *testing.T) {
	// dict: "xy" ; look: "xyz" -> length-2 match "xy" at offset 0, but
	// look.size() == 3 is not > 3, so the weak-match clause's guard
	// (look.size() > 3) never engages and the match is kept.
	w := primeWindow(t, []byte("xy"), []byte("xyz"))
	var scratch [windowSize]uint64
	tok, consumed := selectToken(w, scratch[:])
	if !tok.backref {
		t.Fatalf("expected the length-2 match to be accepted as a back-reference")
	}
	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2", consumed)
	}
}
