// SPDX-License-Identifier: GPL-2.0-only

package ringlz

import "testing"

// primeWindow builds a window whose dictionary holds dict and whose
// lookahead holds look, as if shift had already moved dict bytes out of the
// lookahead. Indices start at zero for readability.
func primeWindow(t *testing.T, dict, look []byte) *window {
	t.Helper()
	w := &window{}
	for i, b := range dict {
		w.buf[i] = b
	}
	for i, b := range look {
		w.buf[len(dict)+i] = b
	}
	w.dict = ring{head: uint64(len(dict)), tail: 0}
	w.look = ring{head: uint64(len(dict) + len(look)), tail: uint64(len(dict))}
	return w
}

func TestKMPSearchNoMatch(t *testing.T) {
	w := primeWindow(t, []byte("xyz"), []byte("ab"))
	var scratch [windowSize]uint64
	o, l := kmpSearch(w, scratch[:])
	if l != 0 {
		t.Fatalf("expected no match, got offset=%d length=%d", o, l)
	}
}

func TestKMPSearchExactDictionaryMatch(t *testing.T) {
	w := primeWindow(t, []byte("abcdef"), []byte("cde"))
	var scratch [windowSize]uint64
	o, l := kmpSearch(w, scratch[:])
	if l != 3 {
		t.Fatalf("length = %d, want 3", l)
	}
	if got := w.at(w.dict.tail + o); got != 'c' {
		t.Fatalf("match starts at dict byte %q, want 'c'", got)
	}
}

func TestKMPSearchOverlapsIntoLookahead(t *testing.T) {
	// A single dictionary byte repeated through the whole lookahead is the
	// run-length case: the match legally extends past the dictionary.
	w := primeWindow(t, []byte{0x01}, []byte{0x01, 0x01, 0x01, 0x01})
	var scratch [windowSize]uint64
	o, l := kmpSearch(w, scratch[:])
	if o != 0 {
		t.Fatalf("offset = %d, want 0", o)
	}
	if l != 4 {
		t.Fatalf("length = %d, want 4 (full lookahead matched)", l)
	}
}

func TestKMPSearchShortLookaheadYieldsNoMatch(t *testing.T) {
	w := primeWindow(t, []byte("a"), []byte("a"))
	var scratch [windowSize]uint64
	_, l := kmpSearch(w, scratch[:])
	if l != 0 {
		t.Fatalf("length = %d, want 0 (lookahead shorter than 2 bytes)", l)
	}
}
