// SPDX-License-Identifier: GPL-2.0-only

package ringlz

// windowSize is W: the compile-time, power-of-two size of one ring
// (dictionary or lookahead). The reference value is 256, which makes the
// decoder's rolling write index fit an ordinary arithmetic mask without any
// special-casing. Changing this constant changes the codec's wire format.
const windowSize = 256

// doubleWindowMask masks an index into the 2*windowSize physical buffer
// that backs a window's two adjacent rings.
const doubleWindowMask = 2*windowSize - 1

// ring is a pair of monotonically increasing indices (head, tail) with
// head >= tail and head-tail <= windowSize. Indices are never wrapped
// directly; only mask() and run() fold them into the physical buffer.
type ring struct {
	head uint64
	tail uint64
}

// size returns the number of live bytes currently held by the ring.
func (r *ring) size() uint64 {
	return r.head - r.tail
}

// capacity returns the free space remaining before the ring reaches
// windowSize bytes.
func (r *ring) capacity() uint64 {
	return windowSize - r.size()
}

// mask folds a monotonically increasing index into the physical
// 2*windowSize buffer shared by a window's dictionary and lookahead rings.
func mask(i uint64) uint64 {
	return i & doubleWindowMask
}

// run returns the number of bytes writable at head before the physical
// write would cross the end of the 2*windowSize buffer and wrap.
func run(head uint64) uint64 {
	return 2*windowSize - mask(head)
}
