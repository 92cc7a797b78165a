// SPDX-License-Identifier: GPL-2.0-only

package ringlz

// Stats summarizes one Compress call. It is informational only: nothing in
// the wire format depends on it, and the decoder neither produces nor
// consumes one. cmd/slzf surfaces it behind --stats.
type Stats struct {
	BytesIn   uint64 // bytes read from the source
	Literals  uint64 // tokens encoded as a single literal byte
	BackRefs  uint64 // tokens encoded as a back-reference
	Groups    uint64 // control bytes emitted, including a final partial group
}

func (s *Stats) record(tok token, consumed uint64) {
	s.BytesIn += consumed
	if tok.backref {
		s.BackRefs++
	} else {
		s.Literals++
	}
}
