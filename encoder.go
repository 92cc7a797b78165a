// SPDX-License-Identifier: GPL-2.0-only

package ringlz

import "bufio"

// groupEncoder buffers up to eight tokens and flushes them as one control
// byte followed by their encoded bytes. Token index k (0-based) within a
// group sets control bit 1<<(7-k) when the token is a back-reference; this
// is an index counter standing in for the rotating 32-bit mask, an
// equivalent substitution that produces the identical wire format.
type groupEncoder struct {
	dst     *bufio.Writer
	control byte
	tokens  [8]token
	count   int
	groups  uint64
}

func newGroupEncoder(dst *bufio.Writer) *groupEncoder {
	return &groupEncoder{dst: dst}
}

// put appends tok to the current group, flushing automatically once the
// group reaches eight tokens.
func (g *groupEncoder) put(tok token) error {
	if tok.backref {
		g.control |= 1 << uint(7-g.count)
	}
	g.tokens[g.count] = tok
	g.count++
	if g.count == 8 {
		return g.flush()
	}
	return nil
}

// flush emits the current (possibly partial) group, if non-empty.
func (g *groupEncoder) flush() error {
	if g.count == 0 {
		return nil
	}
	if err := g.dst.WriteByte(g.control); err != nil {
		return err
	}
	for i := 0; i < g.count; i++ {
		t := g.tokens[i]
		if t.backref {
			if err := g.dst.WriteByte(t.offset); err != nil {
				return err
			}
			if err := g.dst.WriteByte(t.length); err != nil {
				return err
			}
		} else if err := g.dst.WriteByte(t.value); err != nil {
			return err
		}
	}
	g.control = 0
	g.count = 0
	g.groups++
	return nil
}
