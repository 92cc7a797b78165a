// SPDX-License-Identifier: GPL-2.0-only

package ringlz

import (
	"bufio"
	"io"
)

// groupDecoder mirrors groupEncoder: it tracks which bit of the current
// control byte governs the token about to be read, fetching a fresh
// control byte from src every eighth token (or at the very start).
type groupDecoder struct {
	src     *bufio.Reader
	control byte
	count   int
}

func newGroupDecoder(src *bufio.Reader) *groupDecoder {
	return &groupDecoder{src: src}
}

// next reports whether the upcoming token is a back-reference, fetching a
// fresh control byte from src whenever the previous group is exhausted. A
// clean end-of-file here only means the source ended before a new group's
// control byte; it says nothing about whether a token's own first byte
// will be reachable, so callers must still handle io.EOF from that read
// (decodeLiteral/decodeBackref) themselves.
func (g *groupDecoder) next() (backref bool, err error) {
	if g.count == 0 {
		c, rerr := g.src.ReadByte()
		if rerr != nil {
			return false, rerr
		}
		g.control = c
	}
	backref = g.control&(1<<uint(7-g.count)) != 0
	g.count = (g.count + 1) % 8
	return backref, nil
}

// decoder reconstructs the original byte stream from tokens, holding only a
// rolling windowSize-byte output buffer rather than the whole decoded
// stream.
type decoder struct {
	src   *bufio.Reader
	dst   io.Writer
	group *groupDecoder
	out   [windowSize]byte
	pos   uint64
}

func newDecoder(src io.Reader, dst io.Writer) *decoder {
	r := bufio.NewReader(src)
	return &decoder{src: r, dst: dst, group: newGroupDecoder(r)}
}

// run decodes tokens until the source ends cleanly between tokens: at a
// group boundary (no control byte follows), or mid-group on a token's own
// first byte after at least one token of the group (no more tokens follow
// in an already-announced group). Either point is a legitimate stopping
// place, since the encoder's final group is ordinarily shorter than eight
// tokens. A control byte always announces at least one token, so a source
// that ends right after one yields ErrTruncatedInput.
func (d *decoder) run() error {
	for {
		fresh := d.group.count == 0
		backref, err := d.group.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		var ok bool
		if backref {
			ok, err = d.decodeBackref()
		} else {
			ok, err = d.decodeLiteral()
		}
		if err != nil {
			return err
		}
		if !ok {
			if fresh {
				return ErrTruncatedInput
			}
			return nil
		}
	}
}

// decodeLiteral reads one literal byte. A clean EOF on this read (the
// token's only byte) ends the stream; it is reported as ok=false rather
// than an error.
func (d *decoder) decodeLiteral() (ok bool, err error) {
	c, err := d.src.ReadByte()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, d.emit(c)
}

// decodeBackref reads the two-byte offset/length pair. A clean EOF on the
// offset byte (the token's first byte) ends the stream the same way
// decodeLiteral's does; once that byte is in hand, the token is committed
// and a missing length byte is a genuine truncation.
func (d *decoder) decodeBackref() (ok bool, err error) {
	off, err := d.src.ReadByte()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	n, err := d.src.ReadByte()
	if err != nil {
		return false, truncated(err)
	}

	distance := uint64(off) + 1
	count := uint64(n) + 1
	for i := uint64(0); i < count; i++ {
		b := d.out[(d.pos-distance)&(windowSize-1)]
		if err := d.emit(b); err != nil {
			return false, err
		}
	}
	return true, nil
}

// emit appends b to the rolling output buffer and writes it to the sink.
func (d *decoder) emit(b byte) error {
	d.out[d.pos&(windowSize-1)] = b
	d.pos++
	n, err := d.dst.Write([]byte{b})
	if err != nil {
		return err
	}
	if n != 1 {
		return ErrShortWrite
	}
	return nil
}

// truncated maps a clean end-of-file encountered mid-token to
// ErrTruncatedInput; any other read error passes through unchanged.
func truncated(err error) error {
	if err == io.EOF {
		return ErrTruncatedInput
	}
	return err
}
