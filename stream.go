// SPDX-License-Identifier: GPL-2.0-only

package ringlz

import (
	"bufio"
	"bytes"
	"io"
)

// Compress reads src until end-of-stream and writes the encoded form to
// dst. Empty input produces empty output. dst is not flushed beyond what
// Compress itself owns; callers driving an *os.File or other buffered sink
// must still flush/sync it themselves after Compress returns.
func Compress(src io.Reader, dst io.Writer) error {
	_, err := CompressStats(src, dst)
	return err
}

// CompressStats behaves like Compress but also returns counters describing
// the run, for callers that want to report a compression ratio or token
// breakdown (see cmd/slzf's --stats flag).
func CompressStats(src io.Reader, dst io.Writer) (Stats, error) {
	st := acquireState()
	defer releaseState(st)

	bw := bufio.NewWriter(dst)
	enc := newGroupEncoder(bw)
	var stats Stats

	step := func() error {
		tok, consumed := selectToken(&st.win, st.scratch[:])
		if err := enc.put(tok); err != nil {
			return err
		}
		st.win.shift(consumed)
		stats.record(tok, consumed)
		return nil
	}

	for {
		eof, err := st.win.fill(src)
		if err != nil {
			return stats, err
		}
		if eof {
			break
		}
		if err := step(); err != nil {
			return stats, err
		}
	}

	for st.win.look.size() > 0 {
		if err := step(); err != nil {
			return stats, err
		}
	}

	if err := enc.flush(); err != nil {
		return stats, err
	}
	stats.Groups = enc.groups
	return stats, bw.Flush()
}

// Decompress reads the encoded form from src and writes the original bytes
// to dst, stopping successfully when src ends cleanly between tokens, on a
// group boundary or after any token of the final group. A source that ends
// right after a control byte, or between a back-reference's two bytes,
// yields ErrTruncatedInput.
func Decompress(src io.Reader, dst io.Writer) error {
	return newDecoder(src, dst).run()
}

// CompressBytes is a whole-buffer convenience wrapper around Compress, for
// callers (and tests) that prefer the original reference tool's
// read-it-all-into-memory shape over the streaming entry points.
func CompressBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(bytes.NewReader(src), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes is the CompressBytes counterpart for decoding.
func DecompressBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(bytes.NewReader(src), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
