// SPDX-License-Identifier: GPL-2.0-only

/*
Package ringlz implements a streaming, byte-oriented LZ77-style codec built
on a sliding window of two back-to-back ring buffers (dictionary and
lookahead) and a KMP-based longest-match search.

The wire format has no header, magic number, or checksum: it is a raw
stream of groups, each a control byte followed by up to eight tokens
(literal bytes or two-byte back-references). See Compress and Decompress.

# Compress

	err := ringlz.Compress(src, dst)

# Decompress

	err := ringlz.Decompress(src, dst)

Both operate on an io.Reader source and an io.Writer sink and return as
soon as the source is exhausted (or, for Decompress, as soon as the stream
ends cleanly on a token boundary).
*/
package ringlz
