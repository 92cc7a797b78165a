// SPDX-License-Identifier: GPL-2.0-only

package ringlz

import "errors"

// Sentinel errors returned by the core codec. Callers may match them with
// errors.Is; cmd/slzf wraps these with the name of the failed operation via
// github.com/pkg/errors.
var (
	// ErrTruncatedInput is returned by Decompress when the source ends
	// right after a control byte, before the first token it announces, or
	// before a back-reference's second byte.
	ErrTruncatedInput = errors.New("ringlz: truncated input")

	// ErrShortWrite is returned when a sink write reports success but
	// wrote fewer bytes than requested without an accompanying error.
	ErrShortWrite = errors.New("ringlz: short write to sink")
)
