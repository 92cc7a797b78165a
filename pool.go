// SPDX-License-Identifier: GPL-2.0-only

package ringlz

import "sync"

// codecState bundles the two stack-sized-but-too-big-for-a-goroutine-stack
// structures a single Compress call needs: the window's 2*windowSize byte
// buffer and the KMP failure-function scratch table. Pooling them lets a
// caller that compresses many independent streams back-to-back (e.g. one
// per request) avoid re-zeroing and re-allocating a fresh window each time.
type codecState struct {
	win     window
	scratch [windowSize]uint64
}

var statePool = sync.Pool{
	New: func() interface{} {
		return new(codecState)
	},
}

func acquireState() *codecState {
	s := statePool.Get().(*codecState)
	s.win.reset()
	return s
}

func releaseState(s *codecState) {
	statePool.Put(s)
}
