// SPDX-License-Identifier: GPL-2.0-only

package ringlz

// kmpFailure fills t[0:look.size()] with the standard KMP failure function
// over the lookahead: t[j] is the length of the longest proper prefix of
// lookahead[0..j] that is also a suffix of it. Left untouched (and unused)
// when the lookahead holds fewer than two bytes.
func kmpFailure(w *window, t []uint64) {
	look := w.look
	if look.size() < 2 {
		return
	}

	i := look.tail
	j := i + 1
	t[0] = 0

	for {
		switch {
		case w.at(i) == w.at(j):
			i++
			t[j-look.tail] = i - look.tail
			j++
		case i == look.tail:
			t[j-look.tail] = 0
			j++
		default:
			i = look.tail + t[i-look.tail-1]
		}
		if j == look.head {
			break
		}
	}
}

// kmpSearch finds the longest match of the lookahead within dictionary ||
// lookahead, allowing the match to run past the dictionary into the
// lookahead itself (run-length overlap). It returns a zero length when
// nothing matches; a best match of a single byte is returned as length 1.
func kmpSearch(w *window, t []uint64) (offset, length uint64) {
	if w.look.size() < 2 {
		return 0, 0
	}
	kmpFailure(w, t)

	dict := w.dict
	look := w.look

	i := look.tail
	j := dict.tail

	var bestO, bestL uint64
	for j != look.head {
		l := i - look.tail
		o := j - dict.tail - l

		if o == dict.size() {
			break
		}
		if w.at(i) == w.at(j) {
			j++
			i++
			if i == look.head {
				return o, l + 1
			}
		} else if i == look.tail {
			j++
		} else {
			i = look.tail + t[l-1]
			if l > bestL {
				bestL = l
				bestO = o
			}
		}
	}
	return bestO, bestL
}
