package factor

// subsetIterator enumerates the k-element subsets of {0, ..., n-1} in lexicographic
// order. Elements can be excluded mid-iteration; no later subset contains them.
type subsetIterator struct {
	remaining []int
	pos       []int // next subset, increasing indices into remaining
	done      bool
}

func newSubsetIterator(n, k int) *subsetIterator {
	s := &subsetIterator{
		remaining: make([]int, n),
		pos:       make([]int, k),
		done:      k > n,
	}

	for i := range s.remaining {
		s.remaining[i] = i
	}

	for i := range s.pos {
		s.pos[i] = i
	}

	return s
}

// Next returns the next subset, or false when the enumeration is over.
func (s *subsetIterator) Next() ([]int, bool) {
	if s.done {
		return nil, false
	}

	out := make([]int, len(s.pos))
	for i, p := range s.pos {
		out[i] = s.remaining[p]
	}

	s.advance()

	return out, true
}

func (s *subsetIterator) advance() {
	n, k := len(s.remaining), len(s.pos)
	for i := k - 1; i >= 0; i-- {
		if s.pos[i] < n-k+i {
			s.pos[i]++
			for j := i + 1; j < k; j++ {
				s.pos[j] = s.pos[j-1] + 1
			}
			return
		}
	}

	s.done = true
}

// Exclude removes a from every subset not yet returned.
func (s *subsetIterator) Exclude(a int) {
	idx := -1
	for i, v := range s.remaining {
		if v == a {
			idx = i
			break
		}
	}

	if idx < 0 {
		return
	}

	for !s.done && s.holds(idx) {
		s.advance()
	}

	if s.done {
		return
	}

	s.remaining = append(s.remaining[:idx], s.remaining[idx+1:]...)
	for i := range s.pos {
		if s.pos[i] > idx {
			s.pos[i]--
		}
	}
}

func (s *subsetIterator) holds(idx int) bool {
	for _, p := range s.pos {
		if p == idx {
			return true
		}
	}

	return false
}
