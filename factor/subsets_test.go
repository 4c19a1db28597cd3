package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(s *subsetIterator) [][]int {
	var out [][]int
	for {
		sub, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, sub)
	}
}

func TestSubsets(t *testing.T) {
	a := assert.New(t)

	a.Equal([][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
		{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}, collect(newSubsetIterator(5, 3)))

	a.Empty(collect(newSubsetIterator(0, 1)))
	a.Empty(collect(newSubsetIterator(3, 5)))
	a.Len(collect(newSubsetIterator(3, 3)), 1)
	a.Equal([][]int{{}}, collect(newSubsetIterator(4, 0)))
}

func TestSubsetsWithRemovals(t *testing.T) {
	a := assert.New(t)

	s := newSubsetIterator(7, 3)
	for i := 0; i < 19; i++ {
		_, ok := s.Next()
		a.True(ok)
	}

	s.Exclude(4)
	s.Exclude(5)
	a.Equal([][]int{{1, 3, 6}, {2, 3, 6}}, collect(s))

	s = newSubsetIterator(7, 3)
	for i := 0; i < 5; i++ {
		s.Exclude(i)
	}
	a.Empty(collect(s))

	s = newSubsetIterator(5, 2)
	s.Exclude(0)
	s.Exclude(0)
	a.Equal([][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}, collect(s))
}
