package factor

import (
	"sync"

	"github.com/jonathanmweiss/go-polyfactor/algebra"
	"github.com/jonathanmweiss/go-polyfactor/poly"
)

// evaluationCache remembers the node lists already built, per node count.
type evaluationCache[T any] struct {
	sync.Locker
	countToPoints map[int][]T
}

func newEvaluationCache[T any]() *evaluationCache[T] {
	return &evaluationCache[T]{
		Locker:        &sync.Mutex{},
		countToPoints: make(map[int][]T),
	}
}

func (e *evaluationCache[T]) storePoints(n int, points []T) {
	e.Lock()
	defer e.Unlock()

	if _, ok := e.countToPoints[n]; ok {
		return
	}

	e.countToPoints[n] = points
}

func (e *evaluationCache[T]) loadPoints(n int) []T {
	e.Lock()
	defer e.Unlock()

	if points, ok := e.countToPoints[n]; ok {
		return points
	}

	return nil
}

// nodeEvaluator evaluates polynomials at the integer nodes 0, 1, -1, 2, -2, ...
// embedded in the coefficient ring.
type nodeEvaluator[T any] struct {
	cache *evaluationCache[T]

	k algebra.Ring[T]
}

func newNodeEvaluator[T any](k algebra.Ring[T]) *nodeEvaluator[T] {
	return &nodeEvaluator[T]{
		k:     k,
		cache: newEvaluationCache[T](),
	}
}

// node returns the i-th node: 0, 1, -1, 2, -2, ...
func node(i int) int64 {
	if i%2 == 1 {
		return int64(i+1) / 2
	}

	return -int64(i) / 2
}

func (e *nodeEvaluator[T]) EvaluationPoints(n int) []T {
	points := e.cache.loadPoints(n)
	if points != nil {
		return points
	}

	points = make([]T, n)
	for i := range points {
		points[i] = e.k.FromInt64(node(i))
	}

	e.cache.storePoints(n, points)

	return points
}

func (e *nodeEvaluator[T]) EvaluatePolynomial(p *poly.Polynomial[T], n int) []T {
	points := e.EvaluationPoints(n)
	values := make([]T, len(points))

	for i, x := range points {
		values[i] = p.Eval(x)
	}

	return values
}
