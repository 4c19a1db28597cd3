package field

import (
	"sync"
)

// schoolbookCutoff is the product size below which Multiply skips the transform.
const schoolbookCutoff = 64

type twiddleSet struct {
	// For each stage s (m = 2<<s), fwd[s] (and inv[s]) has length m/2
	// holding w^j where w = psi^(n/m) for forward, and w = psiInv^(n/m) for inverse.
	fwd  [][]uint64
	inv  [][]uint64
	nInv uint64
}

// NTTMultiplier multiplies coefficient slices over a PrimeField. It uses a
// radix-2 NTT when p-1 has a large enough power-of-two factor and falls back
// to schoolbook multiplication otherwise. Safe for concurrent use.
type NTTMultiplier struct {
	f *PrimeField

	mu           sync.RWMutex
	twiddleCache map[int]*twiddleSet
}

func NewNTTMultiplier(f *PrimeField) *NTTMultiplier {
	return &NTTMultiplier{
		f:            f,
		twiddleCache: make(map[int]*twiddleSet),
	}
}

// Multiply returns the coefficients of a*b (lowest degree first).
// Empty inputs denote the zero polynomial.
func (m *NTTMultiplier) Multiply(a, b []uint64) []uint64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	outLen := len(a) + len(b) - 1
	n := 1
	for n < outLen {
		n <<= 1
	}

	if len(a)*len(b) < schoolbookCutoff || n < 2 || (m.f.prime-1)%uint64(n) != 0 {
		return m.schoolbook(a, b)
	}

	ts, err := m.getTwiddles(n)
	if err != nil {
		return m.schoolbook(a, b)
	}

	fa := make([]uint64, n)
	fb := make([]uint64, n)
	copy(fa, a)
	copy(fb, b)

	m.forward(fa, ts)
	m.forward(fb, ts)

	for i := range fa {
		fa[i] = m.f.Mul(fa[i], fb[i])
	}

	m.backward(fa, ts)

	return fa[:outLen]
}

func (m *NTTMultiplier) schoolbook(a, b []uint64) []uint64 {
	f := m.f
	out := make([]uint64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}

		for j, y := range b {
			out[i+j] = f.Add(out[i+j], f.Mul(x, y))
		}
	}

	return out
}

func (m *NTTMultiplier) getTwiddles(n int) (*twiddleSet, error) {
	m.mu.RLock()
	if ts, ok := m.twiddleCache[n]; ok {
		m.mu.RUnlock()
		return ts, nil
	}
	m.mu.RUnlock()

	// Build outside lock
	psi, err := m.f.GetRootOfUnity(uint64(n))
	if err != nil {
		return nil, err
	}
	psiInv := m.f.Inv(psi)

	var fwd [][]uint64
	var inv [][]uint64

	// stages: m = 2,4,8,...,n  => stage index s = 0..(log2(n)-1)
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		wmF := m.f.Pow(psi, uint64(n/size))
		wmI := m.f.Pow(psiInv, uint64(n/size))

		rowF := make([]uint64, half)
		rowI := make([]uint64, half)

		wF := uint64(1)
		wI := uint64(1)
		for j := 0; j < half; j++ {
			rowF[j] = wF
			rowI[j] = wI
			wF = m.f.Mul(wF, wmF)
			wI = m.f.Mul(wI, wmI)
		}

		fwd = append(fwd, rowF)
		inv = append(inv, rowI)
	}

	ts := &twiddleSet{
		fwd:  fwd,
		inv:  inv,
		nInv: m.f.Inv(uint64(n) % m.f.prime),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another goroutine may have stored a set first; keep that one.
	if existing, ok := m.twiddleCache[n]; ok {
		return existing, nil
	}

	m.twiddleCache[n] = ts

	return ts, nil
}

func (m *NTTMultiplier) forward(xs []uint64, ts *twiddleSet) {
	m.butterflies(xs, ts.fwd)
}

func (m *NTTMultiplier) backward(xs []uint64, ts *twiddleSet) {
	m.butterflies(xs, ts.inv)

	for i := range xs {
		xs[i] = m.f.Mul(xs[i], ts.nInv)
	}
}

// butterflies runs an iterative Cooley-Tukey transform with the given stage twiddles.
func (m *NTTMultiplier) butterflies(xs []uint64, stages [][]uint64) {
	n := len(xs)
	bitReverseInPlace(xs)

	for s, size := 0, 2; size <= n; s, size = s+1, size<<1 {
		half := size >> 1
		ws := stages[s]
		for k := 0; k < n; k += size {
			for j := 0; j < half; j++ {
				u := xs[k+j]
				t := m.f.Mul(ws[j], xs[k+j+half])
				xs[k+j] = m.f.Add(u, t)
				xs[k+j+half] = m.f.Sub(u, t)
			}
		}
	}
}

func bitReverseInPlace(xs []uint64) {
	n := len(xs)
	if n <= 1 {
		return
	}

	j := 0
	for i := 1; i < n-1; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j &= ^bit
			bit >>= 1
		}
		j |= bit
		if i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}
