package factor

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jonathanmweiss/go-polyfactor/internal/logging"
	"github.com/tuneinsight/lattigo/v6/utils/sampling"
)

// FiniteFieldMethod selects the splitting algorithm over finite fields.
type FiniteFieldMethod int

const (
	// Auto uses Berlekamp for fields of at most berlekampAutoOrder elements and
	// Cantor-Zassenhaus otherwise.
	Auto FiniteFieldMethod = iota
	CantorZassenhaus
	Berlekamp
)

func (m FiniteFieldMethod) String() string {
	switch m {
	case Auto:
		return "auto"
	case CantorZassenhaus:
		return "cantor-zassenhaus"
	case Berlekamp:
		return "berlekamp"
	}
	return "unknown"
}

// IntegerMethod selects the algorithm for square-free integer polynomials.
type IntegerMethod int

const (
	Zassenhaus IntegerMethod = iota
	Kronecker
)

const (
	defaultMaxPrimeTries   = 64
	defaultPrimeCandidates = 3
	berlekampAutoOrder     = 64
)

var defaultSeed = []byte("polyfactor default seed")

var (
	errNilRandom         = errors.New("random source must not be nil")
	errBadMaxPrimeTries  = errors.New("max prime tries must be positive")
	errBadCandidates     = errors.New("prime candidates must be positive")
	errUnknownFFMethod   = errors.New("unknown finite field method")
	errUnknownIntMethod  = errors.New("unknown integer method")
	errCandidatesTooMany = errors.New("prime candidates exceed max prime tries")
)

type config struct {
	random          io.Reader
	ffMethod        FiniteFieldMethod
	intMethod       IntegerMethod
	maxPrimeTries   int
	primeCandidates int
	log             *logging.Logger
}

// Option configures a call to Factor.
type Option func(*config) error

// WithSeed seeds the keyed PRNG used for randomized splitting.
func WithSeed(seed []byte) Option {
	return func(c *config) error {
		prng, err := sampling.NewKeyedPRNG(seed)
		if err != nil {
			return err
		}
		c.random = prng
		return nil
	}
}

// WithRandomSource replaces the random source entirely.
func WithRandomSource(r io.Reader) Option {
	return func(c *config) error {
		if r == nil {
			return errNilRandom
		}
		c.random = r
		return nil
	}
}

func WithFiniteFieldMethod(m FiniteFieldMethod) Option {
	return func(c *config) error {
		if m < Auto || m > Berlekamp {
			return errUnknownFFMethod
		}
		c.ffMethod = m
		return nil
	}
}

func WithIntegerMethod(m IntegerMethod) Option {
	return func(c *config) error {
		if m != Zassenhaus && m != Kronecker {
			return errUnknownIntMethod
		}
		c.intMethod = m
		return nil
	}
}

// WithMaxPrimeTries bounds the primes examined before giving up with ErrExhausted.
func WithMaxPrimeTries(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return errBadMaxPrimeTries
		}
		c.maxPrimeTries = n
		return nil
	}
}

// WithPrimeCandidates sets how many good primes are compared; the one giving the
// fewest modular factors is lifted.
func WithPrimeCandidates(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return errBadCandidates
		}
		c.primeCandidates = n
		return nil
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.log = logging.FromSlog(l)
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{
		ffMethod:        Auto,
		intMethod:       Zassenhaus,
		maxPrimeTries:   defaultMaxPrimeTries,
		primeCandidates: defaultPrimeCandidates,
		log:             logging.Discard(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.random == nil {
		prng, err := sampling.NewKeyedPRNG(defaultSeed)
		if err != nil {
			return nil, err
		}
		c.random = prng
	}

	if c.primeCandidates > c.maxPrimeTries {
		return nil, errCandidatesTooMany
	}

	c.log = c.log.Module("factor")

	return c, nil
}
