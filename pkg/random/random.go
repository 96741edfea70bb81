package random

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// NumberGenerator is a deterministic pseudo-random generator for demo and
// test fixtures. All state is owned by the instance; two generators built
// with the same options produce the same sequence.
type NumberGenerator struct {
	seed int64
	a    int64
	c    int64
	min  int64
	max  int64 // exclusive
}

// Options parameterize a NumberGenerator. Min and Max bound NextInt
// inclusively.
type Options struct {
	Seed int64
	A    int64
	C    int64
	Min  int64
	Max  int64
}

// NewNumberGenerator validates the options and builds the generator.
// A and C must not exceed the size of the [Min, Max] range.
func NewNumberGenerator(opts Options) (*NumberGenerator, error) {
	size := opts.Max + 1 - opts.Min
	if opts.A > size || opts.C > size {
		return nil, fmt.Errorf("random: a and c should be smaller than max + 1 - min")
	}
	return &NumberGenerator{
		seed: opts.Seed,
		a:    opts.A,
		c:    opts.C,
		min:  opts.Min,
		max:  opts.Max + 1,
	}, nil
}

// NextInt returns the next integer in [Min, Max] using a linear
// congruential step.
func (g *NumberGenerator) NextInt() int64 {
	n := g.min + ((g.seed*g.a)+g.c)%(g.max-g.min)
	g.seed++
	return n
}

// Float64 returns a deterministic value in [0, 1).
func (g *NumberGenerator) Float64() float64 {
	x := math.Sin(float64(g.seed)) * 10000
	g.seed++
	return x - math.Floor(x)
}

// IntBetween returns a deterministic integer in [min, max).
func (g *NumberGenerator) IntBetween(min, max int64) int64 {
	n := min + ((g.seed*(max-1))+(max-1))%(max-min)
	g.seed++
	return n
}

// uuidNamespace is the fixed namespace for seeded v5 UUIDs: bytes 0x00
// through 0x0f.
var uuidNamespace = uuid.UUID{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}

// UUIDGenerator produces a reproducible sequence of version-5 UUIDs by
// hashing an incrementing counter into a fixed namespace.
type UUIDGenerator struct {
	counter int64
}

// NewUUIDGenerator starts the sequence at the given counter value.
func NewUUIDGenerator(start int64) *UUIDGenerator {
	return &UUIDGenerator{counter: start}
}

// Next returns the next UUID in the sequence.
func (g *UUIDGenerator) Next() uuid.UUID {
	id := uuid.NewSHA1(uuidNamespace, []byte(strconv.FormatInt(g.counter, 10)))
	g.counter++
	return id
}
