package xxhash

import "sync/atomic"

// seedFactoryKey is the key hashed with the counter as seed to derive
// fresh seeds.
const seedFactoryKey = 0xCAFE

// SeedFactory hands out decorrelated seeds from a monotonically increasing
// counter. Two factories created the same way produce the same sequence,
// which keeps tests deterministic. A factory is safe for concurrent use.
type SeedFactory struct {
	counter atomic.Uint32
}

// NewSeedFactory returns a factory whose first seed is derived from start.
func NewSeedFactory(start uint32) *SeedFactory {
	f := &SeedFactory{}
	f.counter.Store(start)
	return f
}

// DefaultSeeds is a shared factory for callers that do not need
// reproducible seeds.
var DefaultSeeds = NewSeedFactory(0)

// Next returns a fresh seed and advances the counter.
func (f *SeedFactory) Next() int32 {
	n := f.counter.Add(1) - 1
	return int32(Sum(seedFactoryKey, int32(n)))
}

// NextHash returns a Hash seeded with Next.
func (f *SeedFactory) NextHash() Hash {
	return New(f.Next())
}

// Count returns the current counter value.
func (f *SeedFactory) Count() uint32 {
	return f.counter.Load()
}
