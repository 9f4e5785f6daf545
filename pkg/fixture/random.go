package fixture

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is a non-cryptographic byte source for fixtures. A Rand built with
// NewRand and a fixed seed reproduces the same fixtures on every run.
// It is safe for concurrent use.
type Rand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

var defaultRand = NewRand(time.Now().UnixNano())

// SetSeed reseeds the source behind the package level helpers.
func SetSeed(seed int64) {
	defaultRand.mu.Lock()
	defaultRand.src.Seed(seed)
	defaultRand.mu.Unlock()
}

// Bytes returns count random bytes. A negative count yields none.
func (r *Rand) Bytes(count int) []byte {
	if count < 0 {
		count = 0
	}
	b := make([]byte, count)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range b {
		b[i] = byte(r.src.Intn(256))
	}
	return b
}

// Intn returns a value in [0, n).
func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// Prandom returns count random bytes. Never use them as key material.
func Prandom(count int) []byte {
	return defaultRand.Bytes(count)
}
