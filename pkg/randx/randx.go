package randx

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a lockable pseudo-random source shared by every component that
// draws randomness (advice picks, template picks, enhancement gates).
// Injecting it keeps tests deterministic under a fixed seed.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

func NewSeeded(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Pick returns a uniformly chosen element; empty input yields "".
func (s *Source) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.Intn(len(items))]
}
