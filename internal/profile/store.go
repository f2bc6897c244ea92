package profile

import (
	"sync"
	"time"

	"HealthCoach/internal/entity"
)

// Store holds one UserProfile per user id for the lifetime of the process.
// Profiles are never evicted. Mutations must go through WithProfile, which
// serializes concurrent turns for the same user while leaving different
// users fully independent.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*lockedProfile
	now      func() time.Time
}

type lockedProfile struct {
	mu      sync.Mutex
	profile *entity.UserProfile
}

func NewStore() *Store {
	return &Store{
		profiles: make(map[string]*lockedProfile),
		now:      time.Now,
	}
}

// NewStoreWithClock exists for tests that need to steer calendar time.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		profiles: make(map[string]*lockedProfile),
		now:      now,
	}
}

func (s *Store) getOrCreate(userID string) *lockedProfile {
	s.mu.RLock()
	entry, ok := s.profiles[userID]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok = s.profiles[userID]; ok {
		return entry
	}
	entry = &lockedProfile{profile: entity.NewUserProfile(userID, s.now())}
	s.profiles[userID] = entry
	return entry
}

// WithProfile runs fn with exclusive access to the user's profile, creating
// it on first contact.
func (s *Store) WithProfile(userID string, fn func(p *entity.UserProfile)) {
	entry := s.getOrCreate(userID)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry.profile)
}

func (s *Store) Now() time.Time {
	return s.now()
}
