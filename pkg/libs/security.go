package libs

import (
	"sync"
	"time"
)

const maxRequestsPerMin = 30

// SecurityManager keeps per-identifier request windows and the
// one-submission-at-a-time guard for the registration form. All state is in
// memory; restarting the portal resets it.
type SecurityManager struct {
	requests map[string][]time.Time
	inFlight map[string]bool
	mu       sync.RWMutex
}

func NewSecurityManager() *SecurityManager {
	return &SecurityManager{
		requests: make(map[string][]time.Time),
		inFlight: make(map[string]bool),
	}
}

func (s *SecurityManager) IsRateLimited(identifier string, maxRequests int) bool {
	if maxRequests <= 0 {
		maxRequests = maxRequestsPerMin
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	count := 0
	for _, reqTime := range s.requests[identifier] {
		if now.Sub(reqTime) < time.Minute {
			count++
		}
	}
	return count >= maxRequests
}

func (s *SecurityManager) RecordRequest(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	filtered := make([]time.Time, 0, len(s.requests[identifier])+1)
	for _, reqTime := range s.requests[identifier] {
		if now.Sub(reqTime) < time.Minute {
			filtered = append(filtered, reqTime)
		}
	}
	s.requests[identifier] = append(filtered, now)
}

// IsSubmitBlocked reports whether a registration submission from this
// identifier is already in flight. One submission per identifier at a time.
func (s *SecurityManager) IsSubmitBlocked(identifier string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight[identifier]
}

// BeginSubmit claims the submission slot. It returns false when another
// submission already holds it.
func (s *SecurityManager) BeginSubmit(identifier string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[identifier] {
		return false
	}
	s.inFlight[identifier] = true
	return true
}

// EndSubmit releases the slot. Runs on every outcome, success or failure.
func (s *SecurityManager) EndSubmit(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, identifier)
}
