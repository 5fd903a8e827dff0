package state

import (
	"sync"
	"time"
)

// Operation names a device call whose result is recorded.
type Operation string

const (
	OpVersion Operation = "version"
	OpSync    Operation = "sync"
	OpNotify  Operation = "notify"
)

// Failure describes the most recent failed operation.
type Failure struct {
	Op     Operation
	Reason string
	At     time.Time
}

// Snapshot represents the latest known device state.
type Snapshot struct {
	Target              string
	Version             int
	HasVersion          bool
	LastSync            time.Time
	LastNotify          time.Time
	LastUpdated         time.Time
	LastError           *Failure
	ConsecutiveFailures int
	Pending             int
}

// IsOffline returns true when the device has failed several calls in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	now      func() time.Time
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// SetTarget records the device host. Changing it discards what was known
// about the previous device.
func (s *Store) SetTarget(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.Target == target {
		return
	}
	pending := s.snapshot.Pending
	s.snapshot = Snapshot{Target: target, Pending: pending}
}

// Begin marks a call as in flight.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Pending++
}

// Cancel settles a call that was begun but never issued.
func (s *Store) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finished()
}

// RecordVersion stores a fetched protocol version.
func (s *Store) RecordVersion(version int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Version = version
	s.snapshot.HasVersion = true
	s.succeeded()
}

// RecordSync stores a successful clock sync.
func (s *Store) RecordSync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastSync = s.clock()
	s.succeeded()
}

// RecordNotify stores a delivered notification.
func (s *Store) RecordNotify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastNotify = s.clock()
	s.succeeded()
}

// RecordFailure keeps previous data but records the failure for visibility.
func (s *Store) RecordFailure(op Operation, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	s.snapshot.LastError = &Failure{Op: op, Reason: reason, At: now}
	s.snapshot.LastUpdated = now
	s.snapshot.ConsecutiveFailures++
	s.finished()
}

func (s *Store) succeeded() {
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = s.clock()
	s.snapshot.ConsecutiveFailures = 0
	s.finished()
}

func (s *Store) finished() {
	if s.snapshot.Pending > 0 {
		s.snapshot.Pending--
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		failure := *s.snapshot.LastError
		snap.LastError = &failure
	}
	return snap
}
