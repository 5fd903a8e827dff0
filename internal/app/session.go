package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/five82/herald/internal/mainloop"
	"github.com/five82/herald/internal/remote"
	"github.com/five82/herald/internal/requester"
	"github.com/five82/herald/internal/state"
)

// OpError reports a device operation that failed after being issued.
type OpError struct {
	Op     state.Operation
	Reason string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Reason)
}

// session wires the main loop, executor, device client and status store.
// Listener callbacks run on whichever goroutine drains loop.
type session struct {
	loop     *mainloop.Loop
	client   *remote.Client
	store    *state.Store
	log      *logrus.Entry
	defaults remote.Notification

	// settle is set while await is serving the loop.
	settle func(err error)
}

func newSession(target string, log *logrus.Entry, defaults remote.Notification, opts ...requester.Option) (*session, error) {
	s := &session{
		loop:     mainloop.NewLoop(),
		store:    &state.Store{},
		log:      log,
		defaults: defaults,
	}
	exec, err := requester.New(s.loop, opts...)
	if err != nil {
		return nil, fmt.Errorf("init requester: %w", err)
	}
	s.client = remote.NewClient(exec, s.listener())
	s.client.SetTarget(target)
	s.store.SetTarget(s.client.Target())
	return s, nil
}

func (s *session) listener() remote.Listener {
	return remote.Listener{
		VersionFetched: func(version int) {
			s.store.RecordVersion(version)
			s.log.WithField("version", version).Debug("protocol version fetched")
			s.done(nil)
		},
		VersionFailed: func(reason string) {
			s.failed(state.OpVersion, reason)
		},
		TimeSynced: func() {
			s.store.RecordSync()
			s.log.Debug("time synced")
			s.done(nil)
		},
		TimeSyncFailed: func(reason string) {
			s.failed(state.OpSync, reason)
		},
		Notified: func() {
			s.store.RecordNotify()
			s.log.Debug("notification delivered")
			s.done(nil)
		},
		NotifyFailed: func(reason string) {
			s.failed(state.OpNotify, reason)
		},
	}
}

func (s *session) failed(op state.Operation, reason string) {
	s.store.RecordFailure(op, reason)
	s.log.WithFields(logrus.Fields{"op": op, "reason": reason}).Debug("device call failed")
	s.done(&OpError{Op: op, Reason: reason})
}

func (s *session) done(err error) {
	if s.settle != nil {
		s.settle(err)
	}
}

// issue marks a call pending and starts it. A call refused before sending
// is settled immediately.
func (s *session) issue(call func() error) error {
	s.store.Begin()
	if err := call(); err != nil {
		s.store.Cancel()
		return err
	}
	return nil
}

// await issues call and serves the loop on the calling goroutine until the
// call reports back or ctx ends.
func (s *session) await(ctx context.Context, call func() error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result error
	finished := false
	s.settle = func(err error) {
		result = err
		finished = true
		cancel()
	}
	defer func() { s.settle = nil }()

	if err := s.issue(call); err != nil {
		return err
	}
	err := s.loop.Serve(ctx)
	if !finished {
		return err
	}
	return result
}

// RefreshVersion requests the protocol version.
func (s *session) RefreshVersion() error {
	return s.issue(s.client.GetProtocolVersion)
}

// SyncTime pushes the local clock.
func (s *session) SyncTime() error {
	return s.issue(s.client.SyncTime)
}

// Notify sends a notification using the configured app name and icon.
func (s *session) Notify(title, content string) error {
	return s.issue(func() error {
		return s.client.Notify(s.notification(title, content))
	})
}

func (s *session) notification(title, content string) remote.Notification {
	n := s.defaults
	n.Title = title
	n.Content = content
	return n
}
