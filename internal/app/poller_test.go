package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/herald/internal/remote"
)

func TestStartPollerRequestsRepeatedly(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ver" {
			hits.Add(1)
		}
		_, _ = w.Write([]byte("2"))
	}))
	defer srv.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := newSession(srv.URL, logrus.NewEntry(log), remote.Notification{})
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startPoller(ctx, s, 20*time.Millisecond)

	deadline := time.Now().Add(3 * time.Second)
	for hits.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("poller made %d requests, want at least 2", hits.Load())
		}
		s.loop.Drain()
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	// Drain what remains so the store reflects the fetched version.
	deadline = time.Now().Add(3 * time.Second)
	for !s.store.Snapshot().HasVersion {
		if time.Now().After(deadline) {
			t.Fatalf("version never recorded")
		}
		s.loop.Drain()
		time.Sleep(5 * time.Millisecond)
	}
	if got := s.store.Snapshot().Version; got != 2 {
		t.Fatalf("version = %d, want 2", got)
	}
}

func TestStartPollerWithoutTargetIsQuiet(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := newSession("", logrus.NewEntry(log), remote.Notification{})
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	startPoller(ctx, s, 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	snap := s.store.Snapshot()
	if snap.Pending != 0 {
		t.Fatalf("pending = %d, want 0 when refused before sending", snap.Pending)
	}
	if s.loop.Len() != 0 {
		t.Fatalf("loop has %d callbacks, want none", s.loop.Len())
	}
}
