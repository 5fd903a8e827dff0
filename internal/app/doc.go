// Package app provides the orchestration layer for herald.
//
// # Overview
//
// This package wires together configuration, preferences, the main loop,
// the request executor, the device client and the UI. It is the composition
// root where all dependencies are initialized and connected.
//
// # Components
//
//   - app.go: Run, command dispatch and target resolution
//   - session.go: Loop, executor, client and store bundled per invocation
//   - poller.go: Background goroutine that re-reads the protocol version
//   - output.go: Coloured one-line results for one-shot commands
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read herald config
//	       ├─────> prefs.Load()         Remembered target
//	       ├─────> newSession()         Loop + executor + client + store
//	       │
//	       ├─ one-shot ─> session.await()  Serve loop until the callback settles
//	       └─ watch ────> startPoller() + ui.Run()
//
// In both modes listener callbacks run only on the goroutine draining the
// loop: await's caller for one-shot commands, Bubble Tea's Update for watch.
//
// # Target Resolution
//
// The device host is the first non-empty value of --target, the remembered
// preference, and the config file's target key. Commands that need a device
// fail with remote.ErrNoTarget when none is set.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file present but unreadable or invalid
//   - No target for a device command
//   - A one-shot command whose callback reports failure (*OpError)
//
// Recoverable errors (logged, watch continues):
//   - Poll failures, recorded in the state.Store for the dashboard
package app
