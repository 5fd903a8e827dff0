// Package state keeps the latest known status of the target device.
//
// # Overview
//
// Device events arrive on the main context (the loop draining
// mainloop.Loop, or the Bubble Tea Update goroutine in watch mode) and are
// folded into a Store. Renderers read copies through Snapshot.
//
//	remote.Listener ──> store.RecordVersion / RecordSync / RecordNotify / RecordFailure
//	                                   │ (mutex)
//	                                   └──> store.Snapshot() ──> view
//
// # Update Semantics
//
// A failure keeps previously fetched data and records the operation and
// reason in LastError. Any success clears LastError and resets
// ConsecutiveFailures. Two failures in a row mark the device offline.
//
// Pending counts calls started with Begin that have not reported back yet;
// every Record call settles one of them.
//
// Changing the target through SetTarget drops everything learned about the
// previous device except the pending count, since those calls still report.
package state
