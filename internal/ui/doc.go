// Package ui provides the Bubble Tea watch dashboard.
//
// The program's Update goroutine is the main context: device callbacks
// queued on the mainloop.Loop are pulled one at a time by waitForCallback
// and executed inside Update, never on a request worker.
//
// # Event Flow
//
//  1. Run() builds the Model from a state.Store snapshot and starts Bubble Tea
//  2. waitForCallback pulls one callback at a time from the mainloop.Loop
//  3. Update executes the callback, refreshes the snapshot and waits again
//  4. Keys trigger device Actions; results come back through step 2
//  5. Context cancellation cleanly shuts down the UI
//
// # Key Bindings
//
//   - v: Request the protocol version
//   - s: Push the local clock to the device
//   - n: Compose a notification (tab switches field, enter sends, esc cancels)
//   - q or Ctrl+C: Exit
package ui
