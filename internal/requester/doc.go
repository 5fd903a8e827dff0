// Package requester issues asynchronous HTTP calls against one configurable
// endpoint and reports every outcome on a designated main context.
//
// # Overview
//
// An Executor owns the endpoint (the base URL prefix) and a
// mainloop.Dispatcher. Each Get, Post or PostPayload call copies the current
// endpoint, spawns one goroutine, performs the blocking exchange there and
// hands exactly one callback to the dispatcher:
//
//	Get/Post ──> goroutine ──> resolve URL ──> http.Client.Do ──> read body
//	                                 │                 │              │
//	                                 └── BadURL        └── Timeout / ConnectionError
//	                                                                  │
//	                       Dispatcher.Run(onSuccess | onFailure) <────┘
//
// There is no pooling, queueing, retry, cancellation or connection reuse.
// Calls complete in whatever order the network allows.
//
// # Usage Example
//
//	loop := mainloop.NewLoop()
//	exec, err := requester.New(loop)
//	if err != nil {
//		log.Fatal(err)
//	}
//	exec.SetEndpoint("http://192.168.1.20:8080")
//	exec.Get("/ver",
//		func(body string, status int) { fmt.Println(status, body) },
//		func(reason requester.Error) { fmt.Println("failed:", reason) },
//	)
//	loop.Serve(ctx) // callbacks run here
//
// # Responses
//
// The body is read in full and its lines are rejoined with the platform line
// separator, so a trailing newline is dropped. Status codes are passed
// through untouched; a 404 is a successful exchange as far as this package
// is concerned.
//
// # Timeouts
//
// Only PostPayload applies an explicit connect timeout (PayloadConnectTimeout).
// Get and Post rely on the default dialer. This asymmetry is long standing
// behaviour that callers may depend on; changing it is a deliberate decision.
//
// # Errors
//
// Every failure is reduced to one Error value: BadURL, ConnectionError or
// Timeout. Nothing is logged here and nothing escapes the worker, including
// panics raised by a custom transport.
package requester
