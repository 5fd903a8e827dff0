package requester

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/five82/herald/internal/mainloop"
	"github.com/five82/herald/internal/payload"
)

// PayloadConnectTimeout bounds connection setup for requests carrying a body.
// Requests without a body use the platform dialer default.
const PayloadConnectTimeout = 10 * time.Second

// SuccessFunc receives the response body and status code of a completed
// exchange. The status is not interpreted.
type SuccessFunc func(body string, status int)

// FailureFunc receives the reason a request could not complete.
type FailureFunc func(reason Error)

// Outcome is the result of one call: a body and status, or an Err.
type Outcome struct {
	Body   string
	Status int
	Err    error
}

// Option configures an Executor.
type Option func(*Executor)

// WithTransport replaces the HTTP transport for every call. An
// *http.Transport is cloned for the payload path so the connect timeout can
// be applied; any other RoundTripper is used as is.
func WithTransport(rt http.RoundTripper) Option {
	return func(e *Executor) {
		e.plain = &http.Client{Transport: rt}
		e.withBody = &http.Client{Transport: withConnectTimeout(rt, PayloadConnectTimeout)}
	}
}

// Executor issues fire-and-forget HTTP calls against a single endpoint and
// reports each outcome on the main context.
type Executor struct {
	endpoint   atomic.Pointer[string]
	dispatcher mainloop.Dispatcher
	plain      *http.Client
	withBody   *http.Client
}

// New builds an Executor that hands callbacks to d.
func New(d mainloop.Dispatcher, opts ...Option) (*Executor, error) {
	if d == nil {
		return nil, fmt.Errorf("dispatcher is nil")
	}
	e := &Executor{dispatcher: d}
	WithTransport(newTransport())(e)
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// SetEndpoint sets the base URL prefix for calls started afterwards.
func (e *Executor) SetEndpoint(base string) {
	e.endpoint.Store(&base)
}

// ClearEndpoint marks the endpoint undefined.
func (e *Executor) ClearEndpoint() {
	e.endpoint.Store(nil)
}

// Endpoint returns the current base URL, or "" when undefined.
func (e *Executor) Endpoint() string {
	if p := e.endpoint.Load(); p != nil {
		return *p
	}
	return ""
}

// Get issues GET endpoint+path.
func (e *Executor) Get(path string, onSuccess SuccessFunc, onFailure FailureFunc) {
	e.start(call{method: http.MethodGet, url: e.Endpoint() + path, client: e.plain}, onSuccess, onFailure)
}

// Post issues POST endpoint+path with an empty body and no content type.
func (e *Executor) Post(path string, onSuccess SuccessFunc, onFailure FailureFunc) {
	e.start(call{method: http.MethodPost, url: e.Endpoint() + path, client: e.plain}, onSuccess, onFailure)
}

// PostPayload issues POST endpoint+path carrying p.
func (e *Executor) PostPayload(path string, p payload.Payload, onSuccess SuccessFunc, onFailure FailureFunc) {
	e.start(call{method: http.MethodPost, url: e.Endpoint() + path, body: &p, client: e.withBody}, onSuccess, onFailure)
}

type call struct {
	method string
	url    string
	body   *payload.Payload
	client *http.Client
}

// start copies everything the call needs before spawning its worker, so
// later endpoint changes never reach an in-flight call.
func (e *Executor) start(c call, onSuccess SuccessFunc, onFailure FailureFunc) {
	go func() {
		e.deliver(c.execute(), onSuccess, onFailure)
	}()
}

func (e *Executor) deliver(out Outcome, onSuccess SuccessFunc, onFailure FailureFunc) {
	if out.Err != nil {
		reason := Classify(out.Err)
		e.dispatcher.Run(func() {
			if onFailure != nil {
				onFailure(reason)
			}
		})
		return
	}
	e.dispatcher.Run(func() {
		if onSuccess != nil {
			onSuccess(out.Body, out.Status)
		}
	})
}

func (c call) execute() (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: ConnectionError}
		}
	}()

	if _, err := resolve(c.url); err != nil {
		return Outcome{Err: BadURL}
	}

	var req *http.Request
	var err error
	if c.body != nil {
		req, err = http.NewRequest(c.method, c.url, strings.NewReader(c.body.Body))
		if err == nil {
			req.Header.Set("Content-Type", c.body.ContentType)
		}
	} else {
		req, err = http.NewRequest(c.method, c.url, nil)
	}
	if err != nil {
		return Outcome{Err: BadURL}
	}

	// The body comes from memory, so a write failure can only be a transport
	// failure. If the peer still answers, the response is read as usual.
	resp, err := c.client.Do(req)
	if err != nil {
		return Outcome{Err: Classify(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := readBody(resp.Body)
	if err != nil {
		return Outcome{Err: Classify(err)}
	}
	return Outcome{Body: text, Status: resp.StatusCode}
}

func resolve(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme in %q", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	return u, nil
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DisableKeepAlives = true
	return t
}

func withConnectTimeout(rt http.RoundTripper, timeout time.Duration) http.RoundTripper {
	t, ok := rt.(*http.Transport)
	if !ok {
		return rt
	}
	t = t.Clone()
	t.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
	return t
}
