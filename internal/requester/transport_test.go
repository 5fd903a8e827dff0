package requester

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/herald/internal/payload"
)

type stubTransport struct{}

func (*stubTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return textResponse(http.StatusOK, ""), nil
}

func TestPayloadConnectTimeout(t *testing.T) {
	if PayloadConnectTimeout != 10*time.Second {
		t.Fatalf("PayloadConnectTimeout = %v, want 10s", PayloadConnectTimeout)
	}
}

func TestNew_SeparateTransportsWithoutKeepAlives(t *testing.T) {
	e, _ := newTestExecutor(t, nil)

	plain, ok := e.plain.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("plain transport = %T, want *http.Transport", e.plain.Transport)
	}
	withBody, ok := e.withBody.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("payload transport = %T, want *http.Transport", e.withBody.Transport)
	}
	if plain == withBody {
		t.Fatalf("payload calls share the plain transport, want a clone with its own dialer")
	}
	if !plain.DisableKeepAlives || !withBody.DisableKeepAlives {
		t.Fatalf("keep-alives disabled plain=%v payload=%v, want both true", plain.DisableKeepAlives, withBody.DisableKeepAlives)
	}
	if withBody.DialContext == nil {
		t.Fatalf("payload transport has no DialContext")
	}
}

func TestWithConnectTimeout_ClonesHTTPTransport(t *testing.T) {
	in := &http.Transport{}
	rt := withConnectTimeout(in, time.Second)
	out, ok := rt.(*http.Transport)
	if !ok {
		t.Fatalf("withConnectTimeout returned %T, want *http.Transport", rt)
	}
	if out == in {
		t.Fatalf("withConnectTimeout modified the transport in place")
	}
	if in.DialContext != nil {
		t.Fatalf("input transport gained a DialContext")
	}
	if out.DialContext == nil {
		t.Fatalf("clone has no DialContext")
	}
}

func TestWithConnectTimeout_LeavesOtherRoundTrippersAlone(t *testing.T) {
	rt := &stubTransport{}
	if got := withConnectTimeout(rt, time.Second); got != rt {
		t.Fatalf("withConnectTimeout(%T) = %v, want the same RoundTripper", rt, got)
	}
}

// Only requests without a body go through the caller's dialer; payload
// requests dial with the connect-timeout dialer instead.
func TestExecutor_OnlyPayloadCallsReplaceTheDialer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	t.Cleanup(server.Close)

	var dials atomic.Int32
	base := newTransport()
	base.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		dials.Add(1)
		var d net.Dialer
		return d.DialContext(ctx, network, addr)
	}

	e, loop := newTestExecutor(t, base)
	e.SetEndpoint(server.URL)
	rec := newRecorder(t)

	e.Get("/ver", rec.onSuccess, rec.onFailure)
	drainUntil(t, loop, rec, 1)
	if got := dials.Load(); got != 1 {
		t.Fatalf("dials after Get = %d, want 1", got)
	}

	e.PostPayload("/time", payload.Plain("1"), rec.onSuccess, rec.onFailure)
	drainUntil(t, loop, rec, 2)
	if got := dials.Load(); got != 1 {
		t.Fatalf("dials after PostPayload = %d, want still 1", got)
	}

	e.Post("/empty", rec.onSuccess, rec.onFailure)
	drainUntil(t, loop, rec, 3)
	if got := dials.Load(); got != 2 {
		t.Fatalf("dials after Post = %d, want 2", got)
	}

	if len(rec.failures) != 0 {
		t.Fatalf("failures = %v, want none", rec.failures)
	}
}
