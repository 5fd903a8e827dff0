// Package remote drives a notification display device over its small HTTP
// API: protocol version, clock sync and notification push.
package remote

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/five82/herald/internal/payload"
	"github.com/five82/herald/internal/requester"
)

// ErrNoTarget is returned when an operation is attempted without a target.
// Nothing is sent in that case.
var ErrNoTarget = errors.New("target not set")

// InvalidResponse is the failure reason for exchanges that completed but did
// not carry the expected answer.
const InvalidResponse = "invalid response"

const (
	versionPath = "/ver"
	timePath    = "/time?format=ms"
	notifyPath  = "/notify"
	okBody      = "ok"
)

// Requester is the subset of *requester.Executor the client needs.
type Requester interface {
	SetEndpoint(base string)
	ClearEndpoint()
	Get(path string, onSuccess requester.SuccessFunc, onFailure requester.FailureFunc)
	PostPayload(path string, p payload.Payload, onSuccess requester.SuccessFunc, onFailure requester.FailureFunc)
}

// Ensure the executor satisfies Requester at compile time.
var _ Requester = (*requester.Executor)(nil)

// Listener receives device events on the main context. Nil fields are skipped.
type Listener struct {
	VersionFetched func(version int)
	VersionFailed  func(reason string)
	TimeSynced     func()
	TimeSyncFailed func(reason string)
	Notified       func()
	NotifyFailed   func(reason string)
}

// Notification is the content pushed to the device.
type Notification struct {
	Icon    string
	AppName string
	Title   string
	Content string
}

// Client issues device operations through a Requester.
type Client struct {
	req    Requester
	events Listener
	now    func() time.Time

	mu     sync.RWMutex
	target string
}

// NewClient builds a Client without a target.
func NewClient(req Requester, events Listener) *Client {
	return &Client{req: req, events: events, now: time.Now}
}

// Target returns the configured host, or "" when unset.
func (c *Client) Target() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.target
}

// SetTarget points the client at host (host[:port]). A value that already
// carries a scheme is used verbatim. An empty host resets the target.
func (c *Client) SetTarget(host string) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		c.ResetTarget()
		return
	}
	base := trimmed
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	c.mu.Lock()
	c.target = trimmed
	c.mu.Unlock()
	c.req.SetEndpoint(strings.TrimSuffix(base, "/"))
}

// ResetTarget clears the target; operations become no-ops.
func (c *Client) ResetTarget() {
	c.mu.Lock()
	c.target = ""
	c.mu.Unlock()
	c.req.ClearEndpoint()
}

func (c *Client) hasTarget() bool {
	return c.Target() != ""
}

// GetProtocolVersion asks the device which protocol version it speaks.
func (c *Client) GetProtocolVersion() error {
	if !c.hasTarget() {
		return ErrNoTarget
	}
	c.req.Get(versionPath,
		func(body string, status int) {
			version, err := strconv.Atoi(strings.TrimSpace(body))
			if status != http.StatusOK || err != nil {
				c.versionFailed(InvalidResponse)
				return
			}
			if c.events.VersionFetched != nil {
				c.events.VersionFetched(version)
			}
		},
		func(reason requester.Error) {
			c.versionFailed(reason.String())
		},
	)
	return nil
}

// SyncTime sends the local clock to the device in Unix milliseconds.
func (c *Client) SyncTime() error {
	if !c.hasTarget() {
		return ErrNoTarget
	}
	millis := strconv.FormatInt(c.now().UnixMilli(), 10)
	c.req.PostPayload(timePath, payload.Plain(millis),
		func(body string, status int) {
			if !acknowledged(body, status) {
				c.timeSyncFailed(InvalidResponse)
				return
			}
			if c.events.TimeSynced != nil {
				c.events.TimeSynced()
			}
		},
		func(reason requester.Error) {
			c.timeSyncFailed(reason.String())
		},
	)
	return nil
}

// Notify pushes n to the device.
func (c *Client) Notify(n Notification) error {
	if !c.hasTarget() {
		return ErrNoTarget
	}
	body := payload.Form(
		"icon", n.Icon,
		"appName", n.AppName,
		"title", n.Title,
		"content", n.Content,
	)
	c.req.PostPayload(notifyPath, body,
		func(body string, status int) {
			if !acknowledged(body, status) {
				c.notifyFailed(InvalidResponse)
				return
			}
			if c.events.Notified != nil {
				c.events.Notified()
			}
		},
		func(reason requester.Error) {
			c.notifyFailed(reason.String())
		},
	)
	return nil
}

func acknowledged(body string, status int) bool {
	return status == http.StatusOK && body == okBody
}

func (c *Client) versionFailed(reason string) {
	if c.events.VersionFailed != nil {
		c.events.VersionFailed(reason)
	}
}

func (c *Client) timeSyncFailed(reason string) {
	if c.events.TimeSyncFailed != nil {
		c.events.TimeSyncFailed(reason)
	}
}

func (c *Client) notifyFailed(reason string) {
	if c.events.NotifyFailed != nil {
		c.events.NotifyFailed(reason)
	}
}
