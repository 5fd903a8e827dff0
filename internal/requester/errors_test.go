package requester

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"testing"
)

func TestError_StringIsTotal(t *testing.T) {
	tests := []struct {
		err  Error
		want string
	}{
		{BadURL, "bad url"},
		{ConnectionError, "connection error"},
		{Timeout, "timeout"},
		{Error(42), "unknown"},
		{Error(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.err.String(); got != tt.want {
			t.Errorf("Error(%d).String() = %q, want %q", int(tt.err), got, tt.want)
		}
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error(%d).Error() = %q, want %q", int(tt.err), got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Error
	}{
		{"already classified", fmt.Errorf("wrapped: %w", BadURL), BadURL},
		{"context deadline", context.DeadlineExceeded, Timeout},
		{"os deadline", fmt.Errorf("read: %w", os.ErrDeadlineExceeded), Timeout},
		{"url error timeout", &url.Error{Op: "Get", URL: "http://x", Err: timeoutErr{}}, Timeout},
		{"refused", errors.New("connect: connection refused"), ConnectionError},
		{"eof", fmt.Errorf("read: %w", errors.New("unexpected EOF")), ConnectionError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"ok", []string{"ok"}},
		{"ok\n", []string{"ok"}},
		{"a\r\nb\rc\n", []string{"a", "b", "c"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
	}
	for _, tt := range tests {
		got := splitLines(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		}
	}
}
