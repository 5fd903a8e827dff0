package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/herald/internal/config"
	"github.com/five82/herald/internal/prefs"
	"github.com/five82/herald/internal/remote"
	"github.com/five82/herald/internal/requester"
	"github.com/five82/herald/internal/ui"
)

// Commands understood by Run.
const (
	CmdVersion = "version"
	CmdSync    = "sync"
	CmdNotify  = "notify"
	CmdTarget  = "target"
	CmdForget  = "forget"
	CmdWatch   = "watch"
)

// Options configure a herald invocation.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/herald/prefs.toml
	Target     string // overrides remembered and configured targets
	PollEvery  int    // seconds; zero uses config
	Verbose    bool
	Color      bool

	Command string
	Args    []string

	Out       io.Writer // defaults to os.Stdout
	LogOutput io.Writer // defaults to os.Stderr

	transport []requester.Option
}

// Run executes one command until it completes or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// A broken prefs file counts as nothing remembered.
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	out := newPrinter(opts.Out, opts.Color)
	target := resolveTarget(opts.Target, userPrefs.Target, cfg.Target)

	switch opts.Command {
	case CmdTarget:
		return runTarget(opts, target, out)
	case CmdForget:
		if err := prefs.Forget(opts.PrefsPath); err != nil {
			return fmt.Errorf("forget target: %w", err)
		}
		out.success("target forgotten")
		return nil
	}

	logOut := opts.LogOutput
	if opts.Command == CmdWatch {
		logOut = io.Discard
	}
	log := newLogger(cfg.LogLevel, opts.Verbose, logOut)

	icon, err := cfg.IconData()
	if err != nil {
		log.WithError(err).Warn("sending notifications without icon")
	}
	defaults := remote.Notification{AppName: cfg.AppName, Icon: icon}

	s, err := newSession(target, log.WithField("target", target), defaults, opts.transport...)
	if err != nil {
		return err
	}

	switch opts.Command {
	case CmdVersion:
		if err := s.await(ctx, s.client.GetProtocolVersion); err != nil {
			return commandError(err)
		}
		out.success("protocol version %d", s.store.Snapshot().Version)
	case CmdSync:
		if err := s.await(ctx, s.client.SyncTime); err != nil {
			return commandError(err)
		}
		out.success("time synced")
	case CmdNotify:
		if len(opts.Args) == 0 || strings.TrimSpace(opts.Args[0]) == "" {
			return fmt.Errorf("notify requires a title")
		}
		title := opts.Args[0]
		content := strings.Join(opts.Args[1:], " ")
		if err := s.await(ctx, func() error { return s.client.Notify(s.notification(title, content)) }); err != nil {
			return commandError(err)
		}
		out.success("notification sent")
	case CmdWatch:
		return runWatch(ctx, s, cfg.PollEvery, opts.PollEvery)
	default:
		return fmt.Errorf("unknown command %q", opts.Command)
	}
	return nil
}

func runTarget(opts Options, current string, out printer) error {
	if len(opts.Args) == 0 {
		if current == "" {
			out.info("target", "(not set)")
		} else {
			out.info("target", current)
		}
		return nil
	}
	host := strings.TrimSpace(opts.Args[0])
	if err := prefs.Remember(opts.PrefsPath, host); err != nil {
		return fmt.Errorf("remember target: %w", err)
	}
	out.success("target set to %s", host)
	return nil
}

func runWatch(ctx context.Context, s *session, configured time.Duration, pollSeconds int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.loop.Close()

	interval := configured
	if pollSeconds > 0 {
		interval = time.Duration(pollSeconds) * time.Second
	}
	startPoller(ctx, s, interval)

	return ui.Run(ui.Options{
		Context: ctx,
		Loop:    s.loop,
		Store:   s.store,
		Actions: s,
	})
}

func resolveTarget(candidates ...string) string {
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func commandError(err error) error {
	if errors.Is(err, remote.ErrNoTarget) {
		return fmt.Errorf("%w: pass --target or run \"herald target HOST\"", err)
	}
	return err
}

func newLogger(level string, verbose bool, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)
	return log
}
