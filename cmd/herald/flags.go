package main

import (
	"io"
	"regexp"
	"time"

	"github.com/pborman/getopt"
	"github.com/pkg/errors"

	"github.com/five82/herald/internal/app"
)

const usageParameters = "[version | sync | notify TITLE [CONTENT...] | target [HOST] | forget | watch]"

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

type terminalInfo struct {
	stdoutIsTerminal bool
}

// FlagSet is the subset of getopt.Set used by main.
type FlagSet interface {
	PrintUsage(w io.Writer)
}

// parse reads argv (program name first) into app options. Flags must come
// before the command.
func parse(args []string, term terminalInfo) (FlagSet, app.Options, bool, error) {
	opts := app.Options{}
	var help bool
	poll := ""

	flagSet := getopt.New()
	flagSet.SetParameters(usageParameters)
	flagSet.StringVarLong(&opts.ConfigPath, "config", 'c', "config file path", "PATH")
	flagSet.StringVarLong(&opts.PrefsPath, "prefs", 0, "preferences file path", "PATH")
	flagSet.StringVarLong(&opts.Target, "target", 't', "device host for this invocation", "HOST")
	flagSet.StringVarLong(&poll, "poll", 0, "watch refresh interval (seconds or duration)", "INTERVAL")
	flagSet.BoolVarLong(&opts.Verbose, "verbose", 'v', "log debug output")
	flagSet.BoolVarLong(&help, "help", 'h', "show this help")
	if err := flagSet.Getopt(args, nil); err != nil {
		return flagSet, app.Options{}, false, errors.Wrap(err, "parse flags")
	}

	if poll != "" {
		d, err := parseDurationOrSeconds(poll)
		if err != nil {
			return flagSet, app.Options{}, false, err
		}
		opts.PollEvery = int(d / time.Second)
	}

	opts.Command = app.CmdWatch
	if rest := flagSet.Args(); len(rest) > 0 {
		opts.Command = rest[0]
		opts.Args = rest[1:]
	}
	opts.Color = term.stdoutIsTerminal
	return flagSet, opts, help, nil
}

func parseDurationOrSeconds(value string) (time.Duration, error) {
	if reNumber.MatchString(value) {
		value += "s"
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < time.Second {
		return 0, errors.Errorf("value of --poll must be a number or duration string of at least 1s: %v", value)
	}
	return d, nil
}
