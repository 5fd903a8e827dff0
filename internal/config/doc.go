// Package config loads herald's TOML configuration.
//
// The default location is ~/.config/herald/config.toml. A missing file is
// not an error; Default values are used instead. Every field is optional:
//
//	target = "192.168.1.20:8080"   # device host[:port]
//	app_name = "herald"            # appName sent with notifications
//	icon_file = "~/icons/bell.png" # sent base64 encoded as the icon field
//	log_level = "info"             # logrus level name
//	poll_seconds = 5               # watch mode version poll interval
//
// Values are trimmed, icon_file supports ~ expansion, and non-positive
// poll_seconds fall back to the default. Load wraps open, read and parse
// failures with the step that failed.
package config
