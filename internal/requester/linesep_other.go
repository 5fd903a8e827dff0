//go:build !windows

package requester

const lineSeparator = "\n"
