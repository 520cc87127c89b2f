//go:build unix && !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package terminal

// resetTerminalMode is a no-op where the termios ioctl requests are not mapped;
// EmergencyReset still sends the reset sequences
func resetTerminalMode() {}
