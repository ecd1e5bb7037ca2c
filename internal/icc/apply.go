package icc

import (
	"log/slog"
	"os/exec"
)

// runCommand is a variable so tests can intercept the platform calls.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// ApplyToMonitor asks the platform color stack to attach a profile to a
// display. colord is tried first, then dispwin as a fallback. The call is
// best-effort: failure is logged, never propagated, and the daemon's logical
// assignment stands regardless. Returns whether the platform confirmed.
func ApplyToMonitor(profilePath, monitorName string) bool {
	if err := runCommand("colormgr", "device-add-profile", monitorName, profilePath); err == nil {
		return true
	}

	if err := runCommand("dispwin", "-d", "1", "-I", profilePath); err != nil {
		slog.Warn("icc: platform profile apply unconfirmed",
			"monitor", monitorName, "profile", profilePath, "err", err)
		return false
	}
	return true
}
