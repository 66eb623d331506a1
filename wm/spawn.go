package wm

import (
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// spawn runs cmd as a detached child process. It deliberately never
// calls Wait — the window manager is not a process supervisor, and
// reaping here would block the event loop on a long-running client.
func spawn(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		logrus.Warn("wm: empty spawn command")
		return
	}

	c := exec.Command(parts[0], parts[1:]...)
	if err := c.Start(); err != nil {
		logrus.WithError(err).WithField("cmd", cmd).Error("failed to spawn command")
		return
	}
	logrus.WithField("cmd", cmd).Debug("spawned command")
}

// spawnAutostart runs the configured autostart script with stdio
// pointed at /dev/null, the same fire-and-forget contract as spawn.
func spawnAutostart(path string) {
	if path == "" {
		return
	}
	c := exec.Command("sh", "-c", "exec "+path)
	if err := c.Start(); err != nil {
		logrus.WithError(err).Debug("failed to run autostart script")
	}
}
