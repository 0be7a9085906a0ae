//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so it outlives the launcher.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
