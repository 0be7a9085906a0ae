//go:build !unix

package launch

import "os/exec"

func detach(cmd *exec.Cmd) {}
