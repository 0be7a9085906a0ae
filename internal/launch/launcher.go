// Package launch starts application commands and ends the launcher process.
package launch

import (
	"os"
	"os/exec"

	"applauncher/internal/desktop"
	"applauncher/internal/errors"
	"applauncher/internal/log"
)

// Exit codes used when the launcher terminates.
const (
	ExitOK          = 0
	ExitSpawnFailed = 1
)

// Spawner starts a command line without waiting for it.
type Spawner interface {
	Spawn(command string) error
}

// ShellSpawner runs "<Shell> -c <command>" as a detached child.
type ShellSpawner struct {
	Shell string
}

// Spawn starts the command with no stdio attached and releases it immediately.
func (s ShellSpawner) Spawn(command string) error {
	shell := s.Shell
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell, "-c", command)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return errors.NewLaunchError("failed to start command", command, err)
	}
	return cmd.Process.Release()
}

// Launcher is the terminal step of the UI: it either spawns the chosen entry
// or cancels, and in both cases ends the process.
type Launcher struct {
	spawner Spawner
	exit    func(code int)
	log     *log.Logger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithExit replaces os.Exit.
func WithExit(exit func(code int)) Option {
	return func(l *Launcher) {
		l.exit = exit
	}
}

// WithLogger replaces the package logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Launcher) {
		l.log = logger
	}
}

// New creates a launcher.
func New(spawner Spawner, opts ...Option) *Launcher {
	l := &Launcher{spawner: spawner, exit: os.Exit, log: log.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch spawns the entry's command and exits. A failed spawn is logged and
// exits with ExitSpawnFailed; nothing is shown to the user.
func (l *Launcher) Launch(e desktop.Entry) {
	l.log.With(log.F("name", e.Name), log.F("exec", e.Exec)).Info("Launching application")
	if err := l.spawner.Spawn(e.Exec); err != nil {
		if !errors.IsSpawnFailed(err) {
			err = errors.NewLaunchError("failed to start command", e.Exec, err)
		}
		l.log.WithError(err).Error("Launch failed")
		l.exit(ExitSpawnFailed)
		return
	}
	l.exit(ExitOK)
}

// Cancel exits without spawning anything.
func (l *Launcher) Cancel() {
	l.log.Debug("Cancelled")
	l.exit(ExitOK)
}
