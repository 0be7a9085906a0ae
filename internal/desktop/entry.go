// Package desktop discovers application descriptor files and loads them into
// entries.
package desktop

// MainSection is the descriptor section holding the launcher fields.
const MainSection = "Desktop Entry"

// Descriptor keys read from MainSection. Everything else is ignored.
const (
	KeyName = "Name"
	KeyExec = "Exec"
)

// Entry is one launchable application.
type Entry struct {
	Name string // Display name
	Exec string // Command line, passed to the shell verbatim
	Path string // Source descriptor, for diagnostics only
}
