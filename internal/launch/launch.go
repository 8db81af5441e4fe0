// Package launch hands notes to the rest of the desktop: the system "open"
// action and the clipboard.
package launch

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var clipboardWrite = clipboard.WriteAll

// Opener opens files with the host's default application, or with Command
// when set. Command may carry arguments, e.g. "code --wait".
type Opener struct {
	Command string
}

func (o Opener) command(path string) (*exec.Cmd, error) {
	if parts := strings.Fields(o.Command); len(parts) > 0 {
		args := append(parts[1:], path)
		return exec.Command(parts[0], args...), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	}
	return nil, fmt.Errorf("open not supported on %s", runtime.GOOS)
}

// Open runs the open action for path and waits for it to return.
func (o Opener) Open(path string) error {
	cmd, err := o.command(path)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("open %s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
