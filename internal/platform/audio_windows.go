//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// SoundPlayer has no volume control; the mixer level applies.
func playCommand(path string, _ float64) (*exec.Cmd, error) {
	powershell, err := exec.LookPath("powershell")
	if err != nil {
		return nil, ErrAudioUnsupported
	}
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(path, "'", "''"))
	return exec.Command(powershell, "-NoProfile", "-NonInteractive", "-Command", script), nil
}
