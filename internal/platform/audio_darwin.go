//go:build darwin

package platform

import (
	"os/exec"
	"strconv"
)

func playCommand(path string, volume float64) (*exec.Cmd, error) {
	afplay, err := exec.LookPath("afplay")
	if err != nil {
		return nil, ErrAudioUnsupported
	}
	return exec.Command(afplay, "-v", strconv.FormatFloat(volume, 'f', 2, 64), path), nil
}
