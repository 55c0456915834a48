//go:build linux

package platform

import (
	"fmt"
	"os/exec"
)

// paplay treats 65536 as 100%.
const paplayFullVolume = 65536

func playCommand(path string, volume float64) (*exec.Cmd, error) {
	if paplay, err := exec.LookPath("paplay"); err == nil {
		return exec.Command(paplay, fmt.Sprintf("--volume=%d", int(volume*paplayFullVolume)), path), nil
	}
	if aplay, err := exec.LookPath("aplay"); err == nil {
		return exec.Command(aplay, "-q", path), nil
	}
	return nil, ErrAudioUnsupported
}
