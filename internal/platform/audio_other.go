//go:build !linux && !darwin && !windows

package platform

import "os/exec"

func playCommand(string, float64) (*exec.Cmd, error) {
	return nil, ErrAudioUnsupported
}
