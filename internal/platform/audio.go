package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// ErrAudioUnsupported indicates no usable sound player on this system.
var ErrAudioUnsupported = errors.New("audio playback unsupported")

const soundFileName = "chime.wav"

// SoundPlayer plays one sound file through the operating system's player.
// Playback is fire-and-forget and failures are only logged.
type SoundPlayer struct {
	dir    string
	sound  []byte
	logger *slog.Logger

	once     sync.Once
	path     string
	writeErr error
	command  func(path string, volume float64) (*exec.Cmd, error)
}

// NewSoundPlayer prepares a player that writes sound into dir on first use.
func NewSoundPlayer(dir string, sound []byte, logger *slog.Logger) *SoundPlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundPlayer{
		dir:     dir,
		sound:   sound,
		logger:  logger,
		command: playCommand,
	}
}

// Play starts playback at volume in the background.
func (player *SoundPlayer) Play(volume float64) {
	go func() {
		if err := player.PlaySync(volume); err != nil {
			player.logger.Warn("completion sound failed", "error", err)
		}
	}()
}

// PlaySync plays the sound and waits for the player process to exit.
func (player *SoundPlayer) PlaySync(volume float64) error {
	path, err := player.soundPath()
	if err != nil {
		return err
	}
	cmd, err := player.command(path, clampVolume(volume))
	if err != nil {
		return err
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("run %s: %w: %s", filepath.Base(cmd.Path), err, output)
	}
	return nil
}

func (player *SoundPlayer) soundPath() (string, error) {
	player.once.Do(func() {
		if err := os.MkdirAll(player.dir, 0o755); err != nil {
			player.writeErr = fmt.Errorf("create sound directory: %w", err)
			return
		}
		path := filepath.Join(player.dir, soundFileName)
		if err := os.WriteFile(path, player.sound, 0o644); err != nil {
			player.writeErr = fmt.Errorf("write sound file: %w", err)
			return
		}
		player.path = path
	})
	return player.path, player.writeErr
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
