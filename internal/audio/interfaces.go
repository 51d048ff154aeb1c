package audio

import (
	"io"

	"github.com/gopxl/beep"
)

// Player is the sound surface used by the UI
type Player interface {
	LoadMusic(path string, volume float64) error
	LoadClick(path string, volume float64) error
	HasMusic() bool
	MusicPlaying() bool
	PlayMusic()
	PauseMusic()
	ToggleMusic() bool
	PlayClick()
	SetMusicVolume(volume float64)
	SetEffectsVolume(volume float64)
	Close()
}

// output is the audio device; the beep speaker in production
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

// decodeFunc turns an encoded file into a seekable stream
type decodeFunc func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)
