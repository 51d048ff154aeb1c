package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SampleRate is the rate the speaker runs at; other streams are resampled
const SampleRate = beep.SampleRate(44100)

// ResampleQuality is passed to beep.Resample
const ResampleQuality = 4

// Default file names looked up next to the executable
const (
	MusicFile = "music.mp3"
	ClickFile = "button.mp3"
)

// ErrNoDevice is returned when the audio device could not be opened
var ErrNoDevice = errors.New("audio device unavailable")

// Service plays music and effects through a single speaker
type Service struct {
	fs     afero.Fs
	out    output
	decode decodeFunc
	logger *zap.Logger

	mu        sync.Mutex
	initDone  bool
	initErr   error
	music     *beep.Ctrl
	musicVol  *effects.Volume
	musicSrc  beep.StreamSeekCloser
	click     *beep.Buffer
	effectsLv float64
}

// Option configures a Service
type Option func(*Service)

// WithFs reads sound files from fs instead of the OS filesystem
func WithFs(fs afero.Fs) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// NewService creates a player. Nothing touches the audio device until the
// first sound is loaded.
func NewService(logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		fs:        afero.NewOsFs(),
		out:       speakerOutput{},
		decode:    mp3.Decode,
		logger:    logger.Named("audio"),
		effectsLv: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadMusic decodes path and queues it as a paused endless loop.
// Call PlayMusic to start it.
func (s *Service) LoadMusic(path string, volume float64) error {
	stream, format, err := s.open(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDevice(); err != nil {
		_ = stream.Close()
		return err
	}

	level, silent := volumeLevel(volume)
	vol := &effects.Volume{
		Streamer: s.resample(format, beep.Loop(-1, stream)),
		Base:     2,
		Volume:   level,
		Silent:   silent,
	}
	ctrl := &beep.Ctrl{Streamer: vol, Paused: true}

	s.stopMusicLocked()
	s.music = ctrl
	s.musicVol = vol
	s.musicSrc = stream
	s.out.Play(ctrl)

	s.logger.Info("music loaded", zap.String("path", path), zap.Int("sampleRate", int(format.SampleRate)))
	return nil
}

// LoadClick decodes path fully into memory so it can be replayed on every click
func (s *Service) LoadClick(path string, volume float64) error {
	stream, format, err := s.open(path)
	if err != nil {
		return err
	}
	defer stream.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDevice(); err != nil {
		return err
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(s.resample(format, stream))
	s.click = buffer
	s.effectsLv = clamp(volume)

	s.logger.Info("click sound loaded", zap.String("path", path), zap.Int("samples", buffer.Len()))
	return nil
}

// HasMusic reports whether background music is loaded
func (s *Service) HasMusic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music != nil
}

// MusicPlaying reports whether the music loop is audible
func (s *Service) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return false
	}
	s.out.Lock()
	defer s.out.Unlock()
	return !s.music.Paused
}

// PlayMusic resumes the loop; no-op without music
func (s *Service) PlayMusic() {
	s.setPaused(false)
}

// PauseMusic pauses the loop; no-op without music
func (s *Service) PauseMusic() {
	s.setPaused(true)
}

// ToggleMusic flips play/pause and returns whether music is now playing
func (s *Service) ToggleMusic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return false
	}
	s.out.Lock()
	s.music.Paused = !s.music.Paused
	playing := !s.music.Paused
	s.out.Unlock()
	s.logger.Debug("music toggled", zap.Bool("playing", playing))
	return playing
}

// PlayClick plays the click sound once; no-op without a click sound
func (s *Service) PlayClick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.click == nil {
		return
	}
	level, silent := volumeLevel(s.effectsLv)
	if silent {
		return
	}
	s.out.Play(&effects.Volume{
		Streamer: s.click.Streamer(0, s.click.Len()),
		Base:     2,
		Volume:   level,
	})
}

// SetMusicVolume changes the loop volume, linear in [0, 1]
func (s *Service) SetMusicVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.musicVol == nil {
		return
	}
	level, silent := volumeLevel(volume)
	s.out.Lock()
	s.musicVol.Volume = level
	s.musicVol.Silent = silent
	s.out.Unlock()
}

// SetEffectsVolume changes the click volume, linear in [0, 1]
func (s *Service) SetEffectsVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effectsLv = clamp(volume)
}

// Close stops everything and releases the music file
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopMusicLocked()
	s.click = nil
	if s.initDone && s.initErr == nil {
		s.out.Clear()
	}
}

func (s *Service) setPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return
	}
	s.out.Lock()
	s.music.Paused = paused
	s.out.Unlock()
}

func (s *Service) open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open sound %s: %w", path, err)
	}
	stream, format, err := s.decode(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode sound %s: %w", path, err)
	}
	return stream, format, nil
}

// ensureDevice opens the speaker once; a failure is remembered
func (s *Service) ensureDevice() error {
	if !s.initDone {
		s.initDone = true
		if err := s.out.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			s.initErr = fmt.Errorf("%w: %v", ErrNoDevice, err)
			s.logger.Warn("audio disabled", zap.Error(err))
		}
	}
	return s.initErr
}

func (s *Service) resample(format beep.Format, stream beep.Streamer) beep.Streamer {
	if format.SampleRate == SampleRate || format.SampleRate == 0 {
		return stream
	}
	return beep.Resample(ResampleQuality, format.SampleRate, SampleRate, stream)
}

// stopMusicLocked silences and releases the current loop
func (s *Service) stopMusicLocked() {
	if s.music == nil {
		return
	}
	s.out.Lock()
	s.music.Streamer = nil
	s.out.Unlock()
	if err := s.musicSrc.Close(); err != nil {
		s.logger.Warn("failed to close music stream", zap.Error(err))
	}
	s.music = nil
	s.musicVol = nil
	s.musicSrc = nil
}

// volumeLevel maps a linear volume to a base 2 effects.Volume level
func volumeLevel(linear float64) (level float64, silent bool) {
	linear = clamp(linear)
	if linear == 0 {
		return 0, true
	}
	return math.Log2(linear), false
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
