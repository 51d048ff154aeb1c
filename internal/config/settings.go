package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyMusicVolume    = "music_volume"
	KeyEffectsVolume  = "effects_volume"
	KeyMusicOnStartup = "music_on_startup"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultMusicVolume    = 0.6
	DefaultEffectsVolume  = 0.08
	DefaultMusicOnStartup = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMusicVolume returns the background music volume in [0, 1]
func (s *Settings) GetMusicVolume() float64 {
	return clampVolume(s.app.Preferences().FloatWithFallback(KeyMusicVolume, DefaultMusicVolume))
}

// SetMusicVolume sets the background music volume, clamped to [0, 1]
func (s *Settings) SetMusicVolume(volume float64) {
	s.app.Preferences().SetFloat(KeyMusicVolume, clampVolume(volume))
}

// GetEffectsVolume returns the button sound volume in [0, 1]
func (s *Settings) GetEffectsVolume() float64 {
	return clampVolume(s.app.Preferences().FloatWithFallback(KeyEffectsVolume, DefaultEffectsVolume))
}

// SetEffectsVolume sets the button sound volume, clamped to [0, 1]
func (s *Settings) SetEffectsVolume(volume float64) {
	s.app.Preferences().SetFloat(KeyEffectsVolume, clampVolume(volume))
}

// GetMusicOnStartup returns whether music starts with the window
func (s *Settings) GetMusicOnStartup() bool {
	return s.app.Preferences().BoolWithFallback(KeyMusicOnStartup, DefaultMusicOnStartup)
}

// SetMusicOnStartup sets whether music starts with the window
func (s *Settings) SetMusicOnStartup(enabled bool) {
	s.app.Preferences().SetBool(KeyMusicOnStartup, enabled)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
