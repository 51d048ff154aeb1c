package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/2cwldys/fear-launcher/internal/config"
)

func TestSettingsDialog_LoadAndSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("settings")
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.Show()

	if sd.musicSlider.Value != config.DefaultMusicVolume*100 {
		t.Errorf("Expected music slider %v, got %v", config.DefaultMusicVolume*100, sd.musicSlider.Value)
	}
	if sd.languageSelect.Selected != config.DefaultLanguage {
		t.Errorf("Expected language %s, got %s", config.DefaultLanguage, sd.languageSelect.Selected)
	}

	sd.languageSelect.SetSelected("pt")
	sd.musicSlider.SetValue(30)
	sd.effectsSlider.SetValue(50)
	sd.musicOnStartup.SetChecked(false)
	sd.onSave(true)

	if !saved {
		t.Error("onSaved callback should run")
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected language pt, got %s", settings.GetLanguage())
	}
	if settings.GetMusicVolume() != 0.3 {
		t.Errorf("Expected music volume 0.3, got %v", settings.GetMusicVolume())
	}
	if settings.GetEffectsVolume() != 0.5 {
		t.Errorf("Expected effects volume 0.5, got %v", settings.GetEffectsVolume())
	}
	if settings.GetMusicOnStartup() {
		t.Error("Music on startup should be disabled")
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	window := app.NewWindow("settings")
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.Show()
	sd.musicSlider.SetValue(10)
	sd.onSave(false)

	if saved {
		t.Error("onSaved should not run on cancel")
	}
	if settings.GetMusicVolume() != config.DefaultMusicVolume {
		t.Errorf("Music volume should be unchanged, got %v", settings.GetMusicVolume())
	}
}
