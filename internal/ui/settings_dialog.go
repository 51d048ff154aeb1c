package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/2cwldys/fear-launcher/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	musicSlider    *widget.Slider
	effectsSlider  *widget.Slider
	musicOnStartup *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values are stored so the caller can apply them.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Volumes are edited in percent
	sd.musicSlider = widget.NewSlider(0, 100)
	sd.musicSlider.Step = VolumeSliderStep
	sd.effectsSlider = widget.NewSlider(0, 100)
	sd.effectsSlider.Step = VolumeSliderStep

	sd.musicOnStartup = widget.NewCheck(text(KeyMusicOnStartup), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(text(KeyMusicVolume)+":"),
		sd.musicSlider,

		widget.NewLabel(text(KeyEffectsVolume)+":"),
		sd.effectsSlider,

		sd.musicOnStartup,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.musicSlider.SetValue(sd.settings.GetMusicVolume() * 100)
	sd.effectsSlider.SetValue(sd.settings.GetEffectsVolume() * 100)
	sd.musicOnStartup.SetChecked(sd.settings.GetMusicOnStartup())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetMusicVolume(sd.musicSlider.Value / 100)
	sd.settings.SetEffectsVolume(sd.effectsSlider.Value / 100)
	sd.settings.SetMusicOnStartup(sd.musicOnStartup.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// ShowSettingsDialog creates and shows a settings dialog in one call
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}
