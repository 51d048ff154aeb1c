package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/2cwldys/fear-launcher/internal/audio"
	"github.com/2cwldys/fear-launcher/internal/config"
	"github.com/2cwldys/fear-launcher/internal/install"
	"github.com/2cwldys/fear-launcher/internal/launcher"
	"github.com/2cwldys/fear-launcher/internal/model"
	"github.com/2cwldys/fear-launcher/internal/platform"
)

// Services are the collaborators of the main window
type Services struct {
	Installer install.Installer
	Launcher  launcher.GameLauncher
	Player    audio.Player
	Steps     []model.InstallStep
	Assets    *Assets
	Fs        afero.Fs // used to read the background, defaults to the OS filesystem
	Logger    *zap.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	installer    install.Installer
	launcher     launcher.GameLauncher
	player       audio.Player
	steps        []model.InstallStep
	assets       *Assets
	fs           afero.Fs
	logger       *zap.Logger

	sessionMu  sync.Mutex
	session    model.Session
	installing atomic.Bool

	pathEntry   *widget.Entry
	selectBtn   *widget.Button
	musicBtn    *widget.Button
	settingsBtn *widget.Button
	installBtn  *widget.Button
	folderBtn   *widget.Button
	gameBtns    []*widget.Button
	statusLabel *widget.Label
	progress    *widget.ProgressBar

	background    *AnimatedBackground
	backgroundErr error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, services Services) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	logger := services.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fs := services.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	assets := services.Assets
	if assets == nil {
		assets = NewAssets("")
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		installer:    services.Installer,
		launcher:     services.Launcher,
		player:       services.Player,
		steps:        services.Steps,
		assets:       assets,
		fs:           fs,
		logger:       logger.Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for step updates
	ui.installer.SetUpdateCallback(ui.onStepUpdate)

	ui.setupUI()
	return ui
}

// Session returns a snapshot of the current session
func (ui *RootUI) Session() model.Session {
	ui.sessionMu.Lock()
	defer ui.sessionMu.Unlock()
	return ui.session
}

// LoadMedia loads the sounds and starts the background animation.
// Missing media is reported but never fatal.
func (ui *RootUI) LoadMedia() {
	text := ui.localization.GetText

	if path, err := ui.assets.Path(audio.MusicFile); err != nil {
		ui.showError(fmt.Sprintf(text(KeyMusicLoadFailed), err))
	} else if err := ui.player.LoadMusic(path, ui.settings.GetMusicVolume()); err != nil {
		ui.logger.Error("failed to load music", zap.Error(err))
		ui.showError(fmt.Sprintf(text(KeyMusicLoadFailed), err))
	} else if ui.settings.GetMusicOnStartup() {
		ui.player.PlayMusic()
	}
	ui.syncMusicState()

	if path, err := ui.assets.Path(audio.ClickFile); err != nil {
		ui.showWarning(fmt.Sprintf(text(KeySoundLoadFailed), err))
	} else if err := ui.player.LoadClick(path, ui.settings.GetEffectsVolume()); err != nil {
		ui.logger.Warn("failed to load button sound", zap.Error(err))
		ui.showWarning(fmt.Sprintf(text(KeySoundLoadFailed), err))
	}

	if ui.backgroundErr != nil {
		ui.showError(fmt.Sprintf(text(KeyBackgroundFailed), ui.backgroundErr))
	} else if ui.background != nil {
		ui.background.Start(BackgroundFrameInterval)
	}
}

// Close stops the animation and the audio
func (ui *RootUI) Close() {
	if ui.background != nil {
		ui.background.Stop()
	}
	ui.player.Close()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	text := ui.localization.GetText

	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetPlaceHolder(text(KeyGamePathHint))
	ui.pathEntry.OnSubmitted = func(path string) {
		ui.onPathSubmitted(path)
	}

	ui.selectBtn = widget.NewButton(text(KeySelectPath), ui.withSound(ui.onSelectPath))
	ui.musicBtn = widget.NewButton(IconMusic, ui.withSound(ui.onToggleMusic))
	ui.settingsBtn = widget.NewButton(IconSettings, ui.withSound(ui.onShowSettings))
	ui.installBtn = widget.NewButton(text(KeyInstall), ui.withSound(ui.onInstallClick))
	ui.folderBtn = widget.NewButton(IconFolder, ui.withSound(ui.onOpenFolder))

	ui.gameBtns = nil
	for _, game := range model.Games() {
		game := game
		ui.gameBtns = append(ui.gameBtns, widget.NewButton(ui.gameLabel(game), ui.withSound(func() {
			ui.onLaunch(game)
		})))
	}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.progress = widget.NewProgressBar()
	ui.progress.Hide()

	topRow := container.NewBorder(nil, nil, ui.selectBtn, container.NewHBox(ui.musicBtn, ui.settingsBtn), ui.pathEntry)

	buttons := container.NewVBox(container.NewHBox(ui.installBtn, ui.folderBtn))
	for _, btn := range ui.gameBtns {
		buttons.Add(btn)
	}

	bottom := container.NewVBox(ui.progress, ui.statusLabel)

	content := container.NewBorder(topRow, bottom, buttons, nil, layout.NewSpacer())

	ui.background, ui.backgroundErr = ui.loadBackground()
	if ui.background != nil {
		ui.window.SetContent(container.NewStack(ui.background.Object(), container.NewPadded(content)))
	} else {
		ui.window.SetContent(container.NewPadded(content))
	}
}

// loadBackground decodes the animated background
func (ui *RootUI) loadBackground() (*AnimatedBackground, error) {
	path, err := ui.assets.Path(BackgroundFile)
	if err != nil {
		ui.logger.Warn("background unavailable", zap.Error(err))
		return nil, err
	}
	var frames []image.Image
	if frames, err = LoadGIFFrames(ui.fs, path); err != nil {
		ui.logger.Warn("background unavailable", zap.Error(err))
		return nil, err
	}
	ui.logger.Debug("background loaded", zap.String("path", path), zap.Int("frames", len(frames)))
	return NewAnimatedBackground(frames), nil
}

// withSound plays the click sound before running action
func (ui *RootUI) withSound(action func()) func() {
	return func() {
		ui.player.PlayClick()
		action()
	}
}

func (ui *RootUI) gameLabel(game model.Game) string {
	switch game.SteamAppID {
	case model.GameExtractionPoint.SteamAppID:
		return ui.localization.GetText(KeyRunExtraction)
	case model.GamePerseusMandate.SteamAppID:
		return ui.localization.GetText(KeyRunPerseus)
	default:
		return ui.localization.GetText(KeyRunFEAR)
	}
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))
	ui.pathEntry.SetPlaceHolder(text(KeyGamePathHint))
	ui.selectBtn.SetText(text(KeySelectPath))
	ui.installBtn.SetText(text(KeyInstall))
	for i, game := range model.Games() {
		ui.gameBtns[i].SetText(ui.gameLabel(game))
	}
}

// onSelectPath opens the folder picker
func (ui *RootUI) onSelectPath() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err.Error())
			return
		}
		if uri == nil {
			return
		}
		ui.onPathSubmitted(uri.Path())
	}, ui.window)
}

// onPathSubmitted validates and stores a game path typed or picked by the user
func (ui *RootUI) onPathSubmitted(path string) {
	if err := ui.SetGamePath(path); err != nil {
		ui.showError(err.Error())
		return
	}
	ui.pathEntry.SetText(path)
	dialog.ShowInformation(
		ui.localization.GetText(KeyPathSelected),
		fmt.Sprintf(ui.localization.GetText(KeyPathSelectedMsg), path),
		ui.window,
	)
}

// SetGamePath stores path in the session if it is an existing directory
func (ui *RootUI) SetGamePath(path string) error {
	if !platform.IsDirectory(path) {
		return fmt.Errorf(ui.localization.GetText(KeyInvalidPath), path)
	}
	ui.sessionMu.Lock()
	ui.session.GamePath = path
	ui.sessionMu.Unlock()
	ui.logger.Info("game path selected", zap.String("path", path))
	return nil
}

// onToggleMusic pauses or resumes the background music
func (ui *RootUI) onToggleMusic() {
	if !ui.player.HasMusic() {
		return
	}
	ui.player.ToggleMusic()
	ui.syncMusicState()
}

// syncMusicState copies the player state into the session and the button
func (ui *RootUI) syncMusicState() {
	playing := ui.player.MusicPlaying()
	ui.sessionMu.Lock()
	ui.session.MusicPlaying = playing
	ui.sessionMu.Unlock()

	if playing {
		ui.musicBtn.SetText(IconMusic)
	} else {
		ui.musicBtn.SetText(IconMuted)
	}
}

// onShowSettings shows the settings dialog and applies saved values
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes stored preferences to the player and the texts
func (ui *RootUI) applySettings() {
	ui.player.SetMusicVolume(ui.settings.GetMusicVolume())
	ui.player.SetEffectsVolume(ui.settings.GetEffectsVolume())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// onOpenFolder reveals the selected game directory
func (ui *RootUI) onOpenFolder() {
	session := ui.Session()
	if !session.HasGamePath() {
		ui.showError(ui.localization.GetText(KeySelectPathFirst))
		return
	}
	if err := platform.OpenFolder(session.GamePath); err != nil {
		ui.logger.Warn("failed to open folder", zap.String("path", session.GamePath), zap.Error(err))
		ui.showError(err.Error())
	}
}

// onLaunch starts a game through Steam
func (ui *RootUI) onLaunch(game model.Game) {
	err := ui.launcher.Launch(ui.Session(), game)
	switch {
	case err == nil:
	case errors.Is(err, install.ErrGamePathUnset):
		ui.showError(ui.localization.GetText(KeySelectPathFirst))
	default:
		ui.showError(fmt.Sprintf(ui.localization.GetText(KeyLaunchFailed), game.Name, err))
	}
}

// onInstallClick asks for confirmation and starts the installation
func (ui *RootUI) onInstallClick() {
	session := ui.Session()
	if !session.HasGamePath() {
		ui.showError(ui.localization.GetText(KeySelectPathFirst))
		return
	}
	if ui.installing.Load() {
		return
	}

	info := dialog.NewInformation(
		ui.localization.GetText(KeyPleaseWait),
		ui.localization.GetText(KeyPleaseWaitMsg),
		ui.window,
	)
	info.SetOnClosed(func() {
		ui.StartInstall(session.GamePath)
	})
	info.Show()
}

// StartInstall runs the pipeline on a background goroutine. It returns false
// if an installation is already running. done, if set, receives the outcome
// after the UI has been updated.
func (ui *RootUI) StartInstall(gamePath string, done ...func(*model.Report, error)) bool {
	if !ui.installing.CompareAndSwap(false, true) {
		return false
	}
	ui.setBusy(true)

	go func() {
		report, err := ui.installer.RunAll(context.Background(), gamePath, ui.steps)
		fyne.Do(func() {
			ui.installing.Store(false)
			ui.setBusy(false)
			ui.showInstallResult(report, err)
			for _, callback := range done {
				callback(report, err)
			}
		})
	}()
	return true
}

// setBusy disables the controls that must not be used during installation
func (ui *RootUI) setBusy(busy bool) {
	for _, btn := range []*widget.Button{ui.installBtn, ui.selectBtn} {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
	if busy {
		ui.pathEntry.Disable()
		ui.progress.SetValue(0)
		ui.progress.Show()
		ui.statusLabel.SetText(ui.localization.GetText(KeyInstalling))
	} else {
		ui.pathEntry.Enable()
		ui.progress.Hide()
	}
}

// onStepUpdate is called by the installer after each step
func (ui *RootUI) onStepUpdate(result model.StepResult) {
	name, err := result.Step.FileName()
	if err != nil {
		name = result.Step.Source
	}
	status := fmt.Sprintf(ui.localization.GetText(KeyInstallProgress), result.Index+1, result.Total, name)
	if result.Step.Destination != "" {
		status += " → " + result.Step.DisplayDestination()
	}

	fyne.Do(func() {
		if result.Total > 0 {
			ui.progress.SetValue(float64(result.Index+1) / float64(result.Total))
		}
		ui.statusLabel.SetText(status)
	})
}

// showInstallResult reports the outcome of a run once
func (ui *RootUI) showInstallResult(report *model.Report, err error) {
	text := ui.localization.GetText

	if report == nil || report.Status == model.RunStatusNotStarted {
		ui.statusLabel.SetText("")
		if errors.Is(err, install.ErrGamePathUnset) {
			ui.showError(text(KeySelectPathFirst))
		} else if err != nil {
			ui.showError(err.Error())
		}
		return
	}

	if err != nil {
		ui.statusLabel.SetText(fmt.Sprintf(text(KeyInstallPartial), len(report.FailedSteps()), len(report.Steps)))
		dialog.ShowError(err, ui.window)
		return
	}

	downloaded := humanize.Bytes(uint64(report.TotalBytes()))
	ui.statusLabel.SetText(fmt.Sprintf(text(KeyInstallCompleteMsg), downloaded))

	completed := dialog.NewInformation(
		text(KeyInstallCompleted),
		fmt.Sprintf(text(KeyInstallCompleteMsg), downloaded),
		ui.window,
	)
	completed.SetOnClosed(func() {
		dialog.ShowInformation(text(KeyMultiplayerSetup), text(KeyMultiplayerMsg), ui.window)
	})
	completed.Show()
}

func (ui *RootUI) showError(message string) {
	dialog.ShowError(errors.New(message), ui.window)
}

func (ui *RootUI) showWarning(message string) {
	dialog.ShowInformation(ui.localization.GetText(KeyWarning), message, ui.window)
}
