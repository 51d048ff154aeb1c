package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/2cwldys/fear-launcher/internal/archive"
	"github.com/2cwldys/fear-launcher/internal/audio"
	"github.com/2cwldys/fear-launcher/internal/config"
	"github.com/2cwldys/fear-launcher/internal/download"
	"github.com/2cwldys/fear-launcher/internal/install"
	"github.com/2cwldys/fear-launcher/internal/launcher"
	"github.com/2cwldys/fear-launcher/internal/platform"
	"github.com/2cwldys/fear-launcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.github.2cwldys.fear-launcher"
	AppName = "FEAR Steam Multiplayer Fix"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(env)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("version", version),
		zap.String("release_base_url", env.ReleaseBaseURL))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	assets := ui.NewAssets(env.AssetsDir)
	if icon, err := assets.LoadIcon(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug("window icon unavailable", zap.Error(err))
	}

	// Initialize services
	downloadSvc := download.NewService(logger)
	archiveSvc := archive.NewService(logger)
	pipeline := install.NewPipeline(downloadSvc, archiveSvc, logger)
	launcherSvc := launcher.NewService(launcher.OpenerFunc(platform.OpenURL), logger)
	player := audio.NewService(logger)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, ui.Services{
		Installer: pipeline,
		Launcher:  launcherSvc,
		Player:    player,
		Steps:     install.DefaultSteps(env.ReleaseBaseURL),
		Assets:    assets,
		Logger:    logger,
	})
	root.LoadMedia()
	myWindow.SetOnClosed(root.Close)

	// Show and run
	myWindow.ShowAndRun()
}

// initLogger writes human-readable logs to stderr and, if configured,
// JSON logs to a file.
func initLogger(env config.Env) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), env.LogLevel),
	}

	if env.LogFile != "" {
		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(env.LogFile)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		}
		file, err := os.OpenFile(env.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), env.LogLevel))
		} else {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", env.LogFile, err)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
