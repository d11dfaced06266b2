package main

import (
	"context"
	"sync/atomic"

	"github.com/Swatto86/QuickRun/internal/debug"
	"github.com/Swatto86/QuickRun/internal/hotkey"
	"github.com/Swatto86/QuickRun/internal/runner"
	"github.com/Swatto86/QuickRun/internal/settings"
	"github.com/Swatto86/QuickRun/internal/startup"
	"github.com/Swatto86/QuickRun/internal/tray"
	"github.com/Swatto86/QuickRun/internal/updater"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App is the backend bound to the frontend. The launcher window is the
// only input surface; it hides itself after every successful launch.
type App struct {
	ctx       context.Context
	version   string
	config    settings.Settings
	runner    *runner.Runner
	updater   *updater.Updater
	autostart startup.Manager
	hotkey    *hotkey.Listener
	tray      *tray.Icon
	visible   atomic.Bool
}

func NewApp(version string) *App {
	return &App{
		version:   version,
		runner:    runner.NewRunner(),
		autostart: startup.New(),
	}
}

func (a *App) startup(ctx context.Context) {
	log := debug.Get()
	defer log.RecoverPanic("app.startup")

	a.ctx = ctx
	a.config = settings.Load(settings.Path())
	log.Info("settings loaded", map[string]interface{}{"lightMode": a.config.LightMode})

	a.updater = updater.New(a.version, func(url string) error {
		runtime.BrowserOpenURL(a.ctx, url)
		return nil
	})

	a.hotkey = hotkey.New(func() { a.ToggleWindow() })
	a.hotkey.Start()
	log.Info("global hotkey registered (Alt+Space)")

	a.tray = tray.New(tray.Callbacks{
		OnToggle:       func() { a.ToggleWindow() },
		OnSettings:     func() { a.openSettings() },
		OnCheckUpdates: func() { a.openSettings() },
		OnQuit:         func() { runtime.Quit(a.ctx) },
	})
	a.tray.Start()
	log.Info("system tray icon created")

	// Start hidden; Alt+Space or the tray brings the launcher up.
	runtime.WindowHide(ctx)
	a.visible.Store(false)

	log.Info("startup complete")
}

func (a *App) shutdown(ctx context.Context) {
	log := debug.Get()
	log.Info("shutdown called")
	if a.hotkey != nil {
		a.hotkey.Stop()
	}
	if a.tray != nil {
		a.tray.Stop()
	}
}

// RunCommand resolves and launches one user-submitted command. On
// success the launcher window hides immediately; on failure the error
// message is surfaced inline by the frontend and the window stays up.
func (a *App) RunCommand(input string) error {
	if err := a.runner.Run(input); err != nil {
		debug.Get().Info("run failed", map[string]interface{}{"input": input, "error": err.Error()})
		return err
	}
	a.HideWindow()
	return nil
}

// CheckForUpdates queries the latest GitHub release.
func (a *App) CheckForUpdates() (updater.UpdateInfo, error) {
	return a.updater.Check(a.ctx)
}

// InstallUpdate downloads and launches the installer for info, falling
// back to the release page in the browser. The app should be quit right
// after a successful return so the installer can replace it.
func (a *App) InstallUpdate(info updater.UpdateInfo) error {
	return a.updater.Install(a.ctx, info)
}

func (a *App) GetAppVersion() string {
	return a.version
}

func (a *App) IsStartupEnabled() (bool, error) {
	return a.autostart.IsEnabled()
}

func (a *App) SetStartupEnabled(enabled bool) error {
	return a.autostart.SetEnabled(enabled)
}

func (a *App) IsLightMode() bool {
	return a.config.LightMode
}

func (a *App) SetLightMode(enabled bool) error {
	a.config.LightMode = enabled
	return settings.Save(settings.Path(), a.config)
}

func (a *App) ToggleWindow() {
	if a.visible.Load() {
		a.HideWindow()
		return
	}
	a.ShowWindow()
}

func (a *App) ShowWindow() {
	runtime.WindowShow(a.ctx)
	runtime.WindowSetAlwaysOnTop(a.ctx, true)
	runtime.WindowCenter(a.ctx)
	a.visible.Store(true)
	// Let the frontend clear and focus the input box.
	runtime.EventsEmit(a.ctx, "window-show")
}

func (a *App) HideWindow() {
	runtime.WindowHide(a.ctx)
	a.visible.Store(false)
}

func (a *App) openSettings() {
	a.ShowWindow()
	runtime.EventsEmit(a.ctx, "open-settings")
}
