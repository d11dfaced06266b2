package main

import (
	"embed"

	"github.com/Swatto86/QuickRun/internal/debug"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

// Version is set at build time via ldflags.
var Version = "1.0.0"

func main() {
	log := debug.Init()
	defer log.Close()
	defer log.RecoverPanic("main")

	log.Info("QuickRun starting up", map[string]interface{}{"version": Version})

	app := NewApp(Version)

	err := wails.Run(&options.App{
		Title:             "QuickRun",
		Width:             500,
		Height:            80,
		DisableResize:     true,
		Frameless:         true,
		AlwaysOnTop:       true,
		HideWindowOnClose: true,
		BackgroundColour:  &options.RGBA{R: 0, G: 0, B: 0, A: 0},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  app.startup,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
		Windows: &windows.Options{
			WebviewIsTransparent:              true,
			WindowIsTranslucent:               true,
			DisableFramelessWindowDecorations: true,
			Theme:                             windows.Dark,
		},
	})

	if err != nil {
		log.Fatal("wails.Run failed", map[string]interface{}{"error": err.Error()})
	}

	log.Info("QuickRun shutting down gracefully")
}
